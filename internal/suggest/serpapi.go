package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/valyala/fasthttp"

	"seo-insight/internal/logger"
)

const (
	serpAPIBaseURL  = "https://serpapi.com/search"
	serpAPILocation = "Austin, Texas"
)

// SerpAPIClient talks to the hosted SerpApi service. It backs both the
// autocomplete path and the raw organic-results path.
type SerpAPIClient struct {
	baseURL string
	apiKey  string
	hl      string
	gl      string
	timeout time.Duration
	client  *fasthttp.Client
	log     *logger.Logger
}

func NewSerpAPIClient(apiKey, hl, gl string, timeout time.Duration) *SerpAPIClient {
	return &SerpAPIClient{
		baseURL: serpAPIBaseURL,
		apiKey:  apiKey,
		hl:      hl,
		gl:      gl,
		timeout: timeout,
		client:  &fasthttp.Client{Name: "seo-insight/1.0"},
		log:     logger.GetLogger().WithField("component", "serpapi_client"),
	}
}

func (c *SerpAPIClient) Name() string { return "serpapi" }

func (c *SerpAPIClient) Suggest(ctx context.Context, query string, max int) ([]string, error) {
	if max <= 0 {
		max = DefaultMaxResults
	}

	args := url.Values{}
	args.Set("engine", "google_autocomplete")
	args.Set("q", query)
	args.Set("hl", c.hl)
	args.Set("gl", c.gl)
	args.Set("api_key", c.apiKey)

	body, err := httpGet(ctx, c.client, c.baseURL+"?"+args.Encode(), c.timeout)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Suggestions []struct {
			Value string `json:"value"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}

	suggestions := make([]string, 0, len(parsed.Suggestions))
	for _, item := range parsed.Suggestions {
		if len(suggestions) == max {
			break
		}
		suggestions = append(suggestions, item.Value)
	}

	c.log.WithFields(map[string]interface{}{
		"query":       query,
		"suggestions": suggestions,
	}).Debug("Fetched autocomplete suggestions")
	return suggestions, nil
}

// OrganicResult is one entry of a SerpApi google search response, shaped
// to the fields the API exposes.
type OrganicResult struct {
	Position      int    `json:"position"`
	Title         string `json:"title"`
	Link          string `json:"link"`
	DisplayedLink string `json:"displayed_link,omitempty"`
	Snippet       string `json:"snippet,omitempty"`
	Source        string `json:"source,omitempty"`
}

// SearchOrganic runs a full google search and returns the organic results.
func (c *SerpAPIClient) SearchOrganic(ctx context.Context, query string) ([]OrganicResult, error) {
	args := url.Values{}
	args.Set("engine", "google")
	args.Set("q", query)
	args.Set("location", serpAPILocation)
	args.Set("hl", c.hl)
	args.Set("gl", c.gl)
	args.Set("api_key", c.apiKey)

	body, err := httpGet(ctx, c.client, c.baseURL+"?"+args.Encode(), c.timeout)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		OrganicResults []OrganicResult `json:"organic_results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}

	c.log.WithFields(map[string]interface{}{
		"query": query,
		"count": len(parsed.OrganicResults),
	}).Debug("Fetched organic search results")
	return parsed.OrganicResults, nil
}
