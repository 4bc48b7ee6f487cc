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

const googleSuggestBaseURL = "https://suggestqueries.google.com/complete/search"

// GoogleClient hits the public unauthenticated suggest endpoint. The
// response is a JSON array whose second element holds the suggestions.
type GoogleClient struct {
	baseURL string
	timeout time.Duration
	client  *fasthttp.Client
	log     *logger.Logger
}

func NewGoogleClient(timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		baseURL: googleSuggestBaseURL,
		timeout: timeout,
		client:  &fasthttp.Client{Name: "seo-insight/1.0"},
		log:     logger.GetLogger().WithField("component", "google_suggest"),
	}
}

func (c *GoogleClient) Name() string { return "google" }

func (c *GoogleClient) Suggest(ctx context.Context, query string, max int) ([]string, error) {
	if max <= 0 {
		max = DefaultMaxResults
	}

	args := url.Values{}
	args.Set("client", "firefox")
	args.Set("q", query)

	body, err := httpGet(ctx, c.client, c.baseURL+"?"+args.Encode(), c.timeout)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	if len(raw) < 2 {
		return []string{}, nil
	}

	var suggestions []string
	if err := json.Unmarshal(raw[1], &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}

	c.log.WithFields(map[string]interface{}{
		"query":       query,
		"suggestions": suggestions,
	}).Debug("Fetched autocomplete suggestions")
	return suggestions, nil
}
