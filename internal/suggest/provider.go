package suggest

import (
	"context"
	"fmt"
	"time"

	"seo-insight/internal/config"
)

// DefaultMaxResults caps how many suggestions a fetch returns when the
// caller does not say otherwise.
const DefaultMaxResults = 10

// Provider fetches autocomplete suggestions for a query from an external
// source. Implementations preserve upstream order and truncate to max.
type Provider interface {
	Suggest(ctx context.Context, query string, max int) ([]string, error)
	Name() string
}

// OrganicSearcher is the raw web-search side of a provider. Only the
// SerpApi variant implements it.
type OrganicSearcher interface {
	SearchOrganic(ctx context.Context, query string) ([]OrganicResult, error)
}

// NewFromConfig builds the provider variant the deployment selected.
func NewFromConfig(cfg *config.Config) (Provider, error) {
	timeout := time.Duration(cfg.Suggest.TimeoutSeconds) * time.Second
	switch cfg.Suggest.Provider {
	case config.ProviderSerpAPI:
		return NewSerpAPIClient(cfg.Suggest.SerpAPIKey, cfg.Suggest.HL, cfg.Suggest.GL, timeout), nil
	case config.ProviderGoogle:
		return NewGoogleClient(timeout), nil
	default:
		return nil, fmt.Errorf("unknown suggest provider %q", cfg.Suggest.Provider)
	}
}
