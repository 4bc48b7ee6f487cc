package seo

import (
	"context"

	"seo-insight/internal/logger"
	"seo-insight/internal/suggest"
)

// Analysis is the full scoring result for one topic/keyword set.
type Analysis struct {
	SEOScore        int
	TrendingScore   int
	RelatedKeywords []string
	TrendingTexts   []string
	Advice          string
}

// Analyzer derives a complete Analysis from a single suggestion fetch per
// request, so every field of one response reflects the same upstream data.
type Analyzer struct {
	provider   suggest.Provider
	maxResults int
	log        *logger.Logger
}

func NewAnalyzer(provider suggest.Provider, maxResults int) *Analyzer {
	if maxResults <= 0 {
		maxResults = suggest.DefaultMaxResults
	}
	return &Analyzer{
		provider:   provider,
		maxResults: maxResults,
		log:        logger.GetLogger().WithField("component", "analyzer"),
	}
}

// Analyze fetches suggestions for the topic once and scores keywords
// against them. A provider failure degrades to zero scores and the
// caller's own keywords instead of propagating, so the endpoint keeps
// answering while the upstream is down.
func (a *Analyzer) Analyze(ctx context.Context, topic string, keywords []string) Analysis {
	suggestions, err := a.provider.Suggest(ctx, topic, a.maxResults)
	if err != nil {
		a.log.WithError(err).WithField("topic", topic).Warn("Suggestion fetch failed, answering with defaults")
		return Analysis{
			SEOScore:        0,
			TrendingScore:   0,
			RelatedKeywords: Truncate(keywords, a.maxResults),
			TrendingTexts:   []string{},
			Advice:          Advise(topic, keywords),
		}
	}

	a.log.WithFields(map[string]interface{}{
		"topic": topic,
		"count": len(suggestions),
	}).Debug("Scoring against fetched suggestions")

	return Analysis{
		SEOScore:        SEOScore(keywords, suggestions),
		TrendingScore:   TrendingScore(topic, suggestions),
		RelatedKeywords: MergeKeywords(suggestions, keywords, a.maxResults),
		TrendingTexts:   Truncate(suggestions, a.maxResults),
		Advice:          Advise(topic, keywords),
	}
}
