package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seo-insight/internal/logger"
	"seo-insight/internal/suggest"
)

type SerpapiRequest struct {
	Query string `json:"query"`
}

// POST /serpapi on serpapi deployments: full google search, raw organic
// results passed through. Provider errors surface here instead of being
// masked like on /analyze.
func SerpapiSearchHandler(searcher suggest.OrganicSearcher) gin.HandlerFunc {
	log := logger.GetLogger().WithField("component", "serpapi_handler")
	return func(c *gin.Context) {
		var req SerpapiRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request body"}})
			return
		}

		results, err := searcher.SearchOrganic(c.Request.Context(), req.Query)
		if err != nil {
			log.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error("Organic search failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": gin.H{"message": "Search provider unavailable", "detail": err.Error()}})
			return
		}
		if results == nil {
			results = []suggest.OrganicResult{}
		}

		c.JSON(http.StatusOK, gin.H{"query": req.Query, "organic_results": results})
	}
}

// POST /serpapi on public-endpoint deployments: the raw suggestion list.
func SuggestPassthroughHandler(provider suggest.Provider, maxResults int) gin.HandlerFunc {
	log := logger.GetLogger().WithField("component", "suggest_handler")
	return func(c *gin.Context) {
		var req SerpapiRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request body"}})
			return
		}

		suggestions, err := provider.Suggest(c.Request.Context(), req.Query, maxResults)
		if err != nil {
			log.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error("Suggestion fetch failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": gin.H{"message": "Suggestion provider unavailable", "detail": err.Error()}})
			return
		}
		if suggestions == nil {
			suggestions = []string{}
		}

		c.JSON(http.StatusOK, gin.H{"query": req.Query, "suggestions": suggestions})
	}
}
