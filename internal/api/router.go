package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"seo-insight/internal/config"
	"seo-insight/internal/seo"
	"seo-insight/internal/suggest"
)

func SetupRouter(cfg *config.Config, analyzer *seo.Analyzer, provider suggest.Provider, searcher suggest.OrganicSearcher) *gin.Engine {
	r := gin.New()
	r.Use(
		RequestIDMiddleware(),
		RequestLogMiddleware(),
		gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": fmt.Sprint(recovered)}})
		}),
	)

	r.GET("/", rootHandler)
	r.GET("/health", healthHandler)
	r.POST("/analyze", AnalyzeHandler(analyzer))

	// The secondary endpoint mirrors whichever provider the deployment
	// runs: raw organic results under serpapi, the raw suggestion list
	// under the public endpoint.
	if searcher != nil {
		r.POST("/serpapi", SerpapiSearchHandler(searcher))
	} else {
		r.POST("/serpapi", SuggestPassthroughHandler(provider, cfg.Suggest.MaxResults))
	}

	return r
}
