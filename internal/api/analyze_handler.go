package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seo-insight/internal/seo"
)

type AnalyzeRequest struct {
	Topic    string   `json:"topic"`
	Keywords []string `json:"keywords"`
}

type AnalyzeResponse struct {
	SEOScore        int      `json:"seo_score"`
	TrendingScore   int      `json:"trending_score"`
	RelatedKeywords []string `json:"related_keywords"`
	TrendingTexts   []string `json:"top_10_trending_texts"`
	SuggestionText  string   `json:"suggestion_text"`
}

// POST /analyze
func AnalyzeHandler(analyzer *seo.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request body"}})
			return
		}

		result := analyzer.Analyze(c.Request.Context(), req.Topic, req.Keywords)

		c.JSON(http.StatusOK, AnalyzeResponse{
			SEOScore:        result.SEOScore,
			TrendingScore:   result.TrendingScore,
			RelatedKeywords: result.RelatedKeywords,
			TrendingTexts:   result.TrendingTexts,
			SuggestionText:  result.Advice,
		})
	}
}
