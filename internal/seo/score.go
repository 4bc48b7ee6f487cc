package seo

import "strings"

// SEOScore reports the percentage of keywords that overlap the suggestion
// list, rounded down. A keyword matches when it contains, or is contained
// by, any suggestion (case-insensitive). An empty keyword list scores 0.
func SEOScore(keywords, suggestions []string) int {
	matched := 0
	for _, kw := range keywords {
		if keywordMatches(kw, suggestions) {
			matched++
		}
	}
	return matched * 100 / max(len(keywords), 1)
}

func keywordMatches(keyword string, suggestions []string) bool {
	kw := strings.ToLower(keyword)
	for _, s := range suggestions {
		sl := strings.ToLower(s)
		if strings.Contains(sl, kw) || strings.Contains(kw, sl) {
			return true
		}
	}
	return false
}

// TrendingScore reports the percentage of suggestions that contain at
// least one word of the topic (case-insensitive), rounded down. With no
// suggestions the score is 0.
func TrendingScore(topic string, suggestions []string) int {
	words := strings.Fields(strings.ToLower(topic))
	count := 0
	for _, s := range suggestions {
		if containsAnyWord(strings.ToLower(s), words) {
			count++
		}
	}
	return count * 100 / max(len(suggestions), 1)
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
