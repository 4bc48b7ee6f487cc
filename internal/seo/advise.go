package seo

import (
	"fmt"
	"strings"
)

const (
	adviceLooksGood   = "Keywords and topic look good."
	adviceUnavailable = "Unable to generate suggestions due to an error."
)

// Advise produces human-readable hints for improving a topic/keyword set.
// Rules run in a fixed order and every triggered hint lands in the result.
// A topic with no words yields the generic unavailable message.
func Advise(topic string, keywords []string) string {
	topicWords := strings.Fields(strings.ToLower(topic))
	if len(topicWords) == 0 {
		return adviceUnavailable
	}

	var hints []string

	mainWord := topicWords[0]
	if !anyKeywordContains(keywords, mainWord) {
		hints = append(hints, fmt.Sprintf("Add keywords including main topic word '%s'", mainWord))
	}
	if anyKeywordExceeds(keywords, 4) {
		hints = append(hints, "Avoid very long keywords; keep keywords concise (max 4 words)")
	}
	if len(keywords) == 0 {
		hints = append(hints, "Add relevant keywords related to your topic")
	}

	if len(hints) == 0 {
		return adviceLooksGood
	}
	return "Suggestions: " + strings.Join(hints, "; ")
}

func anyKeywordContains(keywords []string, word string) bool {
	for _, kw := range keywords {
		if strings.Contains(strings.ToLower(kw), word) {
			return true
		}
	}
	return false
}

func anyKeywordExceeds(keywords []string, maxWords int) bool {
	for _, kw := range keywords {
		if len(strings.Fields(kw)) > maxWords {
			return true
		}
	}
	return false
}
