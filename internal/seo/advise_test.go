package seo

import (
	"strings"
	"testing"
)

func TestAdviseLooksGood(t *testing.T) {
	got := Advise("best running shoes", []string{"best trail shoes", "running watch"})
	if got != "Keywords and topic look good." {
		t.Errorf("expected looks-good message, got %q", got)
	}
}

func TestAdviseMissingMainWord(t *testing.T) {
	got := Advise("coffee brewing", []string{"espresso machine"})
	want := "Suggestions: Add keywords including main topic word 'coffee'"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAdviseOnlyFirstTopicWordCounts(t *testing.T) {
	// Keywords carry the later topic words but not the first one.
	got := Advise("best running shoes", []string{"running shoes", "shoes for running"})
	want := "Suggestions: Add keywords including main topic word 'best'"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAdviseLongKeyword(t *testing.T) {
	got := Advise("coffee", []string{"coffee", "the very best espresso machine deals"})
	want := "Suggestions: Avoid very long keywords; keep keywords concise (max 4 words)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAdviseEmptyKeywordsFiresTwoRules(t *testing.T) {
	got := Advise("coffee", nil)
	want := "Suggestions: Add keywords including main topic word 'coffee'; Add relevant keywords related to your topic"
	if got != want {
		t.Errorf("expected both rules to fire for empty keywords, got %q", got)
	}
}

func TestAdviseAllRulesFire(t *testing.T) {
	got := Advise("coffee", []string{"a very long tea keyword here"})
	if !strings.Contains(got, "main topic word 'coffee'") {
		t.Errorf("expected rule 1 in %q", got)
	}
	if !strings.Contains(got, "keep keywords concise") {
		t.Errorf("expected rule 2 in %q", got)
	}
	if strings.Contains(got, "Add relevant keywords related") {
		t.Errorf("rule 3 must not fire with non-empty keywords, got %q", got)
	}
}

func TestAdviseEmptyTopicFailsSoft(t *testing.T) {
	for _, topic := range []string{"", "   "} {
		got := Advise(topic, nil)
		if got != "Unable to generate suggestions due to an error." {
			t.Errorf("expected fallback message for topic %q, got %q", topic, got)
		}
	}
}

func TestAdviseCaseInsensitiveMainWord(t *testing.T) {
	got := Advise("Coffee Brewing", []string{"COFFEE grinder"})
	if strings.Contains(got, "main topic word") {
		t.Errorf("expected case-insensitive main word match, got %q", got)
	}
}
