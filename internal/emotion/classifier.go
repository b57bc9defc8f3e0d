// Package emotion implements the heuristic classifier: a fixed-precedence
// rule chain over the text, falling through to the language-routed scorer
// only when no rule matches.
package emotion

import (
	"context"
	"strings"

	"github.com/QualiaKit/QualiaKit/internal/domain"
	"github.com/QualiaKit/QualiaKit/internal/metrics"
)

// Score thresholds for mapping the scorer's output to a category.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Fixed score attached to the negated-idiom override.
const idiomScore = 0.5

// Analyzer classifies text into an emotion category plus polarity score.
// It is stateless apart from its collaborators and safe for concurrent use.
type Analyzer struct {
	scorer   domain.Scorer
	detector domain.LanguageDetector
}

func NewAnalyzer(scorer domain.Scorer, detector domain.LanguageDetector) *Analyzer {
	return &Analyzer{scorer: scorer, detector: detector}
}

// Classify runs the rule chain top to bottom, first match wins:
// stop-word, negated idiom, intense keyword, mysterious keyword, then the
// scorer fallback with threshold mapping. Keyword and idiom matching is
// case-insensitive substring matching with no word boundaries, so "attacked"
// triggers an "attack" keyword. That looseness is intentional.
func (a *Analyzer) Classify(ctx context.Context, text string, cfg domain.FeedbackConfig) domain.Classification {
	lowered := strings.ToLower(text)
	trimmed := strings.TrimSpace(lowered)

	if _, ok := stopWords[trimmed]; ok || trimmed == "" {
		return a.record("stopword", domain.Classification{Category: domain.CategoryNeutral, Score: 0})
	}

	for _, idiom := range negatedIdioms {
		if strings.Contains(lowered, idiom) {
			return a.record("idiom", domain.Classification{Category: domain.CategoryPositive, Score: idiomScore})
		}
	}

	if containsAny(lowered, cfg.IntenseKeywords) {
		return a.record("intense_keyword", domain.Classification{Category: domain.CategoryIntense, Score: 0})
	}
	if containsAny(lowered, cfg.MysteriousKeywords) {
		return a.record("mysterious_keyword", domain.Classification{Category: domain.CategoryMysterious, Score: 0})
	}

	// Language is detected from the original text, untrimmed; an
	// undetectable language routes to the rule-based fallback branch.
	lang, _ := a.detector.Detect(text)
	score := a.scorer.Score(ctx, text, lang)

	category := domain.CategoryNeutral
	switch {
	case score > positiveThreshold:
		category = domain.CategoryPositive
	case score < negativeThreshold:
		category = domain.CategoryNegative
	}
	return a.record("scorer", domain.Classification{Category: category, Score: score})
}

func (a *Analyzer) record(rule string, c domain.Classification) domain.Classification {
	metrics.ClassificationsTotal.WithLabelValues(string(c.Category), rule).Inc()
	return c
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
