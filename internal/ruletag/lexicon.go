// Package ruletag implements the rule-based fallback tagger: a small
// embedded bilingual lexicon whose summed word weights form an unbounded
// signed score. Callers compress the result into [-1, 1].
package ruletag

import (
	"context"
	"strings"
	"unicode"
)

// negationWindow is how many following tokens a negation word inverts.
const negationWindow = 3

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "n't": {},
	"не": {}, "нет": {}, "никогда": {}, "ни": {},
}

// weights holds the embedded lexicon. Function words carry a small negative
// weight, matching the observed behavior of general-purpose taggers on
// isolated grammatical words; the classifier's stop-word rule corrects for
// it on whole-text matches.
var weights = map[string]float64{
	"good": 0.6, "great": 0.8, "excellent": 0.9, "love": 0.8, "like": 0.4,
	"happy": 0.7, "wonderful": 0.8, "amazing": 0.8, "nice": 0.5, "best": 0.8,
	"fun": 0.5, "beautiful": 0.7, "fine": 0.3, "ecstatic": 0.9, "pretty": 0.3,

	"bad": -0.6, "terrible": -0.9, "awful": -0.8, "hate": -0.8, "horrible": -0.9,
	"sad": -0.6, "angry": -0.7, "worst": -0.9, "boring": -0.5, "ugly": -0.6,
	"poor": -0.4, "disgusting": -0.8, "annoying": -0.5, "dreadful": -0.8,

	"хорошо": 0.6, "отлично": 0.8, "прекрасно": 0.8, "люблю": 0.8,
	"нравится": 0.5, "рад": 0.6, "замечательно": 0.8, "красиво": 0.6,

	"плохо": -0.6, "ужасно": -0.9, "ненавижу": -0.8, "грустно": -0.6,
	"отвратительно": -0.8, "скучно": -0.5, "страшно": -0.6, "зло": -0.6,

	"the": -0.05, "a": -0.05, "an": -0.05, "is": -0.05, "was": -0.05,
	"и": -0.05, "в": -0.05, "на": -0.05, "это": -0.05,
}

// Lexicon is the default in-process tagger used when no external tagger is
// configured. It is stateless and safe for concurrent use.
type Lexicon struct{}

func NewLexicon() Lexicon { return Lexicon{} }

// RawScore sums lexicon weights over the tokens of text, flipping the sign
// of weights that fall inside a negation window. The sum is not clamped.
// The language hint is accepted for interface compatibility; the embedded
// lexicon is bilingual, so it is not needed for routing.
func (Lexicon) RawScore(_ context.Context, text, _ string) (float64, error) {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})

	var score float64
	negatedUntil := -1
	for i, tok := range tokens {
		if _, ok := negations[tok]; ok {
			negatedUntil = i + negationWindow
			continue
		}
		w, ok := weights[tok]
		if !ok {
			continue
		}
		if i <= negatedUntil {
			w = -w
		}
		score += w
	}
	return score, nil
}
