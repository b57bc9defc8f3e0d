package domain

import "context"

// Actuator drives the physical feedback device. Implementations are
// best-effort: Play must be safe to call even if Prepare was never invoked,
// and reported errors are logged and swallowed by the dispatcher.
type Actuator interface {
	Prepare() error
	Play(category Category, intensity float64) error
	StartLoop() error
	StopLoop() error
}

// Inference is the opaque boundary to the external classifier. It accepts
// the tokenized sequence and returns raw (possibly unnormalized) scores for
// the five ordered classes; the scorer re-normalizes before use.
type Inference interface {
	Predict(ctx context.Context, inputIDs, attentionMask, tokenTypeIDs []int) ([]float64, error)
}

// RuleTagger is the non-ML fallback scorer. The returned raw score is
// unbounded; callers compress it into [-1, 1].
type RuleTagger interface {
	RawScore(ctx context.Context, text, langHint string) (float64, error)
}

// LanguageDetector identifies the dominant language of a text. ok is false
// when no language can be determined, which routes scoring to the rule-based
// fallback branch.
type LanguageDetector interface {
	Detect(text string) (lang string, ok bool)
}

// Scorer maps text to a signed polarity score in [-1, 1]. Implementations
// never return an error: backend failures degrade to a 0.0 score.
type Scorer interface {
	Score(ctx context.Context, text, lang string) float64
}
