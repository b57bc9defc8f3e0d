// Package scorer maps text to a signed polarity score in [-1, 1], routing
// between the learned classifier and the rule-based fallback tagger by
// detected language.
package scorer

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/QualiaKit/QualiaKit/internal/domain"
	"github.com/QualiaKit/QualiaKit/internal/metrics"
	"github.com/QualiaKit/QualiaKit/internal/tokenizer"
)

// numClasses is the size of the classifier's output distribution.
const numClasses = 5

// Output class indices fixed by the inference contract. The middle classes
// (1, 3, 4) contribute to the softmax denominator but not to the final score.
const (
	classNegative = 0
	classPositive = 2
)

// fallbackDamping compresses the unbounded rule-tagger score into [-1, 1]
// via tanh(raw * fallbackDamping). Fixed design parameter, not learned.
const fallbackDamping = 1.5

// Engine implements domain.Scorer. Scoring is fail-soft: any backend error
// is logged and converted to a 0.0 score, never propagated.
type Engine struct {
	encoder   *tokenizer.Encoder
	inference domain.Inference
	tagger    domain.RuleTagger
	modelLang string
}

// New creates a scoring engine. modelLang names the language served by the
// learned classifier; every other language routes to the rule tagger.
func New(encoder *tokenizer.Encoder, inference domain.Inference, tagger domain.RuleTagger, modelLang string) *Engine {
	return &Engine{
		encoder:   encoder,
		inference: inference,
		tagger:    tagger,
		modelLang: modelLang,
	}
}

// Score returns the polarity of text in [-1, 1]. Empty or whitespace-only
// text short-circuits to 0.0 without touching any backend.
func (e *Engine) Score(ctx context.Context, text, lang string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	if lang == e.modelLang {
		timer := prometheus.NewTimer(metrics.ScorerDuration.WithLabelValues("model"))
		defer timer.ObserveDuration()
		return e.scoreModel(ctx, trimmed)
	}
	timer := prometheus.NewTimer(metrics.ScorerDuration.WithLabelValues("fallback"))
	defer timer.ObserveDuration()
	return e.scoreFallback(ctx, trimmed, lang)
}

func (e *Engine) scoreModel(ctx context.Context, text string) float64 {
	ids, mask := e.encoder.Encode(text)
	tokenTypes := make([]int, len(ids))

	raw, err := e.inference.Predict(ctx, ids, mask, tokenTypes)
	if err != nil {
		slog.Warn("inference backend failed, scoring neutral", "error", err)
		metrics.ScorerErrorsTotal.WithLabelValues("inference").Inc()
		return 0
	}
	if len(raw) != numClasses {
		slog.Warn("inference returned malformed distribution, scoring neutral", "classes", len(raw))
		metrics.ScorerErrorsTotal.WithLabelValues("inference").Inc()
		return 0
	}

	probs := softmax(raw)
	return probs[classPositive] - probs[classNegative]
}

func (e *Engine) scoreFallback(ctx context.Context, text, lang string) float64 {
	raw, err := e.tagger.RawScore(ctx, text, lang)
	if err != nil {
		slog.Warn("rule tagger failed, scoring neutral", "error", err)
		metrics.ScorerErrorsTotal.WithLabelValues("ruletag").Inc()
		return 0
	}
	return math.Tanh(raw * fallbackDamping)
}

// softmax normalizes raw scores into a probability distribution. The max
// component is subtracted before exponentiating to keep the computation
// stable for large inputs.
func softmax(raw []float64) []float64 {
	maxVal := raw[0]
	for _, v := range raw[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	probs := make([]float64, len(raw))
	var sum float64
	for i, v := range raw {
		probs[i] = math.Exp(v - maxVal)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
