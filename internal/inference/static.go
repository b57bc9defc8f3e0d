package inference

import "context"

// Static is a deterministic backend returning a fixed distribution. Used as
// the test double and as a stand-in when no inference service is configured.
type Static struct {
	Scores []float64
}

// NewNeutralStatic returns a Static that always predicts a flat
// distribution, which scores 0.0 after normalization.
func NewNeutralStatic() Static {
	return Static{Scores: []float64{0, 0, 0, 0, 0}}
}

func (s Static) Predict(_ context.Context, _, _, _ []int) ([]float64, error) {
	out := make([]float64, len(s.Scores))
	copy(out, s.Scores)
	return out, nil
}
