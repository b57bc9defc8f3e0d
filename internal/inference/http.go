// Package inference adapts the external classifier service behind the
// domain.Inference boundary. The model itself is opaque: this package only
// fixes the wire contract (parallel id/mask/type arrays in, LABEL_0..LABEL_4
// raw scores out).
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/QualiaKit/QualiaKit/internal/platform/retry"
)

const numClasses = 5

type predictRequest struct {
	InputIDs      []int `json:"input_ids"`
	AttentionMask []int `json:"attention_mask"`
	TokenTypeIDs  []int `json:"token_type_ids"`
}

// HTTPBackend calls a remote inference service over HTTP.
type HTTPBackend struct {
	url    string
	client *http.Client
	clock  clockwork.Clock
	policy retry.Policy
}

// NewHTTPBackend validates rawURL and constructs the backend. An invalid URL
// fails construction outright: the pipeline cannot operate without a working
// inference boundary.
func NewHTTPBackend(rawURL string, client *http.Client, clock clockwork.Clock) (*HTTPBackend, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid inference URL %q", rawURL)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPBackend{
		url:    rawURL,
		client: client,
		clock:  clock,
		policy: retry.Policy{MaxAttempts: 3, InitialBackoff: 200 * time.Millisecond},
	}, nil
}

// Predict posts the tokenized sequence and returns the five raw class scores
// in label order. Transient failures (network errors, 5xx) are retried with
// backoff; 4xx responses abort immediately.
func (b *HTTPBackend) Predict(ctx context.Context, inputIDs, attentionMask, tokenTypeIDs []int) ([]float64, error) {
	body, err := json.Marshal(predictRequest{
		InputIDs:      inputIDs,
		AttentionMask: attentionMask,
		TokenTypeIDs:  tokenTypeIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal inference request: %w", err)
	}

	return retry.Do(ctx, b.clock, b.policy, func() ([]float64, error) {
		return b.predictOnce(ctx, body)
	})
}

func (b *HTTPBackend) predictOnce(ctx context.Context, body []byte) ([]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewReader(body))
	if err != nil {
		return nil, &retry.Permanent{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, &retry.Permanent{Err: fmt.Errorf("inference rejected request: %s", resp.Status)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference returned %s", resp.Status)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("read inference response: %w", err)
	}

	var labels map[string]float64
	if err := json.Unmarshal(payload, &labels); err != nil {
		return nil, &retry.Permanent{Err: fmt.Errorf("decode inference response: %w", err)}
	}

	scores := make([]float64, numClasses)
	for i := range scores {
		label := fmt.Sprintf("LABEL_%d", i)
		v, ok := labels[label]
		if !ok {
			return nil, &retry.Permanent{Err: fmt.Errorf("inference response missing %s", label)}
		}
		scores[i] = v
	}
	return scores, nil
}
