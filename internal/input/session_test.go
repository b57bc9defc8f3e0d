package input

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QualiaKit/QualiaKit/internal/domain"
)

type recordingClassifier struct {
	mu    sync.Mutex
	texts []string
}

func (r *recordingClassifier) Classify(_ context.Context, text string, _ domain.FeedbackConfig) domain.Classification {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	return domain.Classification{Category: domain.CategoryPositive, Score: 0.5}
}

func (r *recordingClassifier) getTexts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]string, len(r.texts))
	copy(cp, r.texts)
	return cp
}

type recordingDispatcher struct {
	mu         sync.Mutex
	categories []domain.Category
}

func (r *recordingDispatcher) DispatchIfConfigured(category domain.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, category)
}

func (r *recordingDispatcher) getCategories() []domain.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]domain.Category, len(r.categories))
	copy(cp, r.categories)
	return cp
}

func newTestSession(t *testing.T, onResult func(domain.Classification)) (*Session, *recordingClassifier, *recordingDispatcher, *clockwork.FakeClock) {
	t.Helper()
	classifier := &recordingClassifier{}
	dispatcher := &recordingDispatcher{}
	clock := clockwork.NewFakeClock()
	s := NewSession(classifier, dispatcher, domain.DefaultFeedbackConfig(), clock, 300*time.Millisecond, onResult)
	t.Cleanup(s.Close)
	return s, classifier, dispatcher, clock
}

func TestSubmit_ClassifiesAfterQuiescence(t *testing.T) {
	results := make(chan domain.Classification, 1)
	s, classifier, dispatcher, clock := newTestSession(t, func(c domain.Classification) { results <- c })

	s.Submit("hello world")
	clock.BlockUntil(1)

	assert.Empty(t, classifier.getTexts(), "must not classify before the interval")

	clock.Advance(300 * time.Millisecond)

	select {
	case got := <-results:
		assert.Equal(t, domain.CategoryPositive, got.Category)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for classification")
	}
	assert.Equal(t, []string{"hello world"}, classifier.getTexts())
	assert.Equal(t, []domain.Category{domain.CategoryPositive}, dispatcher.getCategories())
}

func TestSubmit_RapidBurstClassifiesOnlyLastValue(t *testing.T) {
	results := make(chan domain.Classification, 3)
	s, classifier, _, clock := newTestSession(t, func(c domain.Classification) { results <- c })

	s.Submit("h")
	clock.BlockUntil(1)
	s.Submit("he")
	clock.BlockUntil(2)
	s.Submit("hello")
	clock.BlockUntil(3)

	clock.Advance(300 * time.Millisecond)

	select {
	case <-results:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for classification")
	}

	// Superseded generations never invoke the pipeline.
	assert.Equal(t, []string{"hello"}, classifier.getTexts())
	select {
	case <-results:
		t.Fatal("superseded submission produced a result")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubmit_TimerRestartsOnEachKeystroke(t *testing.T) {
	s, classifier, _, clock := newTestSession(t, nil)

	s.Submit("first")
	clock.BlockUntil(1)
	clock.Advance(200 * time.Millisecond)

	// New input before quiescence rearms the window.
	s.Submit("second")
	clock.BlockUntil(2)
	clock.Advance(200 * time.Millisecond)

	// The first timer has fired by now but is stale; the second needs
	// another 100ms of quiet.
	assert.Empty(t, classifier.getTexts())

	clock.Advance(100 * time.Millisecond)
	require.Eventually(t, func() bool { return len(classifier.getTexts()) == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"second"}, classifier.getTexts())
}

func TestClose_CancelsPendingTimer(t *testing.T) {
	s, classifier, _, clock := newTestSession(t, nil)

	s.Submit("about to vanish")
	clock.BlockUntil(1)
	s.Close()

	clock.Advance(300 * time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, classifier.getTexts(), "cancelled timer must not invoke classify")
}

func TestSubmit_AfterCloseIsIgnored(t *testing.T) {
	s, classifier, _, clock := newTestSession(t, nil)
	s.Close()

	s.Submit("too late")
	clock.Advance(300 * time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, classifier.getTexts())
}

func TestClose_Idempotent(t *testing.T) {
	s, _, _, _ := newTestSession(t, nil)
	s.Close()
	s.Close()
}
