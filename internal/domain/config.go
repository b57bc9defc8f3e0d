package domain

import "fmt"

// Fallback keyword lists used when no keywords are supplied externally.
// Matching is case-insensitive substring matching, so entries double as
// stems ("attack" also matches "attacked").
var (
	DefaultIntenseKeywords = []string{
		"attack", "fight", "explosion", "scream", "rage", "fury",
		"атака", "бой", "взрыв", "крик", "ярость",
	}
	DefaultMysteriousKeywords = []string{
		"mystery", "secret", "shadow", "whisper", "ghost",
		"тайна", "секрет", "тень", "шепот", "призрак",
	}
)

// FeedbackConfig controls how classification results are turned into haptic
// output. It is an immutable value: the owning client replaces it wholesale
// on reconfiguration, and the dispatcher borrows it read-only.
type FeedbackConfig struct {
	AutoPlayHaptics    bool
	EnableHeartbeat    bool
	Intensity          float64
	DelaySeconds       float64
	IntenseKeywords    []string
	MysteriousKeywords []string
}

// DefaultFeedbackConfig returns the configuration used when nothing is
// supplied externally.
func DefaultFeedbackConfig() FeedbackConfig {
	return FeedbackConfig{
		AutoPlayHaptics:    true,
		EnableHeartbeat:    true,
		Intensity:          1.0,
		DelaySeconds:       0,
		IntenseKeywords:    DefaultIntenseKeywords,
		MysteriousKeywords: DefaultMysteriousKeywords,
	}
}

// Validate checks value ranges. Keyword lists may be empty; empty lists
// simply disable the corresponding rule.
func (c FeedbackConfig) Validate() error {
	if c.Intensity < 0 || c.Intensity > 1 {
		return fmt.Errorf("intensity must be in [0, 1], got %g", c.Intensity)
	}
	if c.DelaySeconds < 0 {
		return fmt.Errorf("delay must be >= 0 seconds, got %g", c.DelaySeconds)
	}
	return nil
}
