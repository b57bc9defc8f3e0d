package domain

import "fmt"

// Category is the terminal classification result for a piece of text.
// It is a closed set with no ordering.
type Category string

const (
	CategoryNeutral    Category = "neutral"
	CategoryPositive   Category = "positive"
	CategoryNegative   Category = "negative"
	CategoryIntense    Category = "intense"
	CategoryMysterious Category = "mysterious"
)

// ParseCategory converts an external string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryNeutral, CategoryPositive, CategoryNegative, CategoryIntense, CategoryMysterious:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown emotion category %q", s)
}

// Classification pairs the emotion category with the polarity score that
// produced it. Score is always in [-1, 1]; for rule-driven categories
// (stop-word, keyword) it is a fixed value rather than a computed one.
type Classification struct {
	Category Category `json:"category"`
	Score    float64  `json:"score"`
}
