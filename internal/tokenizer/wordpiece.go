// Package tokenizer implements greedy longest-match-first WordPiece
// tokenization against a fixed vocabulary, producing the fixed-length id and
// attention-mask sequences the inference boundary expects.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/QualiaKit/QualiaKit/internal/vocab"
)

// DefaultMaxLength is the sequence length used when none is configured.
const DefaultMaxLength = 128

const continuation = "##"

// Encoder turns free-form text into a fixed-length id sequence plus an
// attention mask. It is immutable after construction and safe for concurrent
// use.
type Encoder struct {
	vocab  *vocab.Vocabulary
	maxLen int
}

// New creates an Encoder over v. maxLen values below 2 (no room for the
// framing tokens) fall back to DefaultMaxLength.
func New(v *vocab.Vocabulary, maxLen int) *Encoder {
	if maxLen < 2 {
		maxLen = DefaultMaxLength
	}
	return &Encoder{vocab: v, maxLen: maxLen}
}

// MaxLength returns the fixed sequence length.
func (e *Encoder) MaxLength() int { return e.maxLen }

// Encode tokenizes text. The returned slices always satisfy
// len(ids) == len(mask) == MaxLength(); mask is 1 for real tokens (including
// [CLS] and [SEP]) and 0 for padding. Encode never fails: words with no
// vocabulary match become a single [UNK].
func (e *Encoder) Encode(text string) (ids, mask []int) {
	pieces := []int{e.vocab.ClsID()}
	for _, word := range basicTokenize(text) {
		pieces = append(pieces, e.wordPiece(word)...)
	}
	pieces = append(pieces, e.vocab.SepID())

	if len(pieces) > e.maxLen {
		// Truncate content, keeping [CLS] and forcing a trailing [SEP].
		pieces = append(pieces[:e.maxLen-1], e.vocab.SepID())
	}

	ids = make([]int, e.maxLen)
	mask = make([]int, e.maxLen)
	for i := range ids {
		if i < len(pieces) {
			ids[i] = pieces[i]
			mask[i] = 1
		} else {
			ids[i] = e.vocab.PadID()
		}
	}
	return ids, mask
}

// basicTokenize lowercases text and splits it on Unicode whitespace and
// punctuation, dropping the separators and any empty fragments.
func basicTokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
}

// wordPiece splits a single word by repeatedly taking the longest vocabulary
// prefix of the remaining runes, prefixing non-initial pieces with "##". If
// at any point no prefix of any length matches, the whole word collapses to
// one [UNK] - partial pieces already found are discarded. This all-or-nothing
// fallback mirrors the neural tokenizer's behavior exactly.
func (e *Encoder) wordPiece(word string) []int {
	runes := []rune(word)
	var pieces []int

	start := 0
	for start < len(runes) {
		end := len(runes)
		matched := -1
		for end > start {
			piece := string(runes[start:end])
			if start > 0 {
				piece = continuation + piece
			}
			if id, ok := e.vocab.Lookup(piece); ok {
				matched = id
				break
			}
			end--
		}
		if matched < 0 {
			return []int{e.vocab.UnkID()}
		}
		pieces = append(pieces, matched)
		start = end
	}
	return pieces
}
