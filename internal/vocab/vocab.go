// Package vocab loads WordPiece vocabularies from newline-delimited token
// files and resolves the reserved special tokens.
package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	TokenPad = "[PAD]"
	TokenUnk = "[UNK]"
	TokenCls = "[CLS]"
	TokenSep = "[SEP]"

	// Fallback ids when a partial vocabulary file omits the token.
	fallbackPadID = 0
	fallbackUnkID = 100
)

var ErrEmpty = errors.New("vocabulary is empty")

// Vocabulary is an immutable token -> id mapping. Ids are assigned by
// position among the non-blank lines of the source (0-based); blank lines
// are skipped and do not shift subsequent ids.
type Vocabulary struct {
	tokenToID map[string]int

	padID int
	unkID int
	clsID int
	sepID int
}

// Load reads a vocabulary from r, one token per non-empty line.
func Load(r io.Reader) (*Vocabulary, error) {
	tokenToID := make(map[string]int, 32000)

	next := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tok := scanner.Text()
		if tok == "" {
			continue
		}
		if _, exists := tokenToID[tok]; exists {
			return nil, fmt.Errorf("duplicate token %q", tok)
		}
		tokenToID[tok] = next
		next++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	if len(tokenToID) == 0 {
		return nil, ErrEmpty
	}

	v := &Vocabulary{tokenToID: tokenToID}

	// [UNK] and [PAD] fall back to fixed ids so partial vocab files stay
	// operable; [CLS] and [SEP] are required to frame sequences.
	v.unkID = fallbackUnkID
	if id, ok := tokenToID[TokenUnk]; ok {
		v.unkID = id
	}
	v.padID = fallbackPadID
	if id, ok := tokenToID[TokenPad]; ok {
		v.padID = id
	}

	var ok bool
	if v.clsID, ok = tokenToID[TokenCls]; !ok {
		return nil, fmt.Errorf("missing required special token %s", TokenCls)
	}
	if v.sepID, ok = tokenToID[TokenSep]; !ok {
		return nil, fmt.Errorf("missing required special token %s", TokenSep)
	}

	return v, nil
}

// LoadFile opens path and loads the vocabulary from it.
func LoadFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	v, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary %s: %w", path, err)
	}
	return v, nil
}

// Lookup returns the id for token and whether it is present.
func (v *Vocabulary) Lookup(token string) (int, bool) {
	id, ok := v.tokenToID[token]
	return id, ok
}

// IDOrUnknown returns the id for token, or the [UNK] id if absent.
func (v *Vocabulary) IDOrUnknown(token string) int {
	if id, ok := v.tokenToID[token]; ok {
		return id
	}
	return v.unkID
}

// Size returns the number of tokens loaded.
func (v *Vocabulary) Size() int { return len(v.tokenToID) }

func (v *Vocabulary) PadID() int { return v.padID }
func (v *Vocabulary) UnkID() int { return v.unkID }
func (v *Vocabulary) ClsID() int { return v.clsID }
func (v *Vocabulary) SepID() int { return v.sepID }
