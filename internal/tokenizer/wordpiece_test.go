package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QualiaKit/QualiaKit/internal/vocab"
)

func mustVocab(t *testing.T, tokens ...string) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.Load(strings.NewReader(strings.Join(tokens, "\n")))
	require.NoError(t, err)
	return v
}

func baseVocab(t *testing.T, extra ...string) *vocab.Vocabulary {
	t.Helper()
	tokens := append([]string{"[PAD]", "[UNK]", "[CLS]", "[SEP]"}, extra...)
	return mustVocab(t, tokens...)
}

func TestEncode_ReferenceScenario(t *testing.T) {
	// Vocabulary {[PAD],[UNK],[CLS],[SEP],"the","a","test"} with ids 0-6.
	v := baseVocab(t, "the", "a", "test")
	enc := New(v, 16)

	ids, mask := enc.Encode("the")
	assert.Equal(t, []int{2, 4, 3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, ids)
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, mask)
}

func TestEncode_FixedLengthInvariant(t *testing.T) {
	v := baseVocab(t, "the", "a", "test", "##s")
	enc := New(v, 32)

	for _, text := range []string{
		"", "   ", "the", "a test", "the the the", "unknownword",
		strings.Repeat("test ", 50), "punctuation, everywhere!!!",
	} {
		ids, mask := enc.Encode(text)
		assert.Len(t, ids, 32, "text %q", text)
		assert.Len(t, mask, 32, "text %q", text)
	}
}

func TestEncode_EmptyAndWhitespaceOnly(t *testing.T) {
	v := baseVocab(t, "the")
	enc := New(v, 8)

	for _, text := range []string{"", "   ", "\t\n  "} {
		ids, mask := enc.Encode(text)
		assert.Equal(t, []int{2, 3, 0, 0, 0, 0, 0, 0}, ids, "text %q", text)
		assert.Equal(t, []int{1, 1, 0, 0, 0, 0, 0, 0}, mask, "text %q", text)
	}
}

func TestEncode_CaseInsensitive(t *testing.T) {
	v := baseVocab(t, "the", "test")
	enc := New(v, 16)

	lowerIDs, lowerMask := enc.Encode("the test")
	upperIDs, upperMask := enc.Encode("THE TEST")
	mixedIDs, mixedMask := enc.Encode("ThE TeSt")

	assert.Equal(t, lowerIDs, upperIDs)
	assert.Equal(t, lowerIDs, mixedIDs)
	assert.Equal(t, lowerMask, upperMask)
	assert.Equal(t, lowerMask, mixedMask)
}

func TestEncode_GreedyLongestMatch(t *testing.T) {
	// "testing" should split into "test" + "##ing", preferring the longest
	// prefix over shorter alternatives.
	v := baseVocab(t, "te", "test", "testing", "##st", "##ing")
	enc := New(v, 16)

	ids, _ := enc.Encode("testing")
	testingID, _ := v.Lookup("testing")
	assert.Equal(t, []int{v.ClsID(), testingID, v.SepID()}, ids[:3])

	ids, _ = enc.Encode("testings")
	// No "##s" piece: the whole word falls back to [UNK].
	assert.Equal(t, []int{v.ClsID(), v.UnkID(), v.SepID()}, ids[:3])
}

func TestEncode_ContinuationPieces(t *testing.T) {
	v := baseVocab(t, "play", "##ing", "##er")
	enc := New(v, 16)

	playID, _ := v.Lookup("play")
	ingID, _ := v.Lookup("##ing")
	erID, _ := v.Lookup("##er")

	ids, _ := enc.Encode("playing player")
	assert.Equal(t, []int{v.ClsID(), playID, ingID, playID, erID, v.SepID()}, ids[:6])
}

func TestEncode_UnknownWordAllOrNothing(t *testing.T) {
	// "playful" matches "play" but then has no piece for "ful"; the entire
	// word must become one [UNK], not play + [UNK].
	v := baseVocab(t, "play", "##ing")
	enc := New(v, 16)

	ids, mask := enc.Encode("playful")
	assert.Equal(t, []int{v.ClsID(), v.UnkID(), v.SepID()}, ids[:3])
	assert.Equal(t, 0, mask[3])
}

func TestEncode_PunctuationIsSeparator(t *testing.T) {
	v := baseVocab(t, "the", "test")
	enc := New(v, 16)

	plain, _ := enc.Encode("the test")
	punct, _ := enc.Encode("the, test!!!")
	assert.Equal(t, plain, punct)
}

func TestEncode_TruncationForcesTrailingSep(t *testing.T) {
	v := baseVocab(t, "test")
	enc := New(v, 8)
	testID, _ := v.Lookup("test")

	ids, mask := enc.Encode(strings.Repeat("test ", 20))

	assert.Equal(t, v.ClsID(), ids[0])
	for i := 1; i < 7; i++ {
		assert.Equal(t, testID, ids[i], "position %d", i)
	}
	assert.Equal(t, v.SepID(), ids[7])
	for i := range mask {
		assert.Equal(t, 1, mask[i], "position %d", i)
	}
}

func TestEncode_MaskContiguity(t *testing.T) {
	v := baseVocab(t, "the", "a", "test")
	enc := New(v, 24)

	for _, text := range []string{"", "the", "a test of unknown things", "the a test"} {
		_, mask := enc.Encode(text)
		seenZero := false
		for i, m := range mask {
			if m == 0 {
				seenZero = true
			} else {
				require.False(t, seenZero, "text %q: mask 1 after 0 at position %d", text, i)
			}
		}
	}
}

func TestNew_RejectsDegenerateMaxLength(t *testing.T) {
	v := baseVocab(t)
	assert.Equal(t, DefaultMaxLength, New(v, 0).MaxLength())
	assert.Equal(t, DefaultMaxLength, New(v, 1).MaxLength())
	assert.Equal(t, 2, New(v, 2).MaxLength())
}
