package ingest

import (
	"github.com/cognicore/feedlens/pkg/feedlens/stoplist"
)

// Tokenizer handles text normalization and keyword extraction.
type Tokenizer struct {
	stops *stoplist.Set
}

// NewTokenizer creates a tokenizer with the given stopword set. A nil set
// means no stopword filtering.
func NewTokenizer(stops *stoplist.Set) *Tokenizer {
	if stops == nil {
		stops = stoplist.New(nil)
	}
	return &Tokenizer{stops: stops}
}

// Normalize splits text into lowercase whitespace tokens. Every rune that is
// not a Hangul syllable, Latin letter, or ASCII digit acts as a separator;
// empty fragments are dropped. Empty input yields an empty slice. Normalize
// never fails.
func (t *Tokenizer) Normalize(text string) []string {
	var tokens []string
	var current []rune

	for _, r := range text {
		if keepRune(r) {
			current = append(current, lowerRune(r))
		} else if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		tokens = append(tokens, string(current))
	}

	return tokens
}

// ExtractKeywords normalizes text and filters out single-rune tokens and
// stopwords. Relative order is preserved and duplicates are retained, since
// repeated keywords are meaningful to frequency counting.
func (t *Tokenizer) ExtractKeywords(text string) []string {
	var keywords []string
	for _, tok := range t.Normalize(text) {
		if runeLen(tok) <= 1 {
			continue
		}
		if t.stops.IsStop(tok) {
			continue
		}
		keywords = append(keywords, tok)
	}
	return keywords
}

// keepRune reports whether a rune survives normalization. Hangul is matched
// on the precomposed syllable block only; decomposed jamo sequences are
// expected to be recomposed by Clean before tokenization.
func keepRune(r rune) bool {
	switch {
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	return false
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
