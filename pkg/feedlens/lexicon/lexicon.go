package lexicon

import (
	"fmt"
	"strings"

	"github.com/cognicore/feedlens/pkg/feedlens/internalerr"
)

// Lexicon holds the positive and negative trigger terms used for sentiment
// classification. The two sets are disjoint, lowercase, and immutable after
// construction: a Lexicon is loaded once at startup and shared read-only for
// the lifetime of a run.
type Lexicon struct {
	positive []string
	negative []string

	positiveSet map[string]struct{}
	negativeSet map[string]struct{}
}

// New builds a lexicon from positive and negative term lists. Terms are
// lowercased and deduplicated; empty terms are dropped. A term appearing in
// both lists is a configuration error.
func New(positive, negative []string) (*Lexicon, error) {
	lex := &Lexicon{
		positiveSet: make(map[string]struct{}, len(positive)),
		negativeSet: make(map[string]struct{}, len(negative)),
	}

	for _, term := range positive {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, ok := lex.positiveSet[term]; ok {
			continue
		}
		lex.positiveSet[term] = struct{}{}
		lex.positive = append(lex.positive, term)
	}

	for _, term := range negative {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, ok := lex.positiveSet[term]; ok {
			return nil, fmt.Errorf("%w: term %q is both positive and negative", internalerr.ErrInvalidConfig, term)
		}
		if _, ok := lex.negativeSet[term]; ok {
			continue
		}
		lex.negativeSet[term] = struct{}{}
		lex.negative = append(lex.negative, term)
	}

	return lex, nil
}

// MustNew is New for term lists known to be valid, such as the built-in
// defaults. It panics on configuration errors.
func MustNew(positive, negative []string) *Lexicon {
	lex, err := New(positive, negative)
	if err != nil {
		panic(err)
	}
	return lex
}

// Default returns the built-in Korean consumer-feedback lexicon.
func Default() *Lexicon {
	return MustNew(
		[]string{
			"좋다", "좋은", "만족", "훌륭", "최고", "감사", "추천", "훌륭한",
			"빠르다", "빠른", "편리", "편한", "친절", "도움", "해결", "완벽",
		},
		[]string{
			"나쁘다", "나쁜", "불만", "문제", "느리다", "느린", "불편", "어려움",
			"실망", "화나다", "짜증", "복잡", "오류", "오래", "지연", "불친절",
		},
	)
}

// Positive returns the positive terms in load order. The returned slice is a
// copy; mutating it does not affect the lexicon.
func (l *Lexicon) Positive() []string {
	out := make([]string, len(l.positive))
	copy(out, l.positive)
	return out
}

// Negative returns the negative terms in load order, copied like Positive.
func (l *Lexicon) Negative() []string {
	out := make([]string, len(l.negative))
	copy(out, l.negative)
	return out
}

// IsPositive reports whether term is an exact member of the positive set.
func (l *Lexicon) IsPositive(term string) bool {
	_, ok := l.positiveSet[strings.ToLower(term)]
	return ok
}

// IsNegative reports whether term is an exact member of the negative set.
func (l *Lexicon) IsNegative(term string) bool {
	_, ok := l.negativeSet[strings.ToLower(term)]
	return ok
}

// Stats returns statistics about the lexicon contents.
func (l *Lexicon) Stats() Stats {
	return Stats{
		PositiveTerms: len(l.positive),
		NegativeTerms: len(l.negative),
	}
}

// Stats holds statistics about lexicon contents.
type Stats struct {
	PositiveTerms int
	NegativeTerms int
}
