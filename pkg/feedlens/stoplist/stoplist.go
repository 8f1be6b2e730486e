package stoplist

import "strings"

// Set is a fixed collection of short grammatical particles excluded from
// keyword extraction. Like the lexicon, a Set never mutates after load.
type Set struct {
	stops map[string]struct{}
}

// New creates a stopword set from the given terms, lowercased and trimmed.
func New(terms []string) *Set {
	stops := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		stops[term] = struct{}{}
	}
	return &Set{stops: stops}
}

// Default returns the built-in Korean particle stoplist.
func Default() *Set {
	return New([]string{
		"그", "이", "저", "것", "들", "의", "가", "을", "를", "에", "와", "과",
		"로", "으로", "는", "은", "도", "만", "부터", "까지", "에서", "에게",
		"한테", "께", "서",
	})
}

// IsStop checks if a token is a stopword.
func (s *Set) IsStop(token string) bool {
	_, ok := s.stops[token]
	return ok
}

// Len returns the number of stopwords in the set.
func (s *Set) Len() int {
	return len(s.stops)
}

// All returns all stopwords in unspecified order.
func (s *Set) All() []string {
	result := make([]string, 0, len(s.stops))
	for term := range s.stops {
		result = append(result, term)
	}
	return result
}
