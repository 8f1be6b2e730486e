// Package sentiment performs lexicon-based sentiment classification of short
// free-text feedback.
//
// The classifier lowercases the raw text and counts how many positive and
// negative lexicon terms occur anywhere in it as substrings. Matching is
// deliberately not token-bounded: a short trigger term can match inside a
// longer inflected word, which is what makes the heuristic usable for
// agglutinative text. The majority polarity wins; ties (including zero hits
// on both sides) and empty input classify Neutral.
//
// Classification is a pure function of (text, lexicon): no state, no side
// effects, safe for concurrent use by multiple goroutines.
package sentiment

import (
	"fmt"
	"strings"

	"github.com/cognicore/feedlens/pkg/feedlens/lexicon"
)

// Label represents the sentiment polarity of one record.
type Label int

const (
	Negative Label = -1
	Neutral  Label = 0
	Positive Label = 1
)

// labelNames maps Label values to their string names.
var labelNames = map[Label]string{
	Negative: "Negative",
	Neutral:  "Neutral",
	Positive: "Positive",
}

// labelFromName maps string names back to Label values.
var labelFromName = map[string]Label{
	"Negative": Negative,
	"Neutral":  Neutral,
	"Positive": Positive,
}

// All lists every label in a stable display order.
func All() []Label {
	return []Label{Positive, Negative, Neutral}
}

// String returns the name of the label.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// MarshalText encodes the label as its string name. Implementing
// encoding.TextMarshaler means labels serialize readably both as JSON values
// and as JSON object keys.
func (l Label) MarshalText() ([]byte, error) {
	name, ok := labelNames[l]
	if !ok {
		return nil, fmt.Errorf("sentiment: unknown label: %d", int(l))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a string name into a Label.
func (l *Label) UnmarshalText(data []byte) error {
	v, ok := labelFromName[string(data)]
	if !ok {
		return fmt.Errorf("sentiment: unknown label: %q", string(data))
	}
	*l = v
	return nil
}

// Classifier scores raw text against a fixed lexicon.
type Classifier struct {
	positive []string
	negative []string
}

// NewClassifier creates a classifier bound to the given lexicon. The term
// lists are copied out once so the classifier carries no reference back to
// the lexicon.
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{
		positive: lex.Positive(),
		negative: lex.Negative(),
	}
}

// Classify returns the sentiment label for text. Empty text is Neutral
// without any substring scan.
func (c *Classifier) Classify(text string) Label {
	if text == "" {
		return Neutral
	}
	pos, neg := c.Hits(text)
	switch {
	case pos > neg:
		return Positive
	case neg > pos:
		return Negative
	default:
		return Neutral
	}
}

// Hits returns how many positive and negative lexicon terms occur as
// substrings of the lowercased text. Each term counts at most once no matter
// how often it appears.
func (c *Classifier) Hits(text string) (pos, neg int) {
	lower := strings.ToLower(text)
	for _, term := range c.positive {
		if strings.Contains(lower, term) {
			pos++
		}
	}
	for _, term := range c.negative {
		if strings.Contains(lower, term) {
			neg++
		}
	}
	return pos, neg
}
