package sentiment

import (
	"encoding/json"
	"testing"

	"github.com/cognicore/feedlens/pkg/feedlens/lexicon"
)

func testClassifier(t *testing.T) *Classifier {
	t.Helper()
	lex, err := lexicon.New(
		[]string{"좋다", "만족", "친절"},
		[]string{"불만", "느리다", "오류"},
	)
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	return NewClassifier(lex)
}

func TestClassifyEmptyIsNeutral(t *testing.T) {
	c := testClassifier(t)
	if got := c.Classify(""); got != Neutral {
		t.Errorf("empty text: got %v, want Neutral", got)
	}
}

func TestClassifyPolarity(t *testing.T) {
	c := testClassifier(t)

	cases := []struct {
		text string
		want Label
	}{
		{"품질에 만족합니다", Positive},
		{"배송에 불만이 있습니다", Negative},
		{"만족스럽지만 불만도 있어요", Neutral}, // one hit each side: tie
		{"그냥 보통이에요", Neutral},        // no lexicon hits
	}

	for _, tc := range cases {
		if got := c.Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q): got %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestClassifyMatchesSubstrings(t *testing.T) {
	c := testClassifier(t)

	// "친절" matches inside the inflected "불친절한" even though the
	// sentiment of the whole word differs. Substring matching is the
	// documented (and intentionally simple) policy.
	pos, _ := c.Hits("직원이 불친절한 편이었어요")
	if pos != 1 {
		t.Errorf("expected substring match inside longer word, got %d positive hits", pos)
	}
}

func TestHitsCountTermsOnce(t *testing.T) {
	c := testClassifier(t)

	pos, neg := c.Hits("만족 만족 만족 불만")
	if pos != 1 || neg != 1 {
		t.Errorf("each term should count once: got pos=%d neg=%d", pos, neg)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	lex, err := lexicon.New([]string{"good"}, []string{"bad"})
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	c := NewClassifier(lex)

	if got := c.Classify("GOOD service"); got != Positive {
		t.Errorf("got %v, want Positive", got)
	}
}

func TestLabelText(t *testing.T) {
	for _, label := range All() {
		data, err := label.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", label, err)
		}
		var back Label
		if err := back.UnmarshalText(data); err != nil {
			t.Fatalf("unmarshal %q: %v", data, err)
		}
		if back != label {
			t.Errorf("roundtrip: got %v, want %v", back, label)
		}
	}

	var bad Label
	if err := bad.UnmarshalText([]byte("Fantastic")); err == nil {
		t.Error("unknown label name should fail to unmarshal")
	}
}

func TestLabelAsJSONMapKey(t *testing.T) {
	counts := map[Label]int{Positive: 2, Negative: 1, Neutral: 0}
	data, err := json.Marshal(counts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[Label]int
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[Positive] != 2 || back[Negative] != 1 || back[Neutral] != 0 {
		t.Errorf("roundtrip mismatch: %v", back)
	}
}
