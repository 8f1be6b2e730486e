package sentiment

import (
	"testing"

	"github.com/cognicore/feedlens/pkg/feedlens/lexicon"
)

func FuzzClassify(f *testing.F) {
	f.Add("제품이 좋습니다")
	f.Add("배송이 느려서 불만입니다")
	f.Add("")
	f.Add("123 456")
	f.Add("만족 불만 만족")

	c := NewClassifier(lexicon.Default())

	f.Fuzz(func(t *testing.T, s string) {
		label := c.Classify(s)

		switch label {
		case Negative, Neutral, Positive:
			// ok
		default:
			t.Errorf("invalid label: %d", int(label))
		}

		pos, neg := c.Hits(s)
		if pos < 0 || neg < 0 {
			t.Errorf("negative hit counts: pos=%d neg=%d", pos, neg)
		}

		// Decision rule consistency.
		switch {
		case pos > neg && label != Positive:
			t.Errorf("pos=%d neg=%d but label %v", pos, neg, label)
		case neg > pos && label != Negative:
			t.Errorf("pos=%d neg=%d but label %v", pos, neg, label)
		case pos == neg && s != "" && label != Neutral:
			t.Errorf("tie pos=%d neg=%d but label %v", pos, neg, label)
		}
	})
}
