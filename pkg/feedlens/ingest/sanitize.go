package ingest

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Clean prepares raw feedback text for analysis. It recomposes the text to
// NFC, since feedback exported from macOS tools often arrives with decomposed
// Hangul jamo that the syllable-range tokenizer would otherwise discard, and
// strips HTML markup when any is present.
func Clean(text string) string {
	text = norm.NFC.String(text)
	if !strings.ContainsAny(text, "<&") {
		return text
	}
	return strings.TrimSpace(stripMarkup(text))
}

// stripMarkup walks the HTML token stream and keeps only text content,
// skipping script and style bodies. Plain text containing a stray '<' or '&'
// passes through as text tokens with entities unescaped.
func stripMarkup(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return collapseSpaces(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.Write(z.Text())
		}
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
