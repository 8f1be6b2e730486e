package config

import (
	"fmt"

	"github.com/cognicore/feedlens/pkg/feedlens/ingest"
	"github.com/cognicore/feedlens/pkg/feedlens/lexicon"
	"github.com/cognicore/feedlens/pkg/feedlens/sentiment"
	"github.com/cognicore/feedlens/pkg/feedlens/stoplist"
)

// Loader loads configuration files and constructs analysis components.
// Empty paths fall back to the built-in Korean defaults.
type Loader struct {
	LexiconPath  string
	StoplistPath string
}

// Components holds the loaded, ready-to-use analysis components.
type Components struct {
	Lexicon    *lexicon.Lexicon
	Tokenizer  *ingest.Tokenizer
	Classifier *sentiment.Classifier
}

// Load reads the configuration files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.LexiconPath != "" {
		lex, err := LoadLexicon(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	} else {
		comp.Lexicon = lexicon.Default()
	}

	if l.StoplistPath != "" {
		stops, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Tokenizer = ingest.NewTokenizer(stops)
	} else {
		comp.Tokenizer = ingest.NewTokenizer(stoplist.Default())
	}

	comp.Classifier = sentiment.NewClassifier(comp.Lexicon)
	return comp, nil
}
