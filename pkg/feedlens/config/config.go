package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/feedlens/pkg/feedlens/lexicon"
	"github.com/cognicore/feedlens/pkg/feedlens/stoplist"
)

// LexiconFile is the on-disk shape of a sentiment lexicon.
//
// Expected format:
//
//	positive: [좋다, 만족, 친절]
//	negative: [불만, 느리다, 오류]
type LexiconFile struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// LoadLexicon loads a sentiment lexicon from a YAML file. A term listed in
// both polarities is rejected.
func LoadLexicon(path string) (*lexicon.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}

	var file LexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	lex, err := lexicon.New(file.Positive, file.Negative)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// StoplistFile is the on-disk shape of a stopword list.
type StoplistFile struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*stoplist.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stoplist %s: %w", path, err)
	}

	var file StoplistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse stoplist %s: %w", path, err)
	}

	return stoplist.New(file.Terms), nil
}
