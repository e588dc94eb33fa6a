package analysis

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// Vocabulary is the static word lists and patterns the heuristic extractor
// works from. It is read once at start-up and never mutated afterwards.
type Vocabulary struct {
	FallbackTag      string   `yaml:"fallback_tag"`
	MinKeywordLength int      `yaml:"min_keyword_length"`
	PatternKeywords  int      `yaml:"pattern_keywords"`
	StopWords        []string `yaml:"stop_words"`
	ChapterPatterns  []string `yaml:"chapter_patterns"`
	CommonChapters   []string `yaml:"common_chapters"`
	Topics           []Topic  `yaml:"topics"`
}

// Topic is one topic category and the substrings that signal it.
type Topic struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// DefaultVocabulary returns the built-in physics/chemistry/biology vocabulary.
func DefaultVocabulary() *Vocabulary {
	v, err := ParseVocabulary(defaultVocabularyYAML)
	if err != nil {
		panic("analysis: embedded vocabulary is invalid: " + err.Error())
	}
	return v
}

// LoadVocabulary reads a vocabulary file. Fields missing from the file keep
// their built-in values.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes YAML on top of the built-in defaults.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	v := &Vocabulary{}
	if err := yaml.Unmarshal(defaultVocabularyYAML, v); err != nil {
		return nil, fmt.Errorf("parsing default vocabulary: %w", err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vocabulary) validate() error {
	if v.FallbackTag == "" {
		return errors.New("vocabulary: fallback_tag cannot be empty")
	}
	if v.PatternKeywords < 1 {
		return fmt.Errorf("vocabulary: pattern_keywords must be positive, got %d", v.PatternKeywords)
	}
	seen := make(map[string]bool, len(v.Topics))
	for _, t := range v.Topics {
		if t.Name == "" {
			return errors.New("vocabulary: topic with empty name")
		}
		if seen[t.Name] {
			return fmt.Errorf("vocabulary: duplicate topic %q", t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}
