// Package analysis derives exam patterns from previous-year question papers:
// repeated questions, chapter importance, topic weightage trends and
// synthetic mock tests.
//
// Every operation is a pure computation over the records passed in. The
// Analyzer keeps no state between calls and may be shared by goroutines.
package analysis

import (
	"math/rand"
	"strconv"

	"github.com/pyqlens/backend/internal/domain/paper"
)

// NoRecordsMessage is reported on results computed from an empty input.
const NoRecordsMessage = "no records found"

// RandSource supplies random permutations for mock-test sampling.
// *rand.Rand satisfies it.
type RandSource interface {
	Perm(n int) []int
}

// globalRand uses the package-level math/rand source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) Perm(n int) []int { return rand.Perm(n) }

type Analyzer struct {
	extractor   TagExtractor
	patternSize int
	random      RandSource
}

type Option func(*Analyzer)

// WithRandSource fixes the source used for the random mock-test pass.
// The source must not be shared between goroutines unless it is itself
// goroutine safe.
func WithRandSource(r RandSource) Option {
	return func(a *Analyzer) { a.random = r }
}

// WithPatternSize sets how many leading keywords form a pattern key.
func WithPatternSize(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.patternSize = n
		}
	}
}

// New creates an Analyzer over the given extractor.
func New(extractor TagExtractor, opts ...Option) *Analyzer {
	a := &Analyzer{
		extractor:   extractor,
		patternSize: 3,
		random:      globalRand{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewDefault builds an Analyzer over the built-in vocabulary.
func NewDefault(opts ...Option) *Analyzer {
	a, err := NewFromVocabulary(DefaultVocabulary(), opts...)
	if err != nil {
		panic("analysis: default vocabulary does not compile: " + err.Error())
	}
	return a
}

// NewFromVocabulary builds an Analyzer whose heuristics and pattern size
// come from v.
func NewFromVocabulary(v *Vocabulary, opts ...Option) (*Analyzer, error) {
	e, err := NewHeuristicExtractor(v)
	if err != nil {
		return nil, err
	}
	return New(e, append([]Option{WithPatternSize(v.PatternKeywords)}, opts...)...), nil
}

// Summary describes the filter a full analysis ran with.
type Summary struct {
	ExamType      paper.ExamType `json:"exam_type"`
	Subject       string         `json:"subject"`
	YearsAnalyzed []int          `json:"years_analyzed,omitempty"`
	AllYears      bool           `json:"all_years"`
}

// FullAnalysis bundles the three pattern reports for one filter.
type FullAnalysis struct {
	RepeatedQuestions   *RepeatedQuestions   `json:"repeated_questions"`
	ImportantChapters   *ChapterRanking      `json:"important_chapters"`
	WeightagePrediction *WeightagePrediction `json:"weightage_prediction"`
	Summary             Summary              `json:"summary"`
}

// Full runs repeated-question detection, chapter ranking and weightage
// prediction over the same records.
func (a *Analyzer) Full(records []*paper.Paper, filter paper.Filter) *FullAnalysis {
	return &FullAnalysis{
		RepeatedQuestions:   a.RepeatedQuestions(records),
		ImportantChapters:   a.ImportantChapters(records),
		WeightagePrediction: a.PredictWeightage(records),
		Summary: Summary{
			ExamType:      filter.ExamType,
			Subject:       filter.SubjectLabel(),
			YearsAnalyzed: filter.Years,
			AllYears:      len(filter.Years) == 0,
		},
	}
}

// round2 rounds to two decimals, breaking exact binary ties to even.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
