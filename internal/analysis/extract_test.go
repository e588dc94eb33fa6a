package analysis_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pyqlens/backend/internal/analysis"
)

func newExtractor(t *testing.T) *analysis.HeuristicExtractor {
	t.Helper()
	e, err := analysis.NewHeuristicExtractor(analysis.DefaultVocabulary())
	if err != nil {
		t.Fatalf("failed to build extractor: %v", err)
	}
	return e
}

func TestKeywords(t *testing.T) {
	e := newExtractor(t)

	got := e.Keywords("The Motion of a Body in the Field of Force, 2020")
	want := []string{"motion", "body", "field", "force", "2020"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestKeywords_DropsShortAndStopWords(t *testing.T) {
	e := newExtractor(t)

	if got := e.Keywords("a an the and of it is"); len(got) != 0 {
		t.Errorf("expected no keywords, got %v", got)
	}
}

func TestChapters(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		title string
		want  []string
	}{
		{"NEET Physics Waves Chapter 2020", []string{"2020", "physics waves"}},
		{"Boards Ch. 5 revision", []string{"5"}},
		{"Ray Optics", []string{"ray optics"}},
		{"Électro waves", []string{"électro waves"}},
		{"Laws of Motion and Force", []string{"motion", "force"}},
		{"Current Electricity Current Electricity", []string{"current electricity"}},
		{"NEET Chemistry Organic 2021", []string{"general"}},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := e.Chapters(tt.title)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTopics(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		title string
		want  []string
	}{
		{"NEET Physics Waves Chapter 2020", []string{"waves"}},
		{"Electric circuit in a magnetic flux", []string{"electricity", "magnetism"}},
		{"Enzyme kinetics", []string{"biochemistry"}},
		{"Probability and statistics", []string{"general"}},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := e.Topics(tt.title)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPatternKey(t *testing.T) {
	key := analysis.PatternKey([]string{"waves", "physics", "neet", "chapter"}, 3)
	if key != "neet physics waves" {
		t.Errorf("expected %q, got %q", "neet physics waves", key)
	}

	if key := analysis.PatternKey(nil, 3); key != "" {
		t.Errorf("expected empty key, got %q", key)
	}
}

func TestPatternKey_DoesNotReorderInput(t *testing.T) {
	kw := []string{"waves", "physics", "neet"}
	analysis.PatternKey(kw, 3)
	if kw[0] != "waves" {
		t.Errorf("input slice was modified: %v", kw)
	}
}

func TestParseVocabulary_OverridesDefaults(t *testing.T) {
	v, err := analysis.ParseVocabulary([]byte(`
fallback_tag: misc
topics:
  - name: calculus
    keywords: [derivative, integral]
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v.FallbackTag != "misc" {
		t.Errorf("expected fallback misc, got %q", v.FallbackTag)
	}
	if len(v.Topics) != 1 || v.Topics[0].Name != "calculus" {
		t.Errorf("expected topics to be replaced, got %+v", v.Topics)
	}
	if len(v.StopWords) == 0 {
		t.Error("expected default stop words to be kept")
	}

	e, err := analysis.NewHeuristicExtractor(v)
	if err != nil {
		t.Fatalf("failed to build extractor: %v", err)
	}
	if got := e.Topics("Definite integral"); !reflect.DeepEqual(got, []string{"calculus"}) {
		t.Errorf("expected calculus, got %v", got)
	}
	if got := e.Topics("Waves"); !reflect.DeepEqual(got, []string{"misc"}) {
		t.Errorf("expected fallback misc, got %v", got)
	}
}

func TestParseVocabulary_Invalid(t *testing.T) {
	_, err := analysis.ParseVocabulary([]byte(`
topics:
  - name: optics
    keywords: [lens]
  - name: optics
    keywords: [mirror]
`))
	if err == nil || !strings.Contains(err.Error(), "duplicate topic") {
		t.Errorf("expected duplicate topic error, got %v", err)
	}

	v := analysis.DefaultVocabulary()
	v.ChapterPatterns = append(v.ChapterPatterns, "(unclosed")
	if _, err := analysis.NewHeuristicExtractor(v); err == nil {
		t.Error("expected error for invalid chapter pattern")
	}
}
