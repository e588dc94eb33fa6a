package render_test

import (
	"strings"
	"testing"

	"github.com/pyqlens/backend/internal/analysis"
	"github.com/pyqlens/backend/internal/domain/paper"
	"github.com/pyqlens/backend/internal/render"
)

func sampleTest() *analysis.MockTest {
	return &analysis.MockTest{
		ExamType:       paper.ExamJEEMain,
		Subject:        "physics",
		Difficulty:     analysis.DifficultyMixed,
		TotalQuestions: 2,
		Questions: []analysis.MockQuestion{
			{
				Number: 1,
				Type:   analysis.QuestionHighWeightage,
				Topic:  "waves",
				ReferencePYQs: []analysis.ReferencePYQ{
					{ID: "a", Year: 2020, Title: "Waves on a string"},
				},
				Question: "Find the fundamental frequency.",
				Hint:     "Use v = sqrt(T/mu).",
			},
			{
				Number:        2,
				Type:          analysis.QuestionRandom,
				ReferencePYQs: []analysis.ReferencePYQ{{ID: "b", Year: 2019, Title: "Kinematics basics"}},
			},
		},
		BasedOn: analysis.BasedOn{
			TotalPYQsAnalyzed:   12,
			HighWeightageTopics: []string{"waves"},
		},
	}
}

func TestMarkdown(t *testing.T) {
	out := render.Markdown(sampleTest())

	for _, want := range []string{
		"# JEE MAIN Mock Test",
		"## Q1. High-weightage topic: waves",
		"Find the fundamental frequency.",
		"> Hint: Use v = sqrt(T/mu).",
		"- Waves on a string (2020)",
		"## Q2. Random pick",
		"Practice a question modelled on:",
		"Based on 12 papers. Topics: waves.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected markdown to contain %q\n%s", want, out)
		}
	}
}

func TestMarkdown_NoData(t *testing.T) {
	out := render.Markdown(&analysis.MockTest{ExamType: paper.ExamNEET, Subject: "All", NoData: true})

	if !strings.Contains(out, "No previous-year papers") {
		t.Errorf("expected no-data notice, got %q", out)
	}
}

func TestHTML(t *testing.T) {
	out, err := render.HTML(sampleTest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"<h1>JEE MAIN Mock Test</h1>", "<h2>Q1. High-weightage topic: waves</h2>", "<li>Waves on a string (2020)</li>", "<blockquote>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected html to contain %q\n%s", want, out)
		}
	}
}
