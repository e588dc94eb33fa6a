// Package render turns a mock test into a printable paper.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/pyqlens/backend/internal/analysis"
	"github.com/pyqlens/backend/internal/domain/paper"
)

var md = goldmark.New()

var typeLabels = map[analysis.QuestionType]string{
	analysis.QuestionHighWeightage:    "High-weightage topic",
	analysis.QuestionImportantChapter: "Important chapter",
	analysis.QuestionRandom:           "Random pick",
}

// Markdown renders the test as a numbered question list with the source
// papers under each question.
func Markdown(t *analysis.MockTest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Mock Test\n\n", examTitle(t.ExamType))
	fmt.Fprintf(&b, "**Subject:** %s · **Difficulty:** %s · **Questions:** %d\n\n",
		t.Subject, t.Difficulty, t.TotalQuestions)

	if t.NoData {
		b.WriteString("_No previous-year papers are available for this selection._\n")
		return b.String()
	}

	for _, q := range t.Questions {
		heading := typeLabels[q.Type]
		if focus := q.Subject(); focus != "" {
			heading += ": " + focus
		}
		fmt.Fprintf(&b, "## Q%d. %s\n\n", q.Number, heading)

		if q.Question != "" {
			b.WriteString(q.Question + "\n\n")
			if q.Hint != "" {
				fmt.Fprintf(&b, "> Hint: %s\n\n", q.Hint)
			}
		} else {
			b.WriteString("Practice a question modelled on:\n\n")
		}
		for _, ref := range q.ReferencePYQs {
			fmt.Fprintf(&b, "- %s (%d)\n", ref.Title, ref.Year)
		}
		b.WriteString("\n")
	}

	if len(t.BasedOn.ImportantChapters) > 0 || len(t.BasedOn.HighWeightageTopics) > 0 {
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "Based on %d papers.", t.BasedOn.TotalPYQsAnalyzed)
		if len(t.BasedOn.HighWeightageTopics) > 0 {
			fmt.Fprintf(&b, " Topics: %s.", strings.Join(t.BasedOn.HighWeightageTopics, ", "))
		}
		if len(t.BasedOn.ImportantChapters) > 0 {
			fmt.Fprintf(&b, " Chapters: %s.", strings.Join(t.BasedOn.ImportantChapters, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// HTML renders the Markdown form through goldmark.
func HTML(t *analysis.MockTest) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(t)), &buf); err != nil {
		return "", fmt.Errorf("rendering mock test: %w", err)
	}
	return buf.String(), nil
}

func examTitle(e paper.ExamType) string {
	return strings.ToUpper(strings.ReplaceAll(string(e), "_", " "))
}
