package drafter

import "context"

// Request describes one mock-test slot to write a question for.
type Request struct {
	ExamType   string
	Subject    string // "All" when the test spans subjects
	Difficulty string // easy, medium, hard or mixed
	Focus      string // topic or chapter name; empty for random slots
	References []string
}

// Draft is the question text produced for a slot.
type Draft struct {
	Question string `json:"question"`
	Hint     string `json:"hint"`
}

// Drafter writes practice questions modelled on previous-year papers.
// Implementations may call an LLM or return canned drafts (for tests).
type Drafter interface {
	Draft(ctx context.Context, req Request) (*Draft, error)
}
