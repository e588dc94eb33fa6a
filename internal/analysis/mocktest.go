package analysis

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/pyqlens/backend/internal/domain/paper"
)

const (
	DefaultQuestionCount = 30

	// Chapters and topics that feed the mock test.
	mockTopChapters    = 5
	mockTopTopics      = 10
	basedOnTopics      = 5
	referencesPerEntry = 2
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyMixed  Difficulty = "mixed"
)

var ErrInvalidDifficulty = errors.New("invalid difficulty: must be easy, medium, hard or mixed")

// ParseDifficulty maps "" to mixed and rejects unknown values.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return DifficultyMixed, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyMixed:
		return d, nil
	default:
		return "", ErrInvalidDifficulty
	}
}

type QuestionType string

const (
	QuestionHighWeightage    QuestionType = "high_weightage"
	QuestionImportantChapter QuestionType = "important_chapter"
	QuestionRandom           QuestionType = "random"
)

// ReferencePYQ points back to a source paper.
type ReferencePYQ struct {
	ID    string `json:"id"`
	Year  int    `json:"year"`
	Title string `json:"title"`
}

// MockQuestion is one slot of a synthesized test. Question and Hint are
// only filled when the slot has been drafted.
type MockQuestion struct {
	Number        int            `json:"number"`
	Type          QuestionType   `json:"type"`
	Topic         string         `json:"topic,omitempty"`
	Chapter       string         `json:"chapter,omitempty"`
	ReferencePYQs []ReferencePYQ `json:"reference_pyqs"`
	Question      string         `json:"question,omitempty"`
	Hint          string         `json:"hint,omitempty"`
}

// Subject returns the topic or chapter the slot was chosen for.
func (q MockQuestion) Subject() string {
	if q.Topic != "" {
		return q.Topic
	}
	return q.Chapter
}

type Distribution struct {
	HighWeightage     int `json:"high_weightage"`
	ImportantChapters int `json:"important_chapters"`
	Random            int `json:"random"`
}

type BasedOn struct {
	TotalPYQsAnalyzed   int      `json:"total_pyqs_analyzed"`
	ImportantChapters   []string `json:"important_chapters"`
	HighWeightageTopics []string `json:"high_weightage_topics"`
}

type MockTest struct {
	NoData         bool           `json:"no_data"`
	Message        string         `json:"message,omitempty"`
	ExamType       paper.ExamType `json:"exam_type"`
	Subject        string         `json:"subject"`
	Difficulty     Difficulty     `json:"difficulty"`
	TotalQuestions int            `json:"total_questions"`
	Questions      []MockQuestion `json:"questions"`
	Distribution   Distribution   `json:"distribution"`
	BasedOn        BasedOn        `json:"based_on"`
}

type MockTestOptions struct {
	NumQuestions int
	Difficulty   Difficulty
	// Seed, when set, makes the random pass reproducible for this call.
	Seed *int64
}

// MockTest assembles a synthetic test from the records: 60% of the slots
// from high-weightage topics, 30% from important chapters, and the rest by
// sampling records without replacement. The test never has more slots than
// there are records.
func (a *Analyzer) MockTest(records []*paper.Paper, filter paper.Filter, opts MockTestOptions) *MockTest {
	n := opts.NumQuestions
	if n <= 0 {
		n = DefaultQuestionCount
	}
	difficulty := opts.Difficulty
	if difficulty == "" {
		difficulty = DifficultyMixed
	}

	result := &MockTest{
		ExamType:   filter.ExamType,
		Subject:    filter.SubjectLabel(),
		Difficulty: difficulty,
		Questions:  []MockQuestion{},
		BasedOn: BasedOn{
			ImportantChapters:   []string{},
			HighWeightageTopics: []string{},
		},
	}
	if len(records) == 0 {
		result.NoData = true
		result.Message = NoRecordsMessage
		return result
	}

	var chapters []string
	for i, ch := range a.ImportantChapters(records).Top10Chapters {
		if i == mockTopChapters {
			break
		}
		chapters = append(chapters, ch.Chapter)
	}
	topics := a.PredictWeightage(records).HighWeightageTopics
	if len(topics) > mockTopTopics {
		topics = topics[:mockTopTopics]
	}

	target := n
	if len(records) < target {
		target = len(records)
	}
	highQuota := n * 6 / 10
	chapterQuota := n * 3 / 10

	var selected []MockQuestion
	for i, topic := range topics {
		if i == highQuota {
			break
		}
		if refs := matchingRefs(records, topic); len(refs) > 0 {
			selected = append(selected, MockQuestion{Type: QuestionHighWeightage, Topic: topic, ReferencePYQs: refs})
		}
	}
	for i, ch := range chapters {
		if i == chapterQuota {
			break
		}
		if refs := matchingRefs(records, ch); len(refs) > 0 {
			selected = append(selected, MockQuestion{Type: QuestionImportantChapter, Chapter: ch, ReferencePYQs: refs})
		}
	}

	remaining := target - len(selected)
	if remaining > 0 {
		random := a.random
		if opts.Seed != nil {
			random = rand.New(rand.NewSource(*opts.Seed))
		}
		for _, idx := range random.Perm(len(records))[:remaining] {
			r := records[idx]
			selected = append(selected, MockQuestion{
				Type:          QuestionRandom,
				ReferencePYQs: []ReferencePYQ{ref(r)},
			})
		}
	} else {
		remaining = 0
	}

	if len(selected) > target {
		selected = selected[:target]
	}
	for i := range selected {
		selected[i].Number = i + 1
	}

	result.Questions = selected
	result.TotalQuestions = len(selected)
	result.Distribution = Distribution{
		HighWeightage:     highQuota,
		ImportantChapters: chapterQuota,
		Random:            remaining,
	}
	result.BasedOn.TotalPYQsAnalyzed = len(records)
	if chapters != nil {
		result.BasedOn.ImportantChapters = chapters
	}
	if len(topics) > basedOnTopics {
		result.BasedOn.HighWeightageTopics = topics[:basedOnTopics]
	} else {
		result.BasedOn.HighWeightageTopics = topics
	}
	return result
}

// matchingRefs returns up to two records whose title contains name.
func matchingRefs(records []*paper.Paper, name string) []ReferencePYQ {
	needle := strings.ToLower(name)
	var refs []ReferencePYQ
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			refs = append(refs, ref(r))
			if len(refs) == referencesPerEntry {
				break
			}
		}
	}
	return refs
}

func ref(r *paper.Paper) ReferencePYQ {
	return ReferencePYQ{ID: r.ID, Year: r.Year, Title: r.Title}
}
