package paper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pyqlens/backend/internal/id"
)

type ExamType string

const (
	ExamBoards      ExamType = "boards"
	ExamNEET        ExamType = "neet"
	ExamJEEMain     ExamType = "jee_main"
	ExamJEEAdvanced ExamType = "jee_advanced"
)

// ExamTypes lists every supported exam type in display order.
var ExamTypes = []ExamType{ExamBoards, ExamNEET, ExamJEEMain, ExamJEEAdvanced}

func (e ExamType) Valid() bool {
	for _, known := range ExamTypes {
		if e == known {
			return true
		}
	}
	return false
}

type Subject string

const (
	SubjectPhysics     Subject = "physics"
	SubjectChemistry   Subject = "chemistry"
	SubjectBiology     Subject = "biology"
	SubjectMathematics Subject = "mathematics"
)

var Subjects = []Subject{SubjectPhysics, SubjectChemistry, SubjectBiology, SubjectMathematics}

func (s Subject) Valid() bool {
	for _, known := range Subjects {
		if s == known {
			return true
		}
	}
	return false
}

type ClassLevel string

const (
	Class11 ClassLevel = "class_11"
	Class12 ClassLevel = "class_12"
)

func (c ClassLevel) Valid() bool {
	return c == Class11 || c == Class12
}

// MinYear is the earliest exam year accepted for a paper.
const MinYear = 1950

var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidExamType = errors.New("invalid exam_type: must be boards, neet, jee_main or jee_advanced")
	ErrInvalidSubject  = errors.New("invalid subject: must be physics, chemistry, biology or mathematics")
	ErrInvalidClass    = errors.New("invalid class_level: must be class_11 or class_12")
	ErrInvalidYear     = errors.New("invalid year")
)

// Paper is a previous-year question paper. Only approved papers take part
// in pattern analysis.
type Paper struct {
	ID               string
	Title            string
	ExamType         ExamType
	Year             int
	ClassLevel       *ClassLevel // Optional
	Subject          *Subject    // Optional - nil means the paper spans subjects
	QuestionPaperURL *string
	IsApproved       bool
	ViewsCount       int
	DownloadCount    int
	CreatedAt        time.Time
}

// New creates an unapproved paper after validating its fields.
func New(title string, examType ExamType, year int, subject *Subject) (*Paper, error) {
	p := &Paper{
		ID:        id.New(),
		Title:     strings.TrimSpace(title),
		ExamType:  examType,
		Year:      year,
		Subject:   subject,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Paper) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if !p.ExamType.Valid() {
		return ErrInvalidExamType
	}
	if err := ValidateYear(p.Year); err != nil {
		return err
	}
	if p.Subject != nil && !p.Subject.Valid() {
		return ErrInvalidSubject
	}
	if p.ClassLevel != nil && !p.ClassLevel.Valid() {
		return ErrInvalidClass
	}
	return nil
}

// ValidateYear accepts calendar years from MinYear up to next year.
func ValidateYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < MinYear || year > maxYear {
		return fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidYear, year, MinYear, maxYear)
	}
	return nil
}

func (p *Paper) Approve() {
	p.IsApproved = true
}

// SubjectName returns the subject value or "" when the paper has none.
func (p *Paper) SubjectName() string {
	if p.Subject == nil {
		return ""
	}
	return string(*p.Subject)
}
