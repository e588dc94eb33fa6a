package paper

import (
	"fmt"
	"strconv"
	"strings"
)

// Filter selects the papers an analysis runs over. A nil Subject or an
// empty Years slice matches everything.
type Filter struct {
	ExamType ExamType
	Subject  *Subject
	Years    []int
}

// SubjectLabel returns the subject name or "All".
func (f Filter) SubjectLabel() string {
	if f.Subject == nil {
		return "All"
	}
	return string(*f.Subject)
}

// ParseYears parses a comma separated list such as "2020, 2021".
// An empty string yields nil.
func ParseYears(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	years := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		y, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidYear, part)
		}
		years = append(years, y)
	}
	return years, nil
}

// ParseExamType converts a raw value into a known ExamType.
func ParseExamType(s string) (ExamType, error) {
	e := ExamType(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", ErrInvalidExamType
	}
	return e, nil
}

// ParseSubject converts a raw value into a Subject. An empty value means
// "no subject" and returns nil without error.
func ParseSubject(s string) (*Subject, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	subj := Subject(s)
	if !subj.Valid() {
		return nil, ErrInvalidSubject
	}
	return &subj, nil
}

// ParseClassLevel converts a raw value into a ClassLevel. An empty value
// returns nil without error.
func ParseClassLevel(s string) (*ClassLevel, error) {
	c := ClassLevel(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return nil, nil
	}
	if !c.Valid() {
		return nil, ErrInvalidClass
	}
	return &c, nil
}
