package paper

import "strings"

// Record is the portable form of a paper used by export and import. It
// carries no ID or counters; importing always creates a new paper.
type Record struct {
	Title            string  `json:"title" yaml:"title"`
	ExamType         string  `json:"exam_type" yaml:"exam_type"`
	Year             int     `json:"year" yaml:"year"`
	ClassLevel       *string `json:"class_level,omitempty" yaml:"class_level,omitempty"`
	Subject          *string `json:"subject,omitempty" yaml:"subject,omitempty"`
	QuestionPaperURL *string `json:"question_paper_url,omitempty" yaml:"question_paper_url,omitempty"`
	Approved         bool    `json:"approved" yaml:"approved"`
}

// RecordOf converts p to its portable form.
func RecordOf(p *Paper) Record {
	r := Record{
		Title:            p.Title,
		ExamType:         string(p.ExamType),
		Year:             p.Year,
		QuestionPaperURL: p.QuestionPaperURL,
		Approved:         p.IsApproved,
	}
	if p.ClassLevel != nil {
		c := string(*p.ClassLevel)
		r.ClassLevel = &c
	}
	if p.Subject != nil {
		s := string(*p.Subject)
		r.Subject = &s
	}
	return r
}

// Paper validates r and builds a new paper from it.
func (r Record) Paper() (*Paper, error) {
	examType, err := ParseExamType(r.ExamType)
	if err != nil {
		return nil, err
	}

	var subject *Subject
	if r.Subject != nil {
		if subject, err = ParseSubject(*r.Subject); err != nil {
			return nil, err
		}
	}

	p, err := New(r.Title, examType, r.Year, subject)
	if err != nil {
		return nil, err
	}

	if r.ClassLevel != nil {
		if p.ClassLevel, err = ParseClassLevel(*r.ClassLevel); err != nil {
			return nil, err
		}
	}
	if r.QuestionPaperURL != nil && strings.TrimSpace(*r.QuestionPaperURL) != "" {
		u := strings.TrimSpace(*r.QuestionPaperURL)
		p.QuestionPaperURL = &u
	}
	if r.Approved {
		p.Approve()
	}
	return p, nil
}
