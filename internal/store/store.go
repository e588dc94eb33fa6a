package store

import (
	"context"
	"errors"
	"time"

	"github.com/pyqlens/backend/internal/domain/paper"
)

var (
	ErrNotFound = errors.New("not found")
)

// ListOptions narrows a paper listing. Zero values mean "no filter";
// Limit defaults to DefaultListLimit.
type ListOptions struct {
	ExamType     *paper.ExamType
	Subject      *paper.Subject
	ClassLevel   *paper.ClassLevel
	Year         *int
	ApprovedOnly bool
	Offset       int
	Limit        int
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Snapshot is a stored full-analysis result for one exam type.
type Snapshot struct {
	ExamType    paper.ExamType
	Payload     []byte // JSON encoded analysis.FullAnalysis
	RecordCount int
	RefreshedAt time.Time
}

// PaperStore is the persistence contract the services depend on.
type PaperStore interface {
	SavePaper(ctx context.Context, p *paper.Paper) error
	GetPaper(ctx context.Context, id string) (*paper.Paper, error)
	ListPapers(ctx context.Context, opts ListOptions) ([]*paper.Paper, error)
	// ListApproved returns approved papers matching the filter, most recent
	// year first.
	ListApproved(ctx context.Context, f paper.Filter) ([]*paper.Paper, error)
	ApprovePaper(ctx context.Context, id string) error
	DeletePaper(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error

	SaveSnapshot(ctx context.Context, s *Snapshot) error
	GetSnapshot(ctx context.Context, examType paper.ExamType) (*Snapshot, error)
}
