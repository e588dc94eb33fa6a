// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/pyqlens/backend/internal/domain/paper"
)

const schema = `
CREATE TABLE IF NOT EXISTS papers (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    exam_type TEXT NOT NULL,
    year INTEGER NOT NULL,
    class_level TEXT,
    subject TEXT,
    question_paper_url TEXT,
    is_approved BOOLEAN NOT NULL DEFAULT FALSE,
    views_count INTEGER NOT NULL DEFAULT 0,
    download_count INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_papers_exam_year ON papers (exam_type, year);

CREATE TABLE IF NOT EXISTS analysis_snapshots (
    exam_type TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    record_count INTEGER NOT NULL,
    refreshed_at TIMESTAMP NOT NULL
);
`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies PaperStore.
var _ PaperStore = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Papers
// ============================================================================

const paperColumns = `id, title, exam_type, year, class_level, subject, question_paper_url,
    is_approved, views_count, download_count, created_at`

func (s *SQLiteStore) SavePaper(ctx context.Context, p *paper.Paper) error {
	var classLevel, subject *string
	if p.ClassLevel != nil {
		v := string(*p.ClassLevel)
		classLevel = &v
	}
	if p.Subject != nil {
		v := string(*p.Subject)
		subject = &v
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO papers ("+paperColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Title, string(p.ExamType), p.Year, classLevel, subject, p.QuestionPaperURL,
		p.IsApproved, p.ViewsCount, p.DownloadCount, p.CreatedAt.UTC(),
	)
	return err
}

func (s *SQLiteStore) GetPaper(ctx context.Context, id string) (*paper.Paper, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+paperColumns+" FROM papers WHERE id = ?", id)
	p, err := scanPaper(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SQLiteStore) ListPapers(ctx context.Context, opts ListOptions) ([]*paper.Paper, error) {
	var (
		where []string
		args  []any
	)
	if opts.ExamType != nil {
		where = append(where, "exam_type = ?")
		args = append(args, string(*opts.ExamType))
	}
	if opts.Subject != nil {
		where = append(where, "subject = ?")
		args = append(args, string(*opts.Subject))
	}
	if opts.ClassLevel != nil {
		where = append(where, "class_level = ?")
		args = append(args, string(*opts.ClassLevel))
	}
	if opts.Year != nil {
		where = append(where, "year = ?")
		args = append(args, *opts.Year)
	}
	if opts.ApprovedOnly {
		where = append(where, "is_approved = TRUE")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	query := "SELECT " + paperColumns + " FROM papers"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY year DESC, created_at DESC, rowid DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	return s.queryPapers(ctx, query, args...)
}

func (s *SQLiteStore) ListApproved(ctx context.Context, f paper.Filter) ([]*paper.Paper, error) {
	query := "SELECT " + paperColumns + " FROM papers WHERE is_approved = TRUE AND exam_type = ?"
	args := []any{string(f.ExamType)}

	if f.Subject != nil {
		query += " AND subject = ?"
		args = append(args, string(*f.Subject))
	}
	if len(f.Years) > 0 {
		placeholders := make([]string, len(f.Years))
		for i, y := range f.Years {
			placeholders[i] = "?"
			args = append(args, y)
		}
		query += " AND year IN (" + strings.Join(placeholders, ", ") + ")"
	}
	// Ties on year keep insertion order so repeated analyses see the same sequence.
	query += " ORDER BY year DESC, created_at ASC, rowid ASC"

	return s.queryPapers(ctx, query, args...)
}

func (s *SQLiteStore) ApprovePaper(ctx context.Context, id string) error {
	return s.execOne(ctx, "UPDATE papers SET is_approved = TRUE WHERE id = ?", id)
}

func (s *SQLiteStore) DeletePaper(ctx context.Context, id string) error {
	return s.execOne(ctx, "DELETE FROM papers WHERE id = ?", id)
}

func (s *SQLiteStore) IncrementViews(ctx context.Context, id string) error {
	return s.execOne(ctx, "UPDATE papers SET views_count = views_count + 1 WHERE id = ?", id)
}

// execOne runs a statement that must touch exactly one paper row.
func (s *SQLiteStore) execOne(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) queryPapers(ctx context.Context, query string, args ...any) ([]*paper.Paper, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var papers []*paper.Paper
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPaper(row scanner) (*paper.Paper, error) {
	var (
		p          paper.Paper
		examType   string
		classLevel sql.NullString
		subject    sql.NullString
		url        sql.NullString
	)
	if err := row.Scan(
		&p.ID, &p.Title, &examType, &p.Year, &classLevel, &subject, &url,
		&p.IsApproved, &p.ViewsCount, &p.DownloadCount, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	p.ExamType = paper.ExamType(examType)
	if classLevel.Valid {
		c := paper.ClassLevel(classLevel.String)
		p.ClassLevel = &c
	}
	if subject.Valid {
		sub := paper.Subject(subject.String)
		p.Subject = &sub
	}
	if url.Valid {
		p.QuestionPaperURL = &url.String
	}
	return &p, nil
}

// ============================================================================
// Analysis snapshots
// ============================================================================

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap *Snapshot) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_snapshots (exam_type, payload, record_count, refreshed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(exam_type) DO UPDATE SET
			payload = excluded.payload,
			record_count = excluded.record_count,
			refreshed_at = excluded.refreshed_at
	`, string(snap.ExamType), string(snap.Payload), snap.RecordCount, snap.RefreshedAt.UTC())
	return err
}

func (s *SQLiteStore) GetSnapshot(ctx context.Context, examType paper.ExamType) (*Snapshot, error) {
	var (
		snap    Snapshot
		payload string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT payload, record_count, refreshed_at FROM analysis_snapshots WHERE exam_type = ?",
		string(examType),
	).Scan(&payload, &snap.RecordCount, &snap.RefreshedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	snap.ExamType = examType
	snap.Payload = []byte(payload)
	return &snap, nil
}
