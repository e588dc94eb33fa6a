package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pyqlens/backend/internal/domain/paper"
	"github.com/pyqlens/backend/internal/store"
)

// BundleVersion is written into every exported bundle.
const BundleVersion = "1.0"

// Bundle is the export and import document for papers.
type Bundle struct {
	Version    string         `json:"version" yaml:"version"`
	ExportedAt string         `json:"exported_at,omitempty" yaml:"exported_at,omitempty"`
	Papers     []paper.Record `json:"papers" yaml:"papers"`
}

type ImportResult struct {
	PapersCreated int      `json:"papers_created" example:"12"`
	Skipped       int      `json:"skipped" example:"1"`
	Errors        []string `json:"errors,omitempty"`
}

// ExportPapers collects every paper, approved or not, page by page.
func ExportPapers(ctx context.Context, s store.PaperStore) (*Bundle, error) {
	bundle := &Bundle{
		Version:    BundleVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Papers:     make([]paper.Record, 0),
	}

	for offset := 0; ; offset += store.MaxListLimit {
		page, err := s.ListPapers(ctx, store.ListOptions{Offset: offset, Limit: store.MaxListLimit})
		if err != nil {
			return nil, fmt.Errorf("listing papers at offset %d: %w", offset, err)
		}
		for _, p := range page {
			bundle.Papers = append(bundle.Papers, paper.RecordOf(p))
		}
		if len(page) < store.MaxListLimit {
			return bundle, nil
		}
	}
}

// ImportPapers saves a new paper for every valid record. Bad records are
// skipped and reported with their 1-based position.
func ImportPapers(ctx context.Context, s store.PaperStore, records []paper.Record) ImportResult {
	var result ImportResult
	for i, rec := range records {
		p, err := rec.Paper()
		if err == nil {
			err = s.SavePaper(ctx, p)
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("record %d: %v", i+1, err))
			continue
		}
		result.PapersCreated++
	}
	return result
}
