package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pyqlens/backend/internal/domain/paper"
	"github.com/pyqlens/backend/internal/store"
)

func openStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func savePaper(t *testing.T, s *store.SQLiteStore, title string, exam paper.ExamType, year int, subject *paper.Subject, approved bool) *paper.Paper {
	t.Helper()
	p, err := paper.New(title, exam, year, subject)
	if err != nil {
		t.Fatalf("invalid paper: %v", err)
	}
	p.IsApproved = approved
	if err := s.SavePaper(context.Background(), p); err != nil {
		t.Fatalf("failed to save paper: %v", err)
	}
	return p
}

func TestSaveAndGetPaper(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	phys := paper.SubjectPhysics
	class := paper.Class12
	url := "https://files.example.org/neet-2021.pdf"

	p, _ := paper.New("NEET Physics 2021", paper.ExamNEET, 2021, &phys)
	p.ClassLevel = &class
	p.QuestionPaperURL = &url
	if err := s.SavePaper(ctx, p); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.GetPaper(ctx, p.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Title != p.Title || got.ExamType != paper.ExamNEET || got.Year != 2021 {
		t.Errorf("unexpected paper %+v", got)
	}
	if got.Subject == nil || *got.Subject != phys {
		t.Errorf("expected subject physics, got %v", got.Subject)
	}
	if got.ClassLevel == nil || *got.ClassLevel != class {
		t.Errorf("expected class_12, got %v", got.ClassLevel)
	}
	if got.QuestionPaperURL == nil || *got.QuestionPaperURL != url {
		t.Errorf("expected url, got %v", got.QuestionPaperURL)
	}
	if got.IsApproved {
		t.Error("expected unapproved paper")
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected created_at to round-trip")
	}
}

func TestGetPaper_NotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.GetPaper(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListApproved_FiltersAndOrder(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	phys := paper.SubjectPhysics
	chem := paper.SubjectChemistry

	savePaper(t, s, "Physics 2019", paper.ExamNEET, 2019, &phys, true)
	savePaper(t, s, "Physics 2021", paper.ExamNEET, 2021, &phys, true)
	savePaper(t, s, "Chemistry 2020", paper.ExamNEET, 2020, &chem, true)
	savePaper(t, s, "Pending 2021", paper.ExamNEET, 2021, &phys, false)
	savePaper(t, s, "Boards 2021", paper.ExamBoards, 2021, &phys, true)

	all, err := s.ListApproved(ctx, paper.Filter{ExamType: paper.ExamNEET})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 approved NEET papers, got %d", len(all))
	}
	if all[0].Year != 2021 || all[1].Year != 2020 || all[2].Year != 2019 {
		t.Errorf("expected year descending, got %d %d %d", all[0].Year, all[1].Year, all[2].Year)
	}

	physOnly, err := s.ListApproved(ctx, paper.Filter{ExamType: paper.ExamNEET, Subject: &phys})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(physOnly) != 2 {
		t.Errorf("expected 2 physics papers, got %d", len(physOnly))
	}

	years, err := s.ListApproved(ctx, paper.Filter{ExamType: paper.ExamNEET, Years: []int{2019, 2020}})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(years) != 2 {
		t.Errorf("expected 2 papers in 2019-2020, got %d", len(years))
	}
}

func TestListPapers_Paging(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		savePaper(t, s, "Paper", paper.ExamJEEMain, 2015+i, nil, i%2 == 0)
	}

	page, err := s.ListPapers(ctx, store.ListOptions{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page) != 2 || page[0].Year != 2018 {
		t.Errorf("unexpected page %+v", page)
	}

	approved, err := s.ListPapers(ctx, store.ListOptions{ApprovedOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(approved) != 3 {
		t.Errorf("expected 3 approved papers, got %d", len(approved))
	}

	year := 2016
	byYear, err := s.ListPapers(ctx, store.ListOptions{Year: &year})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byYear) != 1 {
		t.Errorf("expected 1 paper for 2016, got %d", len(byYear))
	}
}

func TestApproveDeleteAndViews(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	p := savePaper(t, s, "JEE Advanced 2022", paper.ExamJEEAdvanced, 2022, nil, false)

	if err := s.ApprovePaper(ctx, p.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if err := s.IncrementViews(ctx, p.ID); err != nil {
		t.Fatalf("increment failed: %v", err)
	}

	got, err := s.GetPaper(ctx, p.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.IsApproved || got.ViewsCount != 1 {
		t.Errorf("expected approved with 1 view, got %+v", got)
	}

	if err := s.DeletePaper(ctx, p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.DeletePaper(ctx, p.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := s.ApprovePaper(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshots_Upsert(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	if _, err := s.GetSnapshot(ctx, paper.ExamNEET); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first save, got %v", err)
	}

	first := &store.Snapshot{ExamType: paper.ExamNEET, Payload: []byte(`{"v":1}`), RecordCount: 3, RefreshedAt: time.Now()}
	if err := s.SaveSnapshot(ctx, first); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second := &store.Snapshot{ExamType: paper.ExamNEET, Payload: []byte(`{"v":2}`), RecordCount: 4, RefreshedAt: time.Now()}
	if err := s.SaveSnapshot(ctx, second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.GetSnapshot(ctx, paper.ExamNEET)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got.Payload) != `{"v":2}` || got.RecordCount != 4 {
		t.Errorf("expected latest snapshot, got %s / %d", got.Payload, got.RecordCount)
	}
}
