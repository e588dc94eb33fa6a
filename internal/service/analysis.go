// internal/service/analysis.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/pyqlens/backend/internal/analysis"
	"github.com/pyqlens/backend/internal/domain/paper"
	"github.com/pyqlens/backend/internal/drafter"
	"github.com/pyqlens/backend/internal/store"
	"github.com/pyqlens/backend/internal/worker"
)

// ErrDraftingDisabled is returned when a drafted mock test is requested but
// no Drafter is configured.
var ErrDraftingDisabled = errors.New("question drafting is not configured")

// MockTestRequest carries the filter and options for one mock test.
type MockTestRequest struct {
	Filter  paper.Filter
	Options analysis.MockTestOptions
	// Draft asks the Drafter to write question text for every slot.
	Draft bool
}

// SnapshotView is a stored full analysis decoded for callers.
type SnapshotView struct {
	ExamType    paper.ExamType          `json:"exam_type"`
	RecordCount int                     `json:"record_count"`
	RefreshedAt time.Time               `json:"refreshed_at"`
	Analysis    *analysis.FullAnalysis `json:"analysis"`
}

// AnalysisService loads approved papers from the store and runs the
// analyzer over them. Drafting, when enabled, runs on a bounded worker pool.
type AnalysisService struct {
	store        store.PaperStore
	analyzer     *analysis.Analyzer
	drafter      drafter.Drafter
	draftWorkers int
	logger       *slog.Logger
}

// NewAnalysisService creates an AnalysisService. d may be nil, which
// disables drafting.
func NewAnalysisService(s store.PaperStore, a *analysis.Analyzer, d drafter.Drafter, draftWorkers int, logger *slog.Logger) *AnalysisService {
	if draftWorkers < 1 {
		draftWorkers = 1
	}
	return &AnalysisService{
		store:        s,
		analyzer:     a,
		drafter:      d,
		draftWorkers: draftWorkers,
		logger:       logger,
	}
}

func (as *AnalysisService) records(ctx context.Context, f paper.Filter) ([]*paper.Paper, error) {
	records, err := as.store.ListApproved(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("loading papers for %s: %w", f.ExamType, err)
	}
	return records, nil
}

func (as *AnalysisService) RepeatedQuestions(ctx context.Context, f paper.Filter) (*analysis.RepeatedQuestions, error) {
	records, err := as.records(ctx, f)
	if err != nil {
		return nil, err
	}
	return as.analyzer.RepeatedQuestions(records), nil
}

func (as *AnalysisService) ImportantChapters(ctx context.Context, f paper.Filter) (*analysis.ChapterRanking, error) {
	records, err := as.records(ctx, f)
	if err != nil {
		return nil, err
	}
	return as.analyzer.ImportantChapters(records), nil
}

func (as *AnalysisService) WeightagePrediction(ctx context.Context, f paper.Filter) (*analysis.WeightagePrediction, error) {
	records, err := as.records(ctx, f)
	if err != nil {
		return nil, err
	}
	return as.analyzer.PredictWeightage(records), nil
}

func (as *AnalysisService) FullAnalysis(ctx context.Context, f paper.Filter) (*analysis.FullAnalysis, error) {
	records, err := as.records(ctx, f)
	if err != nil {
		return nil, err
	}
	return as.analyzer.Full(records, f), nil
}

// MockTest synthesizes a mock test and, if requested, drafts its questions.
// Slots whose drafting fails keep their references and are logged.
func (as *AnalysisService) MockTest(ctx context.Context, req MockTestRequest) (*analysis.MockTest, error) {
	if req.Draft && as.drafter == nil {
		return nil, ErrDraftingDisabled
	}

	records, err := as.records(ctx, req.Filter)
	if err != nil {
		return nil, err
	}

	test := as.analyzer.MockTest(records, req.Filter, req.Options)
	if req.Draft && !test.NoData {
		as.draftQuestions(ctx, test)
	}
	return test, nil
}

type draftOutcome struct {
	draft *drafter.Draft
	err   error
}

func (as *AnalysisService) draftQuestions(ctx context.Context, test *analysis.MockTest) {
	pool := worker.NewPool[draftOutcome](as.draftWorkers, len(test.Questions))

	for i, q := range test.Questions {
		req := drafter.Request{
			ExamType:   string(test.ExamType),
			Subject:    test.Subject,
			Difficulty: string(test.Difficulty),
			Focus:      q.Subject(),
		}
		for _, ref := range q.ReferencePYQs {
			req.References = append(req.References, fmt.Sprintf("%s (%d)", ref.Title, ref.Year))
		}
		pool.Submit(strconv.Itoa(i), func() draftOutcome {
			d, err := as.drafter.Draft(ctx, req)
			return draftOutcome{draft: d, err: err}
		})
	}
	pool.Close()

	failed := 0
	for res := range pool.Results() {
		i, _ := strconv.Atoi(res.JobID)
		if res.Output.err != nil {
			failed++
			as.logger.Warn("drafting error",
				"question", test.Questions[i].Number,
				"error", res.Output.err,
			)
			continue
		}
		test.Questions[i].Question = res.Output.draft.Question
		test.Questions[i].Hint = res.Output.draft.Hint
	}

	as.logger.Info("mock test drafted",
		"exam_type", test.ExamType,
		"questions", len(test.Questions),
		"failed", failed,
	)
}

// RefreshSnapshots recomputes and stores the full analysis for every exam
// type. It keeps going after a failure and returns the joined errors.
func (as *AnalysisService) RefreshSnapshots(ctx context.Context) error {
	start := time.Now()
	var errs []error

	for _, examType := range paper.ExamTypes {
		f := paper.Filter{ExamType: examType}
		records, err := as.records(ctx, f)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		payload, err := json.Marshal(as.analyzer.Full(records, f))
		if err != nil {
			errs = append(errs, fmt.Errorf("encoding snapshot for %s: %w", examType, err))
			continue
		}

		if err := as.store.SaveSnapshot(ctx, &store.Snapshot{
			ExamType:    examType,
			Payload:     payload,
			RecordCount: len(records),
			RefreshedAt: time.Now().UTC(),
		}); err != nil {
			errs = append(errs, fmt.Errorf("saving snapshot for %s: %w", examType, err))
			continue
		}
		as.logger.Debug("snapshot refreshed", "exam_type", examType, "records", len(records))
	}

	if err := errors.Join(errs...); err != nil {
		as.logger.Error("snapshot refresh failed", "error", err, "duration", time.Since(start))
		return err
	}
	as.logger.Info("snapshots refreshed", "exam_types", len(paper.ExamTypes), "duration", time.Since(start))
	return nil
}

// Snapshot returns the stored analysis for an exam type, or
// store.ErrNotFound if it has not been computed yet.
func (as *AnalysisService) Snapshot(ctx context.Context, examType paper.ExamType) (*SnapshotView, error) {
	snap, err := as.store.GetSnapshot(ctx, examType)
	if err != nil {
		return nil, err
	}

	var full analysis.FullAnalysis
	if err := json.Unmarshal(snap.Payload, &full); err != nil {
		return nil, fmt.Errorf("decoding snapshot for %s: %w", examType, err)
	}
	return &SnapshotView{
		ExamType:    snap.ExamType,
		RecordCount: snap.RecordCount,
		RefreshedAt: snap.RefreshedAt,
		Analysis:    &full,
	}, nil
}
