package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pyqlens/backend/internal/analysis"
	"github.com/pyqlens/backend/internal/domain/paper"
	"github.com/pyqlens/backend/internal/render"
	"github.com/pyqlens/backend/internal/service"
)

const maxMockQuestions = 200

// ── Request types ───────────────────────────────────────────────────────────

type MockTestRequest struct {
	ExamType     string  `json:"exam_type" example:"neet"`
	Subject      *string `json:"subject,omitempty" example:"physics"`
	Years        []int   `json:"years,omitempty" example:"2020,2021,2022"`
	NumQuestions int     `json:"num_questions,omitempty" example:"30"`
	Difficulty   string  `json:"difficulty,omitempty" example:"mixed"`
	Seed         *int64  `json:"seed,omitempty" example:"42"`
	Draft        bool    `json:"draft,omitempty" example:"false"`
}

func (r *MockTestRequest) Validate() error {
	if r.ExamType == "" {
		return errors.New("exam_type is required")
	}
	if r.NumQuestions > maxMockQuestions {
		return fmt.Errorf("num_questions must be at most %d", maxMockQuestions)
	}
	_, err := r.toService()
	return err
}

func (r *MockTestRequest) toService() (service.MockTestRequest, error) {
	var req service.MockTestRequest

	examType, err := paper.ParseExamType(r.ExamType)
	if err != nil {
		return req, err
	}
	var subject *paper.Subject
	if r.Subject != nil {
		if subject, err = paper.ParseSubject(*r.Subject); err != nil {
			return req, err
		}
	}
	for _, y := range r.Years {
		if err := paper.ValidateYear(y); err != nil {
			return req, err
		}
	}
	difficulty, err := analysis.ParseDifficulty(r.Difficulty)
	if err != nil {
		return req, err
	}

	req.Filter = paper.Filter{ExamType: examType, Subject: subject, Years: r.Years}
	req.Options = analysis.MockTestOptions{
		NumQuestions: r.NumQuestions,
		Difficulty:   difficulty,
		Seed:         r.Seed,
	}
	req.Draft = r.Draft
	return req, nil
}

// parseFilter reads exam_type (required), subject and years from the query.
func parseFilter(r *http.Request) (paper.Filter, error) {
	q := r.URL.Query()
	var f paper.Filter

	if q.Get("exam_type") == "" {
		return f, errors.New("exam_type is required")
	}
	examType, err := paper.ParseExamType(q.Get("exam_type"))
	if err != nil {
		return f, err
	}
	subject, err := paper.ParseSubject(q.Get("subject"))
	if err != nil {
		return f, err
	}
	years, err := paper.ParseYears(q.Get("years"))
	if err != nil {
		return f, err
	}

	f.ExamType = examType
	f.Subject = subject
	f.Years = years
	return f, nil
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	return n, nil
}

// runAnalysis parses the filter, runs one analysis and writes the result.
func (h *Handler) runAnalysis(w http.ResponseWriter, r *http.Request, name string, run func(context.Context, paper.Filter) (any, error)) {
	f, err := parseFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := run(r.Context(), f)
	if err != nil {
		h.logger.Error("analysis failed", "analysis", name, "exam_type", f.ExamType, "error", err)
		respondError(w, http.StatusInternalServerError, "error running "+name)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ── Handlers ────────────────────────────────────────────────────────────────

// repeatedQuestions groups papers whose titles share leading keywords.
// @Summary      Detect repeated questions
// @Tags         Analysis
// @Produce      json
// @Param        exam_type  query     string  true   "boards, neet, jee_main or jee_advanced"
// @Param        subject    query     string  false  "physics, chemistry, biology or mathematics"
// @Param        years      query     string  false  "Comma-separated years, e.g. 2020,2021"
// @Success      200        {object}  analysis.RepeatedQuestions
// @Failure      400        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /pyq-analysis/repeated-questions [get]
func (h *Handler) repeatedQuestions(w http.ResponseWriter, r *http.Request) {
	h.runAnalysis(w, r, "repeated questions", func(ctx context.Context, f paper.Filter) (any, error) {
		return h.analysis.RepeatedQuestions(ctx, f)
	})
}

// importantChapters ranks chapters by how often papers mention them.
// @Summary      Rank important chapters
// @Tags         Analysis
// @Produce      json
// @Param        exam_type  query     string  true   "boards, neet, jee_main or jee_advanced"
// @Param        subject    query     string  false  "physics, chemistry, biology or mathematics"
// @Param        years      query     string  false  "Comma-separated years, e.g. 2020,2021"
// @Success      200        {object}  analysis.ChapterRanking
// @Failure      400        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /pyq-analysis/important-chapters [get]
func (h *Handler) importantChapters(w http.ResponseWriter, r *http.Request) {
	h.runAnalysis(w, r, "important chapters", func(ctx context.Context, f paper.Filter) (any, error) {
		return h.analysis.ImportantChapters(ctx, f)
	})
}

// weightagePrediction forecasts each topic's share of next year's paper.
// @Summary      Predict topic weightage
// @Tags         Analysis
// @Produce      json
// @Param        exam_type  query     string  true   "boards, neet, jee_main or jee_advanced"
// @Param        subject    query     string  false  "physics, chemistry, biology or mathematics"
// @Param        years      query     string  false  "Comma-separated years, e.g. 2020,2021"
// @Success      200        {object}  analysis.WeightagePrediction
// @Failure      400        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /pyq-analysis/weightage-prediction [get]
func (h *Handler) weightagePrediction(w http.ResponseWriter, r *http.Request) {
	h.runAnalysis(w, r, "weightage prediction", func(ctx context.Context, f paper.Filter) (any, error) {
		return h.analysis.WeightagePrediction(ctx, f)
	})
}

// fullAnalysis runs all three analyses over the same papers.
// @Summary      Full analysis
// @Tags         Analysis
// @Produce      json
// @Param        exam_type  query     string  true   "boards, neet, jee_main or jee_advanced"
// @Param        subject    query     string  false  "physics, chemistry, biology or mathematics"
// @Param        years      query     string  false  "Comma-separated years, e.g. 2020,2021"
// @Success      200        {object}  analysis.FullAnalysis
// @Failure      400        {object}  map[string]string
// @Failure      500        {object}  map[string]string
// @Router       /pyq-analysis/full-analysis [get]
func (h *Handler) fullAnalysis(w http.ResponseWriter, r *http.Request) {
	h.runAnalysis(w, r, "full analysis", func(ctx context.Context, f paper.Filter) (any, error) {
		return h.analysis.FullAnalysis(ctx, f)
	})
}

// mockTest synthesizes a mock test from past papers.
// @Summary      Generate a mock test
// @Description  60% high-weightage topics, 30% important chapters, the rest sampled at random. Set draft=true to have the configured model write question text.
// @Tags         Analysis
// @Accept       json
// @Produce      json,text/markdown,text/html
// @Param        body    body      MockTestRequest  true   "Mock test options"
// @Param        format  query     string           false  "json (default), markdown or html"
// @Success      200     {object}  analysis.MockTest
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Failure      503     {object}  map[string]string  "drafting not configured"
// @Router       /pyq-analysis/mock-test [post]
func (h *Handler) mockTest(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "markdown" && format != "html" {
		respondError(w, http.StatusBadRequest, "invalid format: must be json, markdown or html")
		return
	}

	var req MockTestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	svcReq, err := req.toService()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	test, err := h.analysis.MockTest(r.Context(), svcReq)
	if errors.Is(err, service.ErrDraftingDisabled) {
		respondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("mock test failed", "exam_type", req.ExamType, "error", err)
		respondError(w, http.StatusInternalServerError, "error generating mock test")
		return
	}

	switch format {
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(render.Markdown(test)))
	case "html":
		page, err := render.HTML(test)
		if err != nil {
			h.logger.Error("rendering mock test failed", "error", err)
			respondError(w, http.StatusInternalServerError, "error rendering mock test")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	default:
		respondJSON(w, http.StatusOK, test)
	}
}

// snapshot returns the last scheduled full analysis for an exam type.
// @Summary      Get a stored analysis snapshot
// @Tags         Analysis
// @Produce      json
// @Param        examType  path      string  true  "boards, neet, jee_main or jee_advanced"
// @Success      200       {object}  service.SnapshotView
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string  "not refreshed yet"
// @Failure      500       {object}  map[string]string
// @Router       /pyq-analysis/snapshots/{examType} [get]
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	examType, err := paper.ParseExamType(r.PathValue("examType"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.analysis.Snapshot(r.Context(), examType)
	if h.handleStoreError(w, err, "snapshot") {
		return
	}
	respondJSON(w, http.StatusOK, view)
}
