package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pyqlens/backend/internal/domain/paper"
	"github.com/pyqlens/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreatePaperRequest struct {
	Title            string  `json:"title" example:"NEET Physics Waves and Oscillations"`
	ExamType         string  `json:"exam_type" example:"neet"`
	Year             int     `json:"year" example:"2021"`
	ClassLevel       *string `json:"class_level,omitempty" example:"class_12"`
	Subject          *string `json:"subject,omitempty" example:"physics"`
	QuestionPaperURL *string `json:"question_paper_url,omitempty" example:"https://files.example.org/neet-2021.pdf"`
}

// Validate builds the paper once so field errors surface as a 400.
func (r *CreatePaperRequest) Validate() error {
	_, err := r.record().Paper()
	return err
}

func (r *CreatePaperRequest) record() paper.Record {
	return paper.Record{
		Title:            r.Title,
		ExamType:         r.ExamType,
		Year:             r.Year,
		ClassLevel:       r.ClassLevel,
		Subject:          r.Subject,
		QuestionPaperURL: r.QuestionPaperURL,
	}
}

type PaperResponse struct {
	ID               string    `json:"id" example:"a1b2c3d4e5f6g7h8"`
	Title            string    `json:"title" example:"NEET Physics Waves and Oscillations"`
	ExamType         string    `json:"exam_type" example:"neet"`
	Year             int       `json:"year" example:"2021"`
	ClassLevel       *string   `json:"class_level,omitempty" example:"class_12"`
	Subject          *string   `json:"subject,omitempty" example:"physics"`
	QuestionPaperURL *string   `json:"question_paper_url,omitempty"`
	IsApproved       bool      `json:"is_approved" example:"true"`
	ViewsCount       int       `json:"views_count" example:"12"`
	DownloadCount    int       `json:"download_count" example:"3"`
	CreatedAt        time.Time `json:"created_at"`
}

func toPaperResponse(p *paper.Paper) PaperResponse {
	rec := paper.RecordOf(p)
	return PaperResponse{
		ID:               p.ID,
		Title:            p.Title,
		ExamType:         rec.ExamType,
		Year:             p.Year,
		ClassLevel:       rec.ClassLevel,
		Subject:          rec.Subject,
		QuestionPaperURL: p.QuestionPaperURL,
		IsApproved:       p.IsApproved,
		ViewsCount:       p.ViewsCount,
		DownloadCount:    p.DownloadCount,
		CreatedAt:        p.CreatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createPaper uploads a paper. New papers wait for approval.
// @Summary      Upload a paper
// @Description  Create a previous-year paper. It is excluded from analysis until approved.
// @Tags         Papers
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePaperRequest  true  "Paper to create"
// @Success      201   {object}  PaperResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /papers [post]
func (h *Handler) createPaper(w http.ResponseWriter, r *http.Request) {
	var req CreatePaperRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := req.record().Paper()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SavePaper(r.Context(), p); err != nil {
		h.logger.Error("failed to save paper", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save paper")
		return
	}

	respondJSON(w, http.StatusCreated, toPaperResponse(p))
}

// listPapers lists papers, newest year first.
// @Summary      List papers
// @Description  List approved papers. Set include_pending=true to include papers awaiting approval.
// @Tags         Papers
// @Produce      json
// @Param        exam_type        query     string  false  "boards, neet, jee_main or jee_advanced"
// @Param        subject          query     string  false  "physics, chemistry, biology or mathematics"
// @Param        class_level      query     string  false  "class_11 or class_12"
// @Param        year             query     int     false  "Exam year"
// @Param        include_pending  query     bool    false  "Include unapproved papers"
// @Param        skip             query     int     false  "Offset"
// @Param        limit            query     int     false  "Page size (max 100)"
// @Success      200              {array}   PaperResponse
// @Failure      400              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /papers [get]
func (h *Handler) listPapers(w http.ResponseWriter, r *http.Request) {
	opts, err := parseListOptions(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	papers, err := h.store.ListPapers(r.Context(), opts)
	if h.handleStoreError(w, err, "papers") {
		return
	}

	resp := make([]PaperResponse, len(papers))
	for i, p := range papers {
		resp[i] = toPaperResponse(p)
	}
	respondJSON(w, http.StatusOK, resp)
}

func parseListOptions(r *http.Request) (store.ListOptions, error) {
	q := r.URL.Query()
	opts := store.ListOptions{ApprovedOnly: q.Get("include_pending") != "true"}

	if v := q.Get("exam_type"); v != "" {
		e, err := paper.ParseExamType(v)
		if err != nil {
			return opts, err
		}
		opts.ExamType = &e
	}
	subject, err := paper.ParseSubject(q.Get("subject"))
	if err != nil {
		return opts, err
	}
	opts.Subject = subject

	if opts.ClassLevel, err = paper.ParseClassLevel(q.Get("class_level")); err != nil {
		return opts, err
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return opts, paper.ErrInvalidYear
		}
		opts.Year = &year
	}
	if opts.Offset, err = intParam(q.Get("skip")); err != nil {
		return opts, err
	}
	if opts.Limit, err = intParam(q.Get("limit")); err != nil {
		return opts, err
	}
	return opts, nil
}

// getPaper returns one approved paper and counts the view.
// @Summary      Get a paper
// @Tags         Papers
// @Produce      json
// @Param        paperID  path      string  true  "Paper ID"
// @Success      200      {object}  PaperResponse
// @Failure      404      {object}  map[string]string
// @Failure      500      {object}  map[string]string
// @Router       /papers/{paperID} [get]
func (h *Handler) getPaper(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	paperID := r.PathValue("paperID")

	p, err := h.store.GetPaper(ctx, paperID)
	if h.handleStoreError(w, err, "paper") {
		return
	}
	if !p.IsApproved {
		respondError(w, http.StatusNotFound, "paper not found")
		return
	}

	if err := h.store.IncrementViews(ctx, paperID); err != nil {
		h.logger.Warn("failed to count view", "paper_id", paperID, "error", err)
	} else {
		p.ViewsCount++
	}

	respondJSON(w, http.StatusOK, toPaperResponse(p))
}

// approvePaper makes a paper visible to listings and analysis.
// @Summary      Approve a paper
// @Tags         Papers
// @Param        paperID  path  string  true  "Paper ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /papers/{paperID}/approve [post]
func (h *Handler) approvePaper(w http.ResponseWriter, r *http.Request) {
	err := h.store.ApprovePaper(r.Context(), r.PathValue("paperID"))
	if h.handleStoreError(w, err, "paper") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deletePaper removes a paper.
// @Summary      Delete a paper
// @Tags         Papers
// @Param        paperID  path  string  true  "Paper ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /papers/{paperID} [delete]
func (h *Handler) deletePaper(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeletePaper(r.Context(), r.PathValue("paperID"))
	if h.handleStoreError(w, err, "paper") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
