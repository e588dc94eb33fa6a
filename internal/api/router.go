// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Papers
	mux.HandleFunc("POST /papers", h.createPaper)
	mux.HandleFunc("GET /papers", h.listPapers)
	mux.HandleFunc("GET /papers/export", h.exportPapers)
	mux.HandleFunc("POST /papers/import", h.importPapers)
	mux.HandleFunc("GET /papers/{paperID}", h.getPaper)
	mux.HandleFunc("POST /papers/{paperID}/approve", h.approvePaper)
	mux.HandleFunc("DELETE /papers/{paperID}", h.deletePaper)

	// Analysis
	mux.HandleFunc("GET /pyq-analysis/repeated-questions", h.repeatedQuestions)
	mux.HandleFunc("GET /pyq-analysis/important-chapters", h.importantChapters)
	mux.HandleFunc("GET /pyq-analysis/weightage-prediction", h.weightagePrediction)
	mux.HandleFunc("POST /pyq-analysis/mock-test", h.mockTest)
	mux.HandleFunc("GET /pyq-analysis/full-analysis", h.fullAnalysis)
	mux.HandleFunc("GET /pyq-analysis/snapshots/{examType}", h.snapshot)
}
