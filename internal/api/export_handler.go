package api

import (
	"encoding/json"
	"net/http"

	"github.com/pyqlens/backend/internal/service"
)

// exportPapers dumps every paper, approved or not.
// @Summary      Export papers
// @Tags         Papers
// @Produce      json
// @Success      200  {object}  service.Bundle
// @Failure      500  {object}  map[string]string
// @Router       /papers/export [get]
func (h *Handler) exportPapers(w http.ResponseWriter, r *http.Request) {
	bundle, err := service.ExportPapers(r.Context(), h.store)
	if err != nil {
		h.logger.Error("export failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load papers")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=pyqlens-export.json")
	json.NewEncoder(w).Encode(bundle)
}

// importPapers creates a paper for every valid record. Invalid records are
// skipped and reported.
// @Summary      Import papers
// @Tags         Papers
// @Accept       json
// @Produce      json
// @Param        body  body      service.Bundle  true  "Export document"
// @Success      200   {object}  service.ImportResult
// @Failure      400   {object}  map[string]string
// @Router       /papers/import [post]
func (h *Handler) importPapers(w http.ResponseWriter, r *http.Request) {
	var bundle service.Bundle
	if !decodeJSON(w, r, &bundle) {
		return
	}

	result := service.ImportPapers(r.Context(), h.store, bundle.Papers)
	h.logger.Info("papers imported", "created", result.PapersCreated, "skipped", result.Skipped)
	respondJSON(w, http.StatusOK, result)
}
