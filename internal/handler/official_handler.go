package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/tyma/backend/internal/service"
)

// OfficialHandler handles official management endpoints.
type OfficialHandler struct {
	officials service.OfficialService
	logger    *zap.Logger
}

// NewOfficialHandler creates an OfficialHandler with the given service.
func NewOfficialHandler(officials service.OfficialService, logger *zap.Logger) *OfficialHandler {
	return &OfficialHandler{officials: officials, logger: logger}
}

// Create handles POST /api/officials/.
func (h *OfficialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateOfficialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	official, err := h.officials.Create(r.Context(), in)
	if err != nil {
		respondError(w, h.logger, err, "Failed to create official")
		return
	}

	respondSuccess(w, http.StatusCreated, "Official created successfully", official)
}

// Get handles GET /api/officials/{official_id}/.
func (h *OfficialHandler) Get(w http.ResponseWriter, r *http.Request) {
	official, err := h.officials.Get(r.Context(), r.PathValue("official_id"))
	if err != nil {
		respondError(w, h.logger, err, "Failed to retrieve official")
		return
	}

	respondSuccess(w, http.StatusOK, "Official retrieved successfully", official)
}

// List handles GET /api/officials/.
// Supports query params: official_type, position, zone_slug, page,
// per_page.
func (h *OfficialHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := service.OfficialListInput{
		OfficialType: q.Get("official_type"),
		Position:     q.Get("position"),
		ZoneSlug:     q.Get("zone_slug"),
		Page:         intQuery(q, "page", defaultPage),
		PerPage:      intQuery(q, "per_page", defaultPerPage),
	}

	page, err := h.officials.List(r.Context(), in)
	if err != nil {
		respondError(w, h.logger, err, "Failed to retrieve officials")
		return
	}

	respondSuccess(w, http.StatusOK, "Officials retrieved successfully", page)
}

// Update handles PUT /api/officials/{official_id}/.
func (h *OfficialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateOfficialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	official, err := h.officials.Update(r.Context(), r.PathValue("official_id"), in)
	if err != nil {
		respondError(w, h.logger, err, "Failed to update official")
		return
	}

	respondSuccess(w, http.StatusOK, "Official updated successfully", official)
}

// Delete handles DELETE /api/officials/{official_id}/.
func (h *OfficialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.officials.Delete(r.Context(), r.PathValue("official_id")); err != nil {
		respondError(w, h.logger, err, "Failed to delete official")
		return
	}

	respondSuccess(w, http.StatusOK, "Official deleted successfully", nil)
}
