package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/tyma/backend/internal/service"
)

// ZoneHandler handles zone management endpoints.
type ZoneHandler struct {
	zones  service.ZoneService
	logger *zap.Logger
}

// NewZoneHandler creates a ZoneHandler with the given service.
func NewZoneHandler(zones service.ZoneService, logger *zap.Logger) *ZoneHandler {
	return &ZoneHandler{zones: zones, logger: logger}
}

// Create handles POST /api/zones/.
func (h *ZoneHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateZoneInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	zone, err := h.zones.Create(r.Context(), in)
	if err != nil {
		respondError(w, h.logger, err, "Failed to create zone")
		return
	}

	respondSuccess(w, http.StatusCreated, "Zone created successfully", zone)
}

// Get handles GET /api/zones/{slug}/.
func (h *ZoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	zone, err := h.zones.Get(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, h.logger, err, "Failed to retrieve zone")
		return
	}

	respondSuccess(w, http.StatusOK, "Zone retrieved successfully", zone)
}

// List handles GET /api/zones/.
func (h *ZoneHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := service.ZoneListInput{
		Page:    intQuery(q, "page", defaultPage),
		PerPage: intQuery(q, "per_page", defaultPerPage),
	}

	page, err := h.zones.List(r.Context(), in)
	if err != nil {
		respondError(w, h.logger, err, "Failed to retrieve zones")
		return
	}

	respondSuccess(w, http.StatusOK, "Zones retrieved successfully", page)
}

// Update handles PUT /api/zones/{slug}/.
func (h *ZoneHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.UpdateZoneInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	zone, err := h.zones.Update(r.Context(), r.PathValue("slug"), in)
	if err != nil {
		respondError(w, h.logger, err, "Failed to update zone")
		return
	}

	respondSuccess(w, http.StatusOK, "Zone updated successfully", zone)
}

// Delete handles DELETE /api/zones/{slug}/.
func (h *ZoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.zones.Delete(r.Context(), r.PathValue("slug")); err != nil {
		respondError(w, h.logger, err, "Failed to delete zone")
		return
	}

	respondSuccess(w, http.StatusOK, "Zone deleted successfully", nil)
}
