package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/tyma/backend/internal/service"
)

// ContactHandler handles contact form submission and admin listing.
type ContactHandler struct {
	contacts service.ContactService
	logger   *zap.Logger
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contacts service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

// Submit handles POST /api/contact/.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	submission, err := h.contacts.Submit(r.Context(), in)
	if err != nil {
		respondError(w, h.logger, err, "Failed to create contact submission")
		return
	}

	respondSuccess(w, http.StatusCreated, "Contact submission created successfully", submission)
}

// List handles GET /api/contact/.
// Supports query params: email (partial match), subject (exact match),
// page, per_page.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := service.ContactListInput{
		Email:   q.Get("email"),
		Subject: q.Get("subject"),
		Page:    intQuery(q, "page", defaultPage),
		PerPage: intQuery(q, "per_page", defaultPerPage),
	}

	page, err := h.contacts.List(r.Context(), in)
	if err != nil {
		respondError(w, h.logger, err, "Failed to retrieve contact submissions")
		return
	}

	respondSuccess(w, http.StatusOK, "Contact submissions retrieved successfully", page)
}

// Subjects handles GET /api/contact/subjects/.
func (h *ContactHandler) Subjects(w http.ResponseWriter, r *http.Request) {
	choices := h.contacts.Subjects()
	respondSuccess(w, http.StatusOK, "Subject choices retrieved successfully", choices)
}

// respondedRequest is the expected JSON body for
// PATCH /api/contact/{id}/responded/.
type respondedRequest struct {
	IsResponded   bool    `json:"is_responded"`
	ResponseNotes *string `json:"response_notes"`
}

// SetResponded handles PATCH /api/contact/{id}/responded/.
func (h *ContactHandler) SetResponded(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req respondedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	submission, err := h.contacts.SetResponded(r.Context(), id, req.IsResponded, req.ResponseNotes)
	if err != nil {
		respondError(w, h.logger, err, "Failed to update contact submission")
		return
	}

	respondSuccess(w, http.StatusOK, "Contact submission updated successfully", submission)
}
