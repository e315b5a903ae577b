package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/tyma/backend/internal/model"
	"github.com/tyma/backend/internal/service"
)

// NewsletterHandler handles newsletter subscription endpoints.
type NewsletterHandler struct {
	newsletter service.NewsletterService
	logger     *zap.Logger
}

// NewNewsletterHandler creates a NewsletterHandler with the given service.
func NewNewsletterHandler(newsletter service.NewsletterService, logger *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter, logger: logger}
}

// emailRequest is the expected JSON body for subscribe and unsubscribe.
type emailRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter/subscribe/.
// A new subscription answers 201; reactivating or re-subscribing an
// already active email answers 200, both as success.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	result, err := h.newsletter.Subscribe(r.Context(), req.Email)
	if err != nil {
		respondError(w, h.logger, err, "Failed to subscribe to newsletter")
		return
	}

	switch result.Outcome {
	case model.SubscribeReactivated:
		respondSuccess(w, http.StatusOK, "Newsletter subscription reactivated successfully", result.Subscriber)
	case model.SubscribeUnchanged:
		respondSuccess(w, http.StatusOK, "Email is already subscribed to newsletter", result.Subscriber)
	default:
		respondSuccess(w, http.StatusCreated, "Successfully subscribed to newsletter", result.Subscriber)
	}
}

// Unsubscribe handles POST /api/newsletter/unsubscribe/.
// Unsubscribing an email that was never subscribed, or is already
// inactive, is a success and writes nothing.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid input", nil)
		return
	}

	subscriber, err := h.newsletter.Unsubscribe(r.Context(), req.Email)
	if err != nil {
		respondError(w, h.logger, err, "Failed to unsubscribe from newsletter")
		return
	}

	if subscriber == nil {
		respondSuccess(w, http.StatusOK, "Email is not subscribed to the newsletter", nil)
		return
	}
	respondSuccess(w, http.StatusOK, "Successfully unsubscribed from newsletter", subscriber)
}

// Subscribers handles GET /api/newsletter/subscribers/.
// Supports query params: active_only (default true), page, per_page.
func (h *NewsletterHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := service.SubscriberListInput{
		ActiveOnly: boolQuery(q, "active_only", true),
		Page:       intQuery(q, "page", defaultPage),
		PerPage:    intQuery(q, "per_page", defaultPerPage),
	}

	page, err := h.newsletter.Subscribers(r.Context(), in)
	if err != nil {
		respondError(w, h.logger, err, "Failed to retrieve newsletter subscribers")
		return
	}

	respondSuccess(w, http.StatusOK, "Newsletter subscribers retrieved successfully", page)
}
