package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/tyma/backend/internal/service"
)

// Defaults applied when a pagination query parameter is absent or not a
// number. Out-of-range values are clamped by the service layer.
const (
	defaultPage    = 1
	defaultPerPage = 10
)

// successEnvelope and failureEnvelope are the two shapes of the uniform
// API response. Every endpoint answers with one of them.
type successEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type failureEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// respondSuccess writes the success envelope with the given status. A
// nil data value serializes as JSON null.
func respondSuccess(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(successEnvelope{Success: true, Message: message, Data: data})
}

// respondFailure writes the failure envelope. A nil field map becomes
// an empty errors object.
func respondFailure(w http.ResponseWriter, status int, message string, fields map[string]string) {
	if fields == nil {
		fields = map[string]string{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(failureEnvelope{Success: false, Message: message, Errors: fields})
}

// respondError translates a service error into the failure envelope.
// Unexpected errors are logged and answered with the given generic
// message so internals never reach the client.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error, message string) {
	var ve *service.ValidationError
	var nf *service.NotFoundError
	var cf *service.ConflictError
	switch {
	case errors.As(err, &ve):
		respondFailure(w, http.StatusBadRequest, "Invalid input", ve.Fields)
	case errors.As(err, &nf):
		respondFailure(w, http.StatusNotFound, nf.Message, nil)
	case errors.As(err, &cf):
		respondFailure(w, http.StatusConflict, cf.Message, nil)
	default:
		logger.Error("request failed", zap.Error(err))
		respondFailure(w, http.StatusInternalServerError, message, nil)
	}
}

// intQuery returns the named query parameter as an int, or def when the
// parameter is absent or not a number.
func intQuery(q url.Values, name string, def int) int {
	raw := q.Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// boolQuery returns the named query parameter as a bool, or def when
// the parameter is absent or not a recognized boolean literal.
func boolQuery(q url.Values, name string, def bool) bool {
	raw := q.Get(name)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}
