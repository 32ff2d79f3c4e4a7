package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Maoxiaogui/lvyouzhinan/internal/domain"
)

// ErrorDetail is the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON serializes v with the given status. Encoding failures are logged
// rather than surfaced; the status line has already been written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// decodeJSON reads the request body into dest, rejecting unknown fields.
func decodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return errors.New("request body must be valid JSON")
	}
	return nil
}

// badRequest writes a 422 for requests rejected before reaching the service
// layer (malformed body, unparseable parameter).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// notFound writes a 404 with the caller's resource-specific message.
// The handler is the layer that knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Error: ErrorDetail{Code: "not_found", Message: message},
	})
}

// respondError maps domain sentinel errors to HTTP statuses and the uniform
// error body. notFoundMsg is used when the error is domain.ErrNotFound.
// Unknown errors become 500 with a generic message so internals never leak.
func respondError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: ErrorDetail{Code: "validation_error", Message: validationMessage(err)},
		})
	case errors.Is(err, domain.ErrInsufficientCatalog):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: ErrorDetail{Code: "insufficient_catalog", Message: "the catalog has no attractions to plan with"},
		})
	case errors.Is(err, domain.ErrNotFound):
		notFound(w, notFoundMsg)
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// validationMessage extracts the field-naming tail from a wrapped validation error.
// e.g. "service.PlannerService.SaveTrip: validation error: trip id is required"
// → "trip id is required".
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
