// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"net/http"

	"github.com/remaimber-it/quiz/internal/domain/questionbank"
)

// maxBodyBytes caps request bodies; a submission is a few dozen bytes.
const maxBodyBytes = 1 << 20

// Handler holds all dependencies needed by HTTP handlers.
// The bank is read-only, so handlers can run concurrently without locking.
type Handler struct {
	bank   *questionbank.Bank
	logger *slog.Logger

	// pick returns a uniform random int in [0, n). It must be safe for concurrent use.
	pick func(n int) int
}

// Option customizes a Handler.
type Option func(*Handler)

// WithPicker replaces the random ID source used by the random-question endpoint.
func WithPicker(pick func(n int) int) Option {
	return func(h *Handler) {
		h.pick = pick
	}
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(bank *questionbank.Bank, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		bank:   bank,
		logger: logger,
		pick:   rand.Intn,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Question with ID 99 not found. Available IDs: 0-4"`
	Field  string `json:"field,omitempty" example:"answer"`
}

// ValidationError reports a malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// validator is implemented by request bodies that check their own shape.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes an ErrorResponse with the given status code.
func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, ErrorResponse{Detail: detail})
}

// handleError maps domain and validation errors to HTTP responses.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Detail: verr.Message, Field: verr.Field})
	case errors.Is(err, questionbank.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// decodeAndValidate decodes the JSON body into v and runs its validation.
// Returns false after writing a 400 response if either step fails.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Detail: "must be of type " + typeErr.Type.String(),
				Field:  typeErr.Field,
			})
		case errors.Is(err, io.EOF):
			respondError(w, http.StatusBadRequest, "request body is required")
		default:
			respondError(w, http.StatusBadRequest, "invalid JSON body")
		}
		return false
	}

	return !h.handleError(w, v.Validate())
}
