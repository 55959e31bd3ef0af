// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Every handler in this application sends JSON back to the client.
// Rather than repeating the same three lines (set header, set status,
// encode JSON) in every handler, we centralise them here. Error
// responses always share one envelope shape:
//
//	{ "status": "error", "error": "Student not found" }
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zhelinfan/HW1-CloudComputing/internal/storage"
)

// Response is the standard envelope returned for error cases. Success
// responses return the record (or list) directly.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
}

// Status string constants. Use these instead of raw string literals so
// a typo is caught by the compiler.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status
// code. Header order matters: Content-Type must be set before
// WriteHeader locks the headers in.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable Response. Each failing field becomes a plain
// English sentence; the sentences are joined with ", ".
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		case "uni":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be 2-3 lowercase letters followed by 1-4 digits", e.Field()))
		case "course_code":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be 4 uppercase letters followed by 4 digits", e.Field()))
		case "datetime":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a date in YYYY-MM-DD format", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}

// WriteInvalidPayload maps a decode/validation error to a 400 response,
// expanding field-level detail when the error came from the validator.
func WriteInvalidPayload(w http.ResponseWriter, err error) {
	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		WriteJSON(w, http.StatusBadRequest, ValidationError(validateErrs))
		return
	}
	WriteJSON(w, http.StatusBadRequest, GeneralError(err))
}

// WriteStoreError maps a typed store error to its HTTP status: 404 for
// a missing record, 400 for a duplicate-id conflict, 500 otherwise.
func WriteStoreError(w http.ResponseWriter, err error) {
	var notFound *storage.NotFoundError
	var conflict *storage.ConflictError
	switch {
	case errors.As(err, &notFound):
		WriteJSON(w, http.StatusNotFound, GeneralError(err))
	case errors.As(err, &conflict):
		WriteJSON(w, http.StatusBadRequest, GeneralError(err))
	default:
		WriteJSON(w, http.StatusInternalServerError, GeneralError(err))
	}
}
