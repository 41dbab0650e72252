package docserver

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/validoc/pkg/render"
	"github.com/dmitrymomot/validoc/pkg/validoc"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Envelope is the JSON response body.
type Envelope struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON wraps data in the envelope with status 200.
func JSON(data any, meta map[string]any) Response {
	return jsonResponse{status: http.StatusOK, body: Envelope{Data: data, Meta: meta}}
}

// JSONError maps err to a status and error code.
func JSONError(err error) Response {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, validoc.ErrValidatorNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, render.ErrUnknownFormat), errors.Is(err, ErrInvalidParam):
		status, code = http.StatusBadRequest, "bad_request"
	case errors.Is(err, validoc.ErrNilValidator), errors.Is(err, validoc.ErrNilDescriptor):
		status, code = http.StatusInternalServerError, "invalid_validator"
	}
	return jsonResponse{status: status, body: Envelope{Error: &ErrorDetail{Code: code, Message: err.Error()}}}
}

// formatted renders a document with a non-JSON formatter.
type formatted struct {
	formatter render.Formatter
	doc       render.Document
}

func (f formatted) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", f.formatter.ContentType())
	w.WriteHeader(http.StatusOK)
	return f.formatter.Format(w, f.doc)
}
