package response

import (
	"time"

	"backend/internal/apperror"
)

// Response represents a standard success response format
type Response struct {
	Status     string      `json:"status"` // always "success"
	StatusCode int         `json:"status_code"`
	Data       interface{} `json:"data,omitempty"`
}

// FieldError describes one failed validation rule on a (possibly nested,
// dot-joined) field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorBody is the wire shape of every failed request.
type ErrorBody struct {
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message"`
	Kind       string         `json:"kind"`
	Timestamp  string         `json:"timestamp"`
	Path       string         `json:"path"`
	Errors     []FieldError   `json:"errors,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error builds the error body for a typed application error.
func Error(err *apperror.Error, path string) ErrorBody {
	return ErrorBody{
		StatusCode: err.StatusCode(),
		Message:    err.Message,
		Kind:       string(err.Kind),
		Timestamp:  err.Timestamp.UTC().Format(time.RFC3339),
		Path:       path,
		Details:    err.Details,
	}
}

// ValidationError builds the error body for failed input validation, carrying
// the per-field failures.
func ValidationError(err *apperror.Error, path string, fields []FieldError) ErrorBody {
	body := Error(err, path)
	body.Errors = fields
	return body
}
