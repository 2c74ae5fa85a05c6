package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// WithErr records the underlying cause and returns e.
func (e *HTTPError) WithErr(err error) *HTTPError {
	e.Err = err
	return e
}

// Wrap attaches a status code and a visitor-facing message to err.
func Wrap(code int, message string, err error) *HTTPError {
	return &HTTPError{Code: code, Message: message, Err: err}
}

// Helper for common errors
var (
	ErrBadRequest = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrNotFound   = func(msg string) *HTTPError { return NewHTTPError(http.StatusNotFound, msg) }
	ErrConflict   = func(msg string) *HTTPError { return NewHTTPError(http.StatusConflict, msg) }
)

// StatusOf returns the code carried by err, or 500 if it carries none.
func StatusOf(err error) (int, string) {
	var httpErr *HTTPError
	if stderrors.As(err, &httpErr) {
		return httpErr.Code, httpErr.Message
	}
	return http.StatusInternalServerError, "Internal error"
}
