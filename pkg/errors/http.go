package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that already knows its status code and client-facing message.
type HTTPError struct {
	Code    int
	Message string
	Data    map[string]any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// WithData attaches structured detail rendered under "errors" in the response body.
func (e *HTTPError) WithData(data map[string]any) *HTTPError {
	e.Data = data
	return e
}

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "Bad Request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not Found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
)
