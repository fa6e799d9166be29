package generations

import (
	"errors"
	"net/http"
)

// Domain errors for generation operations.
var (
	ErrNotFound     = errors.New("generated file not found")
	ErrDuplicate    = errors.New("generated file already exists")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
	ErrInvalidFile  = errors.New("invalid file")
	ErrNotPDF       = errors.New("file must be a PDF")
)

// MapHTTPStatus maps generation domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidFile) || errors.Is(err, ErrNotPDF) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
