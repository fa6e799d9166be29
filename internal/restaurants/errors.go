package restaurants

import (
	"errors"
	"net/http"
)

// Domain errors for restaurant operations.
var (
	ErrNotFound   = errors.New("restaurant not found")
	ErrDuplicate  = errors.New("restaurant already exists")
	ErrInvalidReq = errors.New("invalid restaurant request")
)

// MapHTTPStatus maps restaurant domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidReq) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
