package generations

import (
	"errors"
	"net/http"
	"testing"
)

func TestNameFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"simple", "bistro.pdf", "Bistro"},
		{"underscores", "marios_pizza_palace.pdf", "Marios Pizza Palace"},
		{"uppercase extension", "Menu.PDF", "Menu"},
		{"mixed case words", "THE golden SPOON.pdf", "The Golden Spoon"},
		{"no extension", "cafe_luna", "Cafe Luna"},
		{"multiple spaces collapse", "la__casa.pdf", "La Casa"},
		{"numbers preserved", "route_66_diner.pdf", "Route 66 Diner"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NameFromFilename(tc.filename); got != tc.want {
				t.Errorf("NameFromFilename(%q) = %q, want %q", tc.filename, got, tc.want)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"duplicate", ErrDuplicate, http.StatusConflict},
		{"too large", ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"invalid file", ErrInvalidFile, http.StatusBadRequest},
		{"not pdf", ErrNotPDF, http.StatusBadRequest},
		{"wrapped", errors.Join(ErrNotPDF, errors.New("extra")), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapHTTPStatus(tc.err); got != tc.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
