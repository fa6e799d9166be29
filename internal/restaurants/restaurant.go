// Package restaurants implements the restaurant domain: the uploaded menu
// record that generation runs are tracked against.
package restaurants

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant represents an uploaded menu and its owning restaurant.
// PDFContent holds the base64-encoded menu document and is never serialized
// in API responses.
type Restaurant struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	PDFContent        string    `json:"-"`
	DesignDescription *string   `json:"design_description"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to register a restaurant.
type CreateCommand struct {
	Name              string
	PDFContent        string
	DesignDescription *string
}
