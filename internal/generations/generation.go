// Package generations implements the website generation domain: running the
// menu-to-site pipeline for an uploaded PDF and persisting the produced files.
package generations

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/menuforge/menuforge/internal/workflow"
)

// GeneratedFile represents a single persisted file of a generated website.
type GeneratedFile struct {
	ID             uuid.UUID `json:"id"`
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	ComponentName  string    `json:"component_name"`
	FilePath       string    `json:"file_path"`
	CodeContent    string    `json:"code_content"`
	CreatedAt      time.Time `json:"created_at"`
	RestaurantName string    `json:"restaurant_name"`
}

// GenerateCommand carries an uploaded menu PDF into a generation run.
type GenerateCommand struct {
	Filename          string
	Data              []byte
	DesignDescription *string
}

// Result is the API-facing outcome of a generation run.
type Result struct {
	RestaurantID uuid.UUID            `json:"restaurant_id"`
	Status       workflow.Status      `json:"status"`
	Components   []workflow.Component `json:"components"`
	ErrorMessage string               `json:"error_message,omitempty"`
}

// NameFromFilename derives a display name from an uploaded PDF filename:
// the extension is dropped, underscores become spaces, and each word is
// title-cased.
func NameFromFilename(filename string) string {
	name := filename
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".pdf") {
		name = name[:len(name)-4]
	}
	name = strings.ReplaceAll(name, "_", " ")

	words := strings.Fields(name)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
