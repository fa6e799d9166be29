// Package workflow implements the menu-to-website generation pipeline:
// extract, structure, design, generate, validate, with a single bounded
// regeneration loop between validation and generation.
package workflow

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// Status is the lifecycle status of a pipeline run.
type Status string

// Valid pipeline statuses.
const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// LayoutStyle is the overall visual style chosen by the design stage.
type LayoutStyle string

// Valid layout styles.
const (
	LayoutModern       LayoutStyle = "modern"
	LayoutMinimalist   LayoutStyle = "minimalist"
	LayoutElegant      LayoutStyle = "elegant"
	LayoutRustic       LayoutStyle = "rustic"
	LayoutContemporary LayoutStyle = "contemporary"
)

var layoutStyles = []LayoutStyle{
	LayoutModern,
	LayoutMinimalist,
	LayoutElegant,
	LayoutRustic,
	LayoutContemporary,
}

// ParseLayoutStyle maps a raw model response value to a known layout style,
// defaulting to modern for unrecognized values.
func ParseLayoutStyle(s string) LayoutStyle {
	v := LayoutStyle(s)
	if slices.Contains(layoutStyles, v) {
		return v
	}
	return LayoutModern
}

// MenuItem is a single dish or drink on the menu.
type MenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// MenuCategory groups menu items under a heading.
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// RestaurantInfo holds contact and background details parsed from the menu.
type RestaurantInfo struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
	About   string `json:"about"`
	Website string `json:"website"`
}

// Component is a single generated source file of the website.
type Component struct {
	FilePath      string `json:"file_path"`
	Code          string `json:"code"`
	ComponentName string `json:"component_name"`
}

// Inputs are the immutable inputs to a pipeline run.
type Inputs struct {
	RestaurantID      uuid.UUID
	PDFContent        string
	DesignDescription string
}

// PipelineState is threaded through every stage of a run. Stages mutate it
// in place; a failed stage records a failed status and error message and
// never writes partial results.
type PipelineState struct {
	RestaurantID      uuid.UUID
	PDFContent        string
	DesignDescription string

	ExtractedText     string
	ExtractedSections []string

	RestaurantName string
	MenuCategories []MenuCategory
	RestaurantInfo RestaurantInfo

	Palette     map[string]string
	Typography  map[string]string
	LayoutStyle LayoutStyle

	Components []Component

	IsValid            bool
	ValidationErrors   []string
	ValidationFeedback string
	Iterations         int

	Status       Status
	ErrorMessage string
}

// NewState creates the initial pipeline state for the given inputs.
func NewState(in Inputs) *PipelineState {
	return &PipelineState{
		RestaurantID:      in.RestaurantID,
		PDFContent:        in.PDFContent,
		DesignDescription: in.DesignDescription,
		Status:            StatusProcessing,
	}
}

// Failed reports whether a stage has marked the run as failed.
func (s *PipelineState) Failed() bool {
	return s.Status == StatusFailed
}

func (s *PipelineState) fail(format string, args ...any) {
	s.Status = StatusFailed
	s.ErrorMessage = fmt.Sprintf(format, args...)
}
