package generations

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/menuforge/menuforge/pkg/query"
	"github.com/menuforge/menuforge/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "generated_files", "f").
	Project("id", "ID").
	Project("restaurant_id", "RestaurantID").
	Project("component_name", "ComponentName").
	Project("file_path", "FilePath").
	Project("code_content", "CodeContent").
	Project("created_at", "CreatedAt").
	Join("public", "restaurants", "r", "LEFT JOIN", "f.restaurant_id = r.id").
	Project("name", "RestaurantName")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for generated file queries.
// Nil fields are ignored. ComponentName and FilePath use case-insensitive
// contains matching.
type Filters struct {
	RestaurantID  *uuid.UUID `json:"restaurant_id,omitempty"`
	ComponentName *string    `json:"component_name,omitempty"`
	FilePath      *string    `json:"file_path,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("RestaurantID", f.RestaurantID).
		WhereContains("ComponentName", f.ComponentName).
		WhereContains("FilePath", f.FilePath)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if rid := values.Get("restaurant_id"); rid != "" {
		if id, err := uuid.Parse(rid); err == nil {
			f.RestaurantID = &id
		}
	}

	if cn := values.Get("component_name"); cn != "" {
		f.ComponentName = &cn
	}

	if fp := values.Get("file_path"); fp != "" {
		f.FilePath = &fp
	}

	return f
}

func scanGeneratedFile(s repository.Scanner) (GeneratedFile, error) {
	var g GeneratedFile
	err := s.Scan(
		&g.ID,
		&g.RestaurantID,
		&g.ComponentName,
		&g.FilePath,
		&g.CodeContent,
		&g.CreatedAt,
		&g.RestaurantName,
	)
	return g, err
}
