package restaurants

import (
	"net/url"

	"github.com/menuforge/menuforge/pkg/query"
	"github.com/menuforge/menuforge/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "restaurants", "r").
	Project("id", "ID").
	Project("name", "Name").
	Project("pdf_content", "PDFContent").
	Project("design_description", "DesignDescription").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for restaurant queries.
// Name uses case-insensitive contains matching.
type Filters struct {
	Name *string `json:"name,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereContains("Name", f.Name)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("name"); n != "" {
		f.Name = &n
	}

	return f
}

func scanRestaurant(s repository.Scanner) (Restaurant, error) {
	var r Restaurant
	err := s.Scan(
		&r.ID,
		&r.Name,
		&r.PDFContent,
		&r.DesignDescription,
		&r.CreatedAt,
	)
	return r, err
}
