package restaurants_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/menuforge/menuforge/internal/restaurants"
	"github.com/menuforge/menuforge/pkg/query"
)

func ptr[T any](v T) *T { return &v }

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", restaurants.ErrNotFound, http.StatusNotFound},
		{"duplicate", restaurants.ErrDuplicate, http.StatusConflict},
		{"invalid request", restaurants.ErrInvalidReq, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", restaurants.ErrNotFound), http.StatusNotFound},
		{"wrapped invalid", fmt.Errorf("create failed: %w", restaurants.ErrInvalidReq), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := restaurants.MapHTTPStatus(tt.err)
			if got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("name present", func(t *testing.T) {
		values := url.Values{"name": {"trattoria"}}
		f := restaurants.FiltersFromQuery(values)

		if f.Name == nil || *f.Name != "trattoria" {
			t.Errorf("Name = %v, want trattoria", f.Name)
		}
	})

	t.Run("empty params yield nil fields", func(t *testing.T) {
		f := restaurants.FiltersFromQuery(url.Values{})

		if f.Name != nil {
			t.Errorf("Name = %v, want nil", f.Name)
		}
	})
}

func TestFiltersApply(t *testing.T) {
	projection := query.
		NewProjectionMap("public", "restaurants", "r").
		Project("name", "Name")

	t.Run("no filters produces no WHERE clause", func(t *testing.T) {
		b := query.NewBuilder(projection)
		f := restaurants.Filters{}
		f.Apply(b)
		sql, args := b.Build()

		wantSQL := "SELECT r.name FROM public.restaurants r"
		if sql != wantSQL {
			t.Errorf("sql = %q, want %q", sql, wantSQL)
		}
		if len(args) != 0 {
			t.Errorf("args = %v, want empty", args)
		}
	})

	t.Run("name contains filter", func(t *testing.T) {
		b := query.NewBuilder(projection)
		f := restaurants.Filters{Name: ptr("luna")}
		f.Apply(b)
		_, args := b.Build()

		if len(args) != 1 || args[0] != "%luna%" {
			t.Errorf("args = %v, want [%%luna%%]", args)
		}
	})
}
