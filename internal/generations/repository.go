package generations

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/menuforge/menuforge/internal/restaurants"
	"github.com/menuforge/menuforge/internal/workflow"
	"github.com/menuforge/menuforge/pkg/pagination"
	"github.com/menuforge/menuforge/pkg/query"
	"github.com/menuforge/menuforge/pkg/repository"
)

type repo struct {
	db          *sql.DB
	restaurants restaurants.System
	controller  *workflow.Controller
	logger      *slog.Logger
	pagination  pagination.Config
}

// New creates a generation repository implementing the System interface.
// The controller drives the pipeline; the restaurant system owns the
// uploaded PDF record the run is attached to.
func New(
	db *sql.DB,
	restaurantSys restaurants.System,
	controller *workflow.Controller,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:          db,
		restaurants: restaurantSys,
		controller:  controller,
		logger:      logger.With("system", "generations"),
		pagination:  pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

// Generate registers the restaurant, runs the pipeline, and persists the
// produced files. A failed pipeline run is still a successful operation:
// the failure travels in the Result, not as an error.
func (r *repo) Generate(ctx context.Context, cmd GenerateCommand) (*Result, error) {
	name := NameFromFilename(cmd.Filename)
	encoded := base64.StdEncoding.EncodeToString(cmd.Data)

	rec, err := r.restaurants.Create(ctx, restaurants.CreateCommand{
		Name:              name,
		PDFContent:        encoded,
		DesignDescription: cmd.DesignDescription,
	})
	if err != nil {
		return nil, fmt.Errorf("register restaurant: %w", err)
	}

	var design string
	if cmd.DesignDescription != nil {
		design = *cmd.DesignDescription
	}

	state := r.controller.Run(ctx, workflow.Inputs{
		RestaurantID:      rec.ID,
		PDFContent:        encoded,
		DesignDescription: design,
	})

	if state.Status == workflow.StatusCompleted && len(state.Components) > 0 {
		if err := r.saveComponents(ctx, rec.ID, state.Components); err != nil {
			// The caller still gets the generated code; persistence is
			// recoverable by rerunning the upload.
			r.logger.Warn("failed to persist generated files",
				"restaurant_id", rec.ID,
				"error", err)
		}
	}

	result := &Result{
		RestaurantID: rec.ID,
		Status:       state.Status,
		Components:   state.Components,
		ErrorMessage: state.ErrorMessage,
	}
	if result.Components == nil {
		result.Components = []workflow.Component{}
	}
	return result, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[GeneratedFile], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ComponentName", "FilePath", "RestaurantName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count generated files: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanGeneratedFile)
	if err != nil {
		return nil, fmt.Errorf("query generated files: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]GeneratedFile, error) {
	if _, err := r.restaurants.Find(ctx, restaurantID); err != nil {
		return nil, err
	}

	q, args := query.
		NewBuilder(projection, query.SortField{Field: "FilePath"}).
		WhereEquals("RestaurantID", &restaurantID).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanGeneratedFile)
	if err != nil {
		return nil, fmt.Errorf("query generated files: %w", err)
	}
	return items, nil
}

func (r *repo) saveComponents(ctx context.Context, restaurantID uuid.UUID, components []workflow.Component) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		q := `
			INSERT INTO generated_files(id, restaurant_id, component_name, file_path, code_content)
			VALUES ($1, $2, $3, $4, $5)`

		for _, c := range components {
			name := c.ComponentName
			if name == "" {
				name = "Unknown"
			}
			if err := repository.ExecExpectOne(ctx, tx, q,
				uuid.New(), restaurantID, name, c.FilePath, c.Code); err != nil {
				return struct{}{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("generated files persisted",
		"restaurant_id", restaurantID,
		"count", len(components))
	return nil
}
