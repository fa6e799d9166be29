package generations

import (
	"context"

	"github.com/google/uuid"

	"github.com/menuforge/menuforge/pkg/pagination"
)

// System defines the public contract for generation domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	Generate(ctx context.Context, cmd GenerateCommand) (*Result, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[GeneratedFile], error)

	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]GeneratedFile, error)
}
