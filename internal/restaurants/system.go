package restaurants

import (
	"context"

	"github.com/google/uuid"

	"github.com/menuforge/menuforge/pkg/pagination"
)

// System defines the public contract for restaurant domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Restaurant], error)

	Find(ctx context.Context, id uuid.UUID) (*Restaurant, error)
	Create(ctx context.Context, cmd CreateCommand) (*Restaurant, error)
}
