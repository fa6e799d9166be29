package api

import (
	"github.com/menuforge/menuforge/internal/extract"
	"github.com/menuforge/menuforge/internal/generations"
	"github.com/menuforge/menuforge/internal/restaurants"
	"github.com/menuforge/menuforge/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Restaurants restaurants.System
	Generations generations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	restaurantSys := restaurants.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	controller := workflow.NewController(
		&workflow.Runtime{
			Model:   workflow.NewAgentClient(runtime.Agent),
			Extract: extract.FromPDF,
			Logger:  runtime.Logger,
		},
		workflow.Config{
			MaxRetries: runtime.Workflow.MaxValidationRetries,
			StepLimit:  runtime.Workflow.StepLimit,
		},
	)

	generationSys := generations.New(
		runtime.Database.Connection(),
		restaurantSys,
		controller,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Restaurants: restaurantSys,
		Generations: generationSys,
	}
}
