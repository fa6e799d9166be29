package api

import (
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/menuforge/menuforge/internal/config"
	"github.com/menuforge/menuforge/internal/infrastructure"
	"github.com/menuforge/menuforge/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent      gaconfig.AgentConfig
	Workflow   config.WorkflowConfig
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
		},
		Agent:      cfg.Agent,
		Workflow:   cfg.Workflow,
		Pagination: cfg.API.Pagination,
	}
}
