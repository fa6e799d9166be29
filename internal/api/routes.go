package api

import (
	"net/http"

	"github.com/menuforge/menuforge/internal/config"
	"github.com/menuforge/menuforge/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Restaurants.Handler().Routes(),
		domain.Generations.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)
}
