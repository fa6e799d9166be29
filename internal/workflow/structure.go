package workflow

import (
	"context"

	"github.com/menuforge/menuforge/internal/prompts"
	"github.com/menuforge/menuforge/pkg/formatting"
)

type structureResponse struct {
	RestaurantName string         `json:"restaurant_name"`
	MenuCategories []MenuCategory `json:"menu_categories"`
	RestaurantInfo RestaurantInfo `json:"restaurant_info"`
}

// structureStage organizes extracted menu text into categories, items,
// and restaurant details via the model.
func structureStage(rt *Runtime) stageFunc {
	return func(ctx context.Context, s *PipelineState) {
		instructions, err := prompts.Instructions(prompts.StageStructure)
		if err != nil {
			s.fail("Menu structuring failed: %v", err)
			return
		}

		input := "Please analyze this restaurant menu text and extract the structured information:\n\n" + s.ExtractedText

		content, err := rt.Model.Complete(ctx, instructions, input)
		if err != nil {
			s.fail("Menu structuring failed: %v", err)
			return
		}

		parsed, err := formatting.Parse[structureResponse](content)
		if err != nil {
			s.fail("Menu structuring failed: %v", err)
			return
		}

		s.RestaurantName = parsed.RestaurantName
		if s.RestaurantName == "" {
			s.RestaurantName = "Restaurant"
		}
		s.MenuCategories = parsed.MenuCategories
		if s.MenuCategories == nil {
			s.MenuCategories = []MenuCategory{}
		}
		s.RestaurantInfo = parsed.RestaurantInfo

		rt.Logger.InfoContext(
			ctx, "menu structuring complete",
			"restaurant", s.RestaurantName,
			"categories", len(s.MenuCategories),
		)
	}
}
