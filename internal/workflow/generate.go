package workflow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/menuforge/menuforge/internal/prompts"
	"github.com/menuforge/menuforge/pkg/formatting"
)

type generateResponse struct {
	Components []Component `json:"components"`
}

// generateStage produces the React site files from the structured menu
// and design system. Re-entered at most once when validation fails.
func generateStage(rt *Runtime) stageFunc {
	return func(ctx context.Context, s *PipelineState) {
		instructions, err := prompts.Instructions(prompts.StageGenerate)
		if err != nil {
			s.fail("Code generation failed: %v", err)
			return
		}

		input := "Generate a complete React SPA for this restaurant:\n\n" + generateContext(s)

		content, err := rt.Model.Complete(ctx, instructions, input)
		if err != nil {
			s.fail("Code generation failed: %v", err)
			return
		}

		parsed, err := formatting.Parse[generateResponse](content)
		if err != nil {
			s.fail("Code generation failed: %v", err)
			return
		}

		s.Components = parsed.Components
		if s.Components == nil {
			s.Components = []Component{}
		}

		rt.Logger.InfoContext(
			ctx, "code generation complete",
			"components", len(s.Components),
		)
	}
}

func generateContext(s *PipelineState) string {
	name := s.RestaurantName
	if name == "" {
		name = "Restaurant"
	}

	layout := s.LayoutStyle
	if layout == "" {
		layout = LayoutModern
	}

	return fmt.Sprintf(
		"Restaurant: %s\nMenu Categories: %s\nRestaurant Info: %s\nDesign System: %s\nTypography: %s\nLayout Style: %s",
		name,
		indentJSON(s.MenuCategories),
		indentJSON(s.RestaurantInfo),
		indentJSON(s.Palette),
		indentJSON(s.Typography),
		layout,
	)
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
