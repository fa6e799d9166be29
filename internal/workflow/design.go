package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/menuforge/menuforge/internal/prompts"
	"github.com/menuforge/menuforge/pkg/formatting"
)

type designResponse struct {
	DesignSystem map[string]string `json:"design_system"`
	Typography   map[string]string `json:"typography"`
	LayoutStyle  string            `json:"layout_style"`
}

// designStage produces the color palette, typography, and layout style
// for the generated site.
func designStage(rt *Runtime) stageFunc {
	return func(ctx context.Context, s *PipelineState) {
		instructions, err := prompts.Instructions(prompts.StageDesign)
		if err != nil {
			s.fail("UI design failed: %v", err)
			return
		}

		input := "Create a design system for this restaurant website:\n\n" + designContext(s)

		content, err := rt.Model.Complete(ctx, instructions, input)
		if err != nil {
			s.fail("UI design failed: %v", err)
			return
		}

		parsed, err := formatting.Parse[designResponse](content)
		if err != nil {
			s.fail("UI design failed: %v", err)
			return
		}

		s.Palette = parsed.DesignSystem
		if s.Palette == nil {
			s.Palette = map[string]string{}
		}
		s.Typography = parsed.Typography
		if s.Typography == nil {
			s.Typography = map[string]string{}
		}
		s.LayoutStyle = ParseLayoutStyle(parsed.LayoutStyle)

		rt.Logger.InfoContext(
			ctx, "ui design complete",
			"layout_style", s.LayoutStyle,
		)
	}
}

func designContext(s *PipelineState) string {
	name := s.RestaurantName
	if name == "" {
		name = "Restaurant"
	}

	categories := make([]string, 0, len(s.MenuCategories))
	for _, cat := range s.MenuCategories {
		categories = append(categories, cat.Name)
	}

	description := s.DesignDescription
	if description == "" {
		description = "No specific design requirements - create a modern, sophisticated design"
	}

	return fmt.Sprintf(
		"Restaurant: %s\nMenu Categories: %s\nDesign Description: %s",
		name,
		strings.Join(categories, ", "),
		description,
	)
}
