package workflow

import (
	"context"
	"fmt"
	"strings"
)

// validateStage runs lenient structural checks over the generated components.
// It never fails the run: internal errors coerce to a pass with a warning so
// the regeneration loop cannot spin on validator defects.
func validateStage(rt *Runtime) stageFunc {
	return func(ctx context.Context, s *PipelineState) {
		defer func() {
			if r := recover(); r != nil {
				rt.Logger.ErrorContext(ctx, "validator error", "error", r)
				s.IsValid = true
				s.ValidationFeedback = fmt.Sprintf("Validation completed with warning: %v", r)
			}
		}()

		s.IsValid = true
		s.ValidationErrors = nil
		s.ValidationFeedback = ""

		if len(s.Components) == 0 {
			s.IsValid = false
			s.ValidationErrors = []string{"No components generated"}
			s.ValidationFeedback = "No components were generated. Please regenerate the code."
			return
		}

		var errs []string
		for _, c := range s.Components {
			if len(strings.TrimSpace(c.Code)) < 10 {
				errs = append(errs, fmt.Sprintf("Component %s has no meaningful content", c.FilePath))
			}
		}

		if !hasReactComponent(s.Components) {
			errs = append(errs, "No valid React components found")
		}

		if len(errs) > 0 {
			s.IsValid = false
			s.ValidationErrors = errs
			s.ValidationFeedback = "Validation failed: " + strings.Join(errs, ", ")
			rt.Logger.WarnContext(ctx, "validation failed", "errors", len(errs))
		} else {
			s.IsValid = true
			s.ValidationFeedback = "Code validation passed successfully!"
			rt.Logger.InfoContext(ctx, "validation passed")
		}
	}
}

func hasReactComponent(components []Component) bool {
	for _, c := range components {
		if strings.HasSuffix(c.FilePath, ".jsx") && strings.Contains(c.Code, "React") {
			return true
		}
	}
	return false
}
