package workflow

import (
	"context"
	"encoding/base64"
)

// extractStage decodes the uploaded PDF and extracts its text content.
// Decode failures and unreadable or text-free PDFs fail the run.
func extractStage(rt *Runtime) stageFunc {
	return func(ctx context.Context, s *PipelineState) {
		data, err := base64.StdEncoding.DecodeString(s.PDFContent)
		if err != nil {
			s.fail("PDF extraction failed: %v", err)
			return
		}

		result, err := rt.Extract(data)
		if err != nil {
			s.fail("PDF extraction failed: %v", err)
			return
		}

		s.ExtractedText = result.FullText
		s.ExtractedSections = result.Sections

		rt.Logger.InfoContext(
			ctx, "pdf extraction complete",
			"chars", len(result.FullText),
			"sections", len(result.Sections),
		)
	}
}
