package workflow

import (
	"context"
	"log/slog"

	"github.com/menuforge/menuforge/internal/extract"
)

// ModelClient sends a stage instruction and input to a language model
// and returns the raw response content.
type ModelClient interface {
	Complete(ctx context.Context, instructions, input string) (string, error)
}

// Extractor pulls text out of raw PDF bytes.
type Extractor func(data []byte) (*extract.Result, error)

// Runtime bundles the dependencies that pipeline stages require.
// It is constructed by higher-level composition code.
type Runtime struct {
	Model   ModelClient
	Extract Extractor
	Logger  *slog.Logger
}
