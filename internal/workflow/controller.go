package workflow

import (
	"context"
)

// stageFunc mutates the pipeline state for a single stage.
type stageFunc func(ctx context.Context, s *PipelineState)

type stageTag string

const (
	tagExtract   stageTag = "extract"
	tagStructure stageTag = "structure"
	tagDesign    stageTag = "design"
	tagGenerate  stageTag = "generate"
	tagValidate  stageTag = "validate"
	tagEnd       stageTag = "end"
)

// Config bounds the pipeline's control flow.
type Config struct {
	// MaxRetries is the number of validate-triggered regenerations allowed.
	MaxRetries int
	// StepLimit caps total stage executions; exceeding it reruns the
	// pipeline linearly with validation bypassed.
	StepLimit int
}

// Controller drives a pipeline run through its stages. It holds no per-run
// state, so a single instance serves concurrent requests.
type Controller struct {
	rt  *Runtime
	cfg Config
}

// NewController creates a Controller with the given runtime and config.
func NewController(rt *Runtime, cfg Config) *Controller {
	return &Controller{rt: rt, cfg: cfg}
}

// Run executes the pipeline for the given inputs and always returns a state
// with a terminal status. Panics anywhere in the run are recovered into a
// failed state; Run never returns an error.
func (c *Controller) Run(ctx context.Context, in Inputs) (final *PipelineState) {
	defer func() {
		if r := recover(); r != nil {
			c.rt.Logger.ErrorContext(ctx, "pipeline panic", "error", r)
			s := NewState(in)
			s.fail("%v", r)
			final = s
		}
	}()

	s := NewState(in)
	tag := tagExtract
	steps := 0

	for tag != tagEnd {
		steps++
		if steps > c.cfg.StepLimit {
			c.rt.Logger.WarnContext(
				ctx, "step limit reached, bypassing validation",
				"limit", c.cfg.StepLimit,
			)
			s = NewState(in)
			c.runLinear(ctx, s)
			c.resolve(s)
			return s
		}

		c.dispatch(ctx, tag, s)
		if s.Failed() {
			break
		}

		tag = c.next(ctx, tag, s)
	}

	c.resolve(s)
	return s
}

func (c *Controller) dispatch(ctx context.Context, tag stageTag, s *PipelineState) {
	switch tag {
	case tagExtract:
		extractStage(c.rt)(ctx, s)
	case tagStructure:
		structureStage(c.rt)(ctx, s)
	case tagDesign:
		designStage(c.rt)(ctx, s)
	case tagGenerate:
		generateStage(c.rt)(ctx, s)
	case tagValidate:
		validateStage(c.rt)(ctx, s)
	}
}

// next decides the stage following tag. The validate decision owns the retry
// counter: the ceiling is checked before incrementing, so a run regenerates
// at most MaxRetries times.
func (c *Controller) next(ctx context.Context, tag stageTag, s *PipelineState) stageTag {
	switch tag {
	case tagExtract:
		return tagStructure
	case tagStructure:
		return tagDesign
	case tagDesign:
		return tagGenerate
	case tagGenerate:
		return tagValidate
	case tagValidate:
		if s.IsValid {
			return tagEnd
		}
		if s.Iterations < c.cfg.MaxRetries {
			s.Iterations++
			c.rt.Logger.InfoContext(
				ctx, "validation failed, regenerating",
				"iteration", s.Iterations,
				"max", c.cfg.MaxRetries,
			)
			return tagGenerate
		}
		c.rt.Logger.WarnContext(
			ctx, "max validation retries reached, ending",
			"max", c.cfg.MaxRetries,
		)
		return tagEnd
	}
	return tagEnd
}

// resolve forces a terminal status on the final state. A failed stage wins;
// otherwise a valid result or any generated components complete the run.
func (c *Controller) resolve(s *PipelineState) {
	switch {
	case s.Status == StatusFailed:
	case s.IsValid || len(s.Components) > 0:
		s.Status = StatusCompleted
	default:
		s.Status = StatusFailed
		s.ErrorMessage = "No code generated"
	}
}

// runLinear executes the stages once in order with the validation loop
// skipped, short-circuiting on the first failed stage.
func (c *Controller) runLinear(ctx context.Context, s *PipelineState) {
	for _, tag := range []stageTag{tagExtract, tagStructure, tagDesign, tagGenerate} {
		c.dispatch(ctx, tag, s)
		if s.Failed() {
			return
		}
	}

	if len(s.Components) > 0 {
		s.IsValid = true
		s.ValidationFeedback = "Code generated successfully (validation bypassed)"
		s.Status = StatusCompleted
	} else {
		s.IsValid = false
		s.ValidationFeedback = "No components generated"
		s.Status = StatusFailed
	}
}
