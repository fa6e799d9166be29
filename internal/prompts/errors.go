package prompts

import "errors"

// ErrInvalidStage indicates an unrecognized workflow stage value.
var ErrInvalidStage = errors.New("invalid workflow stage")
