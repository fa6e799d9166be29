package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvWorkflowMaxRetries = "MENUFORGE_WORKFLOW_MAX_VALIDATION_RETRIES"
	EnvWorkflowStepLimit  = "MENUFORGE_WORKFLOW_STEP_LIMIT"
)

// WorkflowConfig bounds the generation pipeline's control flow.
type WorkflowConfig struct {
	MaxValidationRetries int `toml:"max_validation_retries"`
	StepLimit            int `toml:"step_limit"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WorkflowConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.MaxValidationRetries != 0 {
		c.MaxValidationRetries = overlay.MaxValidationRetries
	}
	if overlay.StepLimit != 0 {
		c.StepLimit = overlay.StepLimit
	}
}

func (c *WorkflowConfig) loadDefaults() {
	if c.MaxValidationRetries == 0 {
		c.MaxValidationRetries = 1
	}
	if c.StepLimit == 0 {
		c.StepLimit = 20
	}
}

func (c *WorkflowConfig) loadEnv() {
	if v := os.Getenv(EnvWorkflowMaxRetries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxValidationRetries = n
		}
	}
	if v := os.Getenv(EnvWorkflowStepLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.StepLimit = n
		}
	}
}

func (c *WorkflowConfig) validate() error {
	if c.MaxValidationRetries < 0 {
		return fmt.Errorf("max_validation_retries cannot be negative")
	}
	if c.StepLimit < 1 {
		return fmt.Errorf("step_limit must be positive")
	}
	return nil
}
