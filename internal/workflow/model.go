package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

type agentClient struct {
	cfg gaconfig.AgentConfig
}

// NewAgentClient creates a ModelClient backed by a chat agent.
// A fresh agent is created per call so the client is safe for concurrent use.
func NewAgentClient(cfg gaconfig.AgentConfig) ModelClient {
	return &agentClient{cfg: cfg}
}

func (c *agentClient) Complete(ctx context.Context, instructions, input string) (string, error) {
	a, err := agent.New(&c.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, instructions+"\n\n"+input)
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	return resp.Text(), nil
}
