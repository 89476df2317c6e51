package agent

import (
	"fmt"
	"os"
	"strings"

	"github.com/example/agora/internal/config"
)

// Identity is the calling agent's on-ledger identity: the registered
// agent id plus the signing key name used for transactions.
type Identity struct {
	AgentID string
	Key     string
}

// Current resolves the calling agent from the environment, falling back
// to the config file. AGORA_AGENT_ID/AGORA_AGENT_KEY override the config,
// which lets one machine drive several agents.
func Current() (*Identity, error) {
	id := strings.TrimSpace(os.Getenv("AGORA_AGENT_ID"))
	key := strings.TrimSpace(os.Getenv("AGORA_AGENT_KEY"))
	if id != "" && key != "" {
		return &Identity{AgentID: id, Key: key}, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve agent identity: %w", err)
	}
	if id == "" {
		id = cfg.AgentID
	}
	if key == "" {
		key = cfg.AgentKey
	}
	if id == "" || key == "" {
		return nil, fmt.Errorf("agent identity incomplete: agent_id and agent_key must be set")
	}
	return &Identity{AgentID: id, Key: key}, nil
}
