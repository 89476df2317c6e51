package agent

import (
	"testing"

	"github.com/example/agora/internal/config"
)

func TestCurrentFromEnv(t *testing.T) {
	t.Setenv("AGORA_AGENT_ID", "agent_env")
	t.Setenv("AGORA_AGENT_KEY", "env-key")

	identity, err := Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if identity.AgentID != "agent_env" || identity.Key != "env-key" {
		t.Errorf("env identity not used: %+v", identity)
	}
}

func TestCurrentFromConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AGORA_HOME", dir)
	t.Setenv("AGORA_AGENT_ID", "")
	t.Setenv("AGORA_AGENT_KEY", "")

	cfg := config.NewDefault("agent_cfg", "cfg-key")
	cfg.Contracts[config.ContractAgentRegistry] = "wasm1contract"
	if err := config.SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	identity, err := Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if identity.AgentID != "agent_cfg" || identity.Key != "cfg-key" {
		t.Errorf("config identity not used: %+v", identity)
	}
}

func TestCurrentMissingEverything(t *testing.T) {
	t.Setenv("AGORA_HOME", t.TempDir())
	t.Setenv("AGORA_AGENT_ID", "")
	t.Setenv("AGORA_AGENT_KEY", "")

	if _, err := Current(); err == nil {
		t.Error("expected error with no identity available")
	}
}
