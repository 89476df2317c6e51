package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default chain settings, matching the devnet deployment.
const (
	DefaultChainID   = "stateset-1"
	DefaultBinary    = "wasmd"
	DefaultDenom     = "ibc/aiUSD"
	DefaultGasPrices = "0.025stake"

	// ContractAgentRegistry is the contracts-map key for the commerce
	// contract every command targets.
	ContractAgentRegistry = "agent_registry"
)

// Config is the flat agora configuration stored as JSON.
type Config struct {
	Version   string            `json:"version"`
	AgentID   string            `json:"agent_id"`
	AgentKey  string            `json:"agent_key"`
	ChainID   string            `json:"chain_id,omitempty"`
	Node      string            `json:"node,omitempty"`
	Container string            `json:"container,omitempty"`
	Binary    string            `json:"binary,omitempty"`
	Denom     string            `json:"denom,omitempty"`
	GasPrices string            `json:"gas_prices,omitempty"`
	Contracts map[string]string `json:"contracts"`
}

// LoadConfig reads config.json from the given directory.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// SaveConfig writes config.json to the given directory.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Dir returns the agora home directory, honoring AGORA_HOME.
func Dir() (string, error) {
	if dir := os.Getenv("AGORA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".agora"), nil
}

// Load reads the config from the agora home directory.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadConfig(dir)
}

// RegistryContract returns the commerce contract address.
func (c *Config) RegistryContract() (string, error) {
	addr, ok := c.Contracts[ContractAgentRegistry]
	if !ok || addr == "" {
		return "", fmt.Errorf("config: no %s contract address configured", ContractAgentRegistry)
	}
	return addr, nil
}

// Validate checks the fields every command needs.
func (c *Config) Validate() error {
	if c.AgentID == "" {
		return fmt.Errorf("config: agent_id is required")
	}
	if c.AgentKey == "" {
		return fmt.Errorf("config: agent_key is required")
	}
	if _, err := c.RegistryContract(); err != nil {
		return err
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.ChainID == "" {
		c.ChainID = DefaultChainID
	}
	if c.Binary == "" {
		c.Binary = DefaultBinary
	}
	if c.Denom == "" {
		c.Denom = DefaultDenom
	}
	if c.GasPrices == "" {
		c.GasPrices = DefaultGasPrices
	}
}

// NewDefault returns a config skeleton for `agora init`.
func NewDefault(agentID, agentKey string) *Config {
	return &Config{
		Version:   "1",
		AgentID:   agentID,
		AgentKey:  agentKey,
		ChainID:   DefaultChainID,
		Binary:    DefaultBinary,
		Denom:     DefaultDenom,
		GasPrices: DefaultGasPrices,
		Contracts: map[string]string{ContractAgentRegistry: ""},
	}
}
