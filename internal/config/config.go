package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "payproc.yaml"

// Config represents the top-level payproc.yaml configuration.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Inputs    InputsConfig    `yaml:"inputs"`
	Outputs   OutputsConfig   `yaml:"outputs"`
	Git       GitConfig       `yaml:"git"`
}

// WorkspaceConfig identifies the processing workspace.
type WorkspaceConfig struct {
	Name string `yaml:"name"`
}

// InputsConfig holds workspace-relative paths to the batch inputs.
type InputsConfig struct {
	Users        string `yaml:"users"`
	Transactions string `yaml:"transactions"`
	Bins         string `yaml:"bins"`
	Countries    string `yaml:"countries,omitempty"` // empty = built-in table
}

// OutputsConfig holds workspace-relative paths to the batch outputs.
type OutputsConfig struct {
	Balances  string `yaml:"balances"`
	Decisions string `yaml:"decisions"`
}

// GitConfig controls the audit trail commits.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a payproc.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard workspace layout.
func Default(name string) *Config {
	return &Config{
		Workspace: WorkspaceConfig{Name: name},
		Inputs: InputsConfig{
			Users:        "input/users.csv",
			Transactions: "input/transactions.csv",
			Bins:         "input/bins.csv",
			Countries:    "input/countries.csv",
		},
		Outputs: OutputsConfig{
			Balances:  "output/balances.csv",
			Decisions: "output/decisions.csv",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Payproc",
			AuthorEmail: "batch@payproc.dev",
		},
	}
}
