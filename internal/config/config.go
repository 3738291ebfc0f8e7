package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name inside a data directory.
const FileName = "hrbank.yaml"

// Config represents the top-level hrbank.yaml configuration.
type Config struct {
	Bank  BankConfig  `yaml:"bank"`
	Files FilesConfig `yaml:"files"`
	Git   GitConfig   `yaml:"git"`
}

// BankConfig identifies the bank.
type BankConfig struct {
	Name string `yaml:"name"`
}

// FilesConfig names the data files inside the data directory.
type FilesConfig struct {
	Accounts     string `yaml:"accounts"`
	Transactions string `yaml:"transactions"`
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads an hrbank.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new data dir.
func Default(bankName string) *Config {
	return &Config{
		Bank: BankConfig{
			Name: bankName,
		},
		Files: FilesConfig{
			Accounts:     "accounts.txt",
			Transactions: "transactions.txt",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "hrbank",
			AuthorEmail: "hrbank@localhost",
		},
	}
}
