package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Existing-directory policies for repeated pulls of the same match.
const (
	OnExistingOverwrite = "overwrite"
	OnExistingSkip      = "skip"
	OnExistingFail      = "fail"
)

type ProviderConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Username   string        `yaml:"username"`
	Password   string        `yaml:"password"`
	TimeoutStr string        `yaml:"timeout"`
	Timeout    time.Duration `yaml:"-"` // parsed from TimeoutStr
}

type PullConfig struct {
	CompetitionID int `yaml:"competition_id"`
	SeasonID      int `yaml:"season_id"`
	// MatchID selects the match to pull; 0 means the first match in
	// provider order.
	MatchID    int    `yaml:"match_id"`
	OnExisting string `yaml:"on_existing"`
}

type StorageConfig struct {
	BaseDir     string `yaml:"base_dir"`
	CatalogFile string `yaml:"catalog_file"`
}

type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Pull     PullConfig     `yaml:"pull"`
	Storage  StorageConfig  `yaml:"storage"`
}

// Load reads configuration from a yaml file, fills in defaults for anything
// left unset, and overlays provider credentials from the environment
// (STATSBOMB_USERNAME / STATSBOMB_PASSWORD, typically set via a .env file).
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"
	}
	if cfg.Provider.TimeoutStr != "" {
		cfg.Provider.Timeout, err = time.ParseDuration(cfg.Provider.TimeoutStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse provider timeout: %w", err)
		}
	} else {
		cfg.Provider.Timeout = 30 * time.Second
	}
	if user := os.Getenv("STATSBOMB_USERNAME"); user != "" {
		cfg.Provider.Username = user
	}
	if pass := os.Getenv("STATSBOMB_PASSWORD"); pass != "" {
		cfg.Provider.Password = pass
	}

	if cfg.Pull.CompetitionID == 0 {
		cfg.Pull.CompetitionID = 9 // 1. Bundesliga
	}
	if cfg.Pull.SeasonID == 0 {
		cfg.Pull.SeasonID = 281 // 2023/2024
	}
	if cfg.Pull.OnExisting == "" {
		cfg.Pull.OnExisting = OnExistingOverwrite
	}
	switch cfg.Pull.OnExisting {
	case OnExistingOverwrite, OnExistingSkip, OnExistingFail:
	default:
		return nil, fmt.Errorf("invalid on_existing policy %q (want overwrite, skip or fail)", cfg.Pull.OnExisting)
	}

	if cfg.Storage.BaseDir == "" {
		cfg.Storage.BaseDir = "matches"
	}
	if cfg.Storage.CatalogFile == "" {
		cfg.Storage.CatalogFile = "catalog.db"
	}

	return &cfg, nil
}
