package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath string    `yaml:"db_path"`
	Pet    PetConfig `yaml:"pet"`
}

type PetConfig struct {
	// Curve is the leveling policy: "flat" (default) or "percent".
	Curve string `yaml:"curve"`
	// BaseExpPerLevel is the EXP cost of level 1 -> 2. Zero means use the
	// base persisted with the pet profile.
	BaseExpPerLevel float64 `yaml:"base_exp_per_level"`
	// CurveStep is the per-level cost increment (flat EXP or percent).
	CurveStep float64 `yaml:"curve_step"`
}

// DefaultPath returns the default config location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".ecobuddy.yaml"), nil
}

// Load reads the config file at path, applying defaults for anything unset.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Pet: PetConfig{
			Curve:     "flat",
			CurveStep: 10,
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
