package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type validatable interface {
	Validate() error
}

// Load reads the backend configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEdge reads the edge proxy configuration the same way Load does.
func LoadEdge() (*EdgeConfig, error) {
	var cfg EdgeConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadTool reads the maintenance command configuration.
func LoadTool() (*ToolConfig, error) {
	var cfg ToolConfig
	if err := load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(cfg validatable) error {
	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}
