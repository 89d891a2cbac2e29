package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is the configuration file read when neither an explicit
// path nor CONFIG_PATH is given.
const DefaultPath = "./config.yaml"

// defaults returns the settings whose default is not the zero value of
// a type cleanenv cannot tell apart from an unset field.
func defaults() Config {
	return Config{
		Dictionary: DictionaryConfig{Watch: true},
	}
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (env-default tags, and defaults for
// booleans that default to true).
//
// The file is path if non-empty, else CONFIG_PATH, else DefaultPath.
// A missing file is an error only when it was asked for explicitly;
// otherwise configuration comes from ENV and defaults alone.
func Load(path string) (*Config, error) {
	cfg := defaults()

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv("CONFIG_PATH")
		explicitPath = path != ""
	}
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
