package seeder

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo seeding settings.
type Config struct {
	// DatasetPath points at a YAML dataset. Empty uses the embedded demo set.
	DatasetPath string `yaml:"dataset_path" env:"SEEDER_DATASET_PATH"`
	// Password signs up every demo seller that does not set its own.
	Password string `yaml:"password"     env:"SEEDER_PASSWORD"     env-default:"Demo1234"`
	DryRun   bool   `yaml:"dry_run"      env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads the optional YAML file at path, then the SEEDER_*
// environment on top of it. A path that does not exist is an error.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	switch {
	case path == "":
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("seeder config: env: %w", err)
		}
	default:
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: %s: %w", path, err)
		}
	}

	if cfg.Password == "" {
		return nil, errors.New("seeder config: password must not be empty")
	}
	return &cfg, nil
}
