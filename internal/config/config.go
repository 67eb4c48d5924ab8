package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the tool's configuration: defaults, overridden by the YAML file,
// overridden by environment variables.
type Config struct {
	App struct {
		Name string `yaml:"name" env:"SMARTNUS_APP_NAME" validate:"required"`
		Env  string `yaml:"env" env:"SMARTNUS_ENV" validate:"oneof=development production"`
	} `yaml:"app"`
	Storage struct {
		Path string `yaml:"path" env:"SMARTNUS_DB_PATH" validate:"required"`
	} `yaml:"storage"`
	UI struct {
		Theme string `yaml:"theme" env:"SMARTNUS_THEME" validate:"oneof=light dark"`
	} `yaml:"ui"`
}

func defaults() Config {
	cfg := Config{}
	cfg.App.Name = "smartnus"
	cfg.App.Env = "development"
	cfg.Storage.Path = "smartnus.db"
	cfg.UI.Theme = "light"
	return cfg
}

// Load reads the config at path. A missing file is not an error: defaults
// plus environment overrides apply.
func Load(path string) (Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env overrides: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Save writes the config back to path, creating parent directories as
// needed. Used to persist user preferences such as the theme.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
