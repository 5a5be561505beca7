// Package config loads settings for the jtval command.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds the command line settings. Every field can also be set in a
// YAML file passed with --config; flags win over the file.
type Config struct {
	Engine        string `mapstructure:"engine"`
	Draft         string `mapstructure:"draft"`
	AssertFormat  bool   `mapstructure:"assert_format"`
	RaiseOnError  bool   `mapstructure:"raise_on_error"`
	ApplyDefaults bool   `mapstructure:"apply_defaults"`
	LogLevel      string `mapstructure:"log_level"`
	Lang          string `mapstructure:"lang"`
	Addr          string `mapstructure:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Engine:        "santhosh",
		Draft:         "2020-12",
		ApplyDefaults: true,
		LogLevel:      "warn",
		Lang:          "en",
		Addr:          ":8080",
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := Decode(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies YAML settings in b onto cfg. Unknown keys are errors.
func Decode(b []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
