// Package config loads algoselect settings from built-in defaults, an
// optional YAML file and ALGOSELECT_* environment variables, in that order
// of increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/abhisek/algoselect/internal/engine"
	"github.com/abhisek/algoselect/internal/validation"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "ALGOSELECT_"

	// ConfigPathEnvVar names a config file to load when --config is not set.
	ConfigPathEnvVar = EnvPrefix + "CONFIG"
)

// UI modes.
const (
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// Config is the complete application configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	UI     UIConfig     `koanf:"ui"`
	Engine EngineConfig `koanf:"engine"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`

	// File receives log output. In TUI mode logs are discarded unless a
	// file is set.
	File string `koanf:"file"`
}

// UIConfig controls the interactive front-ends.
type UIConfig struct {
	Mode        string `koanf:"mode" validate:"oneof=tui plain"`
	SkipWelcome bool   `koanf:"skip_welcome"`
	NoColor     bool   `koanf:"no_color"`
}

// EngineConfig tunes the decision engine.
type EngineConfig struct {
	SizePolicy string `koanf:"size_policy" validate:"oneof=high unknown"`
}

// Options converts the engine section to engine.Options.
func (c EngineConfig) Options() engine.Options {
	return engine.Options{SizePolicy: engine.SizePolicy(c.SizePolicy)}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		UI: UIConfig{
			Mode: ModeTUI,
		},
		Engine: EngineConfig{
			SizePolicy: string(engine.SizePolicyHigh),
		},
	}
}

// Load builds the configuration. path is an explicit config file and may be
// empty, in which case ALGOSELECT_CONFIG and the default locations are tried.
// An explicit path that does not exist is an error; a missing default file
// is not.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	return validation.Struct(c)
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.UI.Mode = strings.ToLower(strings.TrimSpace(c.UI.Mode))
	c.Engine.SizePolicy = strings.ToLower(strings.TrimSpace(c.Engine.SizePolicy))
}

// envTransformFunc maps ALGOSELECT_SECTION_KEY to section.key. Only the first
// underscore after the prefix separates the section, so
// ALGOSELECT_ENGINE_SIZE_POLICY becomes engine.size_policy.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range defaultConfigPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func defaultConfigPaths() []string {
	paths := []string{"algoselect.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "algoselect", "config.yaml"))
	}
	return paths
}
