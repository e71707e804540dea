// Package config loads client settings from three layers: compiled
// defaults, an optional YAML file, then PARLEY_* environment variables.
// Later layers win. Command line flags are the fourth layer and are
// applied by the command package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is everything the client can be told before it starts.
type Config struct {
	// Server is the websocket URL of the chat server.
	Server string `yaml:"server"`
	// Name is the display name to register with. Empty means the login
	// screen asks for one.
	Name string `yaml:"name"`
	// Profile names the saved credential set under the config dir.
	Profile string `yaml:"profile"`
	// Theme is the visual preset to start with.
	Theme string `yaml:"theme"`
	// Debug turns on debug level logging.
	Debug bool `yaml:"debug"`
	// LogFile is where logs go. The terminal belongs to the UI.
	LogFile string `yaml:"log_file"`
}

// Dir returns the per-user directory for config, profiles and logs.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "parley")
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the compiled-in layer.
func Default() Config {
	return Config{
		Server:  "ws://127.0.0.1:8080",
		Profile: "default",
		Theme:   "dark",
		LogFile: filepath.Join(Dir(), "parley.log"),
	}
}

// Load builds a Config from defaults, then the YAML file at path, then the
// environment. A missing file is not an error; a file that exists but does
// not parse is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults are fine.
	default:
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PARLEY_SERVER"); v != "" {
		c.Server = v
	}
	if v := os.Getenv("PARLEY_NAME"); v != "" {
		c.Name = v
	}
	if v := os.Getenv("PARLEY_PROFILE"); v != "" {
		c.Profile = v
	}
	if v := os.Getenv("PARLEY_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("PARLEY_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("PARLEY_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}
