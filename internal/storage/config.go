package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds mdscope user configuration. It is an explicitly owned
// handle: construct it once with LoadConfig and pass it to whatever
// needs it; Reload re-reads the file on request rather than through any
// hidden cache.
type Config struct {
	Theme              string   `json:"theme"`
	LightMode          bool     `json:"light_mode"`
	MarkdownExtensions []string `json:"markdown_extensions"`
	path               string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:              "default",
		LightMode:          false,
		MarkdownExtensions: []string{".md", ".markdown"},
	}
}

// LoadConfig loads configuration from the standard config directory,
// creating a default file on first run. The location can be overridden
// with the MDSCOPE_CONFIG environment variable.
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.Save()
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.path = path
	return &cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := configPath()
		if err != nil {
			return err
		}
		c.path = path
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(c.path, data, 0o644)
}

// Reload re-reads the configuration file into this handle. Fields
// absent from the file keep their current values.
func (c *Config) Reload() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// GlamourStyle returns the glamour style name matching the configured
// mode.
func (c *Config) GlamourStyle() string {
	if c.LightMode {
		return "light"
	}
	return "dark"
}

func configPath() (string, error) {
	if override := os.Getenv("MDSCOPE_CONFIG"); override != "" {
		return override, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DataDir returns the data directory for persistent storage (history
// and bookmarks).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "mdscope")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, "mdscope")
		} else {
			dir = filepath.Join(home, ".mdscope")
		}
	default: // Linux, BSD, etc.
		xdgData := os.Getenv("XDG_DATA_HOME")
		if xdgData != "" {
			dir = filepath.Join(xdgData, "mdscope")
		} else {
			dir = filepath.Join(home, ".local", "share", "mdscope")
		}
	}

	return dir, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home dir: %w", err)
	}

	var dir string
	switch runtime.GOOS {
	case "darwin":
		dir = filepath.Join(home, "Library", "Application Support", "mdscope")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			dir = filepath.Join(appData, "mdscope")
		} else {
			dir = filepath.Join(home, ".mdscope")
		}
	default:
		xdgConfig := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfig != "" {
			dir = filepath.Join(xdgConfig, "mdscope")
		} else {
			dir = filepath.Join(home, ".config", "mdscope")
		}
	}

	return dir, nil
}
