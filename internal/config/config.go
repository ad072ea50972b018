package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dshills/dangermd/internal/danger"
)

// Config represents the dangermd configuration.
type Config struct {
	ID       string `json:"id"`
	Format   string `json:"format"`
	FailOn   string `json:"failOn"`
	LogLevel string `json:"logLevel"`
	Owner    string `json:"owner,omitempty"`
	Repo     string `json:"repo,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		ID:       "default",
		Format:   "markdown",
		FailOn:   danger.FailOnFails,
		LogLevel: "info",
	}
}

// ConfigDir returns the platform-appropriate config directory for dangermd.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dangermd"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "dangermd"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "dangermd"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "dangermd"), nil
	default:
		return filepath.Join(home, ".config", "dangermd"), nil
	}
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return ConfigPath()
}

// LoadFile loads config from path, or the default location when path is
// empty. Returns zero Config and nil error if the file doesn't exist.
func LoadFile(path string) (Config, error) {
	path, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to path, or the default location when path is empty.
func Save(path string, cfg Config) error {
	path, err := resolvePath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadFileWithDefaults returns the defaults with the fields present in the
// file at path layered on top. A missing file yields the defaults; a file
// that cannot be parsed is an error.
func LoadFileWithDefaults(path string) (Config, error) {
	fileCfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	mergeFile(&cfg, fileCfg)
	return cfg, nil
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(path string, overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func Validate(cfg Config) error {
	if cfg.ID == "" {
		return fmt.Errorf("id must not be empty")
	}
	switch cfg.Format {
	case "markdown", "md", "json":
	default:
		return fmt.Errorf("unsupported format %q (want markdown or json)", cfg.Format)
	}
	if !danger.ValidThreshold(cfg.FailOn) {
		return fmt.Errorf("unsupported failOn %q (want none, fails, or warnings)", cfg.FailOn)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported logLevel %q (want debug, info, warn, or error)", cfg.LogLevel)
	}
	return nil
}

func mergeFile(dst *Config, src Config) {
	if src.ID != "" {
		dst.ID = src.ID
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.FailOn != "" {
		dst.FailOn = src.FailOn
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Owner != "" {
		dst.Owner = src.Owner
	}
	if src.Repo != "" {
		dst.Repo = src.Repo
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("DANGERMD_ID"); v != "" {
		cfg.ID = v
	}
	if v := os.Getenv("DANGERMD_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("DANGERMD_FAIL_ON"); v != "" {
		cfg.FailOn = v
	}
	if v := os.Getenv("DANGERMD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DANGERMD_OWNER"); v != "" {
		cfg.Owner = v
	}
	if v := os.Getenv("DANGERMD_REPO"); v != "" {
		cfg.Repo = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	for key, v := range overrides {
		if v == "" {
			continue
		}
		// Unknown keys are ignored; the CLI only emits known ones.
		_ = SetField(cfg, key, v)
	}
}

// SetField sets a single config field by key name. Returns error if key is
// unknown. Values are checked by Validate.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "id":
		cfg.ID = value
	case "format":
		cfg.Format = value
	case "failOn":
		cfg.FailOn = value
	case "logLevel":
		cfg.LogLevel = value
	case "owner":
		cfg.Owner = value
	case "repo":
		cfg.Repo = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
