// Package config loads optional srtgap settings from TOML or YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srtgap/internal/subtitle"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	projectFile = "srtgap.toml"
	userFile    = "~/.config/srtgap/config.toml"
)

// Config holds defaults for a run. Command-line flags override it.
type Config struct {
	Mode    string `toml:"mode" yaml:"mode"`
	DryRun  bool   `toml:"dry_run" yaml:"dry_run"`
	Summary bool   `toml:"summary" yaml:"summary"`
}

func Default() Config {
	return Config{
		Mode:    string(subtitle.DefaultMode),
		Summary: true,
	}
}

// GapMode returns the configured mode, validated.
func (c *Config) GapMode() (subtitle.Mode, error) {
	return subtitle.ParseMode(c.Mode)
}

// Validate checks that the configuration can be used for a run.
func (c *Config) Validate() error {
	if _, err := c.GapMode(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load reads the config at path. With an empty path it looks for
// ./srtgap.toml and then ~/.config/srtgap/config.toml, falling back to
// defaults when neither exists. An explicit path must exist. Returns the
// config and the file it came from ("" for defaults).
func Load(path string) (*Config, string, error) {
	cfg := Default()

	resolved, err := resolvePath(path)
	if err != nil {
		return nil, "", err
	}

	if resolved != "" {
		if err := decodeFile(resolved, &cfg); err != nil {
			return nil, "", err
		}
	}

	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	if cfg.Mode == "" {
		cfg.Mode = string(subtitle.DefaultMode)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolved, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		err = decoder.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		err = decoder.Decode(cfg)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(expanded); err != nil {
			return "", fmt.Errorf("stat config: %w", err)
		}
		return expanded, nil
	}

	candidates := []string{projectFile, userFile}
	for _, candidate := range candidates {
		expanded, err := expandPath(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(expanded)
		if err == nil && !info.IsDir() {
			return expanded, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat config: %w", err)
		}
	}
	return "", nil
}

func expandPath(pathValue string) (string, error) {
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
