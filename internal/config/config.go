package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields lightbox reads from its config file.
type Config struct {
	GalleryURL string
	LogDir     string
	Preview    string
}

const (
	defaultConfigPath = "~/.config/lightbox/config.toml"
	defaultLogDir     = "~/.local/share/lightbox"
	defaultGalleryURL = "127.0.0.1:8488"

	previewAuto = "auto"
	previewOff  = "off"
)

// Load locates and parses the lightbox config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{GalleryURL: defaultGalleryURL, LogDir: defaultLogDir, Preview: previewAuto}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.LogDir = mustExpand(defaultLogDir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		GalleryURL string `toml:"gallery_url"`
		LogDir     string `toml:"log_dir"`
		Preview    string `toml:"preview"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.GalleryURL = strings.TrimSpace(raw.GalleryURL)
	if cfg.GalleryURL == "" {
		cfg.GalleryURL = defaultGalleryURL
	}

	cfg.LogDir = strings.TrimSpace(raw.LogDir)
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	cfg.Preview = strings.ToLower(strings.TrimSpace(raw.Preview))
	if cfg.Preview == "" {
		cfg.Preview = previewAuto
	}

	return cfg, nil
}

// PreviewEnabled reports whether inline image previews may be attempted.
func (c Config) PreviewEnabled() bool {
	return strings.ToLower(strings.TrimSpace(c.Preview)) != previewOff
}

// DebugLogPath returns the file the -debug flag logs to.
func (c Config) DebugLogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/lightbox.log")
	}
	return filepath.Join(c.LogDir, "lightbox.log")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
