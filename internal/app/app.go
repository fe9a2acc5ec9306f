package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/softgrain/lightbox/internal/config"
	"github.com/softgrain/lightbox/internal/gallery"
	"github.com/softgrain/lightbox/internal/prefs"
	"github.com/softgrain/lightbox/internal/preview"
	"github.com/softgrain/lightbox/internal/ui"
)

// Options configure the lightbox application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/lightbox/prefs.toml
	GalleryURL string // overrides the configured gallery server when set
	Debug      bool   // log messages to the lightbox log file
}

// Run boots the lightbox TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.Debug {
		logPath := cfg.DebugLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		f, err := tea.LogToFile(logPath, "lightbox")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer func() { _ = f.Close() }()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	galleryURL := cfg.GalleryURL
	if opts.GalleryURL != "" {
		galleryURL = opts.GalleryURL
	}
	client, err := gallery.NewClient(galleryURL)
	if err != nil {
		return fmt.Errorf("init gallery client: %w", err)
	}

	// The renderer probes for chafa once at startup. When the preview is
	// disabled or chafa is missing, the UI falls back to metadata cards.
	var renderer *preview.Renderer
	if cfg.PreviewEnabled() {
		renderer = preview.New()
	}

	return ui.Run(ctx, ui.Options{
		Source:    client,
		Renderer:  renderer,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
	})
}
