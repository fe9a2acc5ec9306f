// Package config handles loading and parsing lightbox configuration files.
//
// # Overview
//
// This package reads lightbox's TOML configuration to discover the gallery
// server endpoint and a handful of local settings. The gallery itself needs
// nothing beyond a base URL; everything else here tunes the client.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/lightbox/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/lightbox/config.toml
//   - Gallery endpoint: 127.0.0.1:8488
//   - Log directory: ~/.local/share/lightbox
//   - Debug log: <log_dir>/lightbox.log
//   - Preview: "auto"
//
// # Configuration Fields
//
//   - GalleryURL: base URL (host:port or full URL) of the photo gallery server
//   - LogDir: directory the -debug flag writes its log file into
//   - Preview: "auto" attempts inline image previews, "off" disables them
//
// # TOML Format
//
// Example config.toml:
//
//	gallery_url = "photos.example.net:8080"
//	log_dir = "~/.local/share/lightbox"
//	preview = "auto"
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead.
// This allows lightbox to work out-of-the-box against a local gallery
// server without any configuration file.
//
// # Usage Example
//
//	// Use default config path
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//
//	// Access configuration
//	client, err := gallery.NewClient(cfg.GalleryURL)
//	logPath := cfg.DebugLogPath()
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct.
package config
