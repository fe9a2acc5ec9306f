// Package app provides the orchestration layer for the lightbox application.
//
// # Overview
//
// This package wires together configuration, preferences, the gallery
// client, and the UI to create the complete lightbox experience. It serves
// as the composition root where all dependencies are initialized and
// connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load lightbox configuration from ~/.config/lightbox/config.toml
//  2. Load user preferences (theme) from ~/.config/lightbox/prefs.toml
//  3. Initialize the HTTP client for the gallery server
//  4. Probe for chafa to decide whether inline previews are possible
//  5. Start the TUI and block until the user exits or the context cancels
//
// The UI itself issues the one manifest fetch on startup; the app layer
// performs no pre-flight request. A gallery server that is down surfaces
// inside the UI as a failed status rather than as a startup error.
//
// # Error Handling
//
// Errors returned from Run are fatal and happen before the TUI starts:
//
//   - Configuration file present but invalid
//   - Gallery URL that cannot be parsed
//
// Preferences degrade gracefully: a missing or corrupt prefs file yields
// defaults. A missing chafa binary only disables inline previews.
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to config.toml (default: ~/.config/lightbox/config.toml)
//   - PrefsPath: Path to prefs.toml (default: ~/.config/lightbox/prefs.toml)
//   - GalleryURL: Overrides the configured gallery server when set
//
// # Dependencies
//
//   - config: Loads and parses the lightbox configuration file
//   - prefs: Persists the theme choice between sessions
//   - gallery: HTTP client for the photo gallery server
//   - preview: Inline image rendering via chafa
//   - ui: Terminal user interface implementation
package app
