// Package ui provides the terminal user interface for the lightbox gallery.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. All state lives in a single Model value;
// the only way it changes is by a message passing through Update. Side
// effects (HTTP fetches, random picks, image rendering, preference writes)
// run as commands that deliver their results back as messages, so the
// update loop is the sole writer and needs no locking.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - model.go: The Model struct, construction, and Init
//   - update.go: Message handling and every state transition
//   - view.go: Frame rendering for the three statuses
//   - commands.go: Command constructors for fetches, random picks, and renders
//   - status.go: The loading/loaded/failed status variants
//   - grid.go: Thumbnail wall layout and the size-class cell table
//   - slider.go: The hue, ripple, and noise filter controls
//   - messages.go: Message types exchanged with commands
//   - theme.go: Color themes and Lipgloss style construction
//   - keys.go: Key bindings and help text
//
// # Status Model
//
// The gallery is always in exactly one of three statuses:
//
//   - loading: the manifest fetch is in flight; a spinner renders
//   - loaded: photos are on screen with one of them selected
//   - failed: the fetch failed or returned no photos; terminal for the session
//
// Selection, thumbnail size, and the filter values are independent of the
// status transitions: size and filters persist across failures, and
// selection messages are dropped unless photos are on screen.
//
// # Event Flow
//
//  1. Run() starts the program; Init issues the one manifest fetch
//  2. gotPhotosMsg resolves the fetch into loaded or failed
//  3. Key presses become selection moves, size switches, or slider slides
//  4. "Surprise Me!" runs a command that picks a photo uniformly at random
//  5. Selection changes trigger a background render of the large image
//
// # External Dependencies
//
//   - gallery.Source: Manifest fetches, image bytes, and URL construction
//   - preview.Renderer: Inline image rendering via chafa, when installed
//   - prefs: Theme persistence between sessions
package ui
