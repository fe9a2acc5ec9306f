// Package preview renders image bytes as terminal output.
//
// Rendering is delegated to the chafa binary when it is on PATH. The output
// format is negotiated from the terminal environment: kitty graphics where
// KITTY_WINDOW_ID is set, the iTerm inline-image protocol for iTerm2 and
// WezTerm, and plain unicode symbols everywhere else.
//
// chafa is optional. New returns an unavailable Renderer when the binary is
// missing, and the UI falls back to a textual preview card instead of
// downloading images it cannot show.
package preview
