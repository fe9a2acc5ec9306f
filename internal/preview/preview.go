package preview

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Renderer converts raw image bytes into terminal cells by piping them
// through chafa. The zero value renders nothing; use New.
type Renderer struct {
	chafaPath string
	format    string
}

const (
	minRenderWidth  = 20
	minRenderHeight = 6

	defaultRenderWidth  = 40
	defaultRenderHeight = 18
)

// New probes the environment for chafa and the richest inline image format
// the terminal supports. When chafa is missing the renderer reports itself
// unavailable and callers skip image downloads entirely.
func New() *Renderer {
	path, err := exec.LookPath("chafa")
	if err != nil {
		return &Renderer{}
	}
	return &Renderer{chafaPath: path, format: preferredFormat()}
}

// Available reports whether inline image rendering can be attempted.
func (r *Renderer) Available() bool {
	return r != nil && r.chafaPath != ""
}

// Format returns the negotiated chafa output format.
func (r *Renderer) Format() string {
	if r == nil {
		return ""
	}
	return r.format
}

// Render pipes image bytes through chafa, sized to the given cell box.
func (r *Renderer) Render(data []byte, width, height int) (string, error) {
	if !r.Available() {
		return "", fmt.Errorf("chafa is not installed")
	}
	if width < minRenderWidth {
		width = defaultRenderWidth
	}
	if height < minRenderHeight {
		height = defaultRenderHeight
	}

	cmd := exec.Command(
		r.chafaPath,
		"--size", fmt.Sprintf("%dx%d", width, height),
		"--format", r.format,
		"-",
	)
	cmd.Stdin = bytes.NewReader(data)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("render image via chafa: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// preferredFormat picks the chafa output format for the current terminal.
// Kitty and iTerm-protocol terminals get pixel-perfect images; everything
// else falls back to unicode block symbols.
func preferredFormat() string {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return "kitty"
	}
	switch strings.ToLower(os.Getenv("TERM_PROGRAM")) {
	case "iterm.app", "wezterm":
		return "iterm"
	}
	return "symbols"
}
