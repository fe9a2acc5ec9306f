package ui

import (
	"context"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/softgrain/lightbox/internal/gallery"
	"github.com/softgrain/lightbox/internal/preview"
	"github.com/softgrain/lightbox/internal/prefs"
)

const (
	fetchTimeout   = 10 * time.Second
	previewTimeout = 20 * time.Second
)

// fetchPhotosCmd loads the manifest once. There is no retry; the outcome
// decides the status for the rest of the session.
func fetchPhotosCmd(source gallery.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		photos, err := source.FetchPhotos(ctx)
		return gotPhotosMsg{photos: photos, err: err}
	}
}

// surpriseCmd picks one photo uniformly at random. Every photo is a
// candidate, the first included.
func surpriseCmd(photos []gallery.Photo, randInt func(int) int) tea.Cmd {
	return func() tea.Msg {
		return photoSurprisedMsg{photo: photos[randInt(len(photos))]}
	}
}

// previewCmdForSelection renders the selected photo's large image when a
// renderer is present and the pane has a usable size. The cache
// short-circuits repeat renders of the same URL.
func (m Model) previewCmdForSelection() tea.Cmd {
	if !m.renderer.Available() {
		return nil
	}
	st, ok := m.loadedStatus()
	if !ok || len(st.photos) == 0 {
		return nil
	}
	width, height := m.previewArtSize()
	if width <= 0 || height <= 0 {
		return nil
	}
	imageURL := m.source.LargeURL(st.selectedURL)
	if _, done := m.previews[imageURL]; done {
		return nil
	}
	return previewCmd(m.source, m.renderer, imageURL, width, height)
}

// previewCmd fetches the large image and converts it to terminal art.
func previewCmd(source gallery.Source, renderer *preview.Renderer, imageURL string, width, height int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), previewTimeout)
		defer cancel()
		data, err := source.FetchImage(ctx, imageURL)
		if err != nil {
			return previewReadyMsg{url: imageURL, err: err}
		}
		rendered, err := renderer.Render(data, width, height)
		if err != nil {
			return previewReadyMsg{url: imageURL, err: err}
		}
		return previewReadyMsg{url: imageURL, rendered: rendered}
	}
}

// savePrefsCmd persists the picked theme so the next session starts with
// it. Persistence is best effort; a failed write never disturbs the UI.
func savePrefsCmd(path, themeName string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		_ = prefs.Save(path, prefs.Prefs{Theme: themeName})
		return nil
	}
}

// openBrowserCmd opens the selected photo's full-size render in the
// system browser.
func openBrowserCmd(pageURL string) tea.Cmd {
	return func() tea.Msg {
		_ = openURLInBrowser(pageURL)
		return nil
	}
}

func openURLInBrowser(pageURL string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
		args = []string{pageURL}
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", pageURL}
	default:
		name = "xdg-open"
		args = []string{pageURL}
	}
	return exec.Command(name, args...).Start()
}
