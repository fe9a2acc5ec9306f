package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders one frame for the current status. Loading and failure are
// single lines; the gallery itself is a full-screen layout.
func (m Model) View() string {
	switch st := m.status.(type) {
	case loading:
		return m.renderLoading()
	case failed:
		return m.renderFailed(st)
	case loaded:
		return m.renderLoaded(st)
	default:
		return ""
	}
}

func (m Model) renderLoading() string {
	return "\n  " + m.spinner.View() + " Loading...\n"
}

// renderFailed shows the failure and nothing else. The state is terminal,
// so there is no retry affordance to draw.
func (m Model) renderFailed(st failed) string {
	return "\n  " + m.styles.DangerText.Render("Error! "+st.message) + "\n"
}

func (m Model) renderLoaded(st loaded) string {
	// Before the first window size arrives there is nothing to lay out
	// against, so fall back to a bare list.
	if !m.layoutReady() {
		var b strings.Builder
		for _, p := range st.photos {
			marker := "  "
			if p.URL == st.selectedURL {
				marker = "> "
			}
			b.WriteString(marker + p.Title + "\n")
		}
		return b.String()
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderGridPane(),
		m.renderPreviewPane(st),
	)
	urlLine := "  " + m.styles.FaintText.Render(truncateMiddle(m.largePhotoURL(), m.width-4))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(st),
		"",
		m.renderControls(),
		m.renderSliders(),
		"",
		panes,
		urlLine,
		m.help.View(m.keys),
	)
}

func (m Model) renderHeader(st loaded) string {
	logo := m.styles.Logo.Render("lightbox")
	host := m.styles.MutedText.Render(m.source.Host())
	count := m.styles.FaintText.Render(fmt.Sprintf("%d photos", len(st.photos)))
	return m.styles.Header.Render(logo + "  " + host + "  " + count)
}

// renderControls draws the surprise button and the size chooser. The
// current size is the highlighted chip.
func (m Model) renderControls() string {
	parts := []string{" ", m.styles.Chip.Render("Surprise Me!"), "  "}
	for i, s := range sizeOrder {
		chip := m.styles.Chip
		if s == m.size {
			chip = m.styles.ChipActive
		}
		parts = append(parts, chip.Render(fmt.Sprintf("%d %s", i+1, s)), " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) renderSliders() string {
	rows := make([]string, len(m.sliders))
	for i, sl := range m.sliders {
		focused := m.focus == focusHue+focusArea(i)
		rows[i] = "  " + sl.view(m.filterValue(filterKind(i)), m.styles, focused)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderGridPane() string {
	style := m.styles.Pane
	if m.focus == focusGallery {
		style = m.styles.PaneFocused
	}
	return style.
		Width(m.gridPaneWidth() - 2).
		Height(m.panesHeight() - 2).
		Render(m.grid.View())
}

// renderPreviewPane shows the rendered image when one is cached, and a
// metadata card while art is missing or rendering is unavailable.
func (m Model) renderPreviewPane(st loaded) string {
	imageURL := m.source.LargeURL(st.selectedURL)

	var body string
	if art, ok := m.previews[imageURL]; ok {
		body = art + "\n\n" + m.renderCaption(st)
	} else {
		body = m.renderMetadataCard(st)
	}
	return m.styles.Pane.
		Width(previewPaneWidth - 2).
		Height(m.panesHeight() - 2).
		Render(body)
}

// renderCaption is the short block under rendered art.
func (m Model) renderCaption(st loaded) string {
	width := previewPaneWidth - paneChrome
	photo, ok := st.selectedPhoto()
	if !ok {
		return m.styles.FaintText.Render(truncateMiddle(m.source.LargeURL(st.selectedURL), width))
	}
	title := m.styles.PaneTitle.Render(truncate(photo.Title, width))
	size := m.styles.MutedText.Render(fmt.Sprintf("%d KB", photo.Size))
	return title + "\n" + size
}

// renderMetadataCard describes the selected photo in text.
func (m Model) renderMetadataCard(st loaded) string {
	width := previewPaneWidth - paneChrome
	photo, ok := st.selectedPhoto()
	if !ok {
		return m.styles.MutedText.Render("No photo selected") + "\n\n" +
			m.styles.FaintText.Render(truncateMiddle(m.source.LargeURL(st.selectedURL), width))
	}

	lines := []string{
		m.styles.PaneTitle.Render(truncate(photo.Title, width)),
		m.styles.MutedText.Render(fmt.Sprintf("%d KB", photo.Size)),
		"",
		m.styles.FaintText.Render(truncateMiddle(m.source.ThumbURL(photo), width)),
		m.styles.FaintText.Render(truncateMiddle(m.source.LargeURL(st.selectedURL), width)),
		"",
		m.styles.MutedText.Render(fmt.Sprintf("hue %d  ripple %d  noise %d", m.hue, m.ripple, m.noise)),
	}
	if m.previewErr != "" {
		lines = append(lines, "", m.styles.WarningText.Render(truncate("preview: "+m.previewErr, width)))
	}
	if !m.renderer.Available() {
		lines = append(lines, "", m.styles.FaintText.Render("Install chafa for inline previews"))
	}
	return strings.Join(lines, "\n")
}
