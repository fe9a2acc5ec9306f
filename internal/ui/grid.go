package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/softgrain/lightbox/internal/gallery"
)

const (
	// previewPaneWidth is the outer width reserved for the preview pane;
	// the thumbnail pane gets the rest.
	previewPaneWidth = 46

	// paneChrome is what a rounded border plus one cell of padding costs
	// per axis.
	paneChrome = 4

	minGridPaneWidth = 24
	cellGap          = 2
)

// thumbSpec describes one thumbnail cell for a size class. Bigger classes
// reveal more of each photo's metadata.
type thumbSpec struct {
	cellWidth int
	showSize  bool
	showURL   bool
}

// thumbSpecs is keyed by the ThumbSize class names.
var thumbSpecs = map[string]thumbSpec{
	"small": {cellWidth: 18},
	"med":   {cellWidth: 26, showSize: true},
	"large": {cellWidth: 38, showSize: true, showURL: true},
}

func (s thumbSpec) lines() int {
	n := 1
	if s.showSize {
		n++
	}
	if s.showURL {
		n++
	}
	return n
}

func (m Model) layoutReady() bool {
	return m.width > 0 && m.height > 0
}

// gridPaneWidth is the outer width of the thumbnail pane.
func (m Model) gridPaneWidth() int {
	w := m.width - previewPaneWidth
	if w < minGridPaneWidth {
		w = minGridPaneWidth
	}
	return w
}

func (m Model) gridInnerWidth() int {
	return m.gridPaneWidth() - paneChrome
}

// panesHeight is the outer height of the two panes: the window minus the
// header, controls, sliders, URL line, and help footer.
func (m Model) panesHeight() int {
	chrome := 8 + lipgloss.Height(m.help.View(m.keys))
	h := m.height - chrome
	if h < 6 {
		h = 6
	}
	return h
}

// gridColumns is how many thumbnail cells fit per row at the current size.
func (m Model) gridColumns() int {
	spec := thumbSpecs[m.size.String()]
	cols := m.gridInnerWidth() / (spec.cellWidth + cellGap)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// previewArtSize is the cell box available for image art inside the
// preview pane, after the border and the caption block.
func (m Model) previewArtSize() (int, int) {
	if !m.layoutReady() {
		return 0, 0
	}
	width := previewPaneWidth - paneChrome
	height := m.panesHeight() - 2 - captionLines
	if height < 4 {
		return 0, 0
	}
	return width, height
}

const captionLines = 3

// syncGrid rebuilds the thumbnail wall and keeps the selected cell
// scrolled into view. Content is rebuilt on state changes, not per frame.
func (m *Model) syncGrid() {
	st, ok := m.loadedStatus()
	if !ok || !m.layoutReady() {
		return
	}
	m.grid.Width = m.gridInnerWidth()
	m.grid.Height = m.panesHeight() - 2

	content, selectedLine := m.renderGrid(st)
	m.grid.SetContent(content)

	if selectedLine < m.grid.YOffset {
		m.grid.SetYOffset(selectedLine)
	} else if bottom := m.grid.YOffset + m.grid.Height; selectedLine >= bottom {
		m.grid.SetYOffset(selectedLine - m.grid.Height + 1)
	}
}

// renderGrid lays the photos out in rows of fixed-width cells. It returns
// the content and the first line of the selected cell, for scrolling.
func (m Model) renderGrid(st loaded) (string, int) {
	spec := thumbSpecs[m.size.String()]
	cols := m.gridColumns()
	rowHeight := spec.lines() + 1
	selectedLine := (st.selectedIndex() / cols) * rowHeight

	var b strings.Builder
	for start := 0; start < len(st.photos); start += cols {
		end := start + cols
		if end > len(st.photos) {
			end = len(st.photos)
		}

		cells := make([][]string, 0, end-start)
		for i := start; i < end; i++ {
			p := st.photos[i]
			cells = append(cells, m.renderCell(p, spec, p.URL == st.selectedURL))
		}

		for line := 0; line < spec.lines(); line++ {
			for ci, cell := range cells {
				if ci > 0 {
					b.WriteString(strings.Repeat(" ", cellGap))
				}
				b.WriteString(cell[line])
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), selectedLine
}

// renderCell draws one thumbnail as padded, styled lines. Padding happens
// before styling so ANSI codes never skew the widths.
func (m Model) renderCell(p gallery.Photo, spec thumbSpec, selected bool) []string {
	marker := "  "
	titleStyle := m.styles.Text
	if selected {
		marker = "> "
		titleStyle = m.styles.Selected
	}

	lines := make([]string, 0, spec.lines())
	title := padRight(marker+truncate(p.Title, spec.cellWidth-2), spec.cellWidth)
	lines = append(lines, titleStyle.Render(title))

	if spec.showSize {
		size := padRight(fmt.Sprintf("  %d KB", p.Size), spec.cellWidth)
		lines = append(lines, m.styles.MutedText.Render(size))
	}
	if spec.showURL {
		thumb := padRight("  "+truncateMiddle(m.source.ThumbURL(p), spec.cellWidth-2), spec.cellWidth)
		lines = append(lines, m.styles.FaintText.Render(thumb))
	}
	return lines
}
