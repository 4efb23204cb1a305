package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkotturi/mdscope/internal/theme"
)

// listPanel is the shared scaffolding for the side panels: a vertical
// list with a cursor, a scroll window, and vim-style movement. Each
// panel owns its entries and rendering; the scaffold owns position.
type listPanel struct {
	cursor  int
	offset  int
	width   int
	height  int
	visible bool
	length  int
}

// SetSize updates the panel dimensions.
func (p *listPanel) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// Show makes the panel visible with the cursor at the top.
func (p *listPanel) Show() {
	p.visible = true
	p.cursor = 0
	p.offset = 0
}

// Hide closes the panel.
func (p *listPanel) Hide() {
	p.visible = false
}

// IsVisible reports whether the panel is shown.
func (p *listPanel) IsVisible() bool {
	return p.visible
}

// setLength records the entry count and re-clamps the cursor.
func (p *listPanel) setLength(n int) {
	p.length = n
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.ensureVisible()
}

// CursorUp moves the cursor up one entry.
func (p *listPanel) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
		p.ensureVisible()
	}
}

// CursorDown moves the cursor down one entry.
func (p *listPanel) CursorDown() {
	if p.cursor < p.length-1 {
		p.cursor++
		p.ensureVisible()
	}
}

// GotoTop moves to the first entry.
func (p *listPanel) GotoTop() {
	p.cursor = 0
	p.offset = 0
}

// GotoBottom moves to the last entry.
func (p *listPanel) GotoBottom() {
	if p.length > 0 {
		p.cursor = p.length - 1
		p.ensureVisible()
	}
}

// SelectedIndex returns the cursor index, or -1 when the list is empty.
func (p *listPanel) SelectedIndex() int {
	if p.length == 0 {
		return -1
	}
	return p.cursor
}

// visibleCount returns how many entries fit in the visible area. Each
// entry takes rowHeight lines; three lines go to the header.
func (p *listPanel) visibleCount(rowHeight int) int {
	available := p.height - 3
	if available <= 0 {
		return 1
	}
	count := available / rowHeight
	if count < 1 {
		count = 1
	}
	return count
}

// ensureVisible adjusts the offset so the cursor stays in the window.
// Panels with two-line rows dominate, so that is the clamp used here.
func (p *listPanel) ensureVisible() {
	visible := p.visibleCount(2)
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+visible {
		p.offset = p.cursor - visible + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// window returns the [start, end) slice of entries currently visible.
func (p *listPanel) window(rowHeight int) (int, int) {
	visible := p.visibleCount(rowHeight)
	end := p.offset + visible
	if end > p.length {
		end = p.length
	}
	return p.offset, end
}

// panelHeader renders the title line and separator common to every
// panel.
func panelHeader(title string, width int) string {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Background(t.Surface).
		Width(width).
		Padding(0, 1)

	sepWidth := width - 2
	if sepWidth < 1 {
		sepWidth = 1
	}
	separator := lipgloss.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", sepWidth))

	return titleStyle.Render(title) + "\n" + separator + "\n"
}

// panelHint renders the keybinding hint line at the bottom of a panel.
func panelHint(hint string) string {
	return lipgloss.NewStyle().
		Foreground(theme.Current.TextDim).
		Italic(true).
		Padding(0, 1).
		Render(hint)
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
