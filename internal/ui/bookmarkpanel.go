package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkotturi/mdscope/internal/storage"
	"github.com/mkotturi/mdscope/internal/theme"
)

// BookmarkPanel displays the bookmark collection, sorted by title as
// the store keeps it.
type BookmarkPanel struct {
	listPanel
	bookmarks []storage.Bookmark
}

// NewBookmarkPanel creates a new bookmark panel.
func NewBookmarkPanel() BookmarkPanel {
	return BookmarkPanel{}
}

// SetBookmarks rebuilds the panel from the store's contents.
func (bp *BookmarkPanel) SetBookmarks(bookmarks []storage.Bookmark) {
	bp.bookmarks = bookmarks
	bp.setLength(len(bookmarks))
}

// Selected returns the bookmark at the cursor and its index, or false
// when the panel is empty.
func (bp *BookmarkPanel) Selected() (storage.Bookmark, int, bool) {
	idx := bp.SelectedIndex()
	if idx < 0 {
		return storage.Bookmark{}, -1, false
	}
	return bp.bookmarks[idx], idx, true
}

// View renders the bookmark panel.
func (bp *BookmarkPanel) View() string {
	if !bp.visible {
		return ""
	}

	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(bp.width).
		Height(bp.height).
		Background(t.Background)

	var sb strings.Builder
	sb.WriteString(panelHeader("Bookmarks", bp.width))

	if len(bp.bookmarks) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(t.TextDim).
			Padding(0, 1).
			Render("No bookmarks yet. Press 'B' to bookmark a document."))
		sb.WriteString("\n")
		return panelStyle.Render(sb.String())
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Selection).
		Bold(true).
		Width(bp.width).
		Padding(0, 1)

	selectedDimStyle := lipgloss.NewStyle().
		Foreground(t.Link).
		Background(t.Selection).
		Width(bp.width).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(bp.width).
		Padding(0, 1)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Width(bp.width).
		Padding(0, 1)

	maxLen := bp.width - 4
	start, end := bp.window(2)

	for i := start; i < end; i++ {
		b := bp.bookmarks[i]

		title := truncate(b.Title, maxLen)
		location := truncate(b.Location.String(), maxLen)

		if i == bp.cursor {
			sb.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", title)))
			sb.WriteString("\n")
			sb.WriteString(selectedDimStyle.Render(fmt.Sprintf("  %s", location)))
			sb.WriteString("\n")
		} else {
			sb.WriteString(normalStyle.Render(fmt.Sprintf("  %s", title)))
			sb.WriteString("\n")
			sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s", location)))
			sb.WriteString("\n")
		}
	}

	linesUsed := 2 + (end-start)*2
	remaining := bp.height - linesUsed
	if remaining > 1 {
		for i := 0; i < remaining-1; i++ {
			sb.WriteString("\n")
		}
		sb.WriteString(panelHint("j/k:move  Enter:open  r:rename  d:del  Esc:close"))
	}

	return panelStyle.Render(sb.String())
}
