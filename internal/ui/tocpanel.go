package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkotturi/mdscope/internal/theme"
	"github.com/mkotturi/mdscope/internal/viewer"
)

// ContentsPanel displays the table of contents for the current
// document, one heading per row, indented by level.
type ContentsPanel struct {
	listPanel
	headings []viewer.Heading
}

// NewContentsPanel creates a new table of contents panel.
func NewContentsPanel() ContentsPanel {
	return ContentsPanel{}
}

// SetHeadings rebuilds the panel from the document's headings.
func (cp *ContentsPanel) SetHeadings(headings []viewer.Heading) {
	cp.headings = headings
	cp.setLength(len(headings))
}

// Selected returns the heading at the cursor, or false when empty.
func (cp *ContentsPanel) Selected() (viewer.Heading, bool) {
	idx := cp.SelectedIndex()
	if idx < 0 {
		return viewer.Heading{}, false
	}
	return cp.headings[idx], true
}

// View renders the contents panel.
func (cp *ContentsPanel) View() string {
	if !cp.visible {
		return ""
	}

	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(cp.width).
		Height(cp.height).
		Background(t.Background)

	var sb strings.Builder
	sb.WriteString(panelHeader("Contents", cp.width))

	if len(cp.headings) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(t.TextDim).
			Padding(0, 1).
			Render("No headings in this document."))
		sb.WriteString("\n")
		return panelStyle.Render(sb.String())
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Selection).
		Bold(true).
		Width(cp.width).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(cp.width).
		Padding(0, 1)

	maxLen := cp.width - 4
	start, end := cp.window(1)

	for i := start; i < end; i++ {
		h := cp.headings[i]

		indent := strings.Repeat("  ", h.Level-1)
		text := truncate(fmt.Sprintf("%s%s", indent, h.Text), maxLen)

		if i == cp.cursor {
			sb.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", text)))
		} else {
			sb.WriteString(normalStyle.Render(fmt.Sprintf("  %s", text)))
		}
		sb.WriteString("\n")
	}

	linesUsed := 2 + (end - start)
	remaining := cp.height - linesUsed
	if remaining > 1 {
		for i := 0; i < remaining-1; i++ {
			sb.WriteString("\n")
		}
		sb.WriteString(panelHint("j/k:move  Enter:jump  Esc:close"))
	}

	return panelStyle.Render(sb.String())
}
