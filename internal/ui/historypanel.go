package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkotturi/mdscope/internal/nav"
	"github.com/mkotturi/mdscope/internal/theme"
)

// HistoryEntry pairs a location with its index in the navigation
// history. The index is a transient id, valid only until the history
// mutates; the panel is rebuilt from the history after every change.
type HistoryEntry struct {
	HistoryID int
	Location  nav.Location
}

// HistoryPanel displays the browsing history, newest first, with
// vim-style movement.
type HistoryPanel struct {
	listPanel
	entries []HistoryEntry
	current int // history index of the current location, -1 if none
}

// NewHistoryPanel creates a new history panel.
func NewHistoryPanel() HistoryPanel {
	return HistoryPanel{current: -1}
}

// SetEntries rebuilds the panel from the history's locations (oldest
// first, as the history stores them) and the current cursor index.
// Entries are shown newest first.
func (hp *HistoryPanel) SetEntries(locations []nav.Location, current int) {
	hp.entries = make([]HistoryEntry, 0, len(locations))
	for i := len(locations) - 1; i >= 0; i-- {
		hp.entries = append(hp.entries, HistoryEntry{HistoryID: i, Location: locations[i]})
	}
	hp.current = current
	hp.setLength(len(hp.entries))
}

// SelectedEntry returns the entry at the cursor, or false when empty.
func (hp *HistoryPanel) SelectedEntry() (HistoryEntry, bool) {
	idx := hp.SelectedIndex()
	if idx < 0 {
		return HistoryEntry{}, false
	}
	return hp.entries[idx], true
}

// View renders the history panel.
func (hp *HistoryPanel) View() string {
	if !hp.visible {
		return ""
	}

	t := theme.Current

	panelStyle := lipgloss.NewStyle().
		Width(hp.width).
		Height(hp.height).
		Background(t.Background)

	var sb strings.Builder
	sb.WriteString(panelHeader("History", hp.width))

	if len(hp.entries) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(t.TextDim).
			Padding(0, 1).
			Render("No history yet."))
		sb.WriteString("\n")
		return panelStyle.Render(sb.String())
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextBright).
		Background(t.Selection).
		Bold(true).
		Width(hp.width).
		Padding(0, 1)

	selectedDimStyle := lipgloss.NewStyle().
		Foreground(t.Link).
		Background(t.Selection).
		Width(hp.width).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Width(hp.width).
		Padding(0, 1)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Width(hp.width).
		Padding(0, 1)

	maxLen := hp.width - 4
	start, end := hp.window(2)

	for i := start; i < end; i++ {
		entry := hp.entries[i]

		name := truncate(entry.Location.Name(), maxLen)
		dir := truncate(entry.Location.Dir(), maxLen)

		marker := "  "
		if entry.HistoryID == hp.current {
			marker = "● "
		}

		if i == hp.cursor {
			sb.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s%s", marker, name)))
			sb.WriteString("\n")
			sb.WriteString(selectedDimStyle.Render(fmt.Sprintf("    %s", dir)))
			sb.WriteString("\n")
		} else {
			sb.WriteString(normalStyle.Render(fmt.Sprintf("  %s%s", marker, name)))
			sb.WriteString("\n")
			sb.WriteString(dimStyle.Render(fmt.Sprintf("    %s", dir)))
			sb.WriteString("\n")
		}
	}

	linesUsed := 2 + (end-start)*2
	remaining := hp.height - linesUsed
	if remaining > 1 {
		for i := 0; i < remaining-1; i++ {
			sb.WriteString("\n")
		}
		sb.WriteString(panelHint("j/k:move  Enter:open  d:del  D:clear  Esc:close"))
	}

	return panelStyle.Render(sb.String())
}
