package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mkotturi/mdscope/internal/theme"
)

// DocViewport wraps bubbles/viewport for the rendered document, with a
// welcome screen before anything is loaded.
type DocViewport struct {
	viewport   viewport.Model
	ready      bool
	contentSet bool
}

// NewDocViewport creates a new viewport (dimensions set on first
// WindowSizeMsg).
func NewDocViewport() DocViewport {
	return DocViewport{}
}

// SetSize updates the viewport dimensions.
func (dv *DocViewport) SetSize(width, height int) {
	if !dv.ready {
		dv.viewport = viewport.New(width, height)
		dv.viewport.MouseWheelEnabled = true
		dv.viewport.MouseWheelDelta = 3
		dv.ready = true
	} else {
		dv.viewport.Width = width
		dv.viewport.Height = height
	}
}

// SetContent replaces the viewport content and scrolls to the top.
func (dv *DocViewport) SetContent(content string) {
	if !dv.ready {
		return
	}
	dv.viewport.SetContent(content)
	dv.contentSet = true
	dv.viewport.GotoTop()
}

// Update forwards messages to the viewport.
func (dv *DocViewport) Update(msg tea.Msg) (*DocViewport, tea.Cmd) {
	if !dv.ready {
		return dv, nil
	}
	var cmd tea.Cmd
	dv.viewport, cmd = dv.viewport.Update(msg)
	return dv, cmd
}

// View renders the viewport.
func (dv *DocViewport) View() string {
	if !dv.ready {
		return "\n  Loading mdscope..."
	}
	if !dv.contentSet {
		return dv.renderWelcome()
	}
	return dv.viewport.View()
}

// ScrollInfo returns a string like "42%" or "TOP" or "BOT".
func (dv *DocViewport) ScrollInfo() string {
	if !dv.ready {
		return "TOP"
	}
	pct := dv.viewport.ScrollPercent()
	switch {
	case pct <= 0:
		return "TOP"
	case pct >= 1:
		return "BOT"
	default:
		return fmt.Sprintf("%d%%", int(pct*100))
	}
}

// HalfPageDown scrolls down half a page.
func (dv *DocViewport) HalfPageDown() {
	if dv.ready {
		dv.viewport.HalfViewDown()
	}
}

// HalfPageUp scrolls up half a page.
func (dv *DocViewport) HalfPageUp() {
	if dv.ready {
		dv.viewport.HalfViewUp()
	}
}

// LineDown scrolls down n lines.
func (dv *DocViewport) LineDown(n int) {
	if dv.ready {
		dv.viewport.LineDown(n)
	}
}

// LineUp scrolls up n lines.
func (dv *DocViewport) LineUp(n int) {
	if dv.ready {
		dv.viewport.LineUp(n)
	}
}

// GotoTop scrolls to the top.
func (dv *DocViewport) GotoTop() {
	if dv.ready {
		dv.viewport.GotoTop()
	}
}

// GotoBottom scrolls to the bottom.
func (dv *DocViewport) GotoBottom() {
	if dv.ready {
		dv.viewport.GotoBottom()
	}
}

// ScrollToLine scrolls so the given zero-based line is at the top.
func (dv *DocViewport) ScrollToLine(line int) {
	if dv.ready {
		dv.viewport.SetYOffset(line)
	}
}

// Width returns the viewport width.
func (dv *DocViewport) Width() int {
	if !dv.ready {
		return 0
	}
	return dv.viewport.Width
}

func (dv *DocViewport) renderWelcome() string {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	accentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Secondary)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	logo := `
                _
   _ __ ___   __| |___  ___ ___  _ __   ___
  | '_ ' _ \ / _' / __|/ __/ _ \| '_ \ / _ \
  | | | | | | (_| \__ \ (_| (_) | |_) |  __/
  |_| |_| |_|\__,_|___/\___\___/| .__/ \___|
                                |_|
`

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(logo))
	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("  A terminal Markdown viewer"))
	sb.WriteString("\n\n")
	sb.WriteString(accentStyle.Render("  ⌨ Quick Start"))
	sb.WriteString("\n\n")

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"  o", "Open a file, URL, or command"},
		{"  :gh owner/repo", "View a README from GitHub"},
		{"  H / L", "Go back / forward"},
		{"  j / k", "Scroll down / up"},
		{"  gg / G", "Top / bottom of document"},
		{"  Ctrl+d/u", "Half page down / up"},
		{"  Ctrl+h", "History panel"},
		{"  b", "Bookmarks panel"},
		{"  c", "Table of contents"},
		{"  B", "Bookmark the current document"},
		{"  ?", "Help"},
		{"  q", "Quit"},
	}

	for _, s := range shortcuts {
		sb.WriteString(keyStyle.Render(fmt.Sprintf("  %-18s", s.key)))
		sb.WriteString(descStyle.Render(s.desc))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(subtitleStyle.Render("  Type 'o' to open a document"))
	sb.WriteString("\n")

	return sb.String()
}
