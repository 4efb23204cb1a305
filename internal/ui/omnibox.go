package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mkotturi/mdscope/internal/theme"
)

// Omnibox is the single input line used for opening locations and
// issuing commands. The app decides what a submitted value means; the
// omnibox only collects text and keeps a small recall history.
type Omnibox struct {
	input      textinput.Model
	active     bool
	width      int
	history    []string
	historyPos int
}

// NewOmnibox creates the omnibox.
func NewOmnibox() Omnibox {
	ti := textinput.New()
	ti.CharLimit = 2048
	ti.Prompt = "› "
	ti.Placeholder = "Enter a location or command"

	return Omnibox{
		input:      ti,
		historyPos: -1,
	}
}

// SetWidth sets the omnibox width.
func (o *Omnibox) SetWidth(w int) {
	o.width = w
	o.input.Width = w - 4
}

// Open activates the omnibox, optionally pre-filled (used for rename
// prompts and for re-editing a failed location).
func (o *Omnibox) Open(prefill string) tea.Cmd {
	o.active = true
	o.historyPos = -1
	o.input.SetValue(prefill)
	o.input.SetCursor(len(prefill))
	return o.input.Focus()
}

// Close deactivates the omnibox.
func (o *Omnibox) Close() {
	o.active = false
	o.input.Blur()
	o.input.Reset()
}

// IsActive reports whether the omnibox is open.
func (o *Omnibox) IsActive() bool {
	return o.active
}

// Submit returns the trimmed value, records it for recall, and closes
// the omnibox.
func (o *Omnibox) Submit() string {
	val := strings.TrimSpace(o.input.Value())
	if val != "" {
		o.history = append(o.history, val)
	}
	o.Close()
	return val
}

// Update processes messages for the omnibox.
func (o *Omnibox) Update(msg tea.Msg) (*Omnibox, tea.Cmd) {
	if !o.active {
		return o, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			o.Close()
			return o, nil
		case tea.KeyEnter:
			// Handled by the app, which calls Submit.
			return o, nil
		case tea.KeyUp:
			if len(o.history) > 0 {
				if o.historyPos < len(o.history)-1 {
					o.historyPos++
				}
				o.input.SetValue(o.history[len(o.history)-1-o.historyPos])
				o.input.SetCursor(len(o.input.Value()))
			}
			return o, nil
		case tea.KeyDown:
			if o.historyPos > 0 {
				o.historyPos--
				o.input.SetValue(o.history[len(o.history)-1-o.historyPos])
				o.input.SetCursor(len(o.input.Value()))
			} else if o.historyPos == 0 {
				o.historyPos = -1
				o.input.Reset()
			}
			return o, nil
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the omnibox.
func (o *Omnibox) View() string {
	if !o.active {
		return ""
	}

	t := theme.Current

	barStyle := lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Surface).
		Width(o.width)

	return barStyle.Render(o.input.View())
}
