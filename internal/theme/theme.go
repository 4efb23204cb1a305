package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the chrome around the document
// (panels, status bar, omnibox). Document text itself is styled by
// glamour, not by these colors.
type Theme struct {
	Name string

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Text       lipgloss.Color
	TextDim    lipgloss.Color
	TextBright lipgloss.Color

	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Selection  lipgloss.Color

	Link    lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}

var themes = map[string]Theme{
	"default": Default,
	"gruvbox": Gruvbox,
	"nord":    Nord,
	"paper":   Paper,
}

var Default = Theme{
	Name:       "default",
	Primary:    lipgloss.Color("#7C3AED"),
	Secondary:  lipgloss.Color("#06B6D4"),
	Accent:     lipgloss.Color("#F59E0B"),
	Text:       lipgloss.Color("#E2E8F0"),
	TextDim:    lipgloss.Color("#64748B"),
	TextBright: lipgloss.Color("#F8FAFC"),
	Background: lipgloss.Color("#0F172A"),
	Surface:    lipgloss.Color("#1E293B"),
	Border:     lipgloss.Color("#334155"),
	Selection:  lipgloss.Color("#7C3AED"),
	Link:       lipgloss.Color("#38BDF8"),
	Error:      lipgloss.Color("#EF4444"),
	Success:    lipgloss.Color("#22C55E"),
	Warning:    lipgloss.Color("#F59E0B"),
}

var Gruvbox = Theme{
	Name:       "gruvbox",
	Primary:    lipgloss.Color("#D65D0E"),
	Secondary:  lipgloss.Color("#458588"),
	Accent:     lipgloss.Color("#D79921"),
	Text:       lipgloss.Color("#EBDBB2"),
	TextDim:    lipgloss.Color("#928374"),
	TextBright: lipgloss.Color("#FBF1C7"),
	Background: lipgloss.Color("#282828"),
	Surface:    lipgloss.Color("#3C3836"),
	Border:     lipgloss.Color("#504945"),
	Selection:  lipgloss.Color("#D65D0E"),
	Link:       lipgloss.Color("#83A598"),
	Error:      lipgloss.Color("#FB4934"),
	Success:    lipgloss.Color("#B8BB26"),
	Warning:    lipgloss.Color("#FABD2F"),
}

var Nord = Theme{
	Name:       "nord",
	Primary:    lipgloss.Color("#88C0D0"),
	Secondary:  lipgloss.Color("#81A1C1"),
	Accent:     lipgloss.Color("#EBCB8B"),
	Text:       lipgloss.Color("#ECEFF4"),
	TextDim:    lipgloss.Color("#4C566A"),
	TextBright: lipgloss.Color("#ECEFF4"),
	Background: lipgloss.Color("#2E3440"),
	Surface:    lipgloss.Color("#3B4252"),
	Border:     lipgloss.Color("#434C5E"),
	Selection:  lipgloss.Color("#88C0D0"),
	Link:       lipgloss.Color("#88C0D0"),
	Error:      lipgloss.Color("#BF616A"),
	Success:    lipgloss.Color("#A3BE8C"),
	Warning:    lipgloss.Color("#EBCB8B"),
}

// Paper is a light theme to pair with the light_mode glamour style.
var Paper = Theme{
	Name:       "paper",
	Primary:    lipgloss.Color("#5B21B6"),
	Secondary:  lipgloss.Color("#0E7490"),
	Accent:     lipgloss.Color("#B45309"),
	Text:       lipgloss.Color("#1E293B"),
	TextDim:    lipgloss.Color("#64748B"),
	TextBright: lipgloss.Color("#0F172A"),
	Background: lipgloss.Color("#FAFAF9"),
	Surface:    lipgloss.Color("#E7E5E4"),
	Border:     lipgloss.Color("#D6D3D1"),
	Selection:  lipgloss.Color("#5B21B6"),
	Link:       lipgloss.Color("#0369A1"),
	Error:      lipgloss.Color("#B91C1C"),
	Success:    lipgloss.Color("#15803D"),
	Warning:    lipgloss.Color("#B45309"),
}

// Current is the active theme.
var Current = Default

// Set changes the active theme by name.
func Set(name string) bool {
	if t, ok := themes[name]; ok {
		Current = t
		return true
	}
	return false
}

// List returns all available theme names.
func List() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	return names
}
