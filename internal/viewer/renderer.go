package viewer

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cached glamour renderer to avoid recreation on every render call.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
	cachedRendererStyle string
	rendererMu          sync.Mutex
)

// Render converts markdown source into styled terminal text. Style is a
// glamour standard style name ("dark" or "light", from the config).
func Render(markdown string, width int, style string) string {
	if width <= 0 {
		width = 80
	}

	// Constrain content width for readability.
	contentWidth := width - 4
	if contentWidth > 100 {
		contentWidth = 100
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	rendered, err := renderWithGlamour(markdown, contentWidth, style)
	if err != nil {
		// Raw markdown is still readable; never lose the document over
		// a renderer failure.
		return markdown
	}
	return rendered
}

func renderWithGlamour(markdown string, width int, style string) (string, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if cachedRenderer == nil || cachedRendererWidth != width || cachedRendererStyle != style {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
			glamour.WithEmoji(),
		)
		if err != nil {
			return "", err
		}
		cachedRenderer = r
		cachedRendererWidth = width
		cachedRendererStyle = style
	}

	out, err := cachedRenderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
