package viewer

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is one table-of-contents entry.
type Heading struct {
	Level int
	Text  string
}

var tocParser = goldmark.New()

// TableOfContents extracts the document's headings, in order, from the
// raw markdown source.
func TableOfContents(markdown string) []Heading {
	source := []byte(markdown)
	root := tocParser.Parser().Parse(text.NewReader(source))

	var headings []Heading
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			headings = append(headings, Heading{
				Level: h.Level,
				Text:  string(headingText(h, source)),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return headings
}

// headingText collects the plain text of a heading, looking through
// any inline markup (emphasis, code spans) it contains.
func headingText(h *ast.Heading, source []byte) []byte {
	var out []byte
	ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				out = append(out, t.Segment.Value(source)...)
			}
		}
		return ast.WalkContinue, nil
	})
	return out
}
