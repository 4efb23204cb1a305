package viewer

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkotturi/mdscope/internal/nav"
	"github.com/mkotturi/mdscope/internal/storage"
)

// ErrNotMarkdown is returned when a remote resource loads fine but its
// content type says it is not something the viewer can show.
var ErrNotMarkdown = errors.New("resource is not a markdown document")

// markdownContentTypes are the media types accepted from remote
// servers.
var markdownContentTypes = []string{"text/plain", "text/markdown", "text/x-markdown"}

// Document is a loaded markdown source ready for rendering.
type Document struct {
	Location nav.Location
	Markdown string
}

// Loader fetches and classifies markdown content from either side of
// the Location sum. It never touches history; callers decide what to
// remember.
type Loader struct {
	fetcher *Fetcher
	cfg     *storage.Config
}

// NewLoader creates a content loader using the given fetcher and
// configuration handle.
func NewLoader(fetcher *Fetcher, cfg *storage.Config) *Loader {
	return &Loader{fetcher: fetcher, cfg: cfg}
}

// Load opens or fetches the location and returns its markdown source.
func (l *Loader) Load(ctx context.Context, location nav.Location) (*Document, error) {
	switch location.Kind() {
	case nav.Remote:
		return l.loadRemote(ctx, location)
	default:
		return l.loadLocal(location)
	}
}

func (l *Loader) loadLocal(location nav.Location) (*Document, error) {
	body, err := os.ReadFile(location.String())
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", location, err)
	}
	return &Document{Location: location, Markdown: string(body)}, nil
}

func (l *Loader) loadRemote(ctx context.Context, location nav.Location) (*Document, error) {
	result, err := l.fetcher.Fetch(ctx, location.String())
	if err != nil {
		return nil, err
	}

	if result.StatusCode < 200 || result.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: status %d", location, result.StatusCode)
	}

	if !markdownContentType(result.ContentType) {
		return nil, fmt.Errorf("%s served %q: %w", location, result.ContentType, ErrNotMarkdown)
	}

	return &Document{Location: location, Markdown: string(result.Body)}, nil
}

func markdownContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	for _, accepted := range markdownContentTypes {
		if mediaType == accepted {
			return true
		}
	}
	return false
}

// MaybeMarkdown reports whether a local location looks like a markdown
// file, judged by its suffix against the configured extensions.
func (l *Loader) MaybeMarkdown(location nav.Location) bool {
	if !location.IsLocal() {
		return false
	}
	suffix := strings.ToLower(filepath.Ext(location.String()))
	for _, ext := range l.cfg.MarkdownExtensions {
		if suffix == ext {
			return true
		}
	}
	return false
}
