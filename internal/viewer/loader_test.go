package viewer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkotturi/mdscope/internal/nav"
	"github.com/mkotturi/mdscope/internal/storage"
)

func testLoader() *Loader {
	cfg := storage.DefaultConfig()
	return NewLoader(NewFetcher(), &cfg)
}

func TestLoader_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Hello\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	doc, err := testLoader().Load(context.Background(), nav.LocalFile(path))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Markdown != "# Hello\n" {
		t.Errorf("Markdown = %q, want %q", doc.Markdown, "# Hello\n")
	}
}

func TestLoader_LocalFileMissing(t *testing.T) {
	_, err := testLoader().Load(context.Background(), nav.LocalFile("/no/such/file.md"))
	if err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestLoader_RemoteMarkdownContentTypes(t *testing.T) {
	for _, contentType := range []string{
		"text/plain",
		"text/markdown",
		"text/x-markdown",
		"text/plain; charset=utf-8",
	} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", contentType)
			w.Write([]byte("# Remote\n"))
		}))

		doc, err := testLoader().Load(context.Background(), nav.RemoteURL(server.URL+"/doc.md"))
		server.Close()

		if err != nil {
			t.Errorf("Load with content type %q failed: %v", contentType, err)
			continue
		}
		if doc.Markdown != "# Remote\n" {
			t.Errorf("Markdown = %q, want %q", doc.Markdown, "# Remote\n")
		}
	}
}

func TestLoader_RemoteRejectsNonMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>rendered</body></html>"))
	}))
	defer server.Close()

	_, err := testLoader().Load(context.Background(), nav.RemoteURL(server.URL+"/doc"))
	if !errors.Is(err, ErrNotMarkdown) {
		t.Errorf("Load of HTML = %v, want ErrNotMarkdown", err)
	}
}

func TestLoader_RemoteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := testLoader().Load(context.Background(), nav.RemoteURL(server.URL+"/gone.md"))
	if err == nil {
		t.Error("Load of a 404 should fail")
	}
}

func TestLoader_MaybeMarkdown(t *testing.T) {
	l := testLoader()

	tests := []struct {
		location nav.Location
		want     bool
	}{
		{nav.LocalFile("/docs/README.md"), true},
		{nav.LocalFile("/docs/README.MD"), true},
		{nav.LocalFile("/docs/notes.markdown"), true},
		{nav.LocalFile("/docs/config.yaml"), false},
		{nav.LocalFile("/docs/plain"), false},
		{nav.RemoteURL("https://example.com/README.md"), false},
	}

	for _, tt := range tests {
		if got := l.MaybeMarkdown(tt.location); got != tt.want {
			t.Errorf("MaybeMarkdown(%v) = %v, want %v", tt.location, got, tt.want)
		}
	}
}
