package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseUserLocationURL(t *testing.T) {
	loc := ParseUserLocation("https://example.com/README.md")
	if !loc.IsRemote() {
		t.Fatalf("expected remote location, got %v", loc)
	}
	if loc.String() != "https://example.com/README.md" {
		t.Errorf("URL was rewritten: %s", loc)
	}
}

func TestParseUserLocationRelativePath(t *testing.T) {
	loc := ParseUserLocation("docs/README.md")
	if !loc.IsLocal() {
		t.Fatalf("expected local location, got %v", loc)
	}
	if !filepath.IsAbs(loc.String()) {
		t.Errorf("relative path was not made absolute: %s", loc)
	}
	if !strings.HasSuffix(loc.String(), filepath.Join("docs", "README.md")) {
		t.Errorf("path lost its tail: %s", loc)
	}
}

func TestParseUserLocationTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir available")
	}
	loc := ParseUserLocation("~/notes.md")
	if !loc.IsLocal() {
		t.Fatalf("expected local location, got %v", loc)
	}
	if loc.String() != filepath.Join(home, "notes.md") {
		t.Errorf("tilde not expanded: %s", loc)
	}
}
