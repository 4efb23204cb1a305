package nav

import "testing"

func TestParseLocation(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"https://example.com/README.md", Remote},
		{"http://example.com/docs/guide.md", Remote},
		{"/home/user/notes.md", Local},
		{"notes.md", Local},
		{"ftp://example.com/file.md", Local},
		{"file:///etc/hosts", Local},
		{"https://", Local}, // scheme but no host
	}

	for _, tt := range tests {
		got := ParseLocation(tt.input)
		if got.Kind() != tt.kind {
			t.Errorf("ParseLocation(%q).Kind() = %v, want %v", tt.input, got.Kind(), tt.kind)
		}
		if got.String() != tt.input {
			t.Errorf("ParseLocation(%q).String() = %q, want the input back", tt.input, got.String())
		}
	}
}

func TestLocationEquality(t *testing.T) {
	if LocalFile("/a/b.md") != LocalFile("/a/b.md") {
		t.Error("identical local locations should be equal")
	}
	if LocalFile("https://example.com/x.md") == RemoteURL("https://example.com/x.md") {
		t.Error("local and remote with the same value should not be equal")
	}
}

func TestLocationNameAndDir(t *testing.T) {
	local := LocalFile("/home/user/docs/guide.md")
	if local.Name() != "guide.md" {
		t.Errorf("Name() = %q, want %q", local.Name(), "guide.md")
	}
	if local.Dir() != "/home/user/docs" {
		t.Errorf("Dir() = %q, want %q", local.Dir(), "/home/user/docs")
	}

	remote := RemoteURL("https://example.com/docs/guide.md")
	if remote.Name() != "guide.md" {
		t.Errorf("Name() = %q, want %q", remote.Name(), "guide.md")
	}
	if remote.Dir() != "example.com/docs" {
		t.Errorf("Dir() = %q, want %q", remote.Dir(), "example.com/docs")
	}
}
