package nav

import (
	"net/url"
	"path/filepath"
)

// Kind distinguishes the two flavours of navigable location.
type Kind int

const (
	// Local is a file on the local filesystem.
	Local Kind = iota
	// Remote is an absolute http or https URL.
	Remote
)

// Location is a single navigable unit: either a local file path or a
// remote URL. It is immutable once constructed and comparable, so two
// locations are equal exactly when their kind and value match.
type Location struct {
	kind  Kind
	value string
}

// LocalFile returns a Location for a local filesystem path.
func LocalFile(path string) Location {
	return Location{kind: Local, value: path}
}

// RemoteURL returns a Location for an absolute http(s) URL.
func RemoteURL(rawURL string) Location {
	return Location{kind: Remote, value: rawURL}
}

// ParseLocation classifies a stored or user-typed string. A string is a
// Remote if and only if it looks like an absolute http(s) URL; anything
// else is taken to be a local path. This is also the rule used when
// rehydrating persisted history, which stores locations untagged.
func ParseLocation(s string) Location {
	if IsLikelyURL(s) {
		return RemoteURL(s)
	}
	return LocalFile(s)
}

// IsLikelyURL reports whether the candidate looks like an absolute URL
// with an http or https scheme.
func IsLikelyURL(candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	return u.IsAbs() && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Kind returns the location's kind.
func (l Location) Kind() Kind {
	return l.kind
}

// IsLocal reports whether the location is a local file.
func (l Location) IsLocal() bool {
	return l.kind == Local
}

// IsRemote reports whether the location is a remote URL.
func (l Location) IsRemote() bool {
	return l.kind == Remote
}

// String returns the underlying path or URL. It is the inverse of
// ParseLocation for any location this package produces.
func (l Location) String() string {
	return l.value
}

// Name returns the file name component, for display in panels.
func (l Location) Name() string {
	switch l.kind {
	case Remote:
		if u, err := url.Parse(l.value); err == nil {
			return filepath.Base(u.Path)
		}
		return l.value
	default:
		return filepath.Base(l.value)
	}
}

// Dir returns the parent component of the location, for display.
func (l Location) Dir() string {
	switch l.kind {
	case Remote:
		if u, err := url.Parse(l.value); err == nil {
			return u.Host + filepath.Dir(u.Path)
		}
		return ""
	default:
		return filepath.Dir(l.value)
	}
}

// IsZero reports whether the location is the zero value.
func (l Location) IsZero() bool {
	return l.value == ""
}
