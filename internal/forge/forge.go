// Package forge turns owner/repo shorthand into verified raw-content
// URLs on the well-known git forges.
package forge

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultFile is probed when the request names no file.
	DefaultFile = "README.md"

	probeTimeout = 15 * time.Second
)

// Forge is a git hosting service with a single raw-content URL shape.
// The template takes owner, repository, branch, and file, in that
// order.
type Forge struct {
	Name   string
	rawURL string
}

// The supported forges. Each differs only in its URL template.
var (
	GitHub    = Forge{Name: "GitHub", rawURL: "https://raw.githubusercontent.com/%s/%s/%s/%s"}
	GitLab    = Forge{Name: "GitLab", rawURL: "https://gitlab.com/%s/%s/-/raw/%s/%s"}
	BitBucket = Forge{Name: "BitBucket", rawURL: "https://bitbucket.org/%s/%s/raw/%s/%s"}
	Codeberg  = Forge{Name: "Codeberg", rawURL: "https://codeberg.org/%s/%s/raw//branch/%s/%s"}
)

// RawURL builds the raw-content URL for a fully-specified file on this
// forge.
func (f Forge) RawURL(owner, repository, branch, file string) string {
	return fmt.Sprintf(f.rawURL, owner, repository, branch, file)
}

// Resolver probes candidate raw-content URLs until one exists.
type Resolver struct {
	client    *http.Client
	userAgent string
}

// NewResolver creates a resolver that probes with the given client and
// identifying user agent. A nil client gets a default one that follows
// redirects with a sensible timeout.
func NewResolver(client *http.Client, userAgent string) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: probeTimeout}
	}
	return &Resolver{client: client, userAgent: userAgent}
}

// Resolve turns a request into a verified raw-content URL on the given
// forge. When the request names no branch, "main" then "master" are
// tried; when it names no file, README.md is assumed. Candidates are
// probed strictly in order with a HEAD request and the first that
// exists wins - the common case resolves in one round trip, so there is
// no parallel fan-out. Probe failures, including transport errors, just
// move on to the next candidate; only total exhaustion reports false.
func (r *Resolver) Resolve(ctx context.Context, f Forge, req Request) (string, bool) {
	file := req.DesiredFile
	if file == "" {
		file = DefaultFile
	}

	branches := []string{"main", "master"}
	if req.Branch != "" {
		branches = []string{req.Branch}
	}

	for _, branch := range branches {
		candidate := f.RawURL(req.Owner, req.Repository, branch, file)
		if r.exists(ctx, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// exists issues a lightweight HEAD probe against the candidate URL,
// following redirects. Anything other than a clean sub-400 final status
// counts as "not there".
func (r *Resolver) exists(ctx context.Context, candidate string) bool {
	probe, err := http.NewRequestWithContext(ctx, http.MethodHead, candidate, nil)
	if err != nil {
		return false
	}
	probe.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(probe)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 400
}
