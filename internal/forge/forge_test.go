package forge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// probeRecorder serves a fixed set of existing paths and records every
// probe it receives, in order.
type probeRecorder struct {
	exists map[string]bool
	probes []string
}

func (p *probeRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.probes = append(p.probes, r.URL.Path)
	if r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if p.exists[r.URL.Path] {
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func testForge(serverURL string) Forge {
	return Forge{Name: "TestForge", rawURL: serverURL + "/%s/%s/%s/%s"}
}

func TestResolve_FallsBackToMaster(t *testing.T) {
	rec := &probeRecorder{exists: map[string]bool{
		"/octocat/Hello-World/master/README.md": true,
	}}
	server := httptest.NewServer(rec)
	defer server.Close()

	r := NewResolver(server.Client(), "mdscope test")
	url, ok := r.Resolve(context.Background(), testForge(server.URL), Request{
		Owner:      "octocat",
		Repository: "Hello-World",
	})

	if !ok {
		t.Fatal("Resolve should succeed via the master branch")
	}
	want := server.URL + "/octocat/Hello-World/master/README.md"
	if url != want {
		t.Errorf("Resolve returned %q, want %q", url, want)
	}

	wantProbes := []string{
		"/octocat/Hello-World/main/README.md",
		"/octocat/Hello-World/master/README.md",
	}
	if len(rec.probes) != len(wantProbes) {
		t.Fatalf("issued %d probes %v, want %d", len(rec.probes), rec.probes, len(wantProbes))
	}
	for i, p := range wantProbes {
		if rec.probes[i] != p {
			t.Errorf("probe %d = %q, want %q", i, rec.probes[i], p)
		}
	}
}

func TestResolve_ShortCircuitsOnFirstHit(t *testing.T) {
	rec := &probeRecorder{exists: map[string]bool{
		"/octocat/Hello-World/main/README.md": true,
	}}
	server := httptest.NewServer(rec)
	defer server.Close()

	r := NewResolver(server.Client(), "mdscope test")
	_, ok := r.Resolve(context.Background(), testForge(server.URL), Request{
		Owner:      "octocat",
		Repository: "Hello-World",
	})

	if !ok {
		t.Fatal("Resolve should succeed via the main branch")
	}
	if len(rec.probes) != 1 {
		t.Errorf("issued %d probes %v, want exactly 1", len(rec.probes), rec.probes)
	}
}

func TestResolve_ExplicitBranchProbedAlone(t *testing.T) {
	rec := &probeRecorder{exists: map[string]bool{}}
	server := httptest.NewServer(rec)
	defer server.Close()

	r := NewResolver(server.Client(), "mdscope test")
	_, ok := r.Resolve(context.Background(), testForge(server.URL), Request{
		Owner:       "octocat",
		Repository:  "Hello-World",
		Branch:      "develop",
		DesiredFile: "CHANGELOG.md",
	})

	if ok {
		t.Fatal("Resolve should fail when the only candidate is missing")
	}
	if len(rec.probes) != 1 {
		t.Fatalf("issued %d probes %v, want exactly 1", len(rec.probes), rec.probes)
	}
	if want := "/octocat/Hello-World/develop/CHANGELOG.md"; rec.probes[0] != want {
		t.Errorf("probe = %q, want %q", rec.probes[0], want)
	}
}

func TestResolve_ExhaustionProbesEachCandidateOnce(t *testing.T) {
	rec := &probeRecorder{exists: map[string]bool{}}
	server := httptest.NewServer(rec)
	defer server.Close()

	r := NewResolver(server.Client(), "mdscope test")
	_, ok := r.Resolve(context.Background(), testForge(server.URL), Request{
		Owner:      "octocat",
		Repository: "Hello-World",
	})

	if ok {
		t.Fatal("Resolve should fail when nothing exists")
	}
	if len(rec.probes) != 2 {
		t.Errorf("issued %d probes %v, want 2 (main then master, once each)", len(rec.probes), rec.probes)
	}
}

func TestResolve_TransportErrorTreatedAsMiss(t *testing.T) {
	rec := &probeRecorder{exists: map[string]bool{}}
	server := httptest.NewServer(rec)
	server.Close() // probes now fail at the transport level

	r := NewResolver(&http.Client{}, "mdscope test")
	_, ok := r.Resolve(context.Background(), testForge(server.URL), Request{
		Owner:      "octocat",
		Repository: "Hello-World",
	})

	if ok {
		t.Error("Resolve should report not-found when every probe errors")
	}
}

func TestResolve_SendsIdentifyingUserAgent(t *testing.T) {
	var agent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	r := NewResolver(server.Client(), "mdscope v1")
	r.Resolve(context.Background(), testForge(server.URL), Request{
		Owner:      "octocat",
		Repository: "Hello-World",
	})

	if agent != "mdscope v1" {
		t.Errorf("probe user agent = %q, want %q", agent, "mdscope v1")
	}
}

func TestForgeTemplates(t *testing.T) {
	tests := []struct {
		forge Forge
		want  string
	}{
		{GitHub, "https://raw.githubusercontent.com/o/r/b/f.md"},
		{GitLab, "https://gitlab.com/o/r/-/raw/b/f.md"},
		{BitBucket, "https://bitbucket.org/o/r/raw/b/f.md"},
		{Codeberg, "https://codeberg.org/o/r/raw//branch/b/f.md"},
	}

	for _, tt := range tests {
		if got := tt.forge.RawURL("o", "r", "b", "f.md"); got != tt.want {
			t.Errorf("%s.RawURL = %q, want %q", tt.forge.Name, got, tt.want)
		}
	}
}
