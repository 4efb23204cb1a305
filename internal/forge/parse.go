package forge

import (
	"regexp"
	"strings"
)

// Request identifies a file to look for on a forge. Branch and
// DesiredFile are optional; empty means "not given" and the resolver
// fills in the defaults (main/master probing and README.md).
type Request struct {
	Owner       string
	Repository  string
	Branch      string
	DesiredFile string
}

// The two shorthand grammars. Owner and repo may be separated by a
// slash or a space; the guess-branch form's repo field excludes ':',
// which is what makes any input carrying a branch fall through to the
// specific-branch form.
var (
	guessBranchRE    = regexp.MustCompile(`^([^/ ]+)[/ ]([^ :]+)(?: +([^ ]+))?$`)
	specificBranchRE = regexp.MustCompile(`^([^/ ]+)[/ ]([^ :]+):([^ ]+)(?: +([^ ]+))?$`)
)

// ParseShorthand parses the tail of a forge quick-look command, e.g.
// "octocat/Hello-World", "octocat Hello-World:dev CHANGELOG.md". The
// guess-branch grammar is tried first, then the specific-branch
// grammar. A non-match yields (Request{}, false) and is not an error;
// the caller decides whether to tell the user anything.
func ParseShorthand(tail string) (Request, bool) {
	tail = strings.TrimSpace(tail)

	if hit := guessBranchRE.FindStringSubmatch(tail); hit != nil {
		return Request{
			Owner:       hit[1],
			Repository:  hit[2],
			DesiredFile: hit[3],
		}, true
	}

	if hit := specificBranchRE.FindStringSubmatch(tail); hit != nil {
		return Request{
			Owner:       hit[1],
			Repository:  hit[2],
			Branch:      hit[3],
			DesiredFile: hit[4],
		}, true
	}

	return Request{}, false
}
