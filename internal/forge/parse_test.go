package forge

import "testing"

func TestParseShorthand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Request
		ok    bool
	}{
		{
			name:  "owner slash repo",
			input: "octocat/Hello-World",
			want:  Request{Owner: "octocat", Repository: "Hello-World"},
			ok:    true,
		},
		{
			name:  "owner space repo",
			input: "octocat Hello-World",
			want:  Request{Owner: "octocat", Repository: "Hello-World"},
			ok:    true,
		},
		{
			name:  "repo with file",
			input: "octocat/Hello-World CHANGELOG.md",
			want:  Request{Owner: "octocat", Repository: "Hello-World", DesiredFile: "CHANGELOG.md"},
			ok:    true,
		},
		{
			name:  "specific branch",
			input: "octocat/Hello-World:develop",
			want:  Request{Owner: "octocat", Repository: "Hello-World", Branch: "develop"},
			ok:    true,
		},
		{
			name:  "specific branch with file",
			input: "octocat/Hello-World:develop CHANGELOG.md",
			want:  Request{Owner: "octocat", Repository: "Hello-World", Branch: "develop", DesiredFile: "CHANGELOG.md"},
			ok:    true,
		},
		{
			name:  "space separator with branch and file",
			input: "octocat Hello-World:develop docs/intro.md",
			want:  Request{Owner: "octocat", Repository: "Hello-World", Branch: "develop", DesiredFile: "docs/intro.md"},
			ok:    true,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  octocat/Hello-World  ",
			want:  Request{Owner: "octocat", Repository: "Hello-World"},
			ok:    true,
		},
		{
			name:  "empty input",
			input: "",
			ok:    false,
		},
		{
			name:  "owner only",
			input: "octocat",
			ok:    false,
		},
		{
			name:  "too many tokens",
			input: "octocat/Hello-World README.md extra",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseShorthand(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseShorthand(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseShorthand(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
