package analysis

import "testing"

func TestStripLineNumber(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"12 The quick fox", "The quick fox"},
		{"   7\tindented", "indented"},
		{"2019 was a year", "was a year"}, // known false positive
		{"42", "42"},
		{"no number 12 here", "no number 12 here"},
		{"3D models", "3D models"},
	}
	for _, tt := range tests {
		if got := StripLineNumber(tt.in); got != tt.want {
			t.Errorf("StripLineNumber(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripCaption(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Figure 1: A cat.", ""},
		{"FIG. 12 shows the setup", ""},
		{"fig.3 inline", ""},
		{"Hello world Figure 1: A cat.", "Hello world "},
		{"We configure 3 nodes", "We configure 3 nodes"},
		{"Figures are nice", "Figures are nice"},
	}
	for _, tt := range tests {
		if got := StripCaption(tt.in); got != tt.want {
			t.Errorf("StripCaption(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRejoinGitHubURLs(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"see https://github.com/ foo/bar now", "see https://github.com/foo/bar now"},
		{"HTTP://GitHub.com/ x", "HTTP://GitHub.com/x"},
		{"https://github.com/foo bar", "https://github.com/foo bar"},
		{"https://gitlab.com/ foo", "https://gitlab.com/ foo"},
	}
	for _, tt := range tests {
		if got := RejoinGitHubURLs(tt.in); got != tt.want {
			t.Errorf("RejoinGitHubURLs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	raw := "1 Hello   world\n2 Figure 2: caption text\n3 the end\n"
	tests := []struct {
		name string
		opts NormalizeOptions
		want string
	}{
		{"all steps", NormalizeOptions{StripLineNumbers: true, StripCaptions: true}, "Hello world the end"},
		{"collapse only", NormalizeOptions{}, "1 Hello world 2 Figure 2: caption text 3 the end"},
		{"numbers only", NormalizeOptions{StripLineNumbers: true}, "Hello world Figure 2: caption text the end"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(raw, tt.opts); got != tt.want {
				t.Errorf("Normalize = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize_WrappedURL(t *testing.T) {
	got := Normalize("code at https://github.com/\nacme/tool", NormalizeOptions{})
	if want := "code at https://github.com/acme/tool"; got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestWordCountWhitespaceInvariant(t *testing.T) {
	a := "alpha beta gamma delta"
	b := "  alpha\n\n beta\t\tgamma   delta\n"
	opts := NormalizeOptions{StripLineNumbers: true, StripCaptions: true}
	if WordCount(Normalize(a, opts)) != WordCount(Normalize(b, opts)) {
		t.Errorf("word counts differ: %d vs %d", WordCount(Normalize(a, opts)), WordCount(Normalize(b, opts)))
	}
	if got := WordCount(Normalize(b, opts)); got != 4 {
		t.Errorf("WordCount = %d, want 4", got)
	}
}

func TestFold(t *testing.T) {
	if got := fold("ﬁgure 1"); got != "figure 1" {
		t.Errorf("fold = %q, want %q", got, "figure 1")
	}
}
