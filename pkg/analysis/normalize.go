package analysis

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions selects the line-level stripping steps.
type NormalizeOptions struct {
	StripLineNumbers bool
	StripCaptions    bool
}

// Normalize turns raw scope text into countable text. Line-level steps run
// first, then whitespace runs collapse to single spaces, then GitHub URLs
// split after the domain are rejoined.
func Normalize(text string, opts NormalizeOptions) string {
	if opts.StripLineNumbers || opts.StripCaptions {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if opts.StripLineNumbers {
				line = StripLineNumber(line)
			}
			if opts.StripCaptions {
				line = StripCaption(line)
			}
			lines[i] = line
		}
		text = strings.Join(lines, "\n")
	}
	return RejoinGitHubURLs(CollapseWhitespace(text))
}

// StripLineNumber removes a leading line-number token from one line.
func StripLineNumber(line string) string {
	return lineNumberRe.ReplaceAllString(line, "")
}

// StripCaption drops a figure label and everything after it on the line.
func StripCaption(line string) string {
	return captionLineRe.ReplaceAllString(line, "")
}

// CollapseWhitespace replaces every run of Unicode whitespace with a single
// space and trims the ends.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// RejoinGitHubURLs removes the single space that PDF text extraction leaves
// right after "github.com/". Spaces anywhere else are kept.
func RejoinGitHubURLs(text string) string {
	return wrappedGitHubRe.ReplaceAllString(text, "$1")
}

// fold applies compatibility normalization so ligatures and no-break
// spaces extracted from PDFs behave like their plain forms.
func fold(text string) string {
	return norm.NFKC.String(text)
}

// joinPages concatenates the selected page texts, one line break apart.
func joinPages(texts []string, pages []int) string {
	var sb strings.Builder
	for n, i := range pages {
		if n > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(texts[i])
	}
	return sb.String()
}

// allPages returns 0..n-1.
func allPages(n int) []int {
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i
	}
	return pages
}
