package analysis

import "regexp"

var (
	// lineNumberRe matches the numeric prefix of a line in a line-numbered
	// manuscript draft. Applied to one line at a time.
	lineNumberRe = regexp.MustCompile(`^\s*\d+\s+`)

	// captionRe matches a figure label and captures its number. The word
	// boundary keeps "configure 3" out.
	captionRe = regexp.MustCompile(`(?i)\b(?:figure|fig\.)\s*(\d+)`)

	// captionLineRe matches a figure label and the rest of its line.
	captionLineRe = regexp.MustCompile(`(?i)\b(?:figure|fig\.)\s*\d+.*$`)

	// wrappedGitHubRe matches a GitHub URL prefix that text extraction split
	// from its path with a single space.
	wrappedGitHubRe = regexp.MustCompile(`(?i)(https?://github\.com/) `)

	// gitHubRe matches a GitHub URL.
	gitHubRe = regexp.MustCompile(`(?i)https?://github\.com/[\w\-./]+`)

	// doiTextRe matches a plain-text doi.org reference without its scheme.
	doiTextRe = regexp.MustCompile(`(?i)doi\.org/[\w./-]+`)

	// schemeRe matches a leading http or https scheme.
	schemeRe = regexp.MustCompile(`(?i)^https?://`)
)
