package analysis

import (
	"sort"
	"strings"

	"github.com/AOShei/paperstats/pkg/model"
)

// WordCount counts whitespace-delimited tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// FigureLabels returns the number of every figure label in text, in order.
func FigureLabels(text string) []string {
	matches := captionRe.FindAllStringSubmatch(text, -1)
	nums := make([]string, 0, len(matches))
	for _, m := range matches {
		nums = append(nums, canonicalNumber(m[1]))
	}
	return nums
}

// DistinctFigures dedupes figure numbers and sorts them numerically.
func DistinctFigures(nums []string) []string {
	seen := make(map[string]bool, len(nums))
	out := make([]string, 0, len(nums))
	for _, n := range nums {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	// Canonical digit strings order numerically by length, then lexically.
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

func canonicalNumber(digits string) string {
	if t := strings.TrimLeft(digits, "0"); t != "" {
		return t
	}
	return "0"
}

// GitHubLinks returns every GitHub URL in text after whitespace collapsing
// and URL rejoining. Duplicates and order are kept.
func GitHubLinks(text string) []string {
	links := gitHubRe.FindAllString(RejoinGitHubURLs(CollapseWhitespace(text)), -1)
	if links == nil {
		return []string{}
	}
	return links
}

// DOISet is a set of DOI URLs keyed by their normalized form.
type DOISet map[string]struct{}

// Add inserts raw after normalization. Blank input is ignored.
func (s DOISet) Add(raw string) {
	if k := NormalizeDOI(raw); k != "" {
		s[k] = struct{}{}
	}
}

// Sorted returns the members in lexical order.
func (s DOISet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// NormalizeDOI gives a DOI URL an https scheme and a lowercase host so that
// a hyperlink and the same DOI in plain text compare equal. The path is kept
// as is.
func NormalizeDOI(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	rest := schemeRe.ReplaceAllString(raw, "")
	host, path := rest, ""
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		host, path = rest[:i], rest[i:]
	}
	return "https://" + strings.ToLower(host) + path
}

// LinkDOIs returns the doi.org hyperlink URIs on the given pages.
func LinkDOIs(pages []model.Page, idx []int) []string {
	var out []string
	for _, i := range idx {
		for _, uri := range pages[i].Links {
			if strings.Contains(strings.ToLower(uri), "doi.org") {
				out = append(out, uri)
			}
		}
	}
	return out
}

// TextDOIs returns the plain-text doi.org references in text, without
// trailing sentence punctuation.
func TextDOIs(text string) []string {
	matches := doiTextRe.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;:")
		if !strings.HasSuffix(strings.ToLower(m), "doi.org/") {
			out = append(out, m)
		}
	}
	return out
}

// ReferenceText returns the reference section text: the part of the first
// section page after the "References" line, then the remaining section pages.
func ReferenceText(texts []string, l Layout) string {
	if !l.HasReferences {
		return ""
	}
	var sb strings.Builder
	for i := l.RefStart; i < l.RefEnd; i++ {
		t := texts[i]
		if i == l.RefStart {
			if off := referencesHeading(t); off >= 0 {
				t = t[off:]
			}
		} else {
			sb.WriteByte('\n')
		}
		sb.WriteString(t)
	}
	return sb.String()
}

// Title returns the second non-blank line of the title page followed by an
// ellipsis, or "" when there is no second line.
func Title(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen == 2 {
			return line + "..."
		}
	}
	return ""
}
