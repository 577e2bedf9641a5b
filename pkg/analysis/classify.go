package analysis

import (
	"strings"
	"unicode"
)

// Layout partitions a document's pages. The reference section, when
// present, is the half-open range [RefStart, RefEnd). Body pages are all
// other pages, minus page 0 when it is a title page.
type Layout struct {
	PageCount     int
	TitlePage     bool
	HasReferences bool
	RefStart      int
	RefEnd        int
}

// Classify locates the reference section in texts. With bound set the
// section stops at the first later page that opens with an all-caps heading
// line; otherwise it runs to the last page.
//
// Both rules are line heuristics: a "References" heading fused with other
// text is missed, and a page opening with a stray all-caps line ends the section early.
func Classify(texts []string, titlePage, bound bool) Layout {
	l := Layout{PageCount: len(texts), TitlePage: titlePage && len(texts) > 0}

	l.RefStart = -1
	for i, t := range texts {
		if referencesHeading(t) >= 0 {
			l.RefStart = i
			break
		}
	}
	if l.RefStart < 0 {
		l.RefStart = 0
		return l
	}

	l.HasReferences = true
	l.RefEnd = len(texts)
	if bound {
		for i := l.RefStart + 1; i < len(texts); i++ {
			if opensWithCapsHeading(texts[i]) {
				l.RefEnd = i
				break
			}
		}
	}
	return l
}

// InReferences reports whether page i lies in the reference section.
func (l Layout) InReferences(i int) bool {
	return l.HasReferences && i >= l.RefStart && i < l.RefEnd
}

// IsBody reports whether page i is body text.
func (l Layout) IsBody(i int) bool {
	if i < 0 || i >= l.PageCount {
		return false
	}
	if l.TitlePage && i == 0 {
		return false
	}
	return !l.InReferences(i)
}

// BodyPages returns the body page indices in order.
func (l Layout) BodyPages() []int {
	var pages []int
	for i := 0; i < l.PageCount; i++ {
		if l.IsBody(i) {
			pages = append(pages, i)
		}
	}
	return pages
}

// ReferencePages returns the reference section page indices in order.
func (l Layout) ReferencePages() []int {
	if !l.HasReferences {
		return nil
	}
	pages := make([]int, 0, l.RefEnd-l.RefStart)
	for i := l.RefStart; i < l.RefEnd; i++ {
		pages = append(pages, i)
	}
	return pages
}

// referencesHeading returns the byte offset just past the first line of
// text that is exactly "References" (any case, surrounding blanks allowed),
// or -1.
func referencesHeading(text string) int {
	off := 0
	for len(text[off:]) > 0 {
		line := text[off:]
		next := len(text)
		if j := strings.IndexByte(line, '\n'); j >= 0 {
			line = line[:j]
			next = off + j + 1
		}
		if strings.EqualFold(strings.TrimSpace(line), "References") {
			return next
		}
		off = next
	}
	return -1
}

// opensWithCapsHeading reports whether the first non-blank line of text is
// made only of uppercase letters and whitespace, with at least one letter.
// Later lines are ignored so venue names like "IEEE" inside an entry do
// not read as a heading.
func opensWithCapsHeading(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		letters := 0
		for _, r := range line {
			switch {
			case unicode.IsUpper(r):
				letters++
			case unicode.IsSpace(r):
			default:
				return false
			}
		}
		return letters > 0
	}
	return false
}
