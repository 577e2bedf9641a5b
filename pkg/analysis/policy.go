package analysis

import "fmt"

// Scope names the set of pages a metric reads.
type Scope string

const (
	ScopeDocument   Scope = "document"
	ScopeBody       Scope = "body"
	ScopeReferences Scope = "references" // reference section if detected, else document
)

// FigureCounting selects how figure labels are counted.
type FigureCounting string

const (
	CountOccurrences FigureCounting = "occurrences"
	CountDistinct    FigureCounting = "distinct"
)

// ImageScope selects which pages contribute embedded images.
type ImageScope string

const (
	ImagesAll       ImageScope = "all"
	ImagesCaptioned ImageScope = "captioned" // figure-scope pages bearing a caption
)

// Policy selects the page scope and counting rule of each metric.
type Policy struct {
	TitlePage        bool           `yaml:"title_page" json:"title_page"`
	WordScope        Scope          `yaml:"word_scope" json:"word_scope"`
	StripLineNumbers bool           `yaml:"strip_line_numbers" json:"strip_line_numbers"`
	StripCaptions    bool           `yaml:"strip_captions" json:"strip_captions"`
	FigureScope      Scope          `yaml:"figure_scope" json:"figure_scope"`
	FigureCounting   FigureCounting `yaml:"figure_counting" json:"figure_counting"`
	ImageScope       ImageScope     `yaml:"image_scope" json:"image_scope"`
	BoundReferences  bool           `yaml:"bound_references" json:"bound_references"`
	LinkDOIScope     Scope          `yaml:"link_doi_scope" json:"link_doi_scope"`
}

// Strict counts body text only: title page and reference section are
// excluded, noise lines are stripped and every figure label is counted.
func Strict() Policy {
	return Policy{
		TitlePage:        true,
		WordScope:        ScopeBody,
		StripLineNumbers: true,
		StripCaptions:    true,
		FigureScope:      ScopeBody,
		FigureCounting:   CountOccurrences,
		ImageScope:       ImagesCaptioned,
		BoundReferences:  true,
		LinkDOIScope:     ScopeReferences,
	}
}

// Simple counts over the whole document and reports distinct figure numbers.
func Simple() Policy {
	return Policy{
		WordScope:      ScopeDocument,
		FigureScope:    ScopeDocument,
		FigureCounting: CountDistinct,
		ImageScope:     ImagesAll,
		LinkDOIScope:   ScopeDocument,
	}
}

// Preset returns the named policy.
func Preset(name string) (Policy, error) {
	switch name {
	case "", "strict":
		return Strict(), nil
	case "simple":
		return Simple(), nil
	}
	return Policy{}, fmt.Errorf("unknown variant %q (want strict or simple)", name)
}

// Validate rejects unknown enum values.
func (p Policy) Validate() error {
	switch p.WordScope {
	case ScopeDocument, ScopeBody:
	default:
		return fmt.Errorf("word_scope: invalid value %q", p.WordScope)
	}
	switch p.FigureScope {
	case ScopeDocument, ScopeBody:
	default:
		return fmt.Errorf("figure_scope: invalid value %q", p.FigureScope)
	}
	switch p.FigureCounting {
	case CountOccurrences, CountDistinct:
	default:
		return fmt.Errorf("figure_counting: invalid value %q", p.FigureCounting)
	}
	switch p.ImageScope {
	case ImagesAll, ImagesCaptioned:
	default:
		return fmt.Errorf("image_scope: invalid value %q", p.ImageScope)
	}
	switch p.LinkDOIScope {
	case ScopeDocument, ScopeReferences:
	default:
		return fmt.Errorf("link_doi_scope: invalid value %q", p.LinkDOIScope)
	}
	return nil
}

// pages resolves a page scope against a layout.
func (l Layout) pages(s Scope) []int {
	switch s {
	case ScopeBody:
		return l.BodyPages()
	case ScopeReferences:
		if l.HasReferences {
			return l.ReferencePages()
		}
	}
	return allPages(l.PageCount)
}
