// Package pdf adapts third-party PDF libraries into a per-page view:
// plain text from ledongthuc/pdf, embedded images, link annotations and
// the info dictionary from pdfcpu.
package pdf

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Source is what a Reader is built from. *os.File and *bytes.Reader both satisfy it.
type Source interface {
	io.ReaderAt
	io.ReadSeeker
}

// Reader gives page-indexed access to one opened PDF.
type Reader struct {
	text *lpdf.Reader
	ctx  *model.Context
}

// Info holds the document information dictionary entries we keep.
type Info struct {
	Title     string
	Author    string
	Creator   string
	Producer  string
	Encrypted bool
}

// NewReader parses src with both backends. The caller keeps ownership of src
// and must keep it open for as long as the Reader is used.
func NewReader(src Source) (r *Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("parser panic: %v", p)
		}
	}()

	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("size source: %w", err)
	}

	// 1. Text layer
	text, err := lpdf.NewReader(src, size)
	if err != nil {
		return nil, fmt.Errorf("open text layer: %w", err)
	}

	// 2. Structure layer (pages, resources, annotations)
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind source: %w", err)
	}
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	ctx, err := api.ReadValidateAndOptimize(src, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	return &Reader{text: text, ctx: ctx}, nil
}

// NumPages returns the page count of the structure layer, which is
// authoritative for page indices.
func (r *Reader) NumPages() int {
	return r.ctx.PageCount
}

// GetInfo returns the info dictionary values decoded by pdfcpu.
func (r *Reader) GetInfo() Info {
	return Info{
		Title:     r.ctx.Title,
		Author:    r.ctx.Author,
		Creator:   r.ctx.Creator,
		Producer:  r.ctx.Producer,
		Encrypted: r.ctx.Encrypt != nil,
	}
}

// GetPage extracts everything known about the page at 0-based index i.
// Text and structure failures are reported separately so the caller can
// keep the page slot with whatever was recovered.
func (r *Reader) GetPage(i int) (Page, error) {
	if i < 0 || i >= r.NumPages() {
		return Page{}, fmt.Errorf("page %d out of range [0,%d)", i, r.NumPages())
	}
	p := Page{Index: i}

	e := NewExtractor(r, i)
	text, textErr := e.ExtractText()
	p.Text = text

	p.ImageCount = e.ImageCount()

	links, linkErr := e.Links()
	p.Links = links

	if textErr != nil {
		return p, fmt.Errorf("page %d text: %w", i+1, textErr)
	}
	if linkErr != nil {
		return p, fmt.Errorf("page %d links: %w", i+1, linkErr)
	}
	return p, nil
}

// Page is the raw per-page extraction output.
type Page struct {
	Index      int
	Text       string
	ImageCount int
	Links      []string
}
