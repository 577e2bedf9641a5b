package pdf

import (
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Extractor handles the logic of pulling content from a single page.
type Extractor struct {
	reader *Reader
	index  int // 0-based
}

func NewExtractor(r *Reader, index int) *Extractor {
	return &Extractor{reader: r, index: index}
}

// ExtractText returns the page's plain text with its line breaks.
// A page the text layer cannot see yields "" and no error.
func (e *Extractor) ExtractText() (text string, err error) {
	pageNr := e.index + 1
	if pageNr > e.reader.text.NumPage() {
		return "", nil
	}
	page := e.reader.text.Page(pageNr)
	if page.V.IsNull() {
		return "", nil
	}

	// The text layer panics on some malformed font and content streams.
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("text layer panic: %v", p)
		}
	}()

	return page.GetPlainText(nil)
}

// ImageCount returns the number of distinct image XObjects the page uses.
func (e *Extractor) ImageCount() int {
	ctx := e.reader.ctx
	if ctx.Optimize == nil {
		return 0
	}
	return len(pdfcpu.ImageObjNrs(ctx, e.index+1))
}

// Links returns the URIs of the page's link annotations in annotation order.
func (e *Extractor) Links() ([]string, error) {
	ctx := e.reader.ctx
	pageDict, _, _, err := ctx.PageDict(e.index+1, false)
	if err != nil {
		return nil, err
	}
	if pageDict == nil {
		return nil, nil
	}

	obj, found := pageDict.Find("Annots")
	if !found || obj == nil {
		return nil, nil
	}
	annots, err := ctx.DereferenceArray(obj)
	if err != nil {
		return nil, err
	}

	var uris []string
	for _, a := range annots {
		d, err := ctx.DereferenceDict(a)
		if err != nil || d == nil {
			continue
		}
		if st := d.NameEntry("Subtype"); st == nil || *st != "Link" {
			continue
		}
		actObj, found := d.Find("A")
		if !found {
			continue
		}
		action, err := ctx.DereferenceDict(actObj)
		if err != nil || action == nil {
			continue
		}
		if s := action.NameEntry("S"); s == nil || *s != "URI" {
			continue
		}
		uriObj, found := action.Find("URI")
		if !found {
			continue
		}
		uriObj, err = ctx.Dereference(uriObj)
		if err != nil {
			continue
		}
		if uri := decodeString(uriObj); uri != "" {
			uris = append(uris, uri)
		}
	}
	return uris, nil
}

// decodeString reads a literal or hex string object.
func decodeString(obj types.Object) string {
	switch v := obj.(type) {
	case types.StringLiteral:
		return strings.TrimSpace(v.Value())
	case types.HexLiteral:
		b, err := v.Bytes()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(b))
	}
	return ""
}
