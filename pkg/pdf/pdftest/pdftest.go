// Package pdftest builds small uncompressed PDF files for tests.
package pdftest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Page describes one generated page.
type Page struct {
	Lines  []string // shown top to bottom with Helvetica
	Images int      // distinct 1x1 image XObjects drawn on the page
	URIs   []string // one /Link annotation with a URI action each
}

// Build returns a complete PDF with a cross-reference table. A non-empty
// title is written to the info dictionary.
func Build(title string, pages ...Page) []byte {
	w := &writer{}
	w.b.WriteString("%PDF-1.4\n")

	// Fixed objects: 1 catalog, 2 page tree, 3 font.
	const catalog, tree, font = 1, 2, 3
	next := 4
	alloc := func() int {
		n := next
		next++
		return n
	}

	type layout struct {
		page, content int
		images, annots []int
	}
	lays := make([]layout, len(pages))
	for i, p := range pages {
		l := layout{page: alloc(), content: alloc()}
		for range p.Images {
			l.images = append(l.images, alloc())
		}
		for range p.URIs {
			l.annots = append(l.annots, alloc())
		}
		lays[i] = l
	}
	info := 0
	if title != "" {
		info = alloc()
	}
	w.offsets = make([]int, next)

	kids := make([]string, len(lays))
	for i, l := range lays {
		kids[i] = ref(l.page)
	}
	w.object(catalog, fmt.Sprintf("<< /Type /Catalog /Pages %s >>", ref(tree)))
	w.object(tree, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(lays)))
	w.object(font, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, p := range pages {
		l := lays[i]

		var xobjs, draw strings.Builder
		for j, n := range l.images {
			fmt.Fprintf(&xobjs, " /Im%d %s", j+1, ref(n))
			fmt.Fprintf(&draw, "q 10 0 0 10 %d 600 cm /Im%d Do Q\n", 72+20*j, j+1)
		}
		resources := fmt.Sprintf("<< /Font << /F1 %s >>", ref(font))
		if len(l.images) > 0 {
			resources += " /XObject <<" + xobjs.String() + " >>"
		}
		resources += " >>"

		annots := ""
		if len(l.annots) > 0 {
			refs := make([]string, len(l.annots))
			for j, n := range l.annots {
				refs[j] = ref(n)
			}
			annots = " /Annots [" + strings.Join(refs, " ") + "]"
		}
		w.object(l.page, fmt.Sprintf("<< /Type /Page /Parent %s /MediaBox [0 0 612 792] /Resources %s /Contents %s%s >>",
			ref(tree), resources, ref(l.content), annots))

		var content strings.Builder
		content.WriteString("BT\n/F1 12 Tf\n14 TL\n72 720 Td\n")
		for _, line := range p.Lines {
			fmt.Fprintf(&content, "(%s) Tj T*\n", escape(line))
		}
		content.WriteString("ET\n")
		content.WriteString(draw.String())
		w.stream(l.content, "", content.String())

		for j, n := range l.images {
			// Distinct pixel data keeps the optimizer from merging images.
			px := string([]byte{byte(j), 0x80, 0xff})
			w.stream(n, "/Type /XObject /Subtype /Image /Width 1 /Height 1 /ColorSpace /DeviceRGB /BitsPerComponent 8", px)
		}
		for j, n := range l.annots {
			w.object(n, fmt.Sprintf("<< /Type /Annot /Subtype /Link /Rect [72 %d 300 %d] /Border [0 0 0] /A << /S /URI /URI (%s) >> >>",
				100+20*j, 112+20*j, escape(p.URIs[j])))
		}
	}
	if info != 0 {
		w.object(info, fmt.Sprintf("<< /Title (%s) /Producer (pdftest) >>", escape(title)))
	}

	xref := w.b.Len()
	fmt.Fprintf(&w.b, "xref\n0 %d\n0000000000 65535 f \n", next)
	for n := 1; n < next; n++ {
		fmt.Fprintf(&w.b, "%010d 00000 n \n", w.offsets[n])
	}
	fmt.Fprintf(&w.b, "trailer\n<< /Size %d /Root %s", next, ref(catalog))
	if info != 0 {
		fmt.Fprintf(&w.b, " /Info %s", ref(info))
	}
	fmt.Fprintf(&w.b, " >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return []byte(w.b.String())
}

// WriteFile builds a PDF into dir/name and returns its path.
func WriteFile(t testing.TB, dir, name, title string, pages ...Page) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Build(title, pages...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type writer struct {
	b       strings.Builder
	offsets []int
}

func (w *writer) object(n int, body string) {
	w.offsets[n] = w.b.Len()
	fmt.Fprintf(&w.b, "%d 0 obj\n%s\nendobj\n", n, body)
}

func (w *writer) stream(n int, dict, data string) {
	w.offsets[n] = w.b.Len()
	if dict != "" {
		dict += " "
	}
	fmt.Fprintf(&w.b, "%d 0 obj\n<< %s/Length %d >>\nstream\n%s\nendstream\nendobj\n", n, dict, len(data), data)
}

func ref(n int) string { return fmt.Sprintf("%d 0 R", n) }

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	return strings.ReplaceAll(s, ")", `\)`)
}
