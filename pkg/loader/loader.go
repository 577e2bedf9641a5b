package loader

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/AOShei/paperstats/pkg/model"
	"github.com/AOShei/paperstats/pkg/pdf"
)

// LoadError reports a file that could not be opened or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return "load " + e.Path + ": " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }

// Loader turns PDF files into model.Documents.
type Loader struct {
	// Logger for per-page diagnostics.
	Logger *slog.Logger
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

// LoadPDF loads path with a default Loader.
func LoadPDF(path string) (*model.Document, error) {
	var l Loader
	return l.Load(path)
}

// Load takes a file path and returns the structured Document. The file is
// closed before Load returns, on success and on failure. Any error is a
// *LoadError.
func (l *Loader) Load(path string) (*model.Document, error) {
	log := l.logger()

	// 1. Open File
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	// 2. Initialize the Low-Level Reader
	reader, err := pdf.NewReader(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("failed to create pdf reader: %w", err)}
	}

	// 3. Extract Metadata
	info := reader.GetInfo()
	doc := &model.Document{
		Path: path,
		Metadata: model.Metadata{
			Title:     info.Title,
			Author:    info.Author,
			Creator:   info.Creator,
			Producer:  info.Producer,
			Encrypted: info.Encrypted,
		},
		Pages: make([]model.Page, 0, reader.NumPages()),
	}

	// 4. Iterate Pages. A failing page keeps its slot so indices stay aligned.
	start := time.Now()
	for i := 0; i < reader.NumPages(); i++ {
		p, err := reader.GetPage(i)
		if err != nil {
			log.Warn("loader: partial page", "path", path, "page", i+1, "error", err)
		}
		doc.Pages = append(doc.Pages, model.Page{
			Index:      i,
			Text:       p.Text,
			ImageCount: p.ImageCount,
			Links:      p.Links,
		})
	}

	log.Debug("loader: document loaded", "path", path, "pages", len(doc.Pages), "elapsed", time.Since(start))
	return doc, nil
}
