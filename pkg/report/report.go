// Package report renders analysis results as a plain-text or JSON report.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AOShei/paperstats/pkg/model"
)

// ErrOutput marks a failure to write the requested report file.
var ErrOutput = errors.New("write report")

// Format names a report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options controls rendering.
type Options struct {
	Format Format
	// Title prints the extracted title line when one was found.
	Title bool
	// FigureNumbers prints "Figure captions: N (Figures ...)" instead of "Figures: N".
	FigureNumbers bool
}

// Text renders results as text blocks separated by a blank line.
func Text(results []model.Result, opts Options) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, block(r, opts))
	}
	return strings.Join(blocks, "\n")
}

func block(r model.Result, opts Options) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "File: %s\n", r.File)
	if opts.Title && r.Title != "" {
		fmt.Fprintf(&sb, "Title: %s\n", r.Title)
	}
	fmt.Fprintf(&sb, "  Words: %d\n", r.WordCount)
	if opts.FigureNumbers {
		figs := "None"
		if len(r.FigureNumbers) > 0 {
			figs = strings.Join(r.FigureNumbers, ", ")
		}
		fmt.Fprintf(&sb, "  Figure captions: %d (Figures %s)\n", r.FigureCount, figs)
	} else {
		fmt.Fprintf(&sb, "  Figures: %d\n", r.FigureCount)
	}
	fmt.Fprintf(&sb, "  Embedded images: %d\n", r.EmbeddedImageCount)
	fmt.Fprintf(&sb, "  References (DOIs): %d\n", r.ReferenceCount)
	if len(r.GitHubLinks) == 0 {
		sb.WriteString("  GitHub links: None\n")
	} else {
		sb.WriteString("  GitHub links:\n")
		for _, link := range r.GitHubLinks {
			fmt.Fprintf(&sb, "    - %s\n", link)
		}
	}
	return sb.String()
}

// Write renders results to w in the configured format.
func Write(w io.Writer, results []model.Result, opts Options) error {
	if opts.Format == FormatJSON {
		if results == nil {
			results = []model.Result{}
		}
		// Output as JSON with HTML escaping disabled for better readability
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(results)
	}
	_, err := io.WriteString(w, Text(results, opts))
	return err
}

// WriteFile renders results to path, replacing any existing file. Errors
// wrap ErrOutput.
func WriteFile(path string, results []model.Result, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	if err := Write(f, results, opts); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", ErrOutput, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutput, path, err)
	}
	return nil
}
