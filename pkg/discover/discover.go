// Package discover expands command-line inputs into the list of PDF files
// to analyze.
package discover

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoPDFs is returned when the inputs yield no PDF files.
var ErrNoPDFs = errors.New("no PDFs found")

// InvalidPathError reports an input that is neither a PDF file nor a directory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return e.Path + " is not a PDF or directory, skipping"
}

// IsPDF reports whether name has a .pdf extension in any case.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Gather returns the PDF files named by inputs, scanning directories
// recursively. Paths are made absolute, deduplicated and sorted. Invalid
// inputs and unreadable directory entries are logged and skipped.
func Gather(inputs []string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[string]bool)
	var pdfs []string
	add := func(p string) {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		if !seen[p] {
			seen[p] = true
			pdfs = append(pdfs, p)
		}
	}

	for _, in := range inputs {
		info, err := os.Stat(in)
		switch {
		case err == nil && info.IsDir():
			walkErr := filepath.WalkDir(in, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					logger.Warn("discover: unreadable entry", "path", path, "error", err)
					return nil
				}
				if !d.IsDir() && IsPDF(d.Name()) {
					add(path)
				}
				return nil
			})
			if walkErr != nil {
				logger.Warn("discover: walk failed", "path", in, "error", walkErr)
			}
		case err == nil && info.Mode().IsRegular() && IsPDF(in):
			add(in)
		default:
			logger.Warn("discover: skipping input", "error", &InvalidPathError{Path: in})
		}
	}

	if len(pdfs) == 0 {
		return nil, ErrNoPDFs
	}
	sort.Strings(pdfs)
	return pdfs, nil
}
