// Package batch runs the load-and-analyze step over a list of files.
package batch

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/AOShei/paperstats/pkg/analysis"
	"github.com/AOShei/paperstats/pkg/model"
)

// DocumentLoader loads one file. *loader.Loader satisfies it.
type DocumentLoader interface {
	Load(path string) (*model.Document, error)
}

// Config configures a Runner.
type Config struct {
	Loader DocumentLoader
	Policy analysis.Policy
	// Jobs bounds how many files are processed at once (default 1).
	Jobs   int
	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Jobs <= 0 {
		c.Jobs = 1
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Runner analyzes files one by one, or a few at a time when Jobs > 1.
type Runner struct {
	cfg Config
}

// New creates a Runner.
func New(cfg Config) *Runner {
	cfg.defaults()
	return &Runner{cfg: cfg}
}

// Summary is the outcome of one run.
type Summary struct {
	Results []model.Result // in input order, failed files omitted
	Failed  []string
}

// Run analyzes paths. A file that fails to load is logged and skipped; it
// never stops the run. Run returns early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) (Summary, error) {
	results := make([]*model.Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Jobs)
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.analyze(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	var s Summary
	for i, res := range results {
		if res == nil {
			s.Failed = append(s.Failed, paths[i])
			continue
		}
		s.Results = append(s.Results, *res)
	}
	return s, nil
}

// analyze runs one file to completion; the document is dropped on return.
func (r *Runner) analyze(path string) *model.Result {
	log := r.cfg.Logger
	doc, err := r.cfg.Loader.Load(path)
	if err != nil {
		log.Error("batch: skipping file", "path", path, "error", err)
		return nil
	}
	res := analysis.Analyze(doc, r.cfg.Policy)
	log.Debug("batch: analyzed",
		"path", path,
		"pages", len(doc.Pages),
		"words", res.WordCount,
		"figures", res.FigureCount,
		"images", res.EmbeddedImageCount,
		"references", res.ReferenceCount,
		"github_links", len(res.GitHubLinks),
	)
	return &res
}
