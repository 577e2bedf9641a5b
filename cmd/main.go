// Command paperstats reports word, figure, image, GitHub link and DOI
// reference counts for academic PDFs.
//
// Usage:
//
//	paperstats paper.pdf papers/               # report to stdout
//	paperstats -o report.txt papers/           # report to a file
//	paperstats -variant simple -format json papers/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AOShei/paperstats/pkg/analysis"
	"github.com/AOShei/paperstats/pkg/batch"
	"github.com/AOShei/paperstats/pkg/config"
	"github.com/AOShei/paperstats/pkg/discover"
	"github.com/AOShei/paperstats/pkg/loader"
	"github.com/AOShei/paperstats/pkg/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one batch and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("paperstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: paperstats [flags] <pdf-or-dir>...")
		fs.PrintDefaults()
	}

	var output string
	fs.StringVar(&output, "o", "", "write the report to this file instead of stdout")
	fs.StringVar(&output, "output", "", "same as -o")
	configPath := fs.String("config", "", "path to a paperstats.yaml config file")
	variant := fs.String("variant", "strict", "extraction policy: strict or simple")
	format := fs.String("format", "text", "report format: text or json")
	jobs := fs.Int("jobs", 1, "files analyzed concurrently")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")

	// Flags may follow positional paths. Everything after "--" is a path.
	var paths []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return 2
		}
		consumed := len(rest) - fs.NArg()
		rest = fs.Args()
		if consumed > 0 && args[len(args)-len(rest)-1] == "--" {
			paths = append(paths, rest...)
			break
		}
		if len(rest) == 0 {
			break
		}
		paths = append(paths, rest[0])
		rest = rest[1:]
	}
	if len(paths) == 0 {
		fs.Usage()
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "paperstats: load config: %v\n", err)
			return 2
		}
		cfg = loaded
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["variant"] {
		if err := cfg.UseVariant(*variant); err != nil {
			fmt.Fprintf(stderr, "paperstats: %v\n", err)
			return 2
		}
	}
	if set["format"] {
		cfg.Format = report.Format(*format)
	}
	if set["jobs"] {
		cfg.Jobs = *jobs
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "paperstats: %v\n", err)
		return 2
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	pdfs, err := discover.Gather(paths, logger)
	if errors.Is(err, discover.ErrNoPDFs) {
		logger.Error("No PDFs found. Exiting.")
		return 1
	}

	runner := batch.New(batch.Config{
		Loader: &loader.Loader{Logger: logger},
		Policy: cfg.Policy,
		Jobs:   cfg.Jobs,
		Logger: logger,
	})
	summary, err := runner.Run(ctx, pdfs)
	if err != nil {
		logger.Error("paperstats: interrupted", "error", err)
		return 1
	}
	if len(summary.Failed) > 0 {
		logger.Warn("paperstats: some files were skipped", "skipped", len(summary.Failed), "analyzed", len(summary.Results))
	}

	opts := report.Options{
		Format:        cfg.Format,
		Title:         cfg.Policy.TitlePage,
		FigureNumbers: cfg.Policy.FigureCounting == analysis.CountDistinct,
	}
	if output != "" {
		if err := report.WriteFile(output, summary.Results, opts); err != nil {
			logger.Error("paperstats: fatal", "error", err)
			return 1
		}
		fmt.Fprintf(stdout, "Report written to %s\n", output)
		return 0
	}
	if err := report.Write(stdout, summary.Results, opts); err != nil {
		logger.Error("paperstats: fatal", "error", err)
		return 1
	}
	return 0
}
