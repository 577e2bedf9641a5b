package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/AOShei/paperstats/pkg/analysis"
	"github.com/AOShei/paperstats/pkg/report"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paperstats.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Variant != "strict" {
		t.Errorf("Variant = %q, want strict", cfg.Variant)
	}
	if cfg.Policy != analysis.Strict() {
		t.Errorf("Policy = %+v, want strict preset", cfg.Policy)
	}
	if cfg.Jobs != 1 || cfg.Format != report.FormatText || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFile_VariantWithOverrides(t *testing.T) {
	path := writeConfig(t, `
variant: simple
jobs: 4
format: json
policy:
  figure_counting: occurrences
  title_page: true
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := analysis.Simple()
	want.FigureCounting = analysis.CountOccurrences
	want.TitlePage = true
	if cfg.Policy != want {
		t.Errorf("Policy = %+v, want %+v", cfg.Policy, want)
	}
	if cfg.Jobs != 4 || cfg.Format != report.FormatJSON {
		t.Errorf("Jobs/Format = %d/%q", cfg.Jobs, cfg.Format)
	}
}

func TestLoadFile_OverridesKeptWithoutVariant(t *testing.T) {
	path := writeConfig(t, "policy:\n  strip_captions: false\n")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := analysis.Strict()
	want.StripCaptions = false
	if cfg.Policy != want {
		t.Errorf("Policy = %+v, want %+v", cfg.Policy, want)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad variant":  "variant: loose\n",
		"bad scope":    "policy:\n  word_scope: everywhere\n",
		"bad format":   "format: xml\n",
		"bad level":    "log_level: loud\n",
		"not yaml map": "- a\n- b\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestUseVariant(t *testing.T) {
	cfg := Default()
	if err := cfg.UseVariant("simple"); err != nil {
		t.Fatal(err)
	}
	if cfg.Policy != analysis.Simple() {
		t.Errorf("Policy = %+v, want simple preset", cfg.Policy)
	}
	if err := cfg.UseVariant("nope"); err == nil {
		t.Error("expected error")
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "info": slog.LevelInfo, "": slog.LevelInfo,
		"warn": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}
