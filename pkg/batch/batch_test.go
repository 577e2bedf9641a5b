package batch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/AOShei/paperstats/pkg/analysis"
	"github.com/AOShei/paperstats/pkg/loader"
	"github.com/AOShei/paperstats/pkg/model"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeLoader struct {
	docs  map[string]*model.Document
	calls atomic.Int32
}

func (f *fakeLoader) Load(path string) (*model.Document, error) {
	f.calls.Add(1)
	if d, ok := f.docs[path]; ok {
		return d, nil
	}
	return nil, &loader.LoadError{Path: path, Err: errors.New("broken xref")}
}

func doc(path, body string) *model.Document {
	return &model.Document{Path: path, Pages: []model.Page{
		{Index: 0, Text: "Title\nSubtitle"},
		{Index: 1, Text: body},
	}}
}

func TestRun_SkipsFailedFiles(t *testing.T) {
	fl := &fakeLoader{docs: map[string]*model.Document{
		"a.pdf": doc("a.pdf", "one two three"),
		"c.pdf": doc("c.pdf", "four five"),
	}}
	r := New(Config{Loader: fl, Policy: analysis.Strict(), Logger: quiet})

	s, err := r.Run(context.Background(), []string{"a.pdf", "b.pdf", "c.pdf"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := fl.calls.Load(); got != 3 {
		t.Errorf("loader calls = %d, want 3", got)
	}
	if want := []string{"b.pdf"}; !reflect.DeepEqual(s.Failed, want) {
		t.Errorf("Failed = %v, want %v", s.Failed, want)
	}
	if len(s.Results) != 2 {
		t.Fatalf("Results = %d, want 2", len(s.Results))
	}
	if s.Results[0].File != "a.pdf" || s.Results[0].WordCount != 3 {
		t.Errorf("first result = %+v", s.Results[0])
	}
	if s.Results[1].File != "c.pdf" || s.Results[1].WordCount != 2 {
		t.Errorf("second result = %+v", s.Results[1])
	}
}

func TestRun_ParallelKeepsOrder(t *testing.T) {
	docs := map[string]*model.Document{}
	var paths []string
	for _, p := range []string{"a.pdf", "b.pdf", "c.pdf", "d.pdf", "e.pdf", "f.pdf"} {
		docs[p] = doc(p, "word")
		paths = append(paths, p)
	}
	r := New(Config{Loader: &fakeLoader{docs: docs}, Policy: analysis.Strict(), Jobs: 4, Logger: quiet})

	s, err := r.Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, res := range s.Results {
		if res.File != paths[i] {
			t.Errorf("Results[%d].File = %q, want %q", i, res.File, paths[i])
		}
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := New(Config{Loader: &fakeLoader{}, Logger: quiet})
	if _, err := r.Run(ctx, []string{"a.pdf"}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
