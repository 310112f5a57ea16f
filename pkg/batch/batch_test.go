package batch_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/batch"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/filter"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/parser"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/source"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/state"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/utils"
)

// memReporter collects results in memory for assertions.
type memReporter struct {
	mu      sync.Mutex
	results []batch.Result
}

func (m *memReporter) Report(res batch.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

func (m *memReporter) Close() {}

func (m *memReporter) paths() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[string]bool)
	for _, r := range m.results {
		seen[filepath.Base(r.Path)] = true
	}
	return seen
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for relPath, content := range files {
		fullPath := filepath.Join(tmpDir, relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return tmpDir
}

func newRunner(rep batch.Reporter, f *filter.Filter) *batch.Runner {
	eng := parser.NewEngine(&source.Local{})
	return batch.NewRunner(batch.Config{Threads: 2}, eng, f, &batch.LocalFS{}, utils.NewDeduplicator(), rep)
}

func TestRunIngestsSupportedFiles(t *testing.T) {
	tmpDir := writeTree(t, map[string]string{
		"a.txt":                 "hello password world",
		"sub/b.csv":             "x,y\n1,2",
		"dup.txt":               "hello password world", // identical to a.txt
		"archive.zip":           "not a document",
		"node_modules/skip.txt": "dependency noise",
	})

	rep := &memReporter{}
	f, err := filter.New(filter.Config{})
	if err != nil {
		t.Fatal(err)
	}

	newRunner(rep, f).Run(tmpDir)

	seen := rep.paths()
	if !seen["b.csv"] {
		t.Error("b.csv not ingested")
	}
	if seen["archive.zip"] {
		t.Error("unsupported file was ingested")
	}
	if seen["skip.txt"] {
		t.Error("excluded directory was walked")
	}

	// a.txt and dup.txt have identical content: exactly one survives dedup.
	if seen["a.txt"] == seen["dup.txt"] {
		t.Errorf("dedup failed: a.txt=%v dup.txt=%v", seen["a.txt"], seen["dup.txt"])
	}
	if len(rep.results) != 2 {
		t.Errorf("got %d results, want 2", len(rep.results))
	}
}

func TestRunContentSearch(t *testing.T) {
	tmpDir := writeTree(t, map[string]string{
		"secrets.txt": "this one contains a password123!",
		"boring.txt":  "just some random text",
	})

	rep := &memReporter{}
	f, err := filter.New(filter.Config{Content: []string{"password"}})
	if err != nil {
		t.Fatal(err)
	}

	newRunner(rep, f).Run(tmpDir)

	if len(rep.results) != 1 {
		t.Fatalf("got %d results, want 1", len(rep.results))
	}
	res := rep.results[0]
	if filepath.Base(res.Path) != "secrets.txt" {
		t.Errorf("matched %s, want secrets.txt", res.Path)
	}
	if res.Snippet == "" {
		t.Error("match should carry a snippet")
	}
	if res.Parser != "Plain Text" {
		t.Errorf("parser = %s, want Plain Text", res.Parser)
	}
}

func TestRunExtensionFilter(t *testing.T) {
	tmpDir := writeTree(t, map[string]string{
		"keep.csv": "a,b",
		"drop.txt": "text",
	})

	rep := &memReporter{}
	f, err := filter.New(filter.Config{Extensions: []string{"csv"}})
	if err != nil {
		t.Fatal(err)
	}

	newRunner(rep, f).Run(tmpDir)

	seen := rep.paths()
	if !seen["keep.csv"] || seen["drop.txt"] {
		t.Errorf("extension filter not applied: %v", seen)
	}
}

func TestRunResume(t *testing.T) {
	tmpDir := writeTree(t, map[string]string{
		"done.txt": "already ingested",
		"new.txt":  "fresh content",
	})

	mgr, err := state.NewManager(filepath.Join(t.TempDir(), "resume.json"))
	if err != nil {
		t.Fatal(err)
	}
	mgr.MarkCompleted(filepath.Join(tmpDir, "done.txt"))

	rep := &memReporter{}
	f, err := filter.New(filter.Config{})
	if err != nil {
		t.Fatal(err)
	}
	runner := newRunner(rep, f)
	runner.State = mgr

	runner.Run(tmpDir)

	seen := rep.paths()
	if seen["done.txt"] {
		t.Error("completed file was re-ingested")
	}
	if !seen["new.txt"] {
		t.Error("new file was not ingested")
	}
	if !mgr.IsCompleted(filepath.Join(tmpDir, "new.txt")) {
		t.Error("new file not marked completed after ingest")
	}
}
