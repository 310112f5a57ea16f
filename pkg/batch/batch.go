// Package batch runs every supported file under a directory tree (local or
// SMB) through the parser engine with a bounded worker pool, deduplicates
// identical content and hands results to a Reporter.
package batch

import (
	"io/fs"
	"sync"
	"time"

	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/filter"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/parser"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/state"
	"github.com/AshrafGalibShaik/Universal-Document-Parser-Library/pkg/utils"
)

type Config struct {
	Threads int
}

// Runner walks a tree and ingests matching documents. The engine's byte
// source and the FS must resolve the same names (local paths with LocalFS,
// share-relative paths with SMBFS).
type Runner struct {
	Config   Config
	Engine   *parser.Engine
	Filter   *filter.Filter
	FS       FS
	Dedup    *utils.Deduplicator
	Reporter Reporter
	State    *state.Manager // optional resume state
}

func NewRunner(cfg Config, eng *parser.Engine, f *filter.Filter, fsys FS, dedup *utils.Deduplicator, rep Reporter) *Runner {
	return &Runner{
		Config:   cfg,
		Engine:   eng,
		Filter:   f,
		FS:       fsys,
		Dedup:    dedup,
		Reporter: rep,
	}
}

// Run walks root and ingests every file that passes the filters and is
// claimed by a registered parser. Walk errors are logged, not fatal.
func (r *Runner) Run(root string) {
	utils.LogInfo("Starting ingest on: %s", root)

	t := r.Config.Threads
	if t < 1 {
		t = 1
	}
	sem := make(chan struct{}, t)
	var wg sync.WaitGroup

	err := r.FS.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			utils.LogWarning("Error accessing %s: %v", path, err)
			return nil // keep walking
		}

		if d.IsDir() {
			if r.Filter.CheckExclude(path) {
				utils.LogDebug("Skipping excluded directory: %s", path)
				return fs.SkipDir
			}
			return nil
		}

		if r.Filter.CheckExclude(path) {
			return nil
		}
		if !r.Filter.CheckExtension(d.Name()) {
			return nil
		}
		if len(r.Filter.Config.Filenames) > 0 && !r.Filter.CheckFilename(d.Name()) {
			return nil
		}
		if !r.Engine.CanOpen(path) {
			utils.LogDebug("No parser claims %s, skipping", path)
			return nil
		}
		if r.State != nil && r.State.IsCompleted(path) {
			utils.LogDebug("Already ingested (resume): %s", path)
			return nil
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(fPath string) {
			defer wg.Done()
			defer func() { <-sem }()
			r.ingest(fPath)
		}(path)

		return nil
	})

	if err != nil {
		utils.LogError("Error walking %s: %v", root, err)
	}

	wg.Wait()
}

func (r *Runner) ingest(path string) {
	doc, err := r.Engine.Open(path)
	if err != nil {
		utils.LogWarning("Failed to ingest %s: %v", path, err)
		return
	}

	dup, hash := r.Dedup.CheckAndAdd(doc.Content)
	if dup {
		utils.LogDebug("Duplicate content (%s): %s", hash[:8], path)
		if r.State != nil {
			r.State.MarkCompleted(path)
		}
		return
	}

	matched, snippet := r.Filter.CheckContent(doc.Content)
	if !matched {
		if r.State != nil {
			r.State.MarkCompleted(path)
		}
		return
	}

	r.Reporter.Report(Result{
		Path:      path,
		Format:    doc.Format,
		Parser:    doc.Metadata["parser"],
		Hash:      hash,
		Size:      len(doc.Content),
		Snippet:   snippet,
		Metadata:  doc.Metadata,
		Timestamp: time.Now().Format(time.RFC3339),
	})

	if snippet != "" {
		utils.LogParsed("%s (%s, %d bytes) match: %s", path, doc.Format, len(doc.Content), utils.Bold(snippet))
	} else {
		utils.LogParsed("%s (%s, %d bytes)", path, doc.Format, len(doc.Content))
	}

	if r.State != nil {
		r.State.MarkCompleted(path)
	}
}
