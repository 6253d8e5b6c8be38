package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/source"
	"github.com/dgallion1/docoutline/internal/store"
)

// Worker processes a single document job.
type Worker struct {
	store *store.Store
	stats *ExtractStats
	log   *slog.Logger
	opts  outline.Options
}

func NewWorker(st *store.Store, stats *ExtractStats, log *slog.Logger, opts outline.Options) *Worker {
	return &Worker{
		store: st,
		stats: stats,
		log:   log,
		opts:  opts,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	data := job.FileData()
	job.SetContentHash(ContentHashHex(data))

	// Dedup check before any parsing work.
	existing, err := w.store.FindByHash(ctx, job.ContentHash)
	if err != nil {
		log.Warn("dedup check failed, proceeding", "error", err)
	} else if existing != nil {
		log.Info("duplicate document, reusing stored outline", "existing_doc_id", existing.DocID)
		job.SetDocID(existing.DocID)
		if stored, err := w.store.GetOutline(ctx, existing.DocID); err == nil && stored != nil {
			job.SetOutline(stored)
		}
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := source.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	spans, err := p.Spans(bytes.NewReader(data), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	job.SetSpans(len(spans))
	if len(spans) == 0 {
		log.Warn("no text spans extracted")
	}

	// Phase 2: Analyze
	job.SetStatus(StatusAnalyzing, "analyzing")
	started := time.Now()
	result := outline.Extract(spans, w.opts)
	w.stats.Record(time.Since(started).Milliseconds())
	job.SetOutline(&result)
	log.Info("outline extracted", "title", result.Title, "headings", len(result.Headings))

	// Phase 3: Persist
	job.SetStatus(StatusStoring, "storing")
	_, err = w.store.SaveOutline(ctx, store.Document{
		DocID:       job.DocID,
		Filename:    job.Filename,
		Format:      strings.ToLower(filepath.Ext(job.Filename)),
		ContentHash: job.ContentHash,
	}, result)
	if err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	job.SetStatus(StatusCompleted, "done")
}
