// Package batch drives one catalog population run: enumerate candidate
// videos, fetch each one's metadata, build a listing and write it.
package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abduss/clipcatalog/internal/file"
	"github.com/abduss/clipcatalog/internal/listing"
	"github.com/abduss/clipcatalog/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultPacing is the minimum gap between starting two files.
const DefaultPacing = 500 * time.Millisecond

type fileSource interface {
	Candidates(ctx context.Context) ([]file.Ref, error)
	Fetch(ctx context.Context, ref file.Ref) (file.Metadata, error)
}

type listingWriter interface {
	Write(ctx context.Context, d listing.Draft) (listing.Listing, error)
}

type recorder interface {
	CandidatesFound(n int)
	FileHandled(result string)
	RunFinished(elapsed time.Duration, at time.Time)
}

// Runner processes candidates strictly one at a time in listing order.
type Runner struct {
	files  fileSource
	writer listingWriter
	rec    recorder
	seller Seller
	pacing time.Duration
	log    *zap.Logger
	now    func() time.Time
}

// NewRunner constructs a Runner. A nil recorder disables metrics; a
// non-positive pacing disables the delay between files.
func NewRunner(files fileSource, writer listingWriter, rec recorder, seller Seller, pacing time.Duration, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Runner{
		files:  files,
		writer: writer,
		rec:    rec,
		seller: seller,
		pacing: pacing,
		log:    log,
		now:    time.Now,
	}
}

// Run executes one population pass. Per-file failures are counted and never
// abort the run; an enumeration failure or context cancellation does.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	start := r.now()
	var summary Summary

	refs, err := r.files.Candidates(ctx)
	if err != nil {
		return summary, fmt.Errorf("enumerate candidates: %w", err)
	}
	summary.Total = len(refs)
	r.rec.CandidatesFound(len(refs))

	if len(refs) == 0 {
		r.log.Info("no video files found")
		summary.Elapsed = r.now().Sub(start)
		r.rec.RunFinished(summary.Elapsed, r.now())
		return summary, nil
	}
	r.log.Info("found video files", zap.Int("count", len(refs)))

	limiter := r.newLimiter()
	for i, ref := range refs {
		if err := limiter.Wait(ctx); err != nil {
			summary.Elapsed = r.now().Sub(start)
			return summary, fmt.Errorf("run interrupted after %d of %d files: %w", summary.Processed, summary.Total, err)
		}

		result := r.processOne(ctx, i, len(refs), ref)
		summary.Processed++
		switch result {
		case metrics.ResultSucceeded:
			summary.Succeeded++
		case metrics.ResultSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
		r.rec.FileHandled(result)
	}

	summary.Elapsed = r.now().Sub(start)
	r.rec.RunFinished(summary.Elapsed, r.now())
	return summary, nil
}

func (r *Runner) processOne(ctx context.Context, index, total int, ref file.Ref) string {
	log := r.log.With(zap.String("file", ref.Name), zap.String("progress", fmt.Sprintf("%d/%d", index+1, total)))
	log.Info("processing")

	meta, err := r.files.Fetch(ctx, ref)
	if err != nil {
		log.Warn("skipping file: metadata unavailable", zap.Error(err))
		return metrics.ResultFailed
	}

	draft := BuildDraft(meta, r.seller)
	log.Info("extracted",
		zap.String("title", draft.Title),
		zap.Strings("tags", draft.Tags),
		zap.String("aspect_ratio", draft.AspectRatio),
		zap.String("duration", draft.Duration),
		zap.String("resolution", draft.Resolution),
		zap.Bool("has_audio", draft.HasAudio),
		zap.Float64("price", draft.Price),
	)

	saved, err := r.writer.Write(ctx, draft)
	switch {
	case errors.Is(err, listing.ErrDuplicateListing):
		log.Info("skipping file: already listed")
		return metrics.ResultSkipped
	case err != nil:
		log.Error("listing not created", zap.Error(err))
		return metrics.ResultFailed
	}

	log.Info("listing created", zap.String("id", saved.ID.String()))
	return metrics.ResultSucceeded
}

func (r *Runner) newLimiter() *rate.Limiter {
	if r.pacing <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(r.pacing), 1)
}

type nopRecorder struct{}

func (nopRecorder) CandidatesFound(int)                  {}
func (nopRecorder) FileHandled(string)                   {}
func (nopRecorder) RunFinished(time.Duration, time.Time) {}
