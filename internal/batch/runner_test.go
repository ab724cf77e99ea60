package batch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abduss/clipcatalog/internal/file"
	"github.com/abduss/clipcatalog/internal/listing"
	"github.com/abduss/clipcatalog/internal/metrics"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seller = Seller{ID: "admin", Name: "Reelzila"}

func TestRunWithNoCandidatesWritesNothing(t *testing.T) {
	source := &fakeSource{}
	store := &memoryStore{}
	rec := &fakeRecorder{}
	runner := NewRunner(source, listing.NewService(store, false, nil), rec, seller, 0, nil)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, store.items)
	assert.Empty(t, source.fetched)
	assert.True(t, rec.finished)
}

func TestRunContinuesAfterFetchFailure(t *testing.T) {
	source := newFakeSource("a-city.mp4", "broken.mp4", "c-beach.mov")
	source.fetchErr["broken.mp4"] = file.ErrFetchFailed
	store := &memoryStore{}
	rec := &fakeRecorder{}
	runner := NewRunner(source, listing.NewService(store, false, nil), rec, seller, 0, nil)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Summary{Total: 3, Processed: 3, Succeeded: 2, Failed: 1, Elapsed: summary.Elapsed}, summary)
	assert.Equal(t, []string{"a-city.mp4", "broken.mp4", "c-beach.mov"}, source.fetched)
	require.Len(t, store.items, 2)
	assert.Equal(t, "a-city.mp4", store.items[0].FileName)
	assert.Equal(t, "c-beach.mov", store.items[1].FileName)
	assert.Equal(t, map[string]int{metrics.ResultSucceeded: 2, metrics.ResultFailed: 1}, rec.results)
	assert.Equal(t, 3, rec.candidates)
}

func TestRunCountsWriteFailures(t *testing.T) {
	source := newFakeSource("a.mp4", "b.mp4")
	store := &memoryStore{failFor: map[string]bool{"a.mp4": true}}
	runner := NewRunner(source, listing.NewService(store, false, nil), nil, seller, 0, nil)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, []string{"a.mp4", "b.mp4"}, source.fetched)
}

func TestRunTwiceDuplicatesListingsWithoutDedup(t *testing.T) {
	source := newFakeSource("sunset-beach-walk.mp4", "city.mp4")
	store := &memoryStore{}
	runner := NewRunner(source, listing.NewService(store, false, nil), nil, seller, 0, nil)

	for i := 0; i < 2; i++ {
		summary, err := runner.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Succeeded)
	}

	require.Len(t, store.items, 4)
	assert.Equal(t, store.items[0].FileName, store.items[2].FileName)
	assert.NotEqual(t, store.items[0].ID, store.items[2].ID)
}

func TestRunTwiceSkipsListedFilesWithDedup(t *testing.T) {
	source := newFakeSource("sunset-beach-walk.mp4", "city.mp4")
	store := &memoryStore{}
	runner := NewRunner(source, listing.NewService(store, true, nil), nil, seller, 0, nil)

	_, err := runner.Run(context.Background())
	require.NoError(t, err)

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 0, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	assert.Len(t, store.items, 2)
}

func TestRunFailsWhenEnumerationFails(t *testing.T) {
	source := &fakeSource{listErr: file.ErrListFailed}
	store := &memoryStore{}
	runner := NewRunner(source, listing.NewService(store, false, nil), nil, seller, 0, nil)

	_, err := runner.Run(context.Background())
	assert.ErrorIs(t, err, file.ErrListFailed)
	assert.Empty(t, store.items)
}

func TestRunStopsOnCancellation(t *testing.T) {
	source := newFakeSource("a.mp4", "b.mp4", "c.mp4")
	store := &memoryStore{}
	ctx, cancel := context.WithCancel(context.Background())
	source.onFetch = func(name string) {
		if name == "a.mp4" {
			cancel()
		}
	}
	runner := NewRunner(source, listing.NewService(store, false, nil), nil, seller, time.Hour, nil)

	summary, err := runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, []string{"a.mp4"}, source.fetched)
}

func TestRunPacesFiles(t *testing.T) {
	source := newFakeSource("a.mp4", "b.mp4", "c.mp4")
	store := &memoryStore{}
	pacing := 30 * time.Millisecond
	runner := NewRunner(source, listing.NewService(store, false, nil), nil, seller, pacing, nil)

	start := time.Now()
	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 2*pacing-5*time.Millisecond)
	assert.Equal(t, 3, summary.Succeeded)
	for i := 1; i < len(source.fetchedAt); i++ {
		assert.GreaterOrEqual(t, source.fetchedAt[i].Sub(source.fetchedAt[i-1]), pacing-5*time.Millisecond)
	}
}

func TestBuildDraftComposesFields(t *testing.T) {
	width, height, duration := 3840, 2160, 40.0
	meta := file.Metadata{
		Ref:       file.NewRef("marketplace/sunset-beach-walk.mp4", 1),
		URL:       "https://cdn.test/sunset-beach-walk.mp4",
		SizeBytes: 15728640,
		Width:     &width,
		Height:    &height,
		Duration:  &duration,
		HasAudio:  true,
	}

	d := BuildDraft(meta, seller)

	assert.Equal(t, "Sunset Beach Walk", d.Title)
	assert.Equal(t, "sunset beach walk", d.Prompt)
	assert.Equal(t, meta.URL, d.VideoURL)
	assert.Equal(t, meta.URL, d.ThumbnailURL)
	assert.Equal(t, 9.99, d.Price)
	assert.Equal(t, "EUR", d.Currency)
	assert.Equal(t, "16:9 (Landscape)", d.AspectRatio)
	assert.Equal(t, "40s", d.Duration)
	assert.Equal(t, &duration, d.DurationSeconds)
	assert.Equal(t, "3840x2160", d.Resolution)
	assert.Equal(t, "15.00 MB", d.FileSize)
	assert.Equal(t, "sunset-beach-walk.mp4", d.FileName)
	assert.Equal(t, "admin", d.SellerID)
	assert.Equal(t, "Reelzila", d.SellerName)
	assert.True(t, d.HasAudio)
	assert.Contains(t, d.Tags, "golden hour")
}

func TestBuildDraftWithoutAttributes(t *testing.T) {
	meta := file.Metadata{Ref: file.NewRef("clip.mp4", 2097152), URL: "u"}

	d := BuildDraft(meta, seller)

	assert.Equal(t, "Unknown", d.AspectRatio)
	assert.Equal(t, "Unknown", d.Duration)
	assert.Equal(t, "Unknown", d.Resolution)
	assert.Nil(t, d.DurationSeconds)
	assert.Equal(t, 4.99, d.Price)
	assert.Equal(t, "2.00 MB", d.FileSize)
}

func TestSummaryPrint(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	Summary{Total: 3, Processed: 3, Succeeded: 2, Failed: 1, Elapsed: 1500 * time.Millisecond}.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "total:     3")
	assert.Contains(t, out, "succeeded: 2")
	assert.Contains(t, out, "failed:    1")
	assert.Contains(t, out, "elapsed:   1.5s")
	assert.NotContains(t, out, "skipped")

	buf.Reset()
	Summary{}.Print(&buf)
	assert.True(t, strings.Contains(buf.String(), "no video files found"))
}

// --- fakes ---

type fakeSource struct {
	refs      []file.Ref
	listErr   error
	fetchErr  map[string]error
	fetched   []string
	fetchedAt []time.Time
	onFetch   func(name string)
}

func newFakeSource(names ...string) *fakeSource {
	s := &fakeSource{fetchErr: make(map[string]error)}
	for _, n := range names {
		s.refs = append(s.refs, file.NewRef("videos/"+n, 1048576))
	}
	return s
}

func (f *fakeSource) Candidates(ctx context.Context) ([]file.Ref, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.refs, nil
}

func (f *fakeSource) Fetch(ctx context.Context, ref file.Ref) (file.Metadata, error) {
	f.fetched = append(f.fetched, ref.Name)
	f.fetchedAt = append(f.fetchedAt, time.Now())
	if f.onFetch != nil {
		f.onFetch(ref.Name)
	}
	if err := f.fetchErr[ref.Name]; err != nil {
		return file.Metadata{}, err
	}
	return file.Metadata{Ref: ref, URL: "https://cdn.test/" + ref.Key, SizeBytes: ref.Size}, nil
}

type memoryStore struct {
	items   []listing.Listing
	failFor map[string]bool
}

func (m *memoryStore) Insert(ctx context.Context, l listing.Listing) (listing.Listing, error) {
	if m.failFor[l.FileName] {
		return listing.Listing{}, errors.New("write rejected")
	}
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	m.items = append(m.items, l)
	return l, nil
}

func (m *memoryStore) ExistsByFileName(ctx context.Context, fileName string) (bool, error) {
	for _, l := range m.items {
		if l.FileName == fileName {
			return true, nil
		}
	}
	return false, nil
}

type fakeRecorder struct {
	candidates int
	results    map[string]int
	finished   bool
}

func (f *fakeRecorder) CandidatesFound(n int) { f.candidates = n }

func (f *fakeRecorder) FileHandled(result string) {
	if f.results == nil {
		f.results = make(map[string]int)
	}
	f.results[result]++
}

func (f *fakeRecorder) RunFinished(time.Duration, time.Time) { f.finished = true }
