package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStampsIdentityAndFixedFields(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, false, nil)

	duration := 12.0
	saved, err := service.Write(context.Background(), sampleDraft("sunset.mp4", &duration))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, StatusPublished, saved.Status)
	assert.Equal(t, GenerationImported, saved.GenerationID)
	assert.Equal(t, 0, saved.Sold)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	assert.Equal(t, "sunset.mp4", saved.FileName)
	assert.Equal(t, &duration, saved.DurationSeconds)
	require.Len(t, store.inserted, 1)
}

func TestWriteRejectsInvalidDraft(t *testing.T) {
	service := NewService(newFakeStore(), false, nil)

	noTitle := sampleDraft("a.mp4", nil)
	noTitle.Title = " "
	_, err := service.Write(context.Background(), noTitle)
	assert.ErrorIs(t, err, ErrInvalidDraft)

	noURL := sampleDraft("a.mp4", nil)
	noURL.VideoURL = ""
	_, err = service.Write(context.Background(), noURL)
	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestWriteWrapsStoreError(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("connection refused")
	service := NewService(store, false, nil)

	_, err := service.Write(context.Background(), sampleDraft("a.mp4", nil))
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.ErrorContains(t, err, "connection refused")
}

func TestWriteWithoutDedupCreatesDuplicates(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, false, nil)

	first, err := service.Write(context.Background(), sampleDraft("beach.mp4", nil))
	require.NoError(t, err)
	second, err := service.Write(context.Background(), sampleDraft("beach.mp4", nil))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.inserted, 2)
	assert.Zero(t, store.lookups)
}

func TestWriteWithDedupSkipsKnownFileName(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, true, nil)

	_, err := service.Write(context.Background(), sampleDraft("beach.mp4", nil))
	require.NoError(t, err)
	_, err = service.Write(context.Background(), sampleDraft("beach.mp4", nil))
	assert.ErrorIs(t, err, ErrDuplicateListing)
	assert.Len(t, store.inserted, 1)

	_, err = service.Write(context.Background(), sampleDraft("city.mp4", nil))
	require.NoError(t, err)
	assert.Len(t, store.inserted, 2)
}

func TestWriteWithDedupLookupError(t *testing.T) {
	store := newFakeStore()
	store.lookupErr = errors.New("scan throttled")
	service := NewService(store, true, nil)

	_, err := service.Write(context.Background(), sampleDraft("a.mp4", nil))
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.Empty(t, store.inserted)
}

func TestNewListingReplacesNilSlices(t *testing.T) {
	l := newListing(uuid.New(), Draft{Title: "x", VideoURL: "u"})
	assert.NotNil(t, l.Tags)
	assert.NotNil(t, l.UseCases)
}

func sampleDraft(fileName string, duration *float64) Draft {
	return Draft{
		SellerID:        "admin",
		SellerName:      "Reelzila",
		Title:           "Sunset",
		Description:     "High-quality sunset stock footage",
		VideoURL:        "https://cdn.test/" + fileName,
		ThumbnailURL:    "https://cdn.test/" + fileName,
		Prompt:          "sunset",
		Price:           4.99,
		Currency:        "EUR",
		Tags:            []string{"stock footage", "video clip"},
		UseCases:        []string{"Marketing"},
		AspectRatio:     "16:9",
		Duration:        "12s",
		DurationSeconds: duration,
		Resolution:      "1920x1080",
		FileSize:        "1.00 MB",
		FileName:        fileName,
	}
}

// --- fakes ---

type fakeStore struct {
	inserted  []Listing
	insertErr error
	lookupErr error
	lookups   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (f *fakeStore) Insert(ctx context.Context, l Listing) (Listing, error) {
	if f.insertErr != nil {
		return Listing{}, f.insertErr
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	f.inserted = append(f.inserted, l)
	return l, nil
}

func (f *fakeStore) ExistsByFileName(ctx context.Context, fileName string) (bool, error) {
	f.lookups++
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	for _, l := range f.inserted {
		if l.FileName == fileName {
			return true, nil
		}
	}
	return false, nil
}
