package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type documentStore interface {
	Insert(ctx context.Context, l Listing) (Listing, error)
	ExistsByFileName(ctx context.Context, fileName string) (bool, error)
}

// Service writes catalog listings to a document store.
type Service struct {
	store           documentStore
	dedupByFileName bool
	log             *zap.Logger
}

// NewService constructs a listing writer. With dedupByFileName set, drafts
// whose file name is already listed are rejected with ErrDuplicateListing.
func NewService(store documentStore, dedupByFileName bool, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, dedupByFileName: dedupByFileName, log: log}
}

// Write inserts one new listing for d. There is no retry.
func (s *Service) Write(ctx context.Context, d Draft) (Listing, error) {
	if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.VideoURL) == "" {
		return Listing{}, fmt.Errorf("%w: %s: title and video url are required", ErrInvalidDraft, d.FileName)
	}

	if s.dedupByFileName {
		exists, err := s.store.ExistsByFileName(ctx, d.FileName)
		if err != nil {
			s.log.Error("could not check for existing listing", zap.String("file", d.FileName), zap.Error(err))
			return Listing{}, fmt.Errorf("%w: %s: %w", ErrWriteFailed, d.FileName, err)
		}
		if exists {
			return Listing{}, fmt.Errorf("%w: %s", ErrDuplicateListing, d.FileName)
		}
	}

	saved, err := s.store.Insert(ctx, newListing(uuid.New(), d))
	if err != nil {
		s.log.Error("could not write listing", zap.String("file", d.FileName), zap.Error(err))
		return Listing{}, fmt.Errorf("%w: %s: %w", ErrWriteFailed, d.FileName, err)
	}
	return saved, nil
}
