package file

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abduss/clipcatalog/internal/classify"
	"go.uber.org/zap"
)

const (
	attrWidth    = "width"
	attrHeight   = "height"
	attrDuration = "duration"
	attrHasAudio = "hasaudio"
)

type objectStore interface {
	List(ctx context.Context, bucketName, prefix string) ([]Object, error)
	Stat(ctx context.Context, bucketName, objectName string) (Attributes, error)
}

type urlIssuer interface {
	ReadURL(ctx context.Context, objectName string) (string, error)
}

// Service enumerates candidate videos and reads their metadata.
type Service struct {
	store        objectStore
	urls         urlIssuer
	objectBucket string
	prefix       string
	log          *zap.Logger
}

// NewService constructs a file service scoped to one bucket and key prefix.
func NewService(store objectStore, urls urlIssuer, objectBucket, prefix string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:        store,
		urls:         urls,
		objectBucket: objectBucket,
		prefix:       prefix,
		log:          log,
	}
}

// Candidates lists every object under the prefix whose name carries a video
// extension, in the order the store returned them.
func (s *Service) Candidates(ctx context.Context) ([]Ref, error) {
	objects, err := s.store.List(ctx, s.objectBucket, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: bucket %q: %w", ErrListFailed, s.objectBucket, err)
	}

	refs := make([]Ref, 0, len(objects))
	for _, obj := range objects {
		if !classify.IsVideo(obj.Key) {
			continue
		}
		refs = append(refs, NewRef(obj.Key, obj.Size))
	}
	return refs, nil
}

// Fetch reads attributes and a durable read URL for ref. Provider failures
// are logged and returned wrapped in ErrFetchFailed; missing or malformed
// custom attributes are not errors.
func (s *Service) Fetch(ctx context.Context, ref Ref) (Metadata, error) {
	attrs, err := s.store.Stat(ctx, s.objectBucket, ref.Key)
	if err != nil {
		s.log.Warn("could not get metadata", zap.String("path", ref.Key), zap.Error(err))
		return Metadata{}, fmt.Errorf("%w: %s: %w", ErrFetchFailed, ref.Key, err)
	}

	url, err := s.urls.ReadURL(ctx, ref.Key)
	if err != nil {
		s.log.Warn("could not issue read url", zap.String("path", ref.Key), zap.Error(err))
		return Metadata{}, fmt.Errorf("%w: %s: %w", ErrFetchFailed, ref.Key, err)
	}
	if url == "" {
		s.log.Warn("empty read url", zap.String("path", ref.Key))
		return Metadata{}, fmt.Errorf("%w: %s: %w", ErrFetchFailed, ref.Key, ErrNoReadURL)
	}

	return Metadata{
		Ref:         ref,
		URL:         url,
		SizeBytes:   attrs.Size,
		ContentType: attrs.ContentType,
		CreatedAt:   attrs.CreatedAt,
		Width:       parseInt(attrs.Custom[attrWidth]),
		Height:      parseInt(attrs.Custom[attrHeight]),
		Duration:    parseFloat(attrs.Custom[attrDuration]),
		HasAudio:    strings.EqualFold(strings.TrimSpace(attrs.Custom[attrHasAudio]), "true"),
	}, nil
}

func parseInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
