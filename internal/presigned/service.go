package presigned

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"
)

// MaxExpiry is the longest lifetime a SigV4 presigned URL may carry.
const MaxExpiry = 7 * 24 * time.Hour

var ErrEmptyObject = errors.New("presigned: empty object name")

// Signer issues a time-limited GET URL for one object.
type Signer interface {
	PresignGet(ctx context.Context, bucket, object string, expiry time.Duration) (string, error)
}

// Service hands out read URLs for catalog videos. When a public base URL is
// configured it is used directly and nothing is signed.
type Service struct {
	signer        Signer
	bucket        string
	ttl           time.Duration
	publicBaseURL string
}

func NewService(signer Signer, bucket string, ttl time.Duration, publicBaseURL string) *Service {
	if ttl <= 0 || ttl > MaxExpiry {
		ttl = MaxExpiry
	}
	return &Service{
		signer:        signer,
		bucket:        bucket,
		ttl:           ttl,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// TTL returns the lifetime applied to signed URLs.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// ReadURL returns a URL the marketplace can embed for object.
func (s *Service) ReadURL(ctx context.Context, object string) (string, error) {
	if object == "" {
		return "", ErrEmptyObject
	}
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + escapePath(object), nil
	}
	return s.signer.PresignGet(ctx, s.bucket, object, s.ttl)
}

func escapePath(object string) string {
	segments := strings.Split(object, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
