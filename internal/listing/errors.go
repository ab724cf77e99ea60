package listing

import "errors"

var (
	// ErrInvalidDraft is returned when a draft lacks a title or video URL.
	ErrInvalidDraft = errors.New("invalid listing draft")
	// ErrWriteFailed wraps any document store error raised during insert.
	ErrWriteFailed = errors.New("write listing")
	// ErrDuplicateListing is returned when dedup is on and the file name is already listed.
	ErrDuplicateListing = errors.New("listing already exists for file")
)
