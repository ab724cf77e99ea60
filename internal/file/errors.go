package file

import "errors"

var (
	// ErrFetchFailed wraps any provider error raised while reading a file's metadata.
	ErrFetchFailed = errors.New("fetch file metadata")
	// ErrListFailed signals that the storage namespace could not be enumerated.
	ErrListFailed = errors.New("list storage objects")
	// ErrNoReadURL is returned when no durable URL could be issued for a file.
	ErrNoReadURL = errors.New("no read url")
)
