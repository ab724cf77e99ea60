package file

import (
	"path"
	"time"
)

// Object is one entry returned by a storage listing.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Attributes are the provider-side properties of a stored object. Custom
// keys are lower-cased by the store adapters.
type Attributes struct {
	Size        int64
	ContentType string
	CreatedAt   time.Time
	Custom      map[string]string
}

// Ref identifies a candidate video in the source bucket.
type Ref struct {
	Key  string
	Name string
	Size int64
}

// NewRef builds a Ref whose Name is the last path element of key.
func NewRef(key string, size int64) Ref {
	return Ref{Key: key, Name: path.Base(key), Size: size}
}

// Metadata is what the batch learns about a single video before building a
// listing. Nil dimension fields mean the attribute was absent or unparsable.
type Metadata struct {
	Ref         Ref
	URL         string
	SizeBytes   int64
	ContentType string
	CreatedAt   time.Time
	Width       *int
	Height      *int
	Duration    *float64
	HasAudio    bool
}

// WidthOrZero returns the width or 0 when unknown.
func (m Metadata) WidthOrZero() int {
	if m.Width == nil {
		return 0
	}
	return *m.Width
}

// HeightOrZero returns the height or 0 when unknown.
func (m Metadata) HeightOrZero() int {
	if m.Height == nil {
		return 0
	}
	return *m.Height
}

// DurationOrZero returns the duration in seconds or 0 when unknown.
func (m Metadata) DurationOrZero() float64 {
	if m.Duration == nil {
		return 0
	}
	return *m.Duration
}
