package listing

import (
	"time"

	"github.com/google/uuid"
)

const (
	// StatusPublished is the only status the importer writes.
	StatusPublished = "published"
	// GenerationImported marks listings that were not produced by the generator.
	GenerationImported = "imported"
)

// Draft is a listing before it has an id or timestamps.
type Draft struct {
	SellerID        string
	SellerName      string
	Title           string
	Description     string
	VideoURL        string
	ThumbnailURL    string
	Prompt          string
	Price           float64
	Currency        string
	Tags            []string
	UseCases        []string
	HasAudio        bool
	AspectRatio     string
	Duration        string
	DurationSeconds *float64
	Resolution      string
	FileSize        string
	FileName        string
}

// Listing is a persisted marketplace record.
type Listing struct {
	ID              uuid.UUID `json:"id" dynamodbav:"-"`
	SellerID        string    `json:"sellerId" dynamodbav:"sellerId"`
	SellerName      string    `json:"sellerName" dynamodbav:"sellerName"`
	Title           string    `json:"title" dynamodbav:"title"`
	Description     string    `json:"description" dynamodbav:"description"`
	VideoURL        string    `json:"videoUrl" dynamodbav:"videoUrl"`
	ThumbnailURL    string    `json:"thumbnailUrl" dynamodbav:"thumbnailUrl"`
	GenerationID    string    `json:"generationId" dynamodbav:"generationId"`
	Prompt          string    `json:"prompt" dynamodbav:"prompt"`
	Price           float64   `json:"price" dynamodbav:"price"`
	Currency        string    `json:"currency" dynamodbav:"currency"`
	Tags            []string  `json:"tags" dynamodbav:"tags"`
	UseCases        []string  `json:"useCases" dynamodbav:"useCases"`
	HasAudio        bool      `json:"hasAudio" dynamodbav:"hasAudio"`
	Status          string    `json:"status" dynamodbav:"status"`
	CreatedAt       time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
	Sold            int       `json:"sold" dynamodbav:"sold"`
	AspectRatio     string    `json:"aspectRatio" dynamodbav:"aspectRatio"`
	Duration        string    `json:"duration" dynamodbav:"duration"`
	DurationSeconds *float64  `json:"durationSeconds,omitempty" dynamodbav:"durationSeconds,omitempty"`
	Resolution      string    `json:"resolution" dynamodbav:"resolution"`
	FileSize        string    `json:"fileSize" dynamodbav:"fileSize"`
	FileName        string    `json:"fileName" dynamodbav:"fileName"`
}

func newListing(id uuid.UUID, d Draft) Listing {
	return Listing{
		ID:              id,
		SellerID:        d.SellerID,
		SellerName:      d.SellerName,
		Title:           d.Title,
		Description:     d.Description,
		VideoURL:        d.VideoURL,
		ThumbnailURL:    d.ThumbnailURL,
		GenerationID:    GenerationImported,
		Prompt:          d.Prompt,
		Price:           d.Price,
		Currency:        d.Currency,
		Tags:            nonNil(d.Tags),
		UseCases:        nonNil(d.UseCases),
		HasAudio:        d.HasAudio,
		Status:          StatusPublished,
		Sold:            0,
		AspectRatio:     d.AspectRatio,
		Duration:        d.Duration,
		DurationSeconds: d.DurationSeconds,
		Resolution:      d.Resolution,
		FileSize:        d.FileSize,
		FileName:        d.FileName,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
