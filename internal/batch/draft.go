package batch

import (
	"strings"

	"github.com/abduss/clipcatalog/internal/classify"
	"github.com/abduss/clipcatalog/internal/file"
	"github.com/abduss/clipcatalog/internal/listing"
	"github.com/abduss/clipcatalog/internal/media"
	"github.com/abduss/clipcatalog/internal/pricing"
)

// Seller identifies who the imported listings are published under.
type Seller struct {
	ID   string
	Name string
}

// BuildDraft composes the classifier, normalizer and pricing output for one
// fetched video. The video URL doubles as the thumbnail.
func BuildDraft(meta file.Metadata, seller Seller) listing.Draft {
	desc := classify.Parse(meta.Ref.Name)

	width, height := meta.WidthOrZero(), meta.HeightOrZero()
	duration := meta.DurationOrZero()

	size := meta.SizeBytes
	if size == 0 {
		size = meta.Ref.Size
	}

	return listing.Draft{
		SellerID:        seller.ID,
		SellerName:      seller.Name,
		Title:           desc.Title,
		Description:     desc.Description,
		VideoURL:        meta.URL,
		ThumbnailURL:    meta.URL,
		Prompt:          strings.ToLower(desc.Title),
		Price:           pricing.Price(duration, width),
		Currency:        pricing.Currency,
		Tags:            desc.Tags,
		UseCases:        desc.UseCases,
		HasAudio:        meta.HasAudio,
		AspectRatio:     media.AspectRatio(width, height),
		Duration:        media.DurationLabel(duration),
		DurationSeconds: meta.Duration,
		Resolution:      media.Resolution(width, height),
		FileSize:        media.FileSize(size),
		FileName:        meta.Ref.Name,
	}
}
