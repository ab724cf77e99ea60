// Package media turns raw video attributes into the display labels stored on
// a listing.
package media

import (
	"fmt"
	"math"
)

// Unknown is the label used when an input is missing.
const Unknown = "Unknown"

const (
	ratioTolerance = 0.1
	bytesPerMB     = 1024 * 1024
)

var canonicalRatios = []struct {
	ratio float64
	label string
}{
	{16.0 / 9.0, "16:9 (Landscape)"},
	{9.0 / 16.0, "9:16 (Portrait)"},
	{1.0, "1:1 (Square)"},
	{4.0 / 3.0, "4:3 (Standard)"},
	{21.0 / 9.0, "21:9 (Ultrawide)"},
}

// AspectRatio labels width/height against the canonical ratios, first match
// within tolerance wins. Unmatched ratios are rendered as "WxH".
func AspectRatio(width, height int) string {
	if width <= 0 || height <= 0 {
		return Unknown
	}

	ratio := float64(width) / float64(height)
	for _, c := range canonicalRatios {
		if math.Abs(ratio-c.ratio) < ratioTolerance {
			return c.label
		}
	}
	return Resolution(width, height)
}

// DurationLabel renders seconds as "Mm Ss", or "Ss" under a minute.
func DurationLabel(seconds float64) string {
	if math.IsNaN(seconds) || seconds <= 0 {
		return Unknown
	}

	mins := int(math.Floor(seconds / 60))
	secs := int(math.Mod(seconds, 60))
	if mins > 0 {
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

// Resolution renders "WxH" when both dimensions are known.
func Resolution(width, height int) string {
	if width <= 0 || height <= 0 {
		return Unknown
	}
	return fmt.Sprintf("%dx%d", width, height)
}

// FileSize renders a byte count in megabytes with two decimals.
func FileSize(bytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/bytesPerMB)
}
