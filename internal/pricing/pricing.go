package pricing

// Currency is the currency all tiers are quoted in.
const Currency = "EUR"

const (
	// DefaultPrice applies to short, sub-4K clips.
	DefaultPrice = 4.99
	// LongPrice applies to clips longer than LongThresholdSeconds.
	LongPrice = 7.99
	// UHDPrice applies to clips at least UHDWidth pixels wide.
	UHDPrice = 9.99

	LongThresholdSeconds = 30.0
	UHDWidth             = 3840
)

// Price returns the listing price tier. The 4K tier is checked last and
// replaces the long-duration tier rather than adding to it.
func Price(durationSeconds float64, width int) float64 {
	price := DefaultPrice
	if durationSeconds > LongThresholdSeconds {
		price = LongPrice
	}
	if width >= UHDWidth {
		price = UHDPrice
	}
	return price
}
