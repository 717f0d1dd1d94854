package campaign

// Tier classifies an efficiency value into one of three buckets used for
// shading and low-performer highlighting.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Tier thresholds are inclusive upper bounds: 5.0 is still low and 49.0 is
// still medium.  They were calibrated against six-week campaign windows and
// must not drift, or rendered maps stop matching historical reports.
const (
	lowTierMax    = 5.0
	mediumTierMax = 49.0
)

// Efficiency is the visitors-per-printed-piece ratio expressed as a
// percentage.  A non-positive print volume yields 0, not an error; such
// records are filtered out before they reach the index anyway.
func Efficiency(visitors, printPieces int64) float64 {
	if printPieces <= 0 {
		return 0
	}
	return float64(visitors) / float64(printPieces) * 100
}

// TierOf buckets an efficiency percentage.
func TierOf(efficiency float64) Tier {
	switch {
	case efficiency <= lowTierMax:
		return TierLow
	case efficiency <= mediumTierMax:
		return TierMedium
	default:
		return TierHigh
	}
}

// VisualIntensity maps an efficiency percentage to the fill-opacity scalar
// the renderer uses for shading.  The values are rendering contract, not
// statistics: they must reproduce exactly for visual parity with previously
// published maps.
func VisualIntensity(efficiency float64) float64 {
	switch TierOf(efficiency) {
	case TierLow:
		return 0.3
	case TierMedium:
		return 0.6
	default:
		return 1.0
	}
}
