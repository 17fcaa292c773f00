package analysis

import "strings"

const (
	qualityBase = 70
	qualityMin  = 65
	qualityMax  = 100
)

// ScoreQuality maps probed metadata to a bounded quality sub-score in
// [65,100]. Additive bonuses on a base of 70: resolution tier, encoding,
// and aspect ratio. A zero metadata record (unprobeable blob) takes the
// low-resolution, unknown-format path and lands on the base score.
func ScoreQuality(meta ObjectMetadata) int {
	score := qualityBase

	switch px := meta.PixelCount(); {
	case px > 2_000_000:
		score += 20
	case px > 1_000_000:
		score += 15
	case px > 500_000:
		score += 10
	case px > 100_000:
		score += 5
	}

	switch strings.ToLower(meta.Encoding) {
	case "png":
		score += 5
	case "jpg", "jpeg":
		score += 3
	}

	// Not too stretched. HeightPx == 0 fails the check rather than dividing.
	if meta.HeightPx > 0 {
		ratio := float64(meta.WidthPx) / float64(meta.HeightPx)
		if ratio > 0.5 && ratio < 2.0 {
			score += 5
		}
	}

	return clamp(score, qualityMin, qualityMax)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
