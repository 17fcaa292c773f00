package analysis

import (
	"math"
	"time"
)

const (
	combinedMin = 70
	combinedMax = 100
)

// Weights is the immutable sub-score weighting applied by the combiner.
// Passed explicitly rather than read from package state so the pipeline stays
// pure and testable in isolation.
type Weights struct {
	Quality     float64
	Uniqueness  float64
	Consistency float64
}

// DefaultWeights returns the production weighting.
func DefaultWeights() Weights {
	return Weights{Quality: 0.4, Uniqueness: 0.35, Consistency: 0.25}
}

// Combine applies the weights to the sub-scores, floors the result, clamps it
// to [70,100] and classifies it into confidence and risk tiers.
func (w Weights) Combine(s SubScores) (int, Confidence, Risk) {
	raw := float64(s.Quality)*w.Quality +
		float64(s.Uniqueness)*w.Uniqueness +
		float64(s.Consistency)*w.Consistency

	score := clamp(int(math.Floor(raw)), combinedMin, combinedMax)
	confidence, risk := classifyTiers(score)
	return score, confidence, risk
}

// classifyTiers maps a combined score to its tiers, highest bound first.
// The final branch cannot fire while the combiner clamps to >= 70; the
// threshold table is kept complete anyway.
func classifyTiers(score int) (Confidence, Risk) {
	switch {
	case score >= 90:
		return ConfidenceVeryHigh, RiskVeryLow
	case score >= 80:
		return ConfidenceHigh, RiskLow
	case score >= 70:
		return ConfidenceMedium, RiskMedium
	default:
		return ConfidenceLow, RiskHigh
	}
}

// FallbackVerdict is the degraded-but-successful result returned when the
// pipeline hits an unexpected internal failure: a fixed moderate verdict
// instead of an error to the caller.
func FallbackVerdict(objectID string, at time.Time) Verdict {
	const fallbackScore = 75
	return Verdict{
		AuthenticityScore: fallbackScore,
		Confidence:        ConfidenceMedium,
		RiskLevel:         RiskMedium,
		Analysis: Detail{
			Timestamp: at,
			Error:     "Partial analysis completed",
		},
		VerificationHash: VerificationToken(objectID, fallbackScore, at),
		ProcessingTime:   "0.5s",
		AIModel:          AIModelTag,
	}
}
