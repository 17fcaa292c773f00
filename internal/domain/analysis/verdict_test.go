package analysis

import (
	"strings"
	"testing"
	"time"
)

func TestClassifyTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score          int
		wantConfidence Confidence
		wantRisk       Risk
	}{
		{99, ConfidenceVeryHigh, RiskVeryLow},
		{90, ConfidenceVeryHigh, RiskVeryLow},
		{89, ConfidenceHigh, RiskLow},
		{80, ConfidenceHigh, RiskLow},
		{79, ConfidenceMedium, RiskMedium},
		{70, ConfidenceMedium, RiskMedium},
		// Below the clamp floor: reachable only by calling the classifier
		// directly, kept so the full threshold table stays covered.
		{69, ConfidenceLow, RiskHigh},
	}

	for _, tc := range tests {
		confidence, risk := classifyTiers(tc.score)
		if confidence != tc.wantConfidence || risk != tc.wantRisk {
			t.Errorf("classifyTiers(%d) = (%s, %s), want (%s, %s)",
				tc.score, confidence, risk, tc.wantConfidence, tc.wantRisk)
		}
	}
}

func TestCombine(t *testing.T) {
	t.Parallel()

	weights := DefaultWeights()

	tests := []struct {
		name           string
		sub            SubScores
		wantScore      int
		wantConfidence Confidence
	}{
		{
			name:           "typical mix floors to high tier",
			sub:            SubScores{Quality: 90, Uniqueness: 83, Consistency: 82},
			wantScore:      85, // floor(36 + 29.05 + 20.5)
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "maximum sub-scores",
			sub:            SubScores{Quality: 100, Uniqueness: 95, Consistency: 94},
			wantScore:      96, // floor(96.75)
			wantConfidence: ConfidenceVeryHigh,
		},
		{
			name:           "minimum sub-scores clamp up to the floor",
			sub:            SubScores{Quality: 65, Uniqueness: 70, Consistency: 70},
			wantScore:      70, // floor(68) clamped
			wantConfidence: ConfidenceMedium,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			score, confidence, _ := weights.Combine(tc.sub)
			if score != tc.wantScore {
				t.Errorf("Combine(%+v) score = %d, want %d", tc.sub, score, tc.wantScore)
			}
			if confidence != tc.wantConfidence {
				t.Errorf("Combine(%+v) confidence = %s, want %s", tc.sub, confidence, tc.wantConfidence)
			}
		})
	}
}

// The clamp floor of 70 makes the Low/High tier branch dead for any sub-score
// triple within bounds. Exhaustive over the full valid input space.
func TestCombine_LowTierUnreachable(t *testing.T) {
	t.Parallel()

	weights := DefaultWeights()

	for q := 65; q <= 100; q++ {
		for u := 70; u <= 95; u++ {
			for c := 70; c <= 94; c++ {
				score, confidence, risk := weights.Combine(SubScores{Quality: q, Uniqueness: u, Consistency: c})
				if score < 70 || score > 100 {
					t.Fatalf("Combine(%d,%d,%d) = %d, out of [70,100]", q, u, c, score)
				}
				if confidence == ConfidenceLow || risk == RiskHigh {
					t.Fatalf("Combine(%d,%d,%d) reached the dead tier branch: (%s, %s)",
						q, u, c, confidence, risk)
				}
			}
		}
	}
}

func TestFallbackVerdict(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	v := FallbackVerdict("QmTest123", at)

	if v.AuthenticityScore != 75 {
		t.Errorf("fallback score = %d, want 75", v.AuthenticityScore)
	}
	if v.Confidence != ConfidenceMedium || v.RiskLevel != RiskMedium {
		t.Errorf("fallback tiers = (%s, %s), want (Medium, Medium)", v.Confidence, v.RiskLevel)
	}
	if !strings.HasPrefix(v.VerificationHash, "AIVERIFIED_") {
		t.Errorf("fallback token %q missing marker", v.VerificationHash)
	}
	if v.AIModel != AIModelTag {
		t.Errorf("fallback model = %q, want %q", v.AIModel, AIModelTag)
	}
}
