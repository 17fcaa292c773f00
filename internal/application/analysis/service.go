package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/copyrightchain/ai-verifier/internal/application"
	domain "github.com/copyrightchain/ai-verifier/internal/domain/analysis"
)

// Synthetic blob sizes for the two degraded paths. The live-analysis fallback
// mirrors a realistically sized upload; the cached recompute path is smaller
// since it exists only to reproduce a deterministic verdict.
const (
	syntheticFetchLen  = 100_000
	syntheticCachedLen = 50_000
)

const cachedTitle = "Cached Analysis"

// Service implements the authenticity-analysis use-cases.
// Stateless across requests: every field is read-only after construction, so
// the service is safe for concurrent use without locking.
type Service struct {
	Gateway domain.ObjectGateway
	Probe   domain.MetadataProbe
	Cache   domain.VerdictCache // optional; nil disables caching
	Weights domain.Weights
	Clock   application.Clock
}

// Result is the envelope handed back to the transport layer.
type Result struct {
	ObjectID           string
	Title              string
	FetchedFromGateway bool
	Cached             bool
	Verdict            domain.Verdict
}

// Analyze validates the request, retrieves (or synthesizes) the object and
// runs the full scoring pipeline. The only error it ever returns is
// domain.ErrMissingObjectID; every downstream failure degrades instead.
func (s *Service) Analyze(ctx context.Context, objectID, title string) (Result, error) {
	if strings.TrimSpace(objectID) == "" {
		return Result{}, domain.ErrMissingObjectID
	}
	if title == "" {
		title = domain.DefaultTitle
	}

	blob, fetched := s.fetchObject(ctx, objectID)
	verdict := s.evaluate(objectID, title, blob)

	return Result{
		ObjectID:           objectID,
		Title:              title,
		FetchedFromGateway: fetched,
		Verdict:            verdict,
	}, nil
}

// Recompute serves the cached-analysis lookup: no gateway round trip, the
// verdict is rebuilt from a synthesized blob (or taken from the cache when
// one is wired in).
func (s *Service) Recompute(ctx context.Context, objectID string) (Result, error) {
	if strings.TrimSpace(objectID) == "" {
		return Result{}, domain.ErrMissingObjectID
	}

	if s.Cache != nil {
		if v, ok := s.Cache.Get(ctx, objectID); ok {
			return Result{ObjectID: objectID, Title: cachedTitle, Cached: true, Verdict: *v}, nil
		}
	}

	blob := domain.SyntheticBlob(objectID, syntheticCachedLen)
	verdict := s.evaluate(objectID, cachedTitle, blob)

	if s.Cache != nil {
		s.Cache.Set(ctx, objectID, verdict)
	}

	return Result{ObjectID: objectID, Title: cachedTitle, Cached: true, Verdict: verdict}, nil
}

// fetchObject makes a single bounded gateway attempt. Any failure degrades to
// a deterministic synthetic blob instead of propagating: availability over
// fidelity. No retries.
func (s *Service) fetchObject(ctx context.Context, objectID string) ([]byte, bool) {
	blob, err := s.Gateway.Fetch(ctx, objectID)
	if err != nil || len(blob) == 0 {
		slog.Warn("gateway fetch failed, using synthetic blob",
			"objectId", objectID, "error", err)
		return domain.SyntheticBlob(objectID, syntheticFetchLen), false
	}
	slog.Info("object fetched from gateway", "objectId", objectID, "bytes", len(blob))
	return blob, true
}

// evaluate runs probe, sub-scorers, combiner and token generation. A panic
// anywhere inside is converted into the fixed moderate fallback verdict; the
// analysis endpoints always answer.
func (s *Service) evaluate(objectID, title string, blob []byte) (verdict domain.Verdict) {
	started := s.Clock.Now()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("analysis pipeline failure, returning fallback verdict",
				"objectId", objectID, "panic", r)
			verdict = domain.FallbackVerdict(objectID, started)
		}
	}()

	meta := s.Probe.Probe(blob)

	sub := domain.SubScores{
		Quality:     domain.ScoreQuality(meta),
		Uniqueness:  domain.ScoreUniqueness(objectID, title),
		Consistency: domain.ScoreConsistency(blob),
	}
	score, confidence, risk := s.Weights.Combine(sub)

	now := s.Clock.Now()
	verdict = domain.Verdict{
		AuthenticityScore: score,
		Confidence:        confidence,
		RiskLevel:         risk,
		Analysis: domain.Detail{
			SubScores:      sub,
			Resolution:     fmt.Sprintf("%dx%d", meta.WidthPx, meta.HeightPx),
			Format:         meta.Encoding,
			FileSize:       fmt.Sprintf("%d KB", (len(blob)+512)/1024),
			ExifArtist:     meta.ExifArtist,
			ExifCopyright:  meta.ExifCopyright,
			PerceptualHash: meta.PerceptualHash,
			Timestamp:      now,
		},
		VerificationHash: domain.VerificationToken(objectID, score, now),
		ProcessingTime:   formatDuration(now.Sub(started)),
		AIModel:          domain.AIModelTag,
	}

	slog.Info("analysis complete",
		"objectId", objectID, "score", score, "confidence", confidence)
	return verdict
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return d.Round(time.Millisecond).String()
}
