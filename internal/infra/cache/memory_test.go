package cache

import (
	"context"
	"testing"
	"time"

	analysis "github.com/copyrightchain/ai-verifier/internal/domain/analysis"
)

func TestMemory_SetGet(t *testing.T) {
	t.Parallel()

	m := NewMemory(time.Minute)
	ctx := context.Background()

	if _, ok := m.Get(ctx, "QmTest123"); ok {
		t.Fatal("empty cache reported a hit")
	}

	want := analysis.Verdict{AuthenticityScore: 85, Confidence: analysis.ConfidenceHigh}
	m.Set(ctx, "QmTest123", want)

	got, ok := m.Get(ctx, "QmTest123")
	if !ok {
		t.Fatal("cache miss after Set")
	}
	if got.AuthenticityScore != want.AuthenticityScore || got.Confidence != want.Confidence {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}

func TestMemory_Expiry(t *testing.T) {
	t.Parallel()

	m := NewMemory(time.Minute)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	ctx := context.Background()
	m.Set(ctx, "QmTest123", analysis.Verdict{AuthenticityScore: 85})

	if _, ok := m.Get(ctx, "QmTest123"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := m.Get(ctx, "QmTest123"); ok {
		t.Fatal("entry survived past its TTL")
	}
}

func TestMemory_ExpiryDoesNotDropRefreshedEntry(t *testing.T) {
	t.Parallel()

	m := NewMemory(time.Minute)
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base

	fresh := analysis.Verdict{AuthenticityScore: 92}
	refreshed := false
	// Get consults the clock between releasing the read lock and taking the
	// write lock for the expiry delete. Refreshing the entry from inside the
	// clock reproduces a Set landing in exactly that window.
	m.now = func() time.Time {
		if !refreshed && now.After(base.Add(time.Minute)) {
			refreshed = true
			m.mu.Lock()
			m.entries["QmTest123"] = memoryEntry{verdict: fresh, expiresAt: now.Add(time.Minute)}
			m.mu.Unlock()
		}
		return now
	}

	ctx := context.Background()
	m.Set(ctx, "QmTest123", analysis.Verdict{AuthenticityScore: 85})

	now = base.Add(2 * time.Minute)
	m.Get(ctx, "QmTest123") // sees the stale entry, must not delete the fresh one

	got, ok := m.Get(ctx, "QmTest123")
	if !ok {
		t.Fatal("refreshed entry was dropped by the stale expiry path")
	}
	if got.AuthenticityScore != fresh.AuthenticityScore {
		t.Errorf("score = %d, want %d", got.AuthenticityScore, fresh.AuthenticityScore)
	}
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	m := NewMemory(0)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	ctx := context.Background()
	m.Set(ctx, "QmTest123", analysis.Verdict{AuthenticityScore: 85})

	now = now.Add(24 * time.Hour)
	if _, ok := m.Get(ctx, "QmTest123"); !ok {
		t.Fatal("zero-TTL entry expired")
	}
}
