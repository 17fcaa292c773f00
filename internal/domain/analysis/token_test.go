package analysis

import (
	"strings"
	"testing"
	"time"
)

func TestVerificationToken_Format(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, objectID := range []string{"x", "QmTest123", "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"} {
		token := VerificationToken(objectID, 85, at)

		if !strings.HasPrefix(token, "AIVERIFIED_") {
			t.Errorf("token %q missing marker", token)
		}
		if len(token) != len("AIVERIFIED_")+24 {
			t.Errorf("token %q length = %d, want %d", token, len(token), len("AIVERIFIED_")+24)
		}
		payload := strings.TrimPrefix(token, "AIVERIFIED_")
		for _, r := range payload {
			if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/=", r) {
				t.Errorf("token payload %q contains non-base64 rune %q", payload, r)
			}
		}
	}
}

func TestVerificationToken_DeterministicForFixedTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first := VerificationToken("QmTest123", 85, at)
	if second := VerificationToken("QmTest123", 85, at); second != first {
		t.Errorf("same inputs and time produced different tokens: %q vs %q", first, second)
	}
	if other := VerificationToken("QmOther456", 85, at); other == first {
		t.Errorf("different identifiers produced the same token %q", first)
	}
}
