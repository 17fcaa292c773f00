package analysis

import (
	"bytes"
	"testing"
)

func TestSyntheticBlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		objectID string
		minLen   int
	}{
		{"short identifier", "Qm", 100_000},
		{"typical identifier", "QmTest123", 100_000},
		{"cached path size", "QmTest123", 50_000},
		{"identifier longer than minimum", "QmTest123", 4},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			blob := SyntheticBlob(tc.objectID, tc.minLen)

			if len(blob) < tc.minLen {
				t.Errorf("len = %d, want >= %d", len(blob), tc.minLen)
			}
			if !bytes.HasPrefix(blob, []byte(tc.objectID)) {
				t.Errorf("blob does not start with the identifier")
			}
			if again := SyntheticBlob(tc.objectID, tc.minLen); !bytes.Equal(blob, again) {
				t.Errorf("synthetic blob is not deterministic")
			}
		})
	}
}
