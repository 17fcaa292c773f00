package analysis

import (
	"encoding/base64"
	"fmt"
	"time"
)

const (
	tokenMarker  = "AIVERIFIED_"
	tokenPayload = 24
)

// VerificationToken produces a short opaque token binding identifier, score
// and time. The timestamp is an explicit argument, so the function itself is
// deterministic; callers feeding wall-clock time get a fresh token per call
// and must not treat token equality as analysis equality.
func VerificationToken(objectID string, score int, at time.Time) string {
	data := fmt.Sprintf("CCA_%s_%d_%d", objectID, score, at.UnixMilli())
	encoded := base64.StdEncoding.EncodeToString([]byte(data))
	if len(encoded) > tokenPayload {
		encoded = encoded[:tokenPayload]
	}
	return tokenMarker + encoded
}
