package analysis

import "strings"

// SyntheticBlob deterministically expands an identifier into a stand-in blob
// of at least minLen bytes by repeating it. Used when the gateway cannot
// deliver the real object, so scoring stays available and reproducible.
func SyntheticBlob(objectID string, minLen int) []byte {
	if objectID == "" || minLen <= 0 {
		return []byte(objectID)
	}
	reps := minLen/len(objectID) + 1
	return []byte(strings.Repeat(objectID, reps))
}
