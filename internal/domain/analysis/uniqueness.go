package analysis

// ScoreUniqueness derives a bounded sub-score in [70,95] from the identifier
// and title via a 32-bit rolling hash (h = h*31 + char, wrapping). Collisions
// are acceptable; this is a heuristic, not a digest.
func ScoreUniqueness(objectID, title string) int {
	var h int32
	for _, r := range objectID + title {
		h = h*31 + int32(r)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return 70 + int(v%26)
}
