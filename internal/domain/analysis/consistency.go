package analysis

// consistencyWindow bounds how much of the blob feeds the consistency check.
const consistencyWindow = 1000

// ScoreConsistency derives a bounded sub-score in [70,94] from the blob
// content: the byte sum of the first 1000 bytes (or the whole blob if
// shorter), folded into the score range. Pure function of those bytes.
func ScoreConsistency(blob []byte) int {
	window := blob
	if len(window) > consistencyWindow {
		window = window[:consistencyWindow]
	}

	sum := 0
	for _, b := range window {
		sum += int(b)
	}
	return 70 + sum%25
}
