package vader

import "slices"

// butCheck reweights sentiments around the contrastive conjunction "but":
// halved before it, raised by half after it. Only the first occurrence
// counts and the conjunction's own entry is left alone.
func butCheck(wordsAndEmoticons []string, sentiments []float64) []float64 {
	bi := slices.Index(wordsAndEmoticons, "but")
	if bi < 0 {
		bi = slices.Index(wordsAndEmoticons, "BUT")
	}
	if bi < 0 {
		return sentiments
	}

	for si := range sentiments {
		if si < bi {
			sentiments[si] *= ButBefore
		} else if si > bi {
			sentiments[si] *= ButAfter
		}
	}
	return sentiments
}
