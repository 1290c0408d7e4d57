package vader

import (
	"math"
	"unicode"
)

// Normalize the score to be between -1 and 1 using an alpha that
// approximates the max expected value
func Normalize(score float64) float64 {
	normalizedScore := score / math.Sqrt((score*score)+float64(Alpha))

	if normalizedScore < -1.0 {
		return -1.0
	} else if normalizedScore > 1.0 {
		return 1.0
	}
	return normalizedScore
}

// IsUpper reports whether s has at least one cased letter and no lowercase ones.
// ":)" is not upper, "I'LL" is.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// IsAllCapDiff checks whether just some words in the input are ALL CAPS.
func IsAllCapDiff(words []string) bool {
	allCaps := 0
	for _, word := range words {
		if IsUpper(word) {
			allCaps++
		}
	}

	capDifferential := len(words) - allCaps
	return capDifferential > 0 && capDifferential < len(words)
}
