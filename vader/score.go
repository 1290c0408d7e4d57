package vader

import (
	"math"
	"strings"

	"github.com/gonum/floats"
)

// Scores is the sentiment of one text. Neg, Neu and Pos are the proportions
// of the text falling in each category; Compound is the normalized,
// weighted composite score in [-1, 1].
type Scores struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// Label is a coarse classification of Scores.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Label buckets the scores: positive when more than half the text is
// positive, negative when more than half is negative, neutral otherwise.
func (s Scores) Label() Label {
	switch {
	case s.Pos > 0.5:
		return Positive
	case s.Neg > 0.5 && s.Pos < 0.5:
		return Negative
	default:
		return Neutral
	}
}

func (s Scores) round() Scores {
	return Scores{
		Neg:      floats.Round(s.Neg, 3),
		Neu:      floats.Round(s.Neu, 3),
		Pos:      floats.Round(s.Pos, 3),
		Compound: floats.Round(s.Compound, 4),
	}
}

// punctuationEmphasis adds emphasis from exclamation points and question marks.
func punctuationEmphasis(text string) float64 {
	return amplifyEP(text) + amplifyQM(text)
}

// amplifyEP checks for added emphasis resulting from exclamation points (up to 4 of them).
func amplifyEP(text string) float64 {
	epCount := min(strings.Count(text, "!"), MaxEP)
	return float64(epCount) * EPIncr
}

// amplifyQM checks for added emphasis resulting from question marks (2 or 3+).
func amplifyQM(text string) float64 {
	qmCount := strings.Count(text, "?")
	if qmCount <= 1 {
		return 0
	}
	if qmCount <= MaxQM {
		return float64(qmCount) * QMIncr
	}
	return QMFlood
}

// siftSentimentScores separates positive and negative sentiment sums and
// counts neutral entries.
func siftSentimentScores(sentiments []float64) (posSum, negSum, neuCount float64) {
	for _, sentiment := range sentiments {
		switch {
		case sentiment > 0:
			posSum += sentiment + 1 // compensates for neutral words that are counted as 1
		case sentiment < 0:
			negSum += sentiment - 1 // when used with math.Abs(), compensates for neutrals
		default:
			neuCount++
		}
	}
	return posSum, negSum, neuCount
}

// scoreValence aggregates a valence series into unrounded Scores.
func scoreValence(sentiments []float64, text string) Scores {
	if len(sentiments) == 0 {
		return Scores{}
	}

	sumS := floats.Sum(sentiments)

	// compute and add emphasis from punctuation in text
	punctEmphAmplifier := punctuationEmphasis(text)
	if sumS > 0 {
		sumS += punctEmphAmplifier
	} else if sumS < 0 {
		sumS -= punctEmphAmplifier
	}
	compound := Normalize(sumS)

	// discriminate between positive, negative and neutral sentiment scores
	posSum, negSum, neuCount := siftSentimentScores(sentiments)
	if posSum > math.Abs(negSum) {
		posSum += punctEmphAmplifier
	} else if posSum < math.Abs(negSum) {
		negSum -= punctEmphAmplifier
	}

	total := posSum + math.Abs(negSum) + neuCount

	return Scores{
		Neg:      math.Abs(negSum / total),
		Neu:      math.Abs(neuCount / total),
		Pos:      math.Abs(posSum / total),
		Compound: compound,
	}
}
