package vader

import (
	"strings"
)

// resolver turns the tokens of one SentiText into a valence series.
// It only reads from the lexicon and rules.
type resolver struct {
	lexicon *Lexicon
	rules   *Rules
	st      *SentiText
}

// sentiments returns one valence per token, in token order.
func (r *resolver) sentiments() []float64 {
	words := r.st.WordsAndEmoticonsLower

	sentiments := make([]float64, 0, len(words))
	for i, word := range words {
		// lexicon words used as modifiers carry no sentiment of their own
		if r.rules.IsBooster(word) {
			sentiments = append(sentiments, 0)
			continue
		}
		if word == "kind" && i < len(words)-1 && words[i+1] == "of" {
			sentiments = append(sentiments, 0)
			continue
		}
		sentiments = append(sentiments, r.sentimentValence(i))
	}
	return sentiments
}

func (r *resolver) sentimentValence(i int) float64 {
	words := r.st.WordsAndEmoticonsLower

	valence, ok := r.lexicon.Lookup(words[i])
	if !ok {
		return 0
	}

	// check if sentiment laden word is in ALL CAPS (while others aren't)
	if IsUpper(r.st.WordsAndEmoticons[i]) && r.st.IsCapDiff {
		if valence > 0 {
			valence += CIncr
		} else {
			valence -= CIncr
		}
	}

	for startIndex := 0; startIndex < 3 && i > startIndex; startIndex++ {
		j := i - (startIndex + 1)
		if r.lexicon.Contains(words[j]) {
			continue
		}

		// dampen the scalar modifier of preceding words based on their
		// distance from the current item
		s := r.scalarIncDec(j, valence)
		switch startIndex {
		case 1:
			s *= Dist2Scale
		case 2:
			s *= Dist3Scale
		}

		valence += s
		valence = r.negationCheck(valence, startIndex, i)
		if startIndex == 2 {
			valence = r.specialIdiomsCheck(valence, i)
		}
	}

	return r.leastCheck(valence, i)
}

// scalarIncDec checks if the word at j increases or decreases the valence.
func (r *resolver) scalarIncDec(j int, valence float64) float64 {
	scalar, ok := r.rules.Booster(r.st.WordsAndEmoticonsLower[j])
	if !ok {
		return 0
	}
	if valence < 0 {
		scalar *= -1
	}

	// check if booster/dampener word is in ALLCAPS (while others aren't)
	if IsUpper(r.st.WordsAndEmoticons[j]) && r.st.IsCapDiff {
		if valence > 0 {
			scalar += CIncr
		} else {
			scalar -= CIncr
		}
	}
	return scalar
}

// negationCheck compares tokens as written: "Not" and "NOT" do not negate.
func (r *resolver) negationCheck(valence float64, startIndex, i int) float64 {
	words := r.st.WordsAndEmoticons

	switch startIndex {
	case 0:
		if r.rules.Negated(words[i-1]) {
			return valence * NScalar
		}
	case 1:
		if words[i-2] == "never" && isSoOrThis(words[i-1]) {
			return valence * NeverSoScale2
		} else if r.rules.Negated(words[i-2]) {
			return valence * NScalar
		}
	case 2:
		if words[i-3] == "never" && (isSoOrThis(words[i-2]) || isSoOrThis(words[i-1])) {
			return valence * NeverSoScale3
		} else if r.rules.Negated(words[i-3]) {
			return valence * NScalar
		}
	}
	return valence
}

func isSoOrThis(word string) bool {
	return word == "so" || word == "this"
}

// specialIdiomsCheck replaces the valence when an idiom surrounds word i.
// N-grams are built from the tokens as written. Requires i >= 3.
func (r *resolver) specialIdiomsCheck(valence float64, i int) float64 {
	words := r.st.WordsAndEmoticons

	twoOne := phrase(words, i-2, i-1)
	sequences := []string{
		phrase(words, i-1, i),
		phrase(words, i-2, i),
		twoOne,
		phrase(words, i-3, i-1),
		phrase(words, i-3, i-2),
	}
	if len(words)-1 > i {
		sequences = append(sequences, phrase(words, i, i+1))
	}
	if len(words)-1 > i+1 {
		sequences = append(sequences, phrase(words, i, i+2))
	}

	for _, seq := range sequences {
		if value, ok := r.rules.Idiom(seq); ok {
			valence = value
			break
		}
	}

	// booster/dampener bi-grams such as 'sort of' or 'kind of', only
	// directly before word i
	if r.rules.IsBooster(twoOne) {
		valence += BDecr
	}
	return valence
}

// leastCheck handles "least" as negation ("least helpful") versus
// comparison ("at least helpful").
func (r *resolver) leastCheck(valence float64, i int) float64 {
	words := r.st.WordsAndEmoticonsLower

	if i > 1 && words[i-1] == "least" && !r.lexicon.Contains(words[i-1]) {
		if words[i-2] != "at" && words[i-2] != "very" {
			valence *= NScalar
		}
	} else if i > 0 && words[i-1] == "least" && !r.lexicon.Contains(words[i-1]) {
		valence *= NScalar
	}
	return valence
}

// phrase joins words[from..to] inclusive with single spaces.
func phrase(words []string, from, to int) string {
	return strings.Join(words[from:to+1], " ")
}
