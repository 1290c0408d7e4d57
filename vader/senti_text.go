package vader

import (
	"strings"
	"unicode/utf8"
)

// SentiText holds the sentiment-relevant string-level properties of one input.
type SentiText struct {
	// WordsAndEmoticons keeps the surface form of each token.
	WordsAndEmoticons []string
	// WordsAndEmoticonsLower is WordsAndEmoticons lowercased, index for index.
	WordsAndEmoticonsLower []string
	// IsCapDiff is true when the text mixes ALL CAPS tokens with other tokens.
	IsCapDiff bool
}

func NewSentiText(text string) *SentiText {
	wordsAndEmoticons := WordsAndEmoticons(text)

	wordsAndEmoticonsLower := make([]string, 0, len(wordsAndEmoticons))
	for _, w := range wordsAndEmoticons {
		wordsAndEmoticonsLower = append(wordsAndEmoticonsLower, strings.ToLower(w))
	}

	return &SentiText{
		WordsAndEmoticons:      wordsAndEmoticons,
		WordsAndEmoticonsLower: wordsAndEmoticonsLower,
		IsCapDiff:              IsAllCapDiff(wordsAndEmoticons),
	}
}

// Len returns the number of tokens.
func (st *SentiText) Len() int {
	return len(st.WordsAndEmoticons)
}

// WordsAndEmoticons splits text on whitespace and strips leading or trailing
// punctuation from words, leaving contractions and emoticons intact.
// Single characters never become tokens.
func WordsAndEmoticons(text string) []string {
	wordsPunc := wordsPlusPunc(text)

	var wes []string
	for _, we := range strings.Fields(text) {
		if utf8.RuneCountInString(we) <= 1 {
			continue
		}
		if word, ok := wordsPunc[we]; ok {
			we = word
		}
		wes = append(wes, we)
	}
	return wes
}

// wordsPlusPunc maps every punctuation+word and word+punctuation composite
// of the text's words back to the bare word, e.g. "great!" -> "great".
func wordsPlusPunc(text string) map[string]string {
	noPuncText := PunctuationRegexp.ReplaceAllString(text, "")

	var wordsOnly []string
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(noPuncText) {
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		wordsOnly = append(wordsOnly, w)
	}

	wordsPunc := make(map[string]string, 2*len(punctuations)*len(wordsOnly))
	for _, p := range punctuations {
		for _, w := range wordsOnly {
			wordsPunc[p+w] = w
		}
	}
	// word before punctuation wins on collision
	for _, w := range wordsOnly {
		for _, p := range punctuations {
			wordsPunc[w+p] = w
		}
	}
	return wordsPunc
}
