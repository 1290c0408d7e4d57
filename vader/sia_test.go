package vader

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestAnalyzer(t testing.TB) *SentimentIntensityAnalyzer {
	t.Helper()
	sia, err := LoadDefaultAnalyzer()
	require.NoError(t, err)
	return sia
}

var sentences = []string{
	"VADER is smart, handsome, and funny.",                                                // positive sentence example
	"VADER is smart, handsome, and funny!",                                                // punctuation emphasis handled correctly (sentiment intensity adjusted)
	"VADER is very smart, handsome, and funny.",                                           // booster words handled correctly (sentiment intensity adjusted)
	"VADER is VERY SMART, handsome, and FUNNY.",                                           // emphasis for ALLCAPS handled
	"VADER is VERY SMART, handsome, and FUNNY!!!",                                         // combination of signals - VADER appropriately adjusts intensity
	"VADER is VERY SMART, uber handsome, and FRIGGIN FUNNY!!!",                            // booster words & punctuation make this close to ceiling for score
	"VADER is not smart, handsome, nor funny.",                                            // negation sentence example
	"The book was good.",                                                                  // positive sentence
	"At least it isn't a horrible book.",                                                  // negated negative sentence with contraction
	"The book was only kind of good.",                                                     // qualified positive sentence is handled correctly (intensity adjusted)
	"The plot was good, but the characters are uncompelling and the dialog is not great.", // mixed negation sentence
	"Today SUX!",                                 // negative slang with capitalization emphasis
	"Today only kinda sux! But I'll get by, lol", // mixed sentiment example with slang and constrastive conjunction "but"
	"Make sure you :) or :D today!",              // emoticons handled
	"Not bad at all",                             // Capitalized negation
}

var trickySentences = []string{
	"Sentiment analysis has never been good.",
	"Sentiment analysis has never been this good!",
	"Most automated sentiment analysis tools are shit.",
	"With VADER, sentiment analysis is the shit!",
	"Other sentiment analysis tools can be quite bad.",
	"On the other hand, VADER is quite bad ass",
	"Roger Dodger is one of the least compelling variations on this theme.",
	"Without a doubt, excellent idea.",
}

func TestLoadDefaultAnalyzer(t *testing.T) {
	sia := newTestAnalyzer(t)
	assert.Greater(t, sia.Lexicon().Len(), 100)

	v, ok := sia.Lexicon().Lookup(":)")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestLoadAnalyzer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	require.NoError(t, os.WriteFile(path, []byte("great\t3.1\t0.7\nhorrible\t-2.5\t0.6\n"), 0o644))

	core, logs := observer.New(zapcore.InfoLevel)
	sia, err := LoadAnalyzer(path, WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 2, sia.Lexicon().Len())

	entries := logs.FilterMessage("lexicon loaded").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["entries"])

	assert.Greater(t, sia.ScoreText("great").Compound, 0.0)
	assert.Less(t, sia.ScoreText("horrible").Compound, 0.0)
}

func TestLoadAnalyzer_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.txt")
	require.NoError(t, os.WriteFile(path, []byte("great\t3.1\nhorrible\n"), 0o644))

	sia, err := LoadAnalyzer(path)
	require.Error(t, err)
	assert.Nil(t, sia)
	assert.ErrorIs(t, err, ErrMalformedLine)

	core, logs := observer.New(zapcore.InfoLevel)
	sia, err = LoadAnalyzer(filepath.Join(t.TempDir(), "nope.txt"), WithLogger(zap.New(core)))
	require.Error(t, err)
	assert.Nil(t, sia)
	assert.Equal(t, 1, logs.FilterMessage("lexicon load failed").Len())
}

func TestUseLexicon_LogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	loadErr := &LoadError{Source: "embedded:test", Line: 3, Err: ErrMalformedLine}

	sia, err := NewAnalyzer(nil, WithLogger(zap.New(core))).useLexicon("embedded:test", nil, loadErr)
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Nil(t, sia)

	entries := logs.FilterMessage("lexicon load failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "embedded:test", entries[0].ContextMap()["path"])
	assert.Zero(t, logs.FilterMessage("lexicon loaded").Len())
}

func TestNewAnalyzer_NilLexicon(t *testing.T) {
	sia := NewAnalyzer(nil)
	assert.Equal(t, 0, sia.Lexicon().Len())
	assert.Equal(t, Scores{Neg: 0, Neu: 1, Pos: 0, Compound: 0}, sia.ScoreText("The book was good!"))

	var lex *Lexicon
	_, ok := lex.Lookup("good")
	assert.False(t, ok)
	assert.False(t, lex.Contains("good"))
	assert.Equal(t, 0, lex.Len())
}

func TestScoreText_Empty(t *testing.T) {
	sia := newTestAnalyzer(t)
	assert.Equal(t, Scores{}, sia.ScoreText(""))
	assert.Equal(t, Scores{}, sia.ScoreText("   \t\n"))
	assert.Equal(t, Scores{}, sia.ScoreText("a ! ?"))
}

func TestScoreText_Properties(t *testing.T) {
	sia := newTestAnalyzer(t)

	inputs := append(append([]string{}, sentences...), trickySentences...)
	inputs = append(inputs,
		"!!!!", "???", ":) :) :(", "GOOD", "but", "BUT bad", "never never never", "12 34 56",
		"Catch utf-8 emoji such as 💘 and 💋 and 😁",
	)

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			first := sia.ScoreText(text)
			assert.Equal(t, first, sia.ScoreText(text), "deterministic")

			for _, v := range []float64{first.Neg, first.Neu, first.Pos} {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
			assert.GreaterOrEqual(t, first.Compound, -1.0)
			assert.LessOrEqual(t, first.Compound, 1.0)

			// rounding each proportion to 3 decimals can move the sum by at most 0.0015
			assert.InDelta(t, 1.0, first.Neg+first.Neu+first.Pos, 0.0015)

			st, series := sia.sentiments(text)
			require.Len(t, series, st.Len())

			raw := scoreValence(series, text)
			assert.InDelta(t, 1.0, raw.Neg+raw.Neu+raw.Pos, 1e-9)

			sum := 0.0
			for _, v := range series {
				sum += v
			}
			assert.Equal(t, sum < 0, raw.Compound < 0, "compound sign follows the valence sum")
			assert.Equal(t, sum > 0, raw.Compound > 0, "compound sign follows the valence sum")
		})
	}
}

func TestScoreText_Negation(t *testing.T) {
	sia := newTestAnalyzer(t)

	plain := sia.ScoreText("VADER is smart, handsome, and funny.")
	negated := sia.ScoreText("VADER is not smart, handsome, nor funny.")

	assert.Greater(t, plain.Pos, plain.Neg)
	assert.LessOrEqual(t, negated.Compound, plain.Compound)
	assert.Less(t, negated.Compound, 0.0)
}

func TestScoreText_Intensifier(t *testing.T) {
	sia := newTestAnalyzer(t)

	plain := sia.ScoreText("VADER is smart, handsome, and funny.")
	boosted := sia.ScoreText("VADER is very smart, handsome, and funny.")
	caps := sia.ScoreText("VADER is VERY SMART, handsome, and FUNNY.")

	assert.GreaterOrEqual(t, math.Abs(boosted.Compound), math.Abs(plain.Compound))
	assert.GreaterOrEqual(t, math.Abs(caps.Compound), math.Abs(boosted.Compound))
}

func TestScoreText_Punctuation(t *testing.T) {
	sia := newTestAnalyzer(t)

	plain := sia.ScoreText("VADER is smart, handsome, and funny.")
	one := sia.ScoreText("VADER is smart, handsome, and funny!")
	three := sia.ScoreText("VADER is smart, handsome, and funny!!!")

	assert.GreaterOrEqual(t, math.Abs(one.Compound), math.Abs(plain.Compound))
	assert.GreaterOrEqual(t, math.Abs(three.Compound), math.Abs(one.Compound))
}

func TestScoreText_Idiom(t *testing.T) {
	sia := newTestAnalyzer(t)

	b := sia.Explain("that was the shit")
	require.Equal(t, []string{"that", "was", "the", "shit"}, b.Tokens)
	assert.Equal(t, []float64{0, 0, 0, 3}, b.Valences)
	assert.Equal(t, Scores{Neg: 0, Neu: 0.429, Pos: 0.571, Compound: 0.6124}, b.Scores)
	assert.Equal(t, Positive, b.Sentiment)

	shit, _ := sia.Lexicon().Lookup("shit")
	assert.Less(t, shit, 0.0)
}

func TestScoreText_Contrast(t *testing.T) {
	sia := newTestAnalyzer(t)

	but := sia.Explain("The food was great but the service was horrible")
	and := sia.Explain("The food was great and the service was horrible")

	assert.InDeltaSlice(t, []float64{0, 0, 0, 3.1 * ButBefore, 0, 0, 0, 0, -2.5 * ButAfter}, but.Valences, 1e-9)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 3.1, 0, 0, 0, 0, -2.5}, and.Valences, 1e-9)

	assert.Greater(t, and.Scores.Compound, 0.0)
	assert.Less(t, but.Scores.Compound, 0.0)
	assert.Equal(t, -0.4939, but.Scores.Compound)
}

func TestScoreText_Polarity(t *testing.T) {
	sia := newTestAnalyzer(t)

	tests := map[string]int{
		"The book was good.":                           1,
		"At least it isn't a horrible book.":           1,
		"Today SUX!":                                   -1,
		"Not bad at all":                               -1,
		"Make sure you :) or :D today!":                1,
		"Sentiment analysis has never been good.":      -1,
		"Sentiment analysis has never been this good!": 1,
		"With VADER, sentiment analysis is the shit!":  1,
		"Most automated sentiment analysis tools are shit.":                                    -1,
		"Other sentiment analysis tools can be quite bad.":                                     -1,
		"On the other hand, VADER is quite bad ass":                                            1,
		"The plot was good, but the characters are uncompelling and the dialog is not great.": -1,
		"Today only kinda sux! But I'll get by, lol":                                           1,
		"Roger Dodger is one of the least compelling variations on this theme.":                -1,
		"Roger Dodger is one of the most compelling variations on this theme.":                 1,
		"Roger Dodger is at least compelling as a variation on the theme.":                     1,
		"The sky is blue":                                                                      0,
	}

	for sentence, label := range tests {
		compound := sia.ScoreText(sentence).Compound
		if (label == 1 && compound < 0.05) || (label == -1 && compound > -0.05) || (label == 0 && (compound < -0.05 || compound > 0.05)) {
			t.Errorf("Wrong sentiment for sentence: %s :%f", sentence, compound)
		} else {
			t.Logf("%s : %f", sentence, compound)
		}
	}
}

func TestScoreText_Exact(t *testing.T) {
	sia := newTestAnalyzer(t)

	tests := []struct {
		text string
		want Scores
	}{
		{"Roger Dodger is one of the most compelling variations on this theme.", Scores{Neg: 0, Neu: 0.834, Pos: 0.166, Compound: 0.2944}},
		{"Roger Dodger is one of the least compelling variations on this theme.", Scores{Neg: 0.132, Neu: 0.868, Pos: 0, Compound: -0.1695}},
		{"Roger Dodger is at least compelling as a variation on the theme.", Scores{Neg: 0, Neu: 0.84, Pos: 0.16, Compound: 0.2263}},
		{"Not bad at all", Scores{Neg: 0.538, Neu: 0.462, Pos: 0, Compound: -0.5423}},
		{"NOT good", Scores{Neg: 0, Neu: 0.256, Pos: 0.744, Compound: 0.4404}},
		{"It is not NOT good", Scores{Neg: 0.376, Neu: 0.624, Pos: 0, Compound: -0.3412}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, sia.ScoreText(tt.text))
		})
	}
}

func TestScoreText_Concurrent(t *testing.T) {
	sia := newTestAnalyzer(t)

	want := make([]Scores, len(sentences))
	for i, s := range sentences {
		want[i] = sia.ScoreText(s)
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, s := range sentences {
				assert.Equal(t, want[i], sia.ScoreText(s))
			}
		}()
	}
	wg.Wait()
}

func TestWithRules(t *testing.T) {
	rules := NewRules(nil, nil, map[string]float64{"good grief": -2})
	sia := NewAnalyzer(NewLexicon(map[string]float64{"good": 1.9, "grief": -2.2}), WithRules(rules))

	assert.Equal(t, []float64{0, 0, 0, -2, -2}, sia.Explain("oh my oh good grief").Valences)
}

func BenchmarkSentimentIntensityAnalyzer_ScoreText(b *testing.B) {
	sia := newTestAnalyzer(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sia.ScoreText("VADER is smart, handsome, and funny!")
	}
}
