package vader

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/paragonvocal/go-vader/data"
)

// SentimentIntensityAnalyzer gives a sentiment intensity score to sentences.
// It holds only read-only state and may be used from many goroutines.
type SentimentIntensityAnalyzer struct {
	lexicon *Lexicon
	rules   *Rules
	logger  *zap.Logger
}

// Option configures a SentimentIntensityAnalyzer.
type Option func(*SentimentIntensityAnalyzer)

// WithRules replaces the built-in heuristic tables.
func WithRules(rules *Rules) Option {
	return func(sia *SentimentIntensityAnalyzer) {
		if rules != nil {
			sia.rules = rules
		}
	}
}

// WithLogger sets the logger used while loading. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(sia *SentimentIntensityAnalyzer) {
		if logger != nil {
			sia.logger = logger
		}
	}
}

// NewAnalyzer builds an analyzer around an already loaded lexicon.
// A nil lexicon is treated as empty: every text scores neutral.
func NewAnalyzer(lexicon *Lexicon, opts ...Option) *SentimentIntensityAnalyzer {
	if lexicon == nil {
		lexicon = NewLexicon(nil)
	}
	sia := &SentimentIntensityAnalyzer{
		lexicon: lexicon,
		rules:   DefaultRules(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(sia)
	}
	return sia
}

// LoadAnalyzer reads the lexicon file at path and builds an analyzer.
func LoadAnalyzer(path string, opts ...Option) (*SentimentIntensityAnalyzer, error) {
	lexicon, err := LoadLexiconFile(path)
	return NewAnalyzer(nil, opts...).useLexicon(path, lexicon, err)
}

// LoadDefaultAnalyzer builds an analyzer from the embedded lexicon.
func LoadDefaultAnalyzer(opts ...Option) (*SentimentIntensityAnalyzer, error) {
	lexicon, err := loadLexicon(data.LexiconName, bytes.NewReader(data.Lexicon))
	return NewAnalyzer(nil, opts...).useLexicon(data.LexiconName, lexicon, err)
}

func (sia *SentimentIntensityAnalyzer) useLexicon(source string, lexicon *Lexicon, err error) (*SentimentIntensityAnalyzer, error) {
	if err != nil {
		sia.logger.Error("lexicon load failed", zap.String("path", source), zap.Error(err))
		return nil, err
	}
	sia.lexicon = lexicon

	sia.logger.Info("lexicon loaded", zap.String("path", source), zap.Int("entries", lexicon.Len()))
	return sia, nil
}

// Lexicon returns the analyzer's lexicon.
func (sia *SentimentIntensityAnalyzer) Lexicon() *Lexicon {
	return sia.lexicon
}

// ScoreText returns the sentiment scores for text. Positive compound values
// are positive valence, negative values are negative valence.
func (sia *SentimentIntensityAnalyzer) ScoreText(text string) Scores {
	_, sentiments := sia.sentiments(text)
	return scoreValence(sentiments, text).round()
}

// Breakdown shows how a text was scored.
type Breakdown struct {
	Tokens    []string  `json:"tokens"`
	CapsDiff  bool      `json:"caps_diff"`
	Valences  []float64 `json:"valences"`
	Scores    Scores    `json:"scores"`
	Sentiment Label     `json:"label"`
}

// Explain scores text and returns the tokens and per-token valences
// (after the contrastive adjustment) alongside the scores.
func (sia *SentimentIntensityAnalyzer) Explain(text string) Breakdown {
	st, sentiments := sia.sentiments(text)
	scores := scoreValence(sentiments, text).round()

	return Breakdown{
		Tokens:    st.WordsAndEmoticons,
		CapsDiff:  st.IsCapDiff,
		Valences:  sentiments,
		Scores:    scores,
		Sentiment: scores.Label(),
	}
}

func (sia *SentimentIntensityAnalyzer) sentiments(text string) (*SentiText, []float64) {
	st := NewSentiText(text)
	r := &resolver{lexicon: sia.lexicon, rules: sia.rules, st: st}

	sentiments := r.sentiments()
	sentiments = butCheck(st.WordsAndEmoticons, sentiments)
	return st, sentiments
}
