// Package batch scores many texts in parallel against one shared analyzer.
package batch

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/paragonvocal/go-vader/vader"
)

// Scorer scores a single text. *vader.SentimentIntensityAnalyzer satisfies it.
type Scorer interface {
	ScoreText(text string) vader.Scores
}

// Result is the score of one input text.
type Result struct {
	Index  int          `json:"index"`
	Text   string       `json:"text"`
	Scores vader.Scores `json:"scores"`
	Label  vader.Label  `json:"label"`
}

// Runner fans texts out to a bounded number of goroutines.
type Runner struct {
	scorer  Scorer
	workers int
	logger  *zap.Logger
}

// NewRunner returns a Runner using at most workers goroutines.
// workers below 1 is treated as 1 and a nil logger as a no-op logger.
func NewRunner(scorer Scorer, workers int, logger *zap.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{scorer: scorer, workers: workers, logger: logger}
}

// Score scores every text and returns the results in input order.
// If ctx is cancelled no further texts are started and ctx.Err() is returned.
func (r *Runner) Score(ctx context.Context, texts []string) ([]Result, error) {
	start := time.Now()
	r.logger.Debug("batch started", zap.Int("texts", len(texts)), zap.Int("workers", r.workers))

	results := make([]Result, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, text := range texts {
		i, text := i, text
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores := r.scorer.ScoreText(text)
			// each goroutine owns one slot
			results[i] = Result{Index: i, Text: text, Scores: scores, Label: scores.Label()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.logger.Warn("batch aborted", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		r.logger.Warn("batch aborted", zap.Error(err))
		return nil, err
	}

	r.logger.Debug("batch finished", zap.Int("texts", len(texts)), zap.Duration("elapsed", time.Since(start)))
	return results, nil
}
