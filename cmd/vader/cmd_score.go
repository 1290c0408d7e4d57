package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paragonvocal/go-vader/vader"
)

func newScoreCmd(a *app) *cobra.Command {
	var asJSON, explain bool

	cmd := &cobra.Command{
		Use:   "score [text...]",
		Short: "Score each argument as one text",
		Example: `  vader score "VADER is smart, handsome, and funny."
  vader score --explain "The book was kind of good."`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, text := range args {
				a.logger.Debug("scoring", zap.String("text", text))

				var err error
				switch {
				case explain:
					err = writeJSON(out, a.analyzer.Explain(text))
				case asJSON:
					scores := a.analyzer.ScoreText(text)
					err = writeJSON(out, struct {
						Text   string       `json:"text"`
						Scores vader.Scores `json:"scores"`
						Label  vader.Label  `json:"label"`
					}{text, scores, scores.Label()})
				default:
					err = writeLine(out, text, a.analyzer.ScoreText(text))
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per text")
	cmd.Flags().BoolVar(&explain, "explain", false, "print tokens and per-token valences as JSON")
	return cmd
}

func writeLine(w io.Writer, text string, s vader.Scores) error {
	_, err := fmt.Fprintf(w, "%-65s {neg: %.3f, neu: %.3f, pos: %.3f, compound: %.4f}\n", text, s.Neg, s.Neu, s.Pos, s.Compound)
	return err
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
