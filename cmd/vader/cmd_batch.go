package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paragonvocal/go-vader/internal/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Score one text per line and print JSON lines in input order",
		Long: `Reads texts from a file, or from stdin when the file is "-" or omitted,
scores them in parallel and prints one JSON object per input line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			texts, err := readLines(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			if workers < 1 {
				workers = a.cfg.Batch.Workers
			}
			runner := batch.NewRunner(a.analyzer, workers, a.logger)

			results, err := runner.Score(cmd.Context(), texts)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			for _, res := range results {
				if err := writeJSON(out, res); err != nil {
					return err
				}
			}
			a.logger.Info("batch scored", zap.Int("texts", len(results)), zap.Int("workers", workers))
			return out.Flush()
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel scorers (default from config)")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
