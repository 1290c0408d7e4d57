// Command vader scores the sentiment intensity of text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paragonvocal/go-vader/internal/config"
	"github.com/paragonvocal/go-vader/internal/logging"
	"github.com/paragonvocal/go-vader/vader"
)

// app is the state shared by subcommands, filled in by PersistentPreRunE.
type app struct {
	configPath  string
	lexiconPath string
	verbose     bool

	cfg      *config.Config
	logger   *zap.Logger
	analyzer *vader.SentimentIntensityAnalyzer
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "vader",
		Short: "Rule-based sentiment intensity scoring",
		Long: `vader scores text with a valence lexicon and a set of heuristics
(negation, boosters, punctuation and ALL CAPS emphasis, "but", idioms).

Each text gets neg/neu/pos proportions and a compound score in [-1, 1].`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default ./vader.yaml or $CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVarP(&a.lexiconPath, "lexicon", "l", "", "lexicon file (default: embedded lexicon)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newScoreCmd(a), newBatchCmd(a), newDemoCmd(a))
	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.lexiconPath != "" {
		cfg.Lexicon.Path = a.lexiconPath
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	if cfg.Lexicon.Path == "" {
		a.analyzer, err = vader.LoadDefaultAnalyzer(vader.WithLogger(logger))
	} else {
		a.analyzer, err = vader.LoadAnalyzer(cfg.Lexicon.Path, vader.WithLogger(logger))
	}
	return err
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
