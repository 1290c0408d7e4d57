package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var demoSentences = []string{
	"VADER is smart, handsome, and funny.",
	"VADER is smart, handsome, and funny!",
	"VADER is very smart, handsome, and funny.",
	"VADER is VERY SMART, handsome, and FUNNY.",
	"VADER is VERY SMART, handsome, and FUNNY!!!",
	"VADER is VERY SMART, uber handsome, and FRIGGIN FUNNY!!!",
	"VADER is not smart, handsome, nor funny.",
	"The book was good.",
	"At least it isn't a horrible book.",
	"The book was only kind of good.",
	"The plot was good, but the characters are uncompelling and the dialog is not great.",
	"Today SUX!",
	"Today only kinda sux! But I'll get by, lol",
	"Make sure you :) or :D today!",
	"Not bad at all",
}

var trickySentences = []string{
	"Sentiment analysis has never been good.",
	"Sentiment analysis has never been this good!",
	"Most automated sentiment analysis tools are shit.",
	"With VADER, sentiment analysis is the shit!",
	"Other sentiment analysis tools can be quite bad.",
	"On the other hand, VADER is quite bad ass",
	"Without a doubt, excellent idea.",
	"Roger Dodger is one of the most compelling variations on this theme.",
	"Roger Dodger is at least compelling as a variation on the theme.",
	"Roger Dodger is one of the least compelling variations on this theme.",
	"It was a kiss of death for the whole project.",
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Score a set of sample sentences covering each heuristic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "----------------------------------------------------")
			fmt.Fprintln(out, " - Typical cases: negation, punctuation emphasis, ALL CAPS,")
			fmt.Fprintln(out, "   degree modifiers, slang, contrastive 'but', emoticons")
			fmt.Fprintln(out)
			if err := scoreAll(out, a, demoSentences); err != nil {
				return err
			}

			fmt.Fprintln(out, "----------------------------------------------------")
			fmt.Fprintln(out, " - Tricky cases: 'never so/this', idioms, 'least'")
			fmt.Fprintln(out)
			if err := scoreAll(out, a, trickySentences); err != nil {
				return err
			}
			fmt.Fprintln(out, "----------------------------------------------------")
			return nil
		},
	}
}

func scoreAll(w io.Writer, a *app, sentences []string) error {
	for _, sentence := range sentences {
		if err := writeLine(w, sentence, a.analyzer.ScoreText(sentence)); err != nil {
			return err
		}
	}
	return nil
}
