// Package data embeds the default sentiment lexicon.
package data

import _ "embed"

// LexiconName identifies the embedded lexicon in logs and errors.
const LexiconName = "embedded:vader_lexicon.txt"

// Lexicon is a compact English lexicon: token, mean valence, standard
// deviation, and the raw human ratings, tab-separated.
//
//go:embed vader_lexicon.txt
var Lexicon []byte
