package vader

import (
	"fmt"
	"regexp"
)

const (
	// empirically derived mean sentiment intensity rating increase for booster words
	BIncr = 0.293
	BDecr = -0.293

	// empirically derived mean sentiment intensity rating increase for using ALLCAPs to emphasize a word
	CIncr   = 0.733
	NScalar = -0.74

	// scalar applied to a booster two and three words away from the lexicon word
	Dist2Scale = 0.95
	Dist3Scale = 0.9

	// "never so good" / "never this good"
	NeverSoScale2 = 1.5
	NeverSoScale3 = 1.25

	// weights applied before and after a contrastive conjunction
	ButBefore = 0.5
	ButAfter  = 1.5

	// punctuation emphasis
	EPIncr  = 0.292
	MaxEP   = 4
	QMIncr  = 0.18
	MaxQM   = 3
	QMFlood = 0.96

	Alpha = 15 // constant for normalize
)

// PunctuationRegexp matches a single ASCII punctuation character.
var PunctuationRegexp = regexp.MustCompile(fmt.Sprintf("[%s]", regexp.QuoteMeta(`!"#$%&'()*+,-./:;<=>?@[\]^_{|}~`+"`")))

// punctuation runs glued to a word that the tokenizer strips off
var punctuations = []string{".", "!", "?", ",", ";", ":", "-", "'", "\"",
	"!!", "!!!", "??", "???", "?!?", "!?!", "?!?!", "!?!?"}

var negations = []string{"aint", "arent", "cannot", "cant", "couldnt", "darent", "didnt", "doesnt",
	"ain't", "aren't", "can't", "couldn't", "daren't", "didn't", "doesn't",
	"dont", "hadnt", "hasnt", "havent", "isnt", "mightnt", "mustnt", "neither",
	"don't", "hadn't", "hasn't", "haven't", "isn't", "mightn't", "mustn't",
	"neednt", "needn't", "never", "none", "nope", "nor", "not", "nothing", "nowhere",
	"oughtnt", "shant", "shouldnt", "uhuh", "wasnt", "werent",
	"oughtn't", "shan't", "shouldn't", "uh-uh", "wasn't", "weren't",
	"without", "wont", "wouldnt", "won't", "wouldn't", "rarely", "seldom", "despite"}

// booster/dampener 'intensifiers' or 'degree adverbs'
// http://en.wiktionary.org/wiki/Category:English_degree_adverbs
var boosters = map[string]float64{"absolutely": BIncr, "amazingly": BIncr, "awfully": BIncr, "completely": BIncr,
	"considerably": BIncr, "decidedly": BIncr, "deeply": BIncr, "effing": BIncr, "enormously": BIncr,
	"entirely": BIncr, "especially": BIncr, "exceptionally": BIncr, "extremely": BIncr,
	"fabulously": BIncr, "flipping": BIncr, "flippin": BIncr,
	"fricking": BIncr, "frickin": BIncr, "frigging": BIncr, "friggin": BIncr, "fully": BIncr, "fucking": BIncr,
	"greatly": BIncr, "hella": BIncr, "highly": BIncr, "hugely": BIncr, "incredibly": BIncr,
	"intensely": BIncr, "majorly": BIncr, "more": BIncr, "most": BIncr, "particularly": BIncr,
	"purely": BIncr, "quite": BIncr, "really": BIncr, "remarkably": BIncr,
	"so": BIncr, "substantially": BIncr,
	"thoroughly": BIncr, "totally": BIncr, "tremendously": BIncr,
	"uber": BIncr, "unbelievably": BIncr, "unusually": BIncr, "utterly": BIncr,
	"very":   BIncr,
	"almost": BDecr, "barely": BDecr, "hardly": BDecr, "just enough": BDecr,
	"kind of": BDecr, "kinda": BDecr, "kindof": BDecr, "kind-of": BDecr,
	"less": BDecr, "little": BDecr, "marginally": BDecr, "occasionally": BDecr, "partly": BDecr,
	"scarcely": BDecr, "slightly": BDecr, "somewhat": BDecr,
	"sort of": BDecr, "sorta": BDecr, "sortof": BDecr, "sort-of": BDecr}

// idioms whose valence replaces the valence of the lexicon word they contain
var specialCaseIdioms = map[string]float64{"the shit": 3, "the bomb": 3, "bad ass": 1.5, "yeah right": -2,
	"cut the mustard": 2, "kiss of death": -1.5, "hand to mouth": -2}
