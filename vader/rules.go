package vader

import (
	"maps"
	"strings"
)

// Rules holds the heuristic tables consulted while resolving valences:
// booster/dampener words, negators and special case idioms.
// A Rules value is never modified after construction and may be shared
// between analyzers and goroutines.
type Rules struct {
	boosters  map[string]float64
	negations map[string]struct{}
	idioms    map[string]float64
}

var defaultRules = NewRules(boosters, negations, specialCaseIdioms)

// DefaultRules returns the built-in English rule tables.
func DefaultRules() *Rules {
	return defaultRules
}

// NewRules builds a rule set from the given tables. Keys are lowercased and
// the inputs are copied, so later changes by the caller have no effect.
func NewRules(boosters map[string]float64, negations []string, idioms map[string]float64) *Rules {
	r := &Rules{
		boosters:  make(map[string]float64, len(boosters)),
		negations: make(map[string]struct{}, len(negations)),
		idioms:    make(map[string]float64, len(idioms)),
	}
	for k, v := range boosters {
		r.boosters[strings.ToLower(k)] = v
	}
	for _, n := range negations {
		r.negations[strings.ToLower(n)] = struct{}{}
	}
	for k, v := range idioms {
		r.idioms[strings.ToLower(k)] = v
	}
	return r
}

// Booster returns the scalar for a booster or dampener word or phrase.
func (r *Rules) Booster(word string) (float64, bool) {
	v, ok := r.boosters[word]
	return v, ok
}

// IsBooster reports whether word is a booster or dampener.
func (r *Rules) IsBooster(word string) bool {
	_, ok := r.boosters[word]
	return ok
}

// Negated reports whether word negates what follows it, either by being
// a listed negator or by containing "n't". Matching is case sensitive
// against the lowercased negator list.
func (r *Rules) Negated(word string) bool {
	if _, ok := r.negations[word]; ok {
		return true
	}
	return strings.Contains(word, "n't")
}

// Idiom returns the fixed valence of a special case idiom.
func (r *Rules) Idiom(phrase string) (float64, bool) {
	v, ok := r.idioms[phrase]
	return v, ok
}

// Boosters returns a copy of the booster table.
func (r *Rules) Boosters() map[string]float64 {
	return maps.Clone(r.boosters)
}

// Idioms returns a copy of the idiom table.
func (r *Rules) Idioms() map[string]float64 {
	return maps.Clone(r.idioms)
}
