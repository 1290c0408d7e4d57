package vader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrMalformedLine is returned for a lexicon line without a tab-separated valence.
	ErrMalformedLine = errors.New("malformed lexicon line")
	// ErrInvalidValence is returned when the valence field is not a number.
	ErrInvalidValence = errors.New("invalid valence")
)

// LoadError describes why a lexicon could not be loaded.
// Line is 1-based and zero when the failure is not tied to a line.
type LoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load lexicon %s: line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("load lexicon %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Lexicon maps a lowercase token to its mean sentiment valence.
// It is read-only once loaded and safe for concurrent use.
type Lexicon struct {
	entries map[string]float64
}

// LoadLexiconFile reads a lexicon from a tab-separated file.
func LoadLexiconFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	return loadLexicon(path, f)
}

// LoadLexicon reads a lexicon with one "token<TAB>valence[<TAB>...]" entry per line.
// Blank lines are skipped, any other malformed line fails the whole load.
// When a token appears twice the later entry wins.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	return loadLexicon("<reader>", r)
}

func loadLexicon(source string, r io.Reader) (*Lexicon, error) {
	entries := make(map[string]float64)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, &LoadError{Source: source, Line: lineNo, Err: ErrMalformedLine}
		}

		valence, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, &LoadError{Source: source, Line: lineNo, Err: fmt.Errorf("%w %q: %w", ErrInvalidValence, fields[1], err)}
		}

		entries[fields[0]] = valence
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	return &Lexicon{entries: entries}, nil
}

// NewLexicon builds a lexicon from an in-memory table. The map is copied.
func NewLexicon(entries map[string]float64) *Lexicon {
	l := &Lexicon{entries: make(map[string]float64, len(entries))}
	for k, v := range entries {
		l.entries[k] = v
	}
	return l
}

// Lookup returns the valence for an exact token.
func (l *Lexicon) Lookup(token string) (float64, bool) {
	if l == nil {
		return 0, false
	}
	v, ok := l.entries[token]
	return v, ok
}

// Contains reports whether token is a lexicon key.
func (l *Lexicon) Contains(token string) bool {
	if l == nil {
		return false
	}
	_, ok := l.entries[token]
	return ok
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}
