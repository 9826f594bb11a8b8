// Package words turns raw text into weighted word counts.
//
// This is the frequency-extraction front end of the pipeline: tokenize,
// drop stopwords, count, filter rare words, and emit an ordered list of
// (word, count) pairs ready for normalization by the layout engine.
package words

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/wordhaze/wordhaze/pkg/errors"
)

// DefaultMinCount is the minimum number of occurrences a word needs to
// be kept. Words seen once are usually noise.
const DefaultMinCount = 2

// tokenPattern matches words of two or more letters.
var tokenPattern = regexp.MustCompile(`[\p{L}]{2,}`)

// Count is a word and how often it appeared.
type Count struct {
	Text string
	N    int
}

// Extractor tokenizes text and produces word counts.
type Extractor struct {
	stopwords map[string]bool
	minCount  int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStopwords replaces the default English stopword set.
func WithStopwords(stopwords map[string]bool) Option {
	return func(e *Extractor) { e.stopwords = stopwords }
}

// WithMinCount sets the minimum occurrence count for a word to be kept.
func WithMinCount(n int) Option {
	return func(e *Extractor) { e.minCount = n }
}

// NewExtractor creates an extractor with the default English stopword
// list and minimum count.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		stopwords: DefaultStopwords(),
		minCount:  DefaultMinCount,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads all text from r and returns word counts ordered by
// descending count, ties broken alphabetically so the output is
// deterministic for a given input.
func (e *Extractor) Extract(r io.Reader) ([]Count, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input text")
	}
	return e.ExtractString(string(data)), nil
}

// ExtractString is Extract over an in-memory string.
func (e *Extractor) ExtractString(text string) []Count {
	counts := make(map[string]int)
	for _, token := range tokenPattern.FindAllString(text, -1) {
		word := strings.ToLower(token)
		if e.stopwords[word] {
			continue
		}
		counts[word]++
	}

	out := make([]Count, 0, len(counts))
	for word, n := range counts {
		if n < e.minCount {
			continue
		}
		out = append(out, Count{Text: word, N: n})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Text < out[j].Text
	})
	return out
}

// LoadStopwords reads a stopword file with one word per line. Blank
// lines and leading/trailing whitespace are ignored; words are
// lowercased.
func LoadStopwords(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "stopword file %q", path)
	}
	defer f.Close()

	stopwords := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			stopwords[word] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stopword file %q", path)
	}
	return stopwords, nil
}
