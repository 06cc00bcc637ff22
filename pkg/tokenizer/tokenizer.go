// Package tokenizer turns raw essay text into normalized word tokens.
//
// The baseline policy is deliberately minimal: any run of non-alphanumeric
// runes is a separator, every fragment is lowercased, and empty fragments are
// dropped. Purely numeric fragments and single characters are valid tokens.
// Everything beyond that (stopwords, minimum length, stemming, dictionary
// lookup) is an explicit opt-in filter.
package tokenizer

import "unicode"

// Tokenize splits text into lowercase tokens, preserving first-occurrence
// order. It is a pure function: empty input yields an empty (nil) slice.
func Tokenize(text string) []string {
	var tokens []string
	var token []rune

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			token = append(token, unicode.ToLower(r))
		} else if len(token) > 0 {
			tokens = append(tokens, string(token))
			token = token[:0]
		}
	}

	if len(token) > 0 {
		tokens = append(tokens, string(token))
	}
	return tokens
}

// Options selects the opt-in filters applied after tokenization.
type Options struct {
	Stopwords bool
	MinLength int
	Stem      bool

	// Dictionary, when non-nil, keeps only tokens present in the set.
	Dictionary map[string]struct{}
}

// Analyze tokenizes text and applies the configured filters in a fixed order:
// stopwords, minimum length, stemming, dictionary.
func Analyze(text string, opts Options) []string {
	tokens := Tokenize(text)
	if opts.Stopwords {
		tokens = stopwordFilter(tokens)
	}
	if opts.MinLength > 1 {
		tokens = minLengthFilter(tokens, opts.MinLength)
	}
	if opts.Stem {
		tokens = stemmerFilter(tokens)
	}
	if opts.Dictionary != nil {
		tokens = dictionaryFilter(tokens, opts.Dictionary)
	}
	return tokens
}
