package tokenizer

import (
	"unicode/utf8"

	"github.com/kljensen/snowball"
)

// stopwords are common English words ignored when the stopword filter is on.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},

	"each": {}, "either": {}, "else": {}, "ever": {}, "every": {},

	"few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"itself": {},

	"just": {},

	"more": {}, "most": {}, "much": {}, "my": {}, "myself": {},

	"no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {}, "over": {},
	"own": {},

	"same": {}, "she": {}, "should": {}, "so": {}, "some": {}, "such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "to": {}, "too": {},

	"under": {}, "until": {}, "up": {}, "upon": {}, "us": {},

	"very": {}, "via": {},

	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "why": {}, "will": {},
	"with": {}, "would": {},

	"yet": {}, "you": {}, "your": {}, "yours": {}, "yourself": {},
	"yourselves": {},
}

// IsStopword reports whether the (already lowercased) token is filtered by
// the stopword list.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

func stopwordFilter(tokens []string) []string {
	n := 0
	for _, token := range tokens {
		if _, ok := stopwords[token]; !ok {
			tokens[n] = token
			n++
		}
	}
	return tokens[:n]
}

func minLengthFilter(tokens []string, min int) []string {
	n := 0
	for _, token := range tokens {
		if utf8.RuneCountInString(token) >= min {
			tokens[n] = token
			n++
		}
	}
	return tokens[:n]
}

func stemmerFilter(tokens []string) []string {
	for i, token := range tokens {
		stemmed, err := snowball.Stem(token, "english", false)
		if err == nil {
			tokens[i] = stemmed
		}
	}
	return tokens
}

func dictionaryFilter(tokens []string, dict map[string]struct{}) []string {
	n := 0
	for _, token := range tokens {
		if _, ok := dict[token]; ok {
			tokens[n] = token
			n++
		}
	}
	return tokens[:n]
}
