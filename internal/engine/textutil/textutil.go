// internal/engine/textutil/textutil.go

// Package textutil holds the pure text primitives the classifier and
// extractor build on. Everything here is deterministic and never errors;
// malformed input just produces empty output.
package textutil

import (
	"strings"
	"unicode"
)

// stopwords is the closed set filtered by RemoveStopwords.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "am": {}, "do": {}, "does": {}, "did": {},
	"have": {}, "has": {}, "had": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "me": {}, "my": {}, "your": {}, "our": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "and": {}, "or": {},
	"but": {}, "if": {}, "of": {}, "at": {}, "by": {}, "for": {}, "to": {},
	"in": {}, "on": {}, "with": {}, "from": {}, "as": {}, "so": {}, "than": {},
	"then": {}, "there": {}, "here": {}, "will": {}, "would": {}, "can": {},
}

// Tokenize lowercases the text, replaces every rune that is not a letter,
// digit, apostrophe or hyphen with a space, and splits on whitespace.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' {
			return r
		}
		return ' '
	}, lowered)
	return strings.Fields(cleaned)
}

// RemoveStopwords filters the fixed stopword set out of tokens.
func RemoveStopwords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := stopwords[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// NGrams returns every contiguous n-token window joined with single
// spaces. Returns nil when fewer than n tokens are available.
func NGrams(tokens []string, n int) []string {
	if n <= 0 || len(tokens) < n {
		return nil
	}
	out := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+n], " "))
	}
	return out
}

// Levenshtein computes the standard edit distance between a and b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// SimilarityRatio is 1 - distance/max(len). Two empty strings are
// identical by definition.
func SimilarityRatio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
