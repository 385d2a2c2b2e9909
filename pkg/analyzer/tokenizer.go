package analyzer

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`\W+`)

// Tokenize lowercases text and splits it on runs of non-word characters
// (anything but ASCII letters, digits and underscore). Empty tokens are dropped.
func Tokenize(text string) []string {
	parts := nonWord.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// RemoveStopwords keeps the tokens that are not in stopwords, in order.
func RemoveStopwords(tokens []string, stopwords map[string]struct{}) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := stopwords[token]; ok {
			continue
		}
		filtered = append(filtered, token)
	}
	return filtered
}
