package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/RadhiFadlillah/go-sastrawi"
	"github.com/kljensen/snowball/english"
)

type Stemmer interface {
	Stem(word string) string
}

// suffixes are checked in this order; the first applicable one wins, not the longest.
var suffixes = []string{"ing", "ed", "es", "s", "ly", "er", "est"}

// Stem strips the first suffix of the fixed list that word ends with, provided
// the word is longer than the suffix length + 2. Words without such a suffix
// are returned unchanged.
func Stem(word string) string {
	wordLen := utf8.RuneCountInString(word)
	for _, suffix := range suffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		if wordLen > len(suffix)+2 {
			return word[:len(word)-len(suffix)]
		}
	}
	return word
}

// SuffixStemmer is the stemmer used by the course labs.
type SuffixStemmer struct{}

func (SuffixStemmer) Stem(word string) string {
	return Stem(word)
}

// SnowballStemmer is the english porter2 stemmer.
type SnowballStemmer struct{}

func (SnowballStemmer) Stem(word string) string {
	return english.Stem(word, false)
}

// SastrawiStemmer stems bahasa indonesia words.
type SastrawiStemmer struct {
	stemmer sastrawi.Stemmer
}

func NewSastrawiStemmer() SastrawiStemmer {
	return SastrawiStemmer{stemmer: sastrawi.NewStemmer(sastrawi.DefaultDictionary())}
}

func (s SastrawiStemmer) Stem(word string) string {
	return s.stemmer.Stem(word)
}
