package analyzer

import (
	"fmt"
	"strings"
)

const (
	LanguageLab        = "lab"
	LanguageEnglish    = "english"
	LanguageIndonesian = "indonesian"
)

// Analyzer turns free text into index terms: tokenize -> drop stopwords -> stem.
type Analyzer struct {
	Language  string
	Stopwords map[string]struct{}
	Stemmer   Stemmer
}

func NewAnalyzer(language string) (*Analyzer, error) {
	switch strings.ToLower(language) {
	case "", LanguageLab:
		return &Analyzer{Language: LanguageLab, Stopwords: DefaultStopwords(), Stemmer: SuffixStemmer{}}, nil
	case LanguageEnglish:
		return &Analyzer{Language: LanguageEnglish, Stopwords: DefaultStopwords(), Stemmer: SnowballStemmer{}}, nil
	case LanguageIndonesian:
		return &Analyzer{Language: LanguageIndonesian, Stopwords: IndonesianStopwords(), Stemmer: NewSastrawiStemmer()}, nil
	default:
		return nil, fmt.Errorf("unknown analyzer language %q", language)
	}
}

// NewLabAnalyzer is NewAnalyzer(LanguageLab) without the error.
func NewLabAnalyzer() *Analyzer {
	return &Analyzer{Language: LanguageLab, Stopwords: DefaultStopwords(), Stemmer: SuffixStemmer{}}
}

func (a *Analyzer) Analyze(text string) []string {
	tokens := RemoveStopwords(Tokenize(text), a.Stopwords)
	for i, token := range tokens {
		tokens[i] = a.Stemmer.Stem(token)
	}
	return tokens
}

// NormalizeTerm lowercases and stems a single query term. Stopwords are kept.
func (a *Analyzer) NormalizeTerm(term string) string {
	return a.Stemmer.Stem(strings.ToLower(strings.TrimSpace(term)))
}

// PreprocessTrace model info
// @Description every intermediate stage of the preprocessing pipeline.
type PreprocessTrace struct {
	Tokens   []string `json:"tokens"`
	Filtered []string `json:"filtered"`
	Stemmed  []string `json:"stemmed"`
	Removed  []string `json:"removed"` // stopwords that were dropped, in order
}

func (a *Analyzer) Steps(text string) PreprocessTrace {
	tokens := Tokenize(text)
	filtered := RemoveStopwords(tokens, a.Stopwords)

	removed := []string{}
	for _, token := range tokens {
		if _, ok := a.Stopwords[token]; ok {
			removed = append(removed, token)
		}
	}

	stemmed := make([]string, len(filtered))
	for i, token := range filtered {
		stemmed[i] = a.Stemmer.Stem(token)
	}

	return PreprocessTrace{
		Tokens:   tokens,
		Filtered: filtered,
		Stemmed:  stemmed,
		Removed:  removed,
	}
}
