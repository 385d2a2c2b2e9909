package searcher

import (
	"bytes"
	"errors"
	"fmt"
	rege "regexp"
	"sort"

	"github.com/blevesearch/vellum"
	"github.com/blevesearch/vellum/levenshtein"
	"github.com/blevesearch/vellum/regexp"
)

// Suggestion model info
// @Description a dictionary word close to a misspelled one.
type Suggestion struct {
	Word      string `json:"word"`
	Distance  int    `json:"distance"`
	Frequency int    `json:"frequency,omitempty"` // corpus frequency, only set by SpellCorrector
}

// Levenshtein is the edit distance between a and b with unit cost insertion,
// deletion and substitution, computed over runes.
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
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Suggest returns up to MAX_SUGGESTIONS dictionary words whose distance to word
// is in (0, EDIT_DISTANCE], closest first. Equal distances keep dictionary order.
func Suggest(word string, dictionary []string) []Suggestion {
	suggestions := []Suggestion{}
	seen := make(map[string]struct{}, len(dictionary))
	for _, candidate := range dictionary {
		if _, ok := seen[candidate]; ok {
			continue
		}
		seen[candidate] = struct{}{}

		d := Levenshtein(word, candidate)
		if d > 0 && d <= EDIT_DISTANCE {
			suggestions = append(suggestions, Suggestion{Word: candidate, Distance: d})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Distance < suggestions[j].Distance
	})
	if len(suggestions) > MAX_SUGGESTIONS {
		suggestions = suggestions[:MAX_SUGGESTIONS]
	}
	return suggestions
}

// SpellCorrector looks up index terms near a misspelled query term with a
// levenshtein automaton over an FST of the vocabulary. FST values hold the
// corpus frequency of each term.
type SpellCorrector struct {
	CorpusTermsFST *vellum.FST
	lvBuilders     map[int]*levenshtein.LevenshteinAutomatonBuilder
}

func NewSpellCorrector() (*SpellCorrector, error) {
	sc := &SpellCorrector{lvBuilders: make(map[int]*levenshtein.LevenshteinAutomatonBuilder, EDIT_DISTANCE)}
	for d := 1; d <= EDIT_DISTANCE; d++ {
		lv, err := levenshtein.NewLevenshteinAutomatonBuilder(uint8(d), false)
		if err != nil {
			return nil, fmt.Errorf("error when building levenshtein automaton builder: %w", err)
		}
		sc.lvBuilders[d] = lv
	}
	return sc, nil
}

// BuildFiniteStateTransducerSortedTerms builds the vocabulary FST. sortedTerms
// must be in lexicographic order.
func (sc *SpellCorrector) BuildFiniteStateTransducerSortedTerms(sortedTerms []string, frequency func(term string) int) error {
	var buf bytes.Buffer
	fstBuilder, err := vellum.New(&buf, nil)
	if err != nil {
		return err
	}

	for _, term := range sortedTerms {
		if err := fstBuilder.Insert([]byte(term), uint64(frequency(term))); err != nil {
			return fmt.Errorf("error when inserting %q into fst: %w", term, err)
		}
	}

	if err := fstBuilder.Close(); err != nil {
		return err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return err
	}
	sc.CorpusTermsFST = fst
	return nil
}

// GetWordCandidates returns the vocabulary terms within editDistance of word,
// closest first, then most frequent first.
func (sc *SpellCorrector) GetWordCandidates(word string, editDistance int) ([]Suggestion, error) {
	if sc.CorpusTermsFST == nil {
		return []Suggestion{}, nil
	}
	lv, ok := sc.lvBuilders[editDistance]
	if !ok {
		return []Suggestion{}, fmt.Errorf("edit distance must be between 1 and %d", EDIT_DISTANCE)
	}

	dfa, err := lv.BuildDfa(word, uint8(editDistance))
	if err != nil {
		return []Suggestion{}, err
	}

	candidates := []Suggestion{}
	fstIt, err := sc.CorpusTermsFST.Search(dfa, nil, nil)
	for err == nil {
		key, freq := fstIt.Current()
		if d := Levenshtein(word, string(key)); d > 0 && d <= editDistance {
			candidates = append(candidates, Suggestion{Word: string(key), Distance: d, Frequency: int(freq)})
		}
		err = fstIt.Next()
	}
	if !errors.Is(err, vellum.ErrIteratorDone) {
		return []Suggestion{}, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].Frequency > candidates[j].Frequency
	})
	return candidates, nil
}

// GetMatchedWordBasedOnPrefix returns the vocabulary terms starting with prefix,
// in lexicographic order.
func (sc *SpellCorrector) GetMatchedWordBasedOnPrefix(prefix string) ([]string, error) {
	if sc.CorpusTermsFST == nil {
		return []string{}, nil
	}

	regAutomaton, err := regexp.New(rege.QuoteMeta(prefix) + ".*")
	if err != nil {
		return []string{}, fmt.Errorf("error when initializing regex automaton: %w", err)
	}

	matched := []string{}
	fstIt, err := sc.CorpusTermsFST.Search(regAutomaton, nil, nil)
	for err == nil {
		key, _ := fstIt.Current()
		matched = append(matched, string(key))
		err = fstIt.Next()
	}
	if !errors.Is(err, vellum.ErrIteratorDone) {
		return []string{}, fmt.Errorf("error when executing regex automaton: %w", err)
	}
	return matched, nil
}
