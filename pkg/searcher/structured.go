package searcher

import (
	"strings"
	"unicode"

	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

const (
	FieldTitle      = "title"
	FieldAbstract   = "abstract"
	FieldBody       = "body"
	FieldReferences = "references"
)

// FieldConstraint is one `field:term` fragment of a structured query. Valid is
// false for fragments that can never match (no colon, empty side, unknown field).
type FieldConstraint struct {
	Field string `json:"field"`
	Term  string `json:"term"`
	Valid bool   `json:"valid"`
}

// FieldWeights maps a field name to the score a satisfied constraint on it adds.
type FieldWeights map[string]float64

func DefaultFieldWeights() FieldWeights {
	return FieldWeights{
		FieldTitle:      2.0,
		FieldAbstract:   1.5,
		FieldBody:       1.0,
		FieldReferences: 0.5,
	}
}

// DocumentField returns the text of the named field of doc.
func DocumentField(doc datastructure.Document, field string) (string, bool) {
	switch field {
	case FieldTitle:
		return doc.Title, true
	case FieldAbstract:
		return doc.Abstract, true
	case FieldBody:
		return doc.Body, true
	case FieldReferences:
		return doc.References, true
	}
	return "", false
}

// ParseFieldQuery splits `title:retrieval body:"inverted index"` into
// constraints. Double quotes group a term containing spaces; a bare AND between
// fragments is ignored since constraints are always conjunctive.
func ParseFieldQuery(query string) []FieldConstraint {
	constraints := []FieldConstraint{}
	for _, fragment := range splitFragments(query) {
		if fragment == "AND" {
			continue
		}
		field, term, ok := strings.Cut(fragment, ":")
		field = strings.ToLower(strings.TrimSpace(field))
		term = strings.Trim(strings.TrimSpace(term), `"`)

		c := FieldConstraint{Field: field, Term: term}
		if ok && field != "" && term != "" {
			_, c.Valid = DocumentField(datastructure.Document{}, field)
		}
		constraints = append(constraints, c)
	}
	return constraints
}

func splitFragments(query string) []string {
	fragments := []string{}
	var sb strings.Builder
	inQuote := false
	for _, r := range query {
		switch {
		case r == '"':
			inQuote = !inQuote
			sb.WriteRune(r)
		case unicode.IsSpace(r) && !inQuote:
			if sb.Len() > 0 {
				fragments = append(fragments, sb.String())
				sb.Reset()
			}
		default:
			sb.WriteRune(r)
		}
	}
	if sb.Len() > 0 {
		fragments = append(fragments, sb.String())
	}
	return fragments
}

func (c FieldConstraint) satisfiedBy(doc datastructure.Document) bool {
	if !c.Valid {
		return false
	}
	text, ok := DocumentField(doc, c.Field)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(c.Term))
}

// MatchesStructure reports whether doc satisfies every constraint. An empty
// constraint list matches nothing.
func MatchesStructure(doc datastructure.Document, constraints []FieldConstraint) bool {
	if len(constraints) == 0 {
		return false
	}
	for _, c := range constraints {
		if !c.satisfiedBy(doc) {
			return false
		}
	}
	return true
}

// StructuredScore is the sum of the weights of the constrained fields when doc
// matches, and (0, false) otherwise.
func StructuredScore(doc datastructure.Document, constraints []FieldConstraint, weights FieldWeights) (float64, bool) {
	if !MatchesStructure(doc, constraints) {
		return 0, false
	}
	score := 0.0
	for _, c := range constraints {
		score += weights[c.Field]
	}
	return score, true
}

// RankStructured returns the matching documents of docs, best first.
func RankStructured(docs []datastructure.Document, query string, weights FieldWeights) []datastructure.ScoredDocument {
	constraints := ParseFieldQuery(query)

	scored := []datastructure.ScoredDocument{}
	for _, doc := range docs {
		score, ok := StructuredScore(doc, constraints, weights)
		if !ok {
			continue
		}
		scored = append(scored, datastructure.NewScoredDocument(doc, score))
	}
	return rankScored(scored)
}
