package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAndOrQuery(t *testing.T) {
	postings := map[string][]int{
		"retriev": {1, 3, 4},
		"model":   {0, 1, 4},
		"boolean": {4, 1},
		"vector":  {2},
	}

	tests := []struct {
		name    string
		terms   []string
		wantAnd []int
		wantOr  []int
	}{
		{
			name:    "two terms",
			terms:   []string{"retriev", "model"},
			wantAnd: []int{1, 4},
			wantOr:  []int{0, 1, 3, 4},
		},
		{
			name:    "unsorted posting list",
			terms:   []string{"boolean", "retriev", "model"},
			wantAnd: []int{1, 4},
			wantOr:  []int{0, 1, 3, 4},
		},
		{
			name:    "absent term empties the intersection",
			terms:   []string{"retriev", "missing"},
			wantAnd: []int{},
			wantOr:  []int{1, 3, 4},
		},
		{
			name:    "disjoint",
			terms:   []string{"vector", "model"},
			wantAnd: []int{},
			wantOr:  []int{0, 1, 2, 4},
		},
		{
			name:    "no terms",
			terms:   nil,
			wantAnd: []int{},
			wantOr:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			and := AndQuery(postings, tt.terms)
			or := OrQuery(postings, tt.terms)
			assert.Equal(t, tt.wantAnd, and)
			assert.Equal(t, tt.wantOr, or)
			assert.Subset(t, or, and)
		})
	}

	t.Run("input lists are not modified", func(t *testing.T) {
		AndQuery(postings, []string{"boolean", "model"})
		assert.Equal(t, []int{4, 1}, postings["boolean"])
	})
}

func TestBooleanQuery(t *testing.T) {
	idx := buildTestIndex(t, 1)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "and", query: "learning AND retrieval", want: []int{}},
		{name: "or", query: "learning OR retrieval", want: []int{0, 1, 2, 3}},
		{name: "and not", query: "retrieval AND NOT color", want: []int{1}},
		{name: "not complements all docs", query: "NOT retrieval", want: []int{0, 2}},
		{name: "implicit and with parentheses", query: "(deep OR machine) learning", want: []int{0, 2}},
		{name: "lowercase operators", query: "deep or image", want: []int{2, 3}},
		{name: "and binds tighter than or", query: "image OR deep AND learning", want: []int{2, 3}},
		{name: "unknown term matches nothing", query: "quantum OR image", want: []int{3}},
		{name: "terms are stemmed", query: "systems", want: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.BooleanQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	malformed := []string{"", "(learning", "learning )", "learning AND", "NOT", "OR image"}
	for _, query := range malformed {
		t.Run("malformed "+query, func(t *testing.T) {
			_, err := idx.BooleanQuery(query)
			assert.ErrorIs(t, err, ErrMalformedQuery)
		})
	}
}
