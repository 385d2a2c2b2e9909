package index

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/RoaringBitmap/roaring/v2"
)

var ErrMalformedQuery = errors.New("malformed boolean query")

// operator tokens; term tokens are termIDs (>= 0) or unknownTerm.
const (
	AND         = -1
	LEFT_PAREN  = -2
	RIGHT_PAREN = -3
	OR          = -4
	NOT         = -5
	unknownTerm = -100
)

// AndQuery intersects the posting lists of terms, starting from the first term's
// list. A term absent from postings contributes an empty list. The result is
// ascending and duplicate free.
func AndQuery(postings map[string][]int, terms []string) []int {
	if len(terms) == 0 {
		return []int{}
	}
	result := normalizePostings(postings[terms[0]])
	for _, term := range terms[1:] {
		if len(result) == 0 {
			break
		}
		result = PostingListIntersection(result, normalizePostings(postings[term]))
	}
	return result
}

// OrQuery is the set union of the posting lists of terms.
func OrQuery(postings map[string][]int, terms []string) []int {
	result := []int{}
	for _, term := range terms {
		result = PostingListUnion(result, normalizePostings(postings[term]))
	}
	return result
}

func normalizePostings(list []int) []int {
	out := make([]int, len(list))
	copy(out, list)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i > 0 && v == out[n-1] {
			continue
		}
		out[n] = v
		n++
	}
	return out[:n]
}

func PostingListIntersection(a, b []int) []int {
	idx1, idx2 := 0, 0
	result := []int{}

	for idx1 < len(a) && idx2 < len(b) {
		if a[idx1] < b[idx2] {
			idx1++
		} else if b[idx2] < a[idx1] {
			idx2++
		} else {
			result = append(result, a[idx1])
			idx1++
			idx2++
		}
	}
	return result
}

func PostingListUnion(a, b []int) []int {
	idx1, idx2 := 0, 0
	result := make([]int, 0, len(a)+len(b))

	for idx1 < len(a) || idx2 < len(b) {
		switch {
		case idx2 >= len(b) || (idx1 < len(a) && a[idx1] < b[idx2]):
			result = append(result, a[idx1])
			idx1++
		case idx1 >= len(a) || b[idx2] < a[idx1]:
			result = append(result, b[idx2])
			idx2++
		default:
			result = append(result, a[idx1])
			idx1++
			idx2++
		}
	}
	return result
}

// lexBooleanQuery splits a query like `(retrieval OR search) AND NOT image` into
// operator tokens and raw terms. Adjacent operands get an implicit AND.
func lexBooleanQuery(query string) []string {
	raw := []string{}
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			raw = append(raw, sb.String())
			sb.Reset()
		}
	}
	for _, r := range query {
		switch {
		case r == '(' || r == ')':
			flush()
			raw = append(raw, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			sb.WriteRune(r)
		}
	}
	flush()

	lexemes := make([]string, 0, len(raw))
	endsOperand := false
	for _, lex := range raw {
		upper := strings.ToUpper(lex)
		startsOperand := upper == "(" || upper == "NOT" || !isOperator(upper)
		if endsOperand && startsOperand {
			lexemes = append(lexemes, "AND")
		}
		if isOperator(upper) {
			lexemes = append(lexemes, upper)
		} else {
			lexemes = append(lexemes, lex)
		}
		endsOperand = upper == ")" || !isOperator(upper)
	}
	return lexemes
}

func isOperator(lex string) bool {
	switch lex {
	case "AND", "OR", "NOT", "(", ")":
		return true
	}
	return false
}

func shuntingYardRPN(tokens []int) ([]int, error) {
	precedence := make(map[int]int)
	precedence[AND] = 2
	precedence[LEFT_PAREN] = 0
	precedence[RIGHT_PAREN] = 0
	precedence[OR] = 1
	precedence[NOT] = 3

	output := make([]int, 0, len(tokens))
	stack := []int{}

	for _, token := range tokens {
		if token == LEFT_PAREN {
			stack = append(stack, LEFT_PAREN)
		} else if token == RIGHT_PAREN {
			for {
				if len(stack) == 0 {
					return nil, fmt.Errorf("%w: unbalanced ')'", ErrMalformedQuery)
				}
				n := len(stack) - 1
				operator := stack[n]
				stack = stack[:n]
				if operator == LEFT_PAREN {
					break
				}
				output = append(output, operator)
			}
		} else if _, ok := precedence[token]; ok {
			// NOT is a prefix operator: it never pops anything.
			for token != NOT && len(stack) != 0 {
				operator := stack[len(stack)-1]
				if precedence[operator] < precedence[token] {
					break
				}
				output = append(output, operator)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, token)
		} else {
			output = append(output, token)
		}
	}

	for len(stack) != 0 {
		n := len(stack) - 1
		token := stack[n]
		stack = stack[:n]
		if token == LEFT_PAREN {
			return nil, fmt.Errorf("%w: unbalanced '('", ErrMalformedQuery)
		}
		output = append(output, token)
	}
	return output, nil
}

// processQuery evaluates an rpn token stream with roaring bitmaps.
func (Idx *InvertedIndex) processQuery(rpn []int) (*roaring.Bitmap, error) {
	bitmapStack := []*roaring.Bitmap{}
	pop := func() (*roaring.Bitmap, error) {
		if len(bitmapStack) == 0 {
			return nil, fmt.Errorf("%w: operator without operand", ErrMalformedQuery)
		}
		top := bitmapStack[len(bitmapStack)-1]
		bitmapStack = bitmapStack[:len(bitmapStack)-1]
		return top, nil
	}

	for _, token := range rpn {
		switch token {
		case AND, OR:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			if token == AND {
				bitmapStack = append(bitmapStack, roaring.And(left, right))
			} else {
				bitmapStack = append(bitmapStack, roaring.Or(left, right))
			}
		case NOT:
			operand, err := pop()
			if err != nil {
				return nil, err
			}
			bitmapStack = append(bitmapStack, roaring.AndNot(Idx.allDocs, operand))
		case unknownTerm:
			bitmapStack = append(bitmapStack, roaring.New())
		default:
			bitmapStack = append(bitmapStack, Idx.getBitmap(token))
		}
	}

	if len(bitmapStack) != 1 {
		return nil, fmt.Errorf("%w: missing operator", ErrMalformedQuery)
	}
	return bitmapStack[0], nil
}

// BooleanQuery evaluates AND / OR / NOT expressions with parentheses over the
// index and returns the matching docIDs ascending. Terms are normalized by the
// index analyzer; terms outside the vocabulary match nothing.
func (Idx *InvertedIndex) BooleanQuery(query string) ([]int, error) {
	lexemes := lexBooleanQuery(query)
	if len(lexemes) == 0 {
		return nil, fmt.Errorf("%w: empty query", ErrMalformedQuery)
	}

	tokens := make([]int, 0, len(lexemes))
	for _, lex := range lexemes {
		switch lex {
		case "AND":
			tokens = append(tokens, AND)
		case "OR":
			tokens = append(tokens, OR)
		case "NOT":
			tokens = append(tokens, NOT)
		case "(":
			tokens = append(tokens, LEFT_PAREN)
		case ")":
			tokens = append(tokens, RIGHT_PAREN)
		default:
			termID, ok := Idx.TermIDMap.Lookup(Idx.analyzer.NormalizeTerm(lex))
			if !ok {
				termID = unknownTerm
			}
			tokens = append(tokens, termID)
		}
	}

	rpn, err := shuntingYardRPN(tokens)
	if err != nil {
		return nil, err
	}

	result, err := Idx.processQuery(rpn)
	if err != nil {
		return nil, err
	}

	docIDs := make([]int, 0, result.GetCardinality())
	for _, id := range result.ToArray() {
		docIDs = append(docIDs, int(id))
	}
	return docIDs, nil
}
