package pkg

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueue(t *testing.T) {
	pq := NewPriorityQueue[string, float64]()
	heap.Init(pq)
	heap.Push(pq, NewPriorityQueueNode(0.2, "bm25"))
	heap.Push(pq, NewPriorityQueueNode(0.9, "vsm"))
	heap.Push(pq, NewPriorityQueueNode(0.2, "boolean"))

	var got []string
	for pq.Len() > 0 {
		got = append(got, heap.Pop(pq).(*priorityQueueNode[string, float64]).Item())
	}
	assert.Equal(t, []string{"vsm", "bm25", "boolean"}, got)
}

func TestTopK(t *testing.T) {
	freq := map[string]int{"retriev": 3, "rank": 1, "relev": 3, "recal": 2}
	terms := []string{"rank", "recal", "relev", "retriev"}

	tests := []struct {
		name string
		k    int
		want []string
	}{
		{name: "k smaller than items", k: 2, want: []string{"relev", "retriev"}},
		{name: "k larger than items", k: 10, want: []string{"relev", "retriev", "recal", "rank"}},
		{name: "k zero", k: 0, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopK(terms, func(term string) int { return freq[term] }, tt.k)
			assert.Equal(t, tt.want, got)
		})
	}
}
