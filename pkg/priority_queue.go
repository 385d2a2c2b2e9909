package pkg

import (
	"cmp"
	"container/heap"
)

type Rank interface {
	int | float64
}

type priorityQueueNode[T cmp.Ordered, G Rank] struct {
	rank  G
	index int
	item  T
}

func NewPriorityQueueNode[T cmp.Ordered, G Rank](rank G, item T) *priorityQueueNode[T, G] {
	return &priorityQueueNode[T, G]{rank: rank, item: item}
}

func (n *priorityQueueNode[T, G]) Item() T {
	return n.item
}

func (n *priorityQueueNode[T, G]) Rank() G {
	return n.rank
}

// PriorityQueue is a max-heap on rank. Equal ranks pop the smaller item first.
type PriorityQueue[T cmp.Ordered, G Rank] []*priorityQueueNode[T, G]

func NewPriorityQueue[T cmp.Ordered, G Rank]() *PriorityQueue[T, G] {
	return &PriorityQueue[T, G]{}
}

func (pq PriorityQueue[T, G]) Len() int {
	return len(pq)
}

func (pq PriorityQueue[T, G]) Less(i, j int) bool {
	if pq[i].rank == pq[j].rank {
		return pq[i].item < pq[j].item
	}
	return pq[i].rank > pq[j].rank
}

func (pq PriorityQueue[T, G]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *PriorityQueue[T, G]) Push(x interface{}) {
	n := len(*pq)
	no := x.(*priorityQueueNode[T, G])
	no.index = n
	*pq = append(*pq, no)
}

func (pq *PriorityQueue[T, G]) Pop() interface{} {
	old := *pq
	n := len(old)
	no := old[n-1]
	old[n-1] = nil
	no.index = -1
	*pq = old[0 : n-1]
	return no
}

// TopK returns at most k items with the highest rank, highest first.
func TopK[T cmp.Ordered, G Rank](items []T, rank func(T) G, k int) []T {
	pq := NewPriorityQueue[T, G]()
	for _, item := range items {
		*pq = append(*pq, NewPriorityQueueNode(rank(item), item))
	}
	heap.Init(pq)

	top := make([]T, 0, max(0, min(k, len(items))))
	for pq.Len() > 0 && len(top) < k {
		top = append(top, heap.Pop(pq).(*priorityQueueNode[T, G]).item)
	}
	return top
}
