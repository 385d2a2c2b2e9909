package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackgroundWorker(t *testing.T) {
	bw := NewBackgroundWorker(4, 8, func(x int) int {
		return x * x
	})
	bw.Start()

	go func() {
		for i := 0; i < 100; i++ {
			bw.TriggerProcessing(i)
		}
		bw.Close()
	}()

	results := []int{}
	for r := range bw.Results() {
		results = append(results, r)
	}
	sort.Ints(results)

	assert.Len(t, results, 100)
	assert.Equal(t, 0, results[0])
	assert.Equal(t, 99*99, results[99])
}
