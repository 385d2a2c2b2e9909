package index

import (
	"context"
	"fmt"

	"github.com/lintang-b-s/ir-lab/pkg/concurrent"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

const (
	WORKER_BUFFER_SIZE = 64
)

type analyzeJob struct {
	pos int
	doc datastructure.Document
}

type analyzeResult struct {
	pos    int
	tokens []string
}

// Build analyzes and indexes docs. Document ids must be non-negative and unique.
// With more than one worker the analysis fans out over a worker pool; terms are
// still assigned in corpus order so the index is identical either way.
func (Idx *InvertedIndex) Build(ctx context.Context, docs []datastructure.Document) error {
	seen := make(map[int]struct{}, len(docs))
	for _, doc := range docs {
		if doc.ID < 0 {
			return fmt.Errorf("document id %d is negative", doc.ID)
		}
		if _, ok := seen[doc.ID]; ok {
			return fmt.Errorf("duplicate document id %d", doc.ID)
		}
		seen[doc.ID] = struct{}{}
	}

	tokenized, err := Idx.analyzeAll(ctx, docs)
	if err != nil {
		return err
	}

	for i, doc := range docs {
		Idx.addDocument(doc, tokenized[i])
	}
	Idx.finish()
	return nil
}

func (Idx *InvertedIndex) analyzeAll(ctx context.Context, docs []datastructure.Document) ([][]string, error) {
	tokenized := make([][]string, len(docs))

	if Idx.workers <= 1 || len(docs) < 2 {
		for i, doc := range docs {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			tokenized[i] = Idx.analyzer.Analyze(doc.Text())
		}
		return tokenized, nil
	}

	worker := concurrent.NewBackgroundWorker(Idx.workers, WORKER_BUFFER_SIZE,
		func(job analyzeJob) analyzeResult {
			return analyzeResult{pos: job.pos, tokens: Idx.analyzer.Analyze(job.doc.Text())}
		})
	worker.Start()

	go func() {
		defer worker.Close()
		for i, doc := range docs {
			select {
			case <-ctx.Done():
				return
			default:
			}
			worker.TriggerProcessing(analyzeJob{pos: i, doc: doc})
		}
	}()

	received := 0
	for res := range worker.Results() {
		tokenized[res.pos] = res.tokens
		received++
	}

	if received != len(docs) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("analyzed %d of %d documents", received, len(docs))
	}
	return tokenized, nil
}

// IndexDocuments builds a fresh single-goroutine index for docs.
func IndexDocuments(docs []datastructure.Document, analyzer TextAnalyzer) (*InvertedIndex, error) {
	idx := NewInvertedIndex(analyzer, 1)
	if err := idx.Build(context.Background(), docs); err != nil {
		return nil, err
	}
	return idx, nil
}
