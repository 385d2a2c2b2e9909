package index

import "github.com/lintang-b-s/ir-lab/pkg/datastructure"

type TextAnalyzer interface {
	Analyze(text string) []string
	NormalizeTerm(term string) string
}

type DocumentStoreI interface {
	SaveDocs(docs []datastructure.Document) error
}
