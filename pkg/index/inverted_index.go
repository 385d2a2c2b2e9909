package index

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/lintang-b-s/ir-lab/pkg"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

// InvertedIndex is an in-memory inverted index over a small corpus.
// It is built once and read concurrently afterwards.
type InvertedIndex struct {
	TermIDMap        *pkg.IDMap
	analyzer         TextAnalyzer
	workers          int
	docs             []datastructure.Document
	docPos           map[int]int             // docID -> position in docs
	postings         map[int][]int           // termID -> ascending docIDs
	bitmaps          map[int]*roaring.Bitmap // termID -> docIDs
	allDocs          *roaring.Bitmap
	docTermCount     map[int]map[int]int // docID -> termID -> count(t,d)
	docTokens        map[int][]string
	docWordCount     map[int]int
	collectionFreq   map[int]int // termID -> occurrences in the whole corpus
	docsCount        int
	averageDocLength float64
}

func NewInvertedIndex(analyzer TextAnalyzer, workers int) *InvertedIndex {
	return &InvertedIndex{
		TermIDMap:      pkg.NewIDMap(),
		analyzer:       analyzer,
		workers:        workers,
		docPos:         make(map[int]int),
		postings:       make(map[int][]int),
		bitmaps:        make(map[int]*roaring.Bitmap),
		allDocs:        roaring.New(),
		docTermCount:   make(map[int]map[int]int),
		docTokens:      make(map[int][]string),
		docWordCount:   make(map[int]int),
		collectionFreq: make(map[int]int),
	}
}

// addDocument indexes one analyzed document. Callers add documents in corpus order.
func (Idx *InvertedIndex) addDocument(doc datastructure.Document, tokens []string) {
	if doc.Length == 0 {
		doc.Length = len(tokens)
	}
	Idx.docPos[doc.ID] = len(Idx.docs)
	Idx.docs = append(Idx.docs, doc)
	Idx.docTokens[doc.ID] = tokens
	Idx.docWordCount[doc.ID] = len(tokens)
	Idx.allDocs.Add(uint32(doc.ID))

	termCount := make(map[int]int, len(tokens))
	for _, token := range tokens {
		termID := Idx.TermIDMap.GetID(token)
		if termCount[termID] == 0 {
			Idx.postings[termID] = append(Idx.postings[termID], doc.ID)
			bm, ok := Idx.bitmaps[termID]
			if !ok {
				bm = roaring.New()
				Idx.bitmaps[termID] = bm
			}
			bm.Add(uint32(doc.ID))
		}
		termCount[termID]++
		Idx.collectionFreq[termID]++
	}
	Idx.docTermCount[doc.ID] = termCount
}

// finish sorts the posting lists and computes the corpus statistics.
func (Idx *InvertedIndex) finish() {
	for termID := range Idx.postings {
		sort.Ints(Idx.postings[termID])
	}

	Idx.docsCount = len(Idx.docs)
	totalLength := 0
	for _, n := range Idx.docWordCount {
		totalLength += n
	}
	Idx.averageDocLength = 0
	if Idx.docsCount > 0 {
		Idx.averageDocLength = float64(totalLength) / float64(Idx.docsCount)
	}
	Idx.TermIDMap.BuildVocabulary()
}

func (Idx *InvertedIndex) GetPostingList(termID int) ([]int, error) {
	postings, ok := Idx.postings[termID]
	if !ok {
		return []int{}, nil
	}
	out := make([]int, len(postings))
	copy(out, postings)
	return out, nil
}

// GetPostingListByTerm analyzes nothing: term must already be an index term.
func (Idx *InvertedIndex) GetPostingListByTerm(term string) []int {
	termID, ok := Idx.TermIDMap.Lookup(term)
	if !ok {
		return []int{}
	}
	postings, _ := Idx.GetPostingList(termID)
	return postings
}

// PostingsByTerm exposes the whole index as term -> docIDs.
func (Idx *InvertedIndex) PostingsByTerm() map[string][]int {
	out := make(map[string][]int, len(Idx.postings))
	for termID, postings := range Idx.postings {
		list := make([]int, len(postings))
		copy(list, postings)
		out[Idx.TermIDMap.GetStr(termID)] = list
	}
	return out
}

func (Idx *InvertedIndex) getBitmap(termID int) *roaring.Bitmap {
	bm, ok := Idx.bitmaps[termID]
	if !ok {
		return roaring.New()
	}
	return bm.Clone()
}

func (Idx *InvertedIndex) DocumentFrequency(term string) int {
	termID, ok := Idx.TermIDMap.Lookup(term)
	if !ok {
		return 0
	}
	return len(Idx.postings[termID])
}

func (Idx *InvertedIndex) CollectionFrequency(term string) int {
	termID, ok := Idx.TermIDMap.Lookup(term)
	if !ok {
		return 0
	}
	return Idx.collectionFreq[termID]
}

func (Idx *InvertedIndex) TermCount(docID int, term string) int {
	termID, ok := Idx.TermIDMap.Lookup(term)
	if !ok {
		return 0
	}
	return Idx.docTermCount[docID][termID]
}

func (Idx *InvertedIndex) Documents() []datastructure.Document {
	out := make([]datastructure.Document, len(Idx.docs))
	copy(out, Idx.docs)
	return out
}

func (Idx *InvertedIndex) GetDoc(docID int) (datastructure.Document, bool) {
	pos, ok := Idx.docPos[docID]
	if !ok {
		return datastructure.Document{}, false
	}
	return Idx.docs[pos], true
}

// DocPosition is the corpus order of docID, used to break score ties.
func (Idx *InvertedIndex) DocPosition(docID int) int {
	pos, ok := Idx.docPos[docID]
	if !ok {
		return len(Idx.docs)
	}
	return pos
}

func (Idx *InvertedIndex) DocTokens(docID int) []string {
	return Idx.docTokens[docID]
}

func (Idx *InvertedIndex) Analyze(text string) []string {
	return Idx.analyzer.Analyze(text)
}

func (Idx *InvertedIndex) NormalizeTerm(term string) string {
	return Idx.analyzer.NormalizeTerm(term)
}

func (Idx *InvertedIndex) GetDocWordCount() map[int]int {
	return Idx.docWordCount
}

func (Idx *InvertedIndex) GetDocsCount() int {
	return Idx.docsCount
}

func (Idx *InvertedIndex) GetAverageDocLength() float64 {
	return Idx.averageDocLength
}

func (Idx *InvertedIndex) GetTermIDMap() *pkg.IDMap {
	return Idx.TermIDMap
}

func (Idx *InvertedIndex) GetSortedTerms() []string {
	return Idx.TermIDMap.GetSortedTerms()
}

func (Idx *InvertedIndex) BuildVocabulary() {
	Idx.TermIDMap.BuildVocabulary()
}
