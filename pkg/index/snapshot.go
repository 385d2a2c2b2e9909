package index

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/lintang-b-s/ir-lab/pkg/compress"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	SNAPSHOT_FILE = "index.snapshot"
)

var ErrSnapshotNotFound = errors.New("index snapshot not found")

type SnapshotMetadata struct {
	Documents []datastructure.Document `msgpack:"documents"`
	Terms     []string                 `msgpack:"terms"`    // position = termID
	Postings  map[int][]byte           `msgpack:"postings"` // termID -> gap encoded docIDs
	DocTokens map[int][]string         `msgpack:"doc_tokens"`
}

// Save writes the index to dir/index.snapshot as zstd compressed msgpack.
func (Idx *InvertedIndex) Save(dir string) error {
	terms := make([]string, Idx.TermIDMap.Len())
	for i := range terms {
		terms[i] = Idx.TermIDMap.GetStr(i)
	}

	postings := make(map[int][]byte, len(Idx.postings))
	for termID, list := range Idx.postings {
		postings[termID] = compress.EncodePostingList(list)
	}

	meta := SnapshotMetadata{
		Documents: Idx.docs,
		Terms:     terms,
		Postings:  postings,
		DocTokens: Idx.docTokens,
	}

	buf, err := msgpack.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("error when marshalling index snapshot: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("error when creating zstd encoder: %w", err)
	}
	compressed := enc.EncodeAll(buf, nil)
	if err := enc.Close(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, SNAPSHOT_FILE), compressed, 0600)
}

// LoadInvertedIndex reads a snapshot written by Save. The analyzer must be the
// one the snapshot was built with; it is only used for queries.
func LoadInvertedIndex(dir string, analyzer TextAnalyzer, workers int) (*InvertedIndex, error) {
	compressed, err := os.ReadFile(filepath.Join(dir, SNAPSHOT_FILE))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("error when creating zstd decoder: %w", err)
	}
	defer dec.Close()

	buf, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("error when decompressing index snapshot: %w", err)
	}

	meta := SnapshotMetadata{}
	if err := msgpack.Unmarshal(buf, &meta); err != nil {
		return nil, fmt.Errorf("error when unmarshalling index snapshot: %w", err)
	}

	Idx := NewInvertedIndex(analyzer, workers)
	for _, term := range meta.Terms {
		Idx.TermIDMap.GetID(term)
	}

	for _, doc := range meta.Documents {
		Idx.addDocument(doc, meta.DocTokens[doc.ID])
	}

	// postings are rebuilt by addDocument; the stored lists are a consistency check.
	for termID, encoded := range meta.Postings {
		stored := compress.DecodePostingList(encoded)
		if len(stored) != len(Idx.postings[termID]) {
			return nil, fmt.Errorf("index snapshot corrupted: term %q has %d postings, want %d",
				Idx.TermIDMap.GetStr(termID), len(Idx.postings[termID]), len(stored))
		}
	}

	Idx.finish()
	return Idx, nil
}
