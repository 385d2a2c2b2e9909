package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/lintang-b-s/ir-lab/pkg/analyzer"
	"github.com/lintang-b-s/ir-lab/pkg/dataset"
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
	"github.com/lintang-b-s/ir-lab/pkg/index"
	"github.com/lintang-b-s/ir-lab/pkg/kvdb"
	"github.com/schollz/progressbar/v3"
	bolt "go.etcd.io/bbolt"
)

var (
	corpusFile = flag.String("f", "", "json file with the documents to index, the lab corpus when empty")
	dbPath     = flag.String("db", "irlab.db", "bbolt document store")
	outputDir  = flag.String("o", "irlab_index", "output directory for the index snapshot")
	language   = flag.String("lang", "lab", "analyzer language: lab, english or indonesian")
	workers    = flag.Int("workers", 4, "analyzer workers")
)

func readCorpus(path string) ([]datastructure.Document, error) {
	if path == "" {
		return dataset.Documents(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var docs []datastructure.Document
	if err := json.NewDecoder(f).Decode(&docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run replaces the stored documents with the corpus, so ids of a previous
// corpus do not linger, then rebuilds the snapshot.
func run() error {
	bar := progressbar.NewOptions(4,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/4]Reading corpus..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	docs, err := readCorpus(*corpusFile)
	if err != nil {
		return err
	}
	bar.Add(1)

	bar.Describe("[cyan][2/4]Storing documents...")
	db, err := bolt.Open(*dbPath, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return err
	}
	kvDB, err := kvdb.NewKVDB(db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer kvDB.Close()

	if err := kvDB.ReplaceDocs(docs); err != nil {
		return err
	}
	bar.Add(1)

	bar.Describe("[cyan][3/4]Building inverted index...")
	textAnalyzer, err := analyzer.NewAnalyzer(*language)
	if err != nil {
		return err
	}
	invertedIndex := index.NewInvertedIndex(textAnalyzer, *workers)
	if err := invertedIndex.Build(context.Background(), docs); err != nil {
		return err
	}
	bar.Add(1)

	bar.Describe("[cyan][4/4]Writing index snapshot...")
	if err := invertedIndex.Save(*outputDir); err != nil {
		return err
	}
	bar.Add(1)

	log.Printf("\nindexed %d documents, %d terms into %s", invertedIndex.GetDocsCount(),
		invertedIndex.GetTermIDMap().Len(), *outputDir)
	return nil
}
