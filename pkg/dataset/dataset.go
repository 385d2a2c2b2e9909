// Package dataset holds the toy collections the labs run on. Everything is a
// literal so the labs are reproducible.
package dataset

import (
	"github.com/lintang-b-s/ir-lab/pkg/datastructure"
)

// Documents returns the five document corpus. D1 is the running example of
// the vector space lab.
func Documents() []datastructure.Document {
	return []datastructure.Document{
		{
			ID:         1,
			Title:      "Machine Learning Fundamentals",
			Abstract:   "An introduction to supervised and unsupervised learning.",
			Body:       "Machine learning builds models from training data. Supervised learning uses labeled examples while unsupervised learning finds structure in unlabeled data.",
			References: "Mitchell 1997; Bishop 2006",
		},
		{
			ID:         2,
			Title:      "Information Retrieval Systems",
			Abstract:   "How search engines index and rank documents.",
			Body:       "An information retrieval system builds an inverted index over a document collection and ranks documents against a query with tf-idf or bm25 scoring.",
			References: "Manning 2008; Robertson 2009",
		},
		{
			ID:         3,
			Title:      "Deep Learning for Search",
			Abstract:   "Neural ranking models for retrieval.",
			Body:       "Deep neural networks learn dense representations of queries and documents. Neural ranking improves search quality when training data is plentiful.",
			References: "Mitra 2018; Goodfellow 2016",
		},
		{
			ID:         4,
			Title:      "Image Retrieval by Color",
			Abstract:   "Content based image retrieval with color histograms.",
			Body:       "Content based image retrieval compares images by visual features such as dominant color. Color distance in rgb space approximates visual similarity.",
			References: "Swain 1991",
		},
		{
			ID:         5,
			Title:      "Web Crawling and Link Analysis",
			Abstract:   "Crawlers follow hyperlinks and pagerank scores pages.",
			Body:       "A web crawler follows hyperlinks to discover pages. Link analysis such as pagerank uses the hyperlink graph to estimate page importance.",
			References: "Brin 1998; Kleinberg 1999",
		},
	}
}

// LinkGraph returns the five page graph of the pagerank lab. E has no outgoing
// link, so it leaks rank.
func LinkGraph() datastructure.Graph {
	return datastructure.NewGraph(
		[]string{"A", "B", "C", "D", "E"},
		[]datastructure.Edge{
			{From: "A", To: "B"},
			{From: "A", To: "C"},
			{From: "B", To: "C"},
			{From: "C", To: "A"},
			{From: "D", To: "C"},
			{From: "D", To: "E"},
		},
	)
}

// Dictionary is the word list of the spelling lab.
func Dictionary() []string {
	return []string{
		"information", "retrieval", "search", "engine", "index", "query",
		"document", "ranking", "relevance", "boolean", "vector", "cosine",
		"probabilistic", "pagerank", "crawler", "stemming", "token", "stopword",
		"learning", "machine", "color", "image", "feedback", "precision", "recall",
	}
}

// Palette is the image collection of the color retrieval lab.
func Palette() []datastructure.ImageItem {
	return []datastructure.ImageItem{
		{ID: "img-1", Name: "Sunset", Color: datastructure.NewRGB(250, 120, 60)},
		{ID: "img-2", Name: "Ocean", Color: datastructure.NewRGB(20, 90, 180)},
		{ID: "img-3", Name: "Forest", Color: datastructure.NewRGB(30, 130, 50)},
		{ID: "img-4", Name: "Rose", Color: datastructure.NewRGB(210, 30, 70)},
		{ID: "img-5", Name: "Sky", Color: datastructure.NewRGB(135, 200, 235)},
		{ID: "img-6", Name: "Sand", Color: datastructure.NewRGB(220, 190, 140)},
		{ID: "img-7", Name: "Night", Color: datastructure.NewRGB(15, 20, 45)},
		{ID: "img-8", Name: "Snow", Color: datastructure.NewRGB(245, 245, 250)},
	}
}

// Journey is the course map. Unit ids match content/assessments/<unit>.json.
func Journey() []datastructure.LearningNode {
	return []datastructure.LearningNode{
		datastructure.NewLearningNode("intro", "What is Information Retrieval", "unit-1"),
		datastructure.NewLearningNode("preprocessing", "Text Preprocessing", "unit-1", "intro"),
		datastructure.NewLearningNode("boolean", "Boolean Retrieval", "unit-1", "preprocessing"),
		datastructure.NewLearningNode("vsm", "Vector Space Model", "unit-2", "boolean"),
		datastructure.NewLearningNode("bm25", "Probabilistic Retrieval and BM25", "unit-2", "vsm"),
		datastructure.NewLearningNode("structured", "Structured Document Retrieval", "unit-2", "boolean"),
		datastructure.NewLearningNode("feedback", "Relevance Feedback", "unit-3", "vsm"),
		datastructure.NewLearningNode("pagerank", "Link Analysis and PageRank", "unit-3", "bm25"),
		datastructure.NewLearningNode("spelling", "Spelling Correction", "unit-3", "preprocessing"),
		datastructure.NewLearningNode("cbir", "Content Based Image Retrieval", "unit-4", "vsm", "spelling"),
	}
}
