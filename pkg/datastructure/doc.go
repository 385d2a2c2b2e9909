package datastructure

// Document model info
// @Description a document of a lab corpus. Every field can be addressed by the structured retrieval lab.
type Document struct {
	ID         int    `json:"id" msgpack:"id"`                 // position of the document in its corpus
	Title      string `json:"title" msgpack:"title"`           // document title
	Abstract   string `json:"abstract" msgpack:"abstract"`     // optional short summary
	Body       string `json:"body" msgpack:"body"`             // main text
	References string `json:"references" msgpack:"references"` // cited works, free text
	Length     int    `json:"length" msgpack:"length"`         // analyzed word count, filled in by the index when zero
}

func NewDocument(id int, title, abstract, body, references string) Document {
	return Document{
		ID:         id,
		Title:      title,
		Abstract:   abstract,
		Body:       body,
		References: references,
	}
}

// Text is the searchable soup of a document.
func (d Document) Text() string {
	return d.Title + " " + d.Abstract + " " + d.Body
}

// ScoredDocument model info
// @Description a document together with its relevance score and 1-based rank.
type ScoredDocument struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
	Rank     int      `json:"rank"`
}

func NewScoredDocument(doc Document, score float64) ScoredDocument {
	return ScoredDocument{
		Document: doc,
		Score:    score,
	}
}
