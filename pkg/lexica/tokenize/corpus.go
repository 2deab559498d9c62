package tokenize

import "github.com/cognicore/lexica/pkg/lexica/ingest"

// Document is a source document after segmentation.
type Document struct {
	Source    string
	Text      string
	Sentences []Sentence
}

// Corpus is the tokenized input of one pipeline run.
type Corpus struct {
	Tagged    bool
	Tokenizer string
	Documents []Document
}

// Build runs every document through t, preserving input order.
func Build(t Tokenizer, docs []ingest.Doc) Corpus {
	c := Corpus{
		Tagged:    t.Tagged(),
		Tokenizer: t.Name(),
		Documents: make([]Document, 0, len(docs)),
	}
	for _, d := range docs {
		c.Documents = append(c.Documents, Document{
			Source:    d.Source,
			Text:      d.Text,
			Sentences: t.Sentences(d.Text),
		})
	}
	return c
}

// SentenceCount returns the number of sentences across all documents.
func (c Corpus) SentenceCount() int {
	n := 0
	for _, d := range c.Documents {
		n += len(d.Sentences)
	}
	return n
}

// Each calls fn for every sentence in corpus order.
func (c Corpus) Each(fn func(doc *Document, idx int, s *Sentence)) {
	for i := range c.Documents {
		doc := &c.Documents[i]
		for j := range doc.Sentences {
			fn(doc, j, &doc.Sentences[j])
		}
	}
}
