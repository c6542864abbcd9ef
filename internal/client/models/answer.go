package models

// Source identifies a document that contributed to an answer.
type Source struct {
	Name string
}

// Answer is the result of a research query: the generated answer text and
// the documents it was grounded on.
type Answer struct {
	Answer  string
	Sources []Source
}
