// Package nlp provides the natural-language annotator the extractors depend
// on: tokenization with lemmas and stopword flags, named-entity recognition
// and optional vector similarity.
package nlp

import (
	"unicode"
	"unicode/utf8"
)

// Label is a named-entity category.
type Label string

// Entity labels recognized by the annotators in this package.
const (
	LabelOrg  Label = "ORG"
	LabelGPE  Label = "GPE"
	LabelLoc  Label = "LOC"
	LabelDate Label = "DATE"
)

// Token is one token of an annotated text. Start and End are byte offsets.
type Token struct {
	Text    string
	Lower   string
	Lemma   string
	Start   int
	End     int
	IsStop  bool
	IsPunct bool
}

// IsCapitalized reports whether the token starts with an upper-case letter.
func (t Token) IsCapitalized() bool {
	r, _ := utf8.DecodeRuneInString(t.Text)
	return unicode.IsUpper(r)
}

// Entity is a recognized span. Start and End are byte offsets into Doc.Text.
type Entity struct {
	Text  string
	Label Label
	Start int
	End   int
}

// Doc is the annotation of one text.
type Doc struct {
	Text     string
	Tokens   []Token
	Entities []Entity
}

// Ents returns the entities carrying any of labels, in text order.
func (d *Doc) Ents(labels ...Label) []Entity {
	var out []Entity
	for _, e := range d.Entities {
		for _, l := range labels {
			if e.Label == l {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// HasEntity reports whether any entity carries label.
func (d *Doc) HasEntity(label Label) bool {
	return len(d.Ents(label)) > 0
}

// Annotator is implemented by NL toolkits. Implementations must be safe for
// concurrent use once constructed.
type Annotator interface {
	Annotate(text string) *Doc
	// Similarity returns a vector-space similarity in [0,1]. The boolean is
	// false when the annotator has no vectors for the inputs.
	Similarity(a, b string) (float64, bool)
}
