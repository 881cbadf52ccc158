// Package nlptest provides a scripted annotator for tests.
package nlptest

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

// Fake tokenizes with nlp.Tokenize and reports every occurrence of the
// configured strings as entities. Similarity answers come from Sims, keyed
// by the lowercased pair in argument order.
type Fake struct {
	Orgs   []string
	Places []string
	Sims   map[[2]string]float64
}

// Annotate implements nlp.Annotator.
func (f *Fake) Annotate(text string) *nlp.Doc {
	doc := &nlp.Doc{Text: text, Tokens: nlp.Tokenize(text)}
	find := func(names []string, label nlp.Label) {
		for _, name := range names {
			from := 0
			for {
				i := strings.Index(text[from:], name)
				if i < 0 {
					break
				}
				start := from + i
				doc.Entities = append(doc.Entities, nlp.Entity{Text: name, Label: label, Start: start, End: start + len(name)})
				from = start + len(name)
			}
		}
	}
	find(f.Orgs, nlp.LabelOrg)
	find(f.Places, nlp.LabelGPE)
	sort.SliceStable(doc.Entities, func(i, j int) bool { return doc.Entities[i].Start < doc.Entities[j].Start })
	return doc
}

// Similarity implements nlp.Annotator.
func (f *Fake) Similarity(a, b string) (float64, bool) {
	if f.Sims == nil {
		return 0, false
	}
	v, ok := f.Sims[[2]string{strings.ToLower(a), strings.ToLower(b)}]
	return v, ok
}
