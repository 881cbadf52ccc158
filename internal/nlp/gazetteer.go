package nlp

import (
	_ "embed"
	"encoding/json"
	"os"
	"sort"
	"strings"
)

//go:embed data/gazetteer.json
var defaultGazetteerJSON []byte

// Gazetteer lists known entity names by category.
type Gazetteer struct {
	Organizations []string `json:"organizations"`
	Places        []string `json:"places"`
	Locations     []string `json:"locations"`
}

// Merge appends the entries of other.
func (g *Gazetteer) Merge(other Gazetteer) {
	g.Organizations = append(g.Organizations, other.Organizations...)
	g.Places = append(g.Places, other.Places...)
	g.Locations = append(g.Locations, other.Locations...)
}

func defaultGazetteer() Gazetteer {
	var g Gazetteer
	if err := json.Unmarshal(defaultGazetteerJSON, &g); err != nil {
		panic(err)
	}
	return g
}

// ReadGazetteer loads a gazetteer JSON file.
func ReadGazetteer(path string) (Gazetteer, error) {
	var g Gazetteer
	data, err := os.ReadFile(path)
	if err != nil {
		return g, &ResourceError{Message: "failed to read gazetteer " + path, Cause: err}
	}
	if err := json.Unmarshal(data, &g); err != nil {
		return g, &ResourceError{Message: "failed to parse gazetteer " + path, Cause: err}
	}
	return g, nil
}

type phrase struct {
	text   string
	tokens []string
}

// phraseIndex finds gazetteer phrases in token streams.
type phraseIndex struct {
	// first lowercase token -> phrases, longest first
	byFirst map[string][]phrase
}

func newPhraseIndex(entries []string) *phraseIndex {
	idx := &phraseIndex{byFirst: make(map[string][]phrase)}
	seen := make(map[string]struct{})
	for _, e := range entries {
		toks := LowerTokens(e)
		if len(toks) == 0 {
			continue
		}
		key := strings.Join(toks, " ")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		idx.byFirst[toks[0]] = append(idx.byFirst[toks[0]], phrase{text: e, tokens: toks})
	}
	for k := range idx.byFirst {
		list := idx.byFirst[k]
		sort.SliceStable(list, func(i, j int) bool { return len(list[i].tokens) > len(list[j].tokens) })
	}
	return idx
}

// match returns the number of word tokens matched starting at words[i], or 0.
// Every matched word other than a connector must be capitalized in the text.
func (p *phraseIndex) match(words []Token, i int) int {
	for _, ph := range p.byFirst[words[i].Lower] {
		if i+len(ph.tokens) > len(words) {
			continue
		}
		ok := true
		for j, want := range ph.tokens {
			w := words[i+j]
			_, connector := runConnectors[w.Lower]
			if w.Lower != want || !(w.IsCapitalized() || connector || !isAlpha(w.Lower)) {
				ok = false
				break
			}
		}
		if ok {
			return len(ph.tokens)
		}
	}
	return 0
}

