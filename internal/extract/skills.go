// Package extract holds the per-section field extractors: skills, education,
// work history, contact details and job-posting fields.
package extract

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/nlp"
)

// Single-letter lexicon entries that are allowed through.
var singleLetterSkills = map[string]struct{}{"c": {}, "r": {}}

// SkillMatcher finds lexicon skills in annotated text. Build it once per
// lexicon; it is read-only afterwards.
type SkillMatcher struct {
	lexicon *lexicon.SkillLexicon
	// multi-word phrases as token sequences, keyed by first token
	phrases map[string][][]string
}

// NewSkillMatcher indexes the multi-word phrases of lex.
func NewSkillMatcher(lex *lexicon.SkillLexicon) *SkillMatcher {
	m := &SkillMatcher{lexicon: lex, phrases: make(map[string][][]string)}
	for _, p := range lex.MultiWord() {
		toks := nlp.LowerTokens(p)
		if len(toks) < 2 {
			continue
		}
		m.phrases[toks[0]] = append(m.phrases[toks[0]], toks)
	}
	return m
}

// Extract returns the sorted unique skills in doc. Multi-word phrases are
// reported with their surface text; other tokens by their lemma.
func (m *SkillMatcher) Extract(doc *nlp.Doc) []string {
	found := make(map[string]struct{})
	covered := make([]bool, len(doc.Tokens))

	for i, tok := range doc.Tokens {
		for _, phrase := range m.phrases[tok.Lower] {
			n := len(phrase)
			if i+n > len(doc.Tokens) || !matchesAt(doc.Tokens, i, phrase) {
				continue
			}
			found[doc.Text[tok.Start:doc.Tokens[i+n-1].End]] = struct{}{}
			for j := i; j < i+n; j++ {
				covered[j] = true
			}
		}
	}

	for i, tok := range doc.Tokens {
		if covered[i] || tok.IsPunct {
			continue
		}
		for _, cand := range []string{tok.Lemma, tok.Lower} {
			if len(cand) == 1 {
				if _, ok := singleLetterSkills[cand]; !ok {
					continue
				}
			}
			if m.lexicon.Contains(cand) {
				found[cand] = struct{}{}
				break
			}
		}
	}

	return sortedKeys(found)
}

func matchesAt(tokens []nlp.Token, i int, phrase []string) bool {
	for k, want := range phrase {
		if tokens[i+k].Lower != want {
			return false
		}
	}
	return true
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
