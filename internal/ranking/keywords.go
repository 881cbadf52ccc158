package ranking

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

// keywordNormalizations maps common variants to one canonical keyword
var keywordNormalizations = map[string]string{
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"nodejs":     "node.js",
	"node":       "node.js",
	"postgres":   "postgresql",
	"psql":       "postgresql",
	"ml":         "machine learning",
	"gcp":        "google cloud",
	"tf":         "terraform",
	"py":         "python",
	"ci/cd":      "cicd",
	"front-end":  "frontend",
	"back-end":   "backend",
	"full-stack": "fullstack",
}

// defaultGenericTerms are boilerplate words present in nearly every posting.
var defaultGenericTerms = []string{
	"role", "team", "experience", "work", "job", "year", "skill", "ability", "candidate", "company",
	"responsibility", "requirement", "qualification", "opportunity", "position", "strong", "knowledge",
	"include", "including", "plus", "preferred", "required", "excellent", "good", "great", "new",
	"environment", "level", "degree", "understanding", "working", "related", "field", "join",
}

// NormalizeKeyword maps a lowercase keyword to its canonical form
func NormalizeKeyword(keyword string) string {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if canonical, ok := keywordNormalizations[normalized]; ok {
		return canonical
	}
	return normalized
}

func genericSet(terms []string) map[string]struct{} {
	if terms == nil {
		terms = defaultGenericTerms
	}
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		set[t] = struct{}{}
		set[nlp.Lemmatize(t)] = struct{}{}
	}
	return set
}

// keywordSet returns the canonical content lemmas of text, minus generic terms
// and bare numbers.
func (e *Engine) keywordSet(text string) map[string]struct{} {
	out := make(map[string]struct{})
	if strings.TrimSpace(text) == "" {
		return out
	}
	for lemma := range nlp.ContentLemmas(e.annotator.Annotate(text)) {
		k := NormalizeKeyword(lemma)
		if k == "" || isNumber(k) {
			continue
		}
		if _, generic := e.generic[k]; generic {
			continue
		}
		out[k] = struct{}{}
	}
	return out
}

func isNumber(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && r != '+' && r != '.' && r != ',' && r != '%' && r != '$' {
			return false
		}
	}
	return true
}
