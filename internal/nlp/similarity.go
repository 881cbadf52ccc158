package nlp

import (
	"math"
	"strings"
)

func trigramVector(s string) map[string]float64 {
	words := LowerTokens(s)
	if len(words) == 0 {
		return nil
	}
	padded := []rune(" " + strings.Join(words, " ") + " ")
	vec := make(map[string]float64)
	for i := 0; i+3 <= len(padded); i++ {
		vec[string(padded[i:i+3])]++
	}
	return vec
}

func trigramCosine(a, b string) (float64, bool) {
	va, vb := trigramVector(a), trigramVector(b)
	if len(va) == 0 || len(vb) == 0 {
		return 0, false
	}
	var dot, na, nb float64
	for k, x := range va {
		na += x * x
		if y, ok := vb[k]; ok {
			dot += x * y
		}
	}
	for _, y := range vb {
		nb += y * y
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb)), true
}

// Jaccard returns |a∩b| / |a∪b| over two token sets, or 0 when both are empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// ContentLemmas returns the set of lemmas of the non-stopword, non-punctuation
// tokens of doc.
func ContentLemmas(doc *Doc) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range doc.Tokens {
		if t.IsPunct || t.IsStop {
			continue
		}
		set[t.Lemma] = struct{}{}
	}
	return set
}
