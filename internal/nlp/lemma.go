package nlp

import (
	"strings"
	"unicode"
)

var irregularLemmas = map[string]string{
	"is": "be", "are": "be", "was": "be", "were": "be", "been": "be", "am": "be",
	"has": "have", "had": "have", "having": "have",
	"did": "do", "does": "do", "done": "do",
	"built": "build", "led": "lead", "ran": "run", "wrote": "write", "written": "write",
	"made": "make", "taught": "teach", "brought": "bring", "thought": "think",
	"grew": "grow", "grown": "grow", "began": "begin", "begun": "begin",
	"drove": "drive", "driven": "drive", "chose": "choose", "chosen": "choose",
	"met": "meet", "won": "win", "sold": "sell", "spent": "spend", "held": "hold",
	"children": "child", "people": "person", "men": "man", "women": "woman",
	"analyses": "analysis", "indices": "index", "criteria": "criterion",
}

// Words whose surface already is the base form even though a suffix rule
// would fire on them.
var protectedLemmas = map[string]struct{}{
	"kubernetes": {}, "postgres": {}, "jenkins": {}, "pandas": {}, "aws": {}, "redis": {},
	"express": {}, "sass": {}, "windows": {}, "devops": {}, "ios": {}, "macos": {},
	"analytics": {}, "statistics": {}, "mathematics": {}, "physics": {}, "economics": {},
	"business": {}, "sales": {}, "news": {}, "series": {}, "species": {}, "ops": {},
	"goes": {}, "plus": {}, "bonus": {}, "status": {}, "focus": {}, "campus": {},
	"across": {}, "canvas": {}, "atlas": {}, "bias": {}, "alias": {}, "lens": {},
	"always": {}, "perhaps": {}, "various": {}, "serious": {}, "towards": {}, "its": {},
	"his": {}, "this": {}, "thus": {}, "yes": {}, "us": {}, "during": {}, "string": {},
	"spring": {}, "thing": {}, "nothing": {}, "something": {}, "everything": {},
	"morning": {}, "evening": {}, "ceiling": {}, "hundred": {}, "kudos": {}, "gas": {},
	"numpy": {}, "scipy": {},
}

// Suffixes after which a dropped final "e" is restored: "managing" -> "manage".
var silentEEndings = []string{"at", "ut", "iz", "ys", "yz", "v", "c", "ag", "ang", "ur", "ir", "as", "os", "bl", "pl", "id", "od"}

// Lemmatize returns a lowercase base form of a surface word. Acronyms and
// words outside the suffix rules are returned lowercased.
func Lemmatize(surface string) string {
	lower := strings.ToLower(surface)
	if lemma, ok := irregularLemmas[lower]; ok {
		return lemma
	}
	if _, ok := protectedLemmas[lower]; ok {
		return lower
	}
	if isAcronymPlural(surface) {
		return lower[:len(lower)-1]
	}
	if isAcronym(surface) || !isAlpha(lower) || len(lower) <= 3 {
		return lower
	}

	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 4:
		return lower[:len(lower)-3] + "y"
	case strings.HasSuffix(lower, "sses"), strings.HasSuffix(lower, "xes"),
		strings.HasSuffix(lower, "ches"), strings.HasSuffix(lower, "shes"):
		return lower[:len(lower)-2]
	case strings.HasSuffix(lower, "ied") && len(lower) > 4:
		return lower[:len(lower)-3] + "y"
	case strings.HasSuffix(lower, "eed"):
		return lower
	case strings.HasSuffix(lower, "ed") && len(lower) > 4:
		return restoreStem(lower[:len(lower)-2])
	case strings.HasSuffix(lower, "ing") && len(lower) > 5:
		return restoreStem(lower[:len(lower)-3])
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") &&
		!strings.HasSuffix(lower, "us") && !strings.HasSuffix(lower, "is"):
		return lower[:len(lower)-1]
	}
	return lower
}

func restoreStem(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && !strings.ContainsRune("lsfz", rune(stem[n-1])) {
		return stem[:n-1]
	}
	if stem == "us" {
		return "use"
	}
	for _, end := range silentEEndings {
		if strings.HasSuffix(stem, end) && len(stem) > len(end)+1 {
			return stem + "e"
		}
	}
	return stem
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// isAcronymPlural matches an uppercase acronym with a lowercase plural "s",
// such as "APIs" or "URLs".
func isAcronymPlural(s string) bool {
	if !strings.HasSuffix(s, "s") || len(s) < 3 {
		return false
	}
	stem := s[:len(s)-1]
	for _, r := range stem {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isAcronym(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		}
	}
	return letters > 1
}
