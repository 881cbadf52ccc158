package nlp

import (
	"regexp"
	"sort"
	"strings"
)

var corporateSuffixes = map[string]struct{}{
	"inc": {}, "incorporated": {}, "corp": {}, "corporation": {}, "llc": {}, "llp": {}, "ltd": {},
	"limited": {}, "co": {}, "company": {}, "group": {}, "technologies": {}, "technology": {}, "labs": {},
	"laboratories": {}, "systems": {}, "solutions": {}, "software": {}, "bank": {}, "partners": {},
	"consulting": {}, "holdings": {}, "industries": {}, "enterprises": {}, "agency": {}, "foundation": {},
	"studios": {}, "networks": {}, "ventures": {}, "capital": {}, "media": {}, "hospital": {},
	"pharmaceuticals": {}, "motors": {}, "airlines": {}, "bancorp": {}, "gmbh": {}, "ag": {}, "plc": {},
	"interactive": {}, "dynamics": {}, "analytics": {}, "healthcare": {}, "insurance": {},
}

var institutionWords = map[string]struct{}{
	"university": {}, "college": {}, "institute": {}, "school": {}, "academy": {}, "polytechnic": {},
	"conservatory": {}, "universidad": {}, "universite": {}, "université": {}, "universität": {},
}

var runConnectors = map[string]struct{}{
	"of": {}, "and": {}, "&": {}, "for": {}, "the": {}, "de": {},
}

var usStateCodes = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"DC": {},
}

var dateEntityPattern = regexp.MustCompile(`(?i)\b(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(?:\d{1,2},\s*)?\d{4}\b|\b\d{1,2}/\d{4}\b|\b(?:19|20)\d{2}\b`)

const maxAtOrgTokens = 6

type candidate struct {
	Entity
	priority int
}

type span struct{ start, end int }

func (h *Heuristic) recognize(text string, tokens []Token) []Entity {
	var cands []candidate
	add := func(label Label, priority, start, end int) {
		cands = append(cands, candidate{
			Entity:   Entity{Text: text[start:end], Label: label, Start: start, End: end},
			priority: priority,
		})
	}

	var words []Token
	for _, t := range tokens {
		if !t.IsPunct {
			words = append(words, t)
		}
	}
	for i := range words {
		if n := h.orgs.match(words, i); n > 0 {
			add(LabelOrg, 0, words[i].Start, words[i+n-1].End)
		}
		if n := h.places.match(words, i); n > 0 {
			add(LabelGPE, 2, words[i].Start, words[i+n-1].End)
		}
		if n := h.locations.match(words, i); n > 0 {
			add(LabelLoc, 2, words[i].Start, words[i+n-1].End)
		}
	}

	runs := capitalizedRuns(text, tokens)
	for k, r := range runs {
		if onlySuffixes(tokens[r.start:r.end]) && k > 0 && r.start >= 2 &&
			tokens[r.start-1].Text == "," && runs[k-1].end == r.start-1 {
			add(LabelOrg, 1, tokens[runs[k-1].start].Start, tokens[r.end-1].End)
			continue
		}
		if looksLikeOrg(tokens[r.start:r.end]) {
			add(LabelOrg, 1, tokens[r.start].Start, tokens[r.end-1].End)
		}
	}

	for i, t := range tokens {
		if _, ok := usStateCodes[t.Text]; ok && i >= 2 && tokens[i-1].Text == "," && tokens[i-2].IsCapitalized() {
			add(LabelGPE, 2, t.Start, t.End)
		}
		if (t.Lower == "at" || t.Text == "@") && i+1 < len(tokens) {
			for _, r := range runs {
				if r.start == i+1 && r.end-r.start <= maxAtOrgTokens {
					add(LabelOrg, 3, tokens[r.start].Start, tokens[r.end-1].End)
				}
			}
		}
	}

	for _, loc := range dateEntityPattern.FindAllStringIndex(text, -1) {
		add(LabelDate, 4, loc[0], loc[1])
	}

	return resolveOverlaps(cands)
}

func resolveOverlaps(cands []candidate) []Entity {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].priority != cands[j].priority {
			return cands[i].priority < cands[j].priority
		}
		return cands[i].Start < cands[j].Start
	})
	var taken []span
	var out []Entity
	for _, c := range cands {
		overlaps := false
		for _, s := range taken {
			if c.Start < s.end && s.start < c.End {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		taken = append(taken, span{c.Start, c.End})
		out = append(out, c.Entity)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func capWord(t Token) bool {
	return !t.IsPunct && t.IsCapitalized()
}

// capitalizedRuns groups maximal sequences of capitalized words on one line,
// allowing a lowercase connector between two capitalized words ("University
// of Texas").
func capitalizedRuns(text string, tokens []Token) []span {
	lineBreak := func(a, b int) bool {
		return strings.Contains(text[tokens[a].End:tokens[b].Start], "\n")
	}
	var runs []span
	i := 0
	for i < len(tokens) {
		if !capWord(tokens[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(tokens) {
			if lineBreak(j-1, j) {
				break
			}
			if capWord(tokens[j]) {
				j++
				continue
			}
			if _, ok := runConnectors[tokens[j].Lower]; ok && j+1 < len(tokens) && capWord(tokens[j+1]) && !lineBreak(j, j+1) {
				j += 2
				continue
			}
			break
		}
		runs = append(runs, span{i, j})
		i = j
	}
	return runs
}

func suffixKey(t Token) string {
	return strings.TrimSuffix(t.Lower, ".")
}

func onlySuffixes(run []Token) bool {
	for _, t := range run {
		if _, ok := corporateSuffixes[suffixKey(t)]; !ok {
			return false
		}
	}
	return len(run) > 0
}

func looksLikeOrg(run []Token) bool {
	for _, t := range run {
		if _, ok := institutionWords[t.Lower]; ok {
			return true
		}
	}
	if len(run) < 2 {
		return false
	}
	_, ok := corporateSuffixes[suffixKey(run[len(run)-1])]
	return ok
}
