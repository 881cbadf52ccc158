package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/dates"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
)

const fieldOfStudy = `(?:\s*,?\s+(?i:in|of)\s+[A-Z][\w&'\-]*(?:\s+(?:(?i:and|of|&)\s+)?[A-Z][\w&'\-]*)*)?`

var (
	richDegreePattern = regexp.MustCompile(`\b(?i:bachelor|master|associate|doctor(?:ate)?)(?:'s|’s|s)?` +
		`(?:\s+(?i:of)\s+(?i:science|arts|business\s+administration|engineering|philosophy|fine\s+arts|education|laws|technology|applied\s+science|commerce|computer\s+applications))?` +
		`(?:\s+(?i:degree))?` + fieldOfStudy)

	abbrevDegreePattern = regexp.MustCompile(`\b(Ph\.?\s?D\.?|M\.?B\.?A\.?|B\.?S\.?c?\.?|M\.?S\.?c?\.?|B\.?A\.?|M\.?A\.?|A\.?A\.?S?\.?|B\.?Eng\.?|M\.?Eng\.?|B\.?Tech\.?|M\.?Tech\.?|BCA|MCA|MPhil|DPhil)` + fieldOfStudy)

	educationHeaderLine = regexp.MustCompile(`(?i)^(education|academic\s+background|academic\s+qualifications)\s*:?$`)

	educationDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{4}\b`),
		regexp.MustCompile(`\b\d{4}\b`),
	}
)

var genericInstitutionWords = map[string]struct{}{
	"education": {}, "university": {}, "college": {}, "institute": {}, "school": {},
}

var institutionKeywords = []string{"university", "college", "institute", "school", "academy", "polytechnic"}

var institutionConnectors = map[string]struct{}{"of": {}, "the": {}, "in": {}, "at": {}, "and": {}, "&": {}, "for": {}}

// degreeStrategy returns the degree mention in line and its byte span.
type degreeStrategy func(line string) (mention string, start, end int, ok bool)

// EducationExtractor recovers degree, institution and date mentions from an
// education section.
type EducationExtractor struct {
	levels     *lexicon.EducationLevels
	dates      *dates.Parser
	strategies []degreeStrategy
}

// NewEducationExtractor builds an extractor over an education-rank table.
func NewEducationExtractor(levels *lexicon.EducationLevels, parser *dates.Parser) *EducationExtractor {
	x := &EducationExtractor{levels: levels, dates: parser}
	x.strategies = []degreeStrategy{richDegree, abbreviatedDegree, x.keywordDegree}
	return x
}

// Extract returns the highest education rank in section (or -1) and one
// entry per line that names a degree or an institution.
func (x *EducationExtractor) Extract(section string, annotator nlp.Annotator) (int, []types.EducationEntry) {
	level := x.levels.Level(section)

	lines := splitLines(section)
	if len(lines) > 0 && educationHeaderLine.MatchString(lines[0]) {
		lines = lines[1:]
	}

	entries := make([]types.EducationEntry, 0)
	for _, line := range lines {
		entry := types.EducationEntry{Text: line}

		degree, dStart, dEnd := x.degree(line)
		entry.DegreeMention = types.StringPtr(degree)
		entry.DateMention = types.StringPtr(x.dateMention(line))

		doc := annotator.Annotate(line)
		inst := institutionFromEntities(doc, dStart, dEnd)
		if inst == "" {
			inst = institutionFromParts(line, degree, entry.DateMention, annotator)
		}
		entry.InstitutionMention = types.StringPtr(inst)

		if entry.DegreeMention != nil || entry.InstitutionMention != nil {
			entries = append(entries, entry)
		}
	}
	return level, entries
}

func (x *EducationExtractor) degree(line string) (string, int, int) {
	for _, strategy := range x.strategies {
		if mention, start, end, ok := strategy(line); ok {
			return mention, start, end
		}
	}
	return "", -1, -1
}

func richDegree(line string) (string, int, int, bool) {
	loc := richDegreePattern.FindStringIndex(line)
	if loc == nil {
		return "", 0, 0, false
	}
	return cleanDegree(line[loc[0]:loc[1]]), loc[0], loc[1], true
}

func abbreviatedDegree(line string) (string, int, int, bool) {
	for _, m := range abbrevDegreePattern.FindAllStringSubmatchIndex(line, -1) {
		abbrEnd := m[3]
		if abbrEnd < len(line) {
			if r, _ := utf8.DecodeRuneInString(line[abbrEnd:]); unicode.IsLetter(r) {
				continue
			}
		}
		abbr := strings.ReplaceAll(strings.ReplaceAll(line[m[2]:m[3]], ".", ""), " ", "")
		return cleanDegree(abbr + line[m[3]:m[1]]), m[0], m[1], true
	}
	return "", 0, 0, false
}

func (x *EducationExtractor) keywordDegree(line string) (string, int, int, bool) {
	kw := x.levels.LongestKeyword(line)
	if kw == "" {
		return "", 0, 0, false
	}
	start := strings.Index(lexicon.NormalizeEducationText(line), kw)
	return kw, start, start + len(kw), true
}

func cleanDegree(s string) string {
	if i := strings.Index(s, "|"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(s), ","))
}

func (x *EducationExtractor) dateMention(line string) string {
	for _, re := range educationDatePatterns {
		for _, m := range re.FindAllString(line, -1) {
			if x.dates.Parse(m) != nil {
				return m
			}
		}
	}
	return ""
}

// institutionFromEntities prefers the longest organization naming a school,
// then the longest organization, ignoring spans inside the degree mention.
func institutionFromEntities(doc *nlp.Doc, degreeStart, degreeEnd int) string {
	var best, bestSchool string
	for _, e := range doc.Ents(nlp.LabelOrg) {
		if degreeStart >= 0 && e.Start < degreeEnd && degreeStart < e.End {
			continue
		}
		text := strings.TrimSpace(strings.TrimRight(e.Text, ","))
		if _, generic := genericInstitutionWords[strings.ToLower(text)]; generic {
			continue
		}
		if hasInstitutionKeyword(text) && len(text) > len(bestSchool) {
			bestSchool = text
		}
		if len(text) > len(best) {
			best = text
		}
	}
	if bestSchool != "" {
		return bestSchool
	}
	return best
}

// institutionFromParts looks for a segment that reads like a school name.
// Pipe-delimited segments are scanned right to left; a line without pipes is
// split on commas and scanned left to right. Segments holding the degree or
// date are skipped, and a trailing ", City" is dropped.
func institutionFromParts(line, degree string, date *string, annotator nlp.Annotator) string {
	segments := strings.Split(line, "|")
	if len(segments) == 1 {
		segments = strings.Split(line, ",")
	} else {
		for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
			segments[i], segments[j] = segments[j], segments[i]
		}
	}
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" || mentions(seg, degree) || (date != nil && strings.Contains(seg, *date)) {
			continue
		}
		if i := strings.Index(seg, ","); i > 0 {
			seg = strings.TrimSpace(seg[:i])
		}
		if hasInstitutionKeyword(seg) || looksLikeProperName(seg, annotator) {
			return seg
		}
	}
	return ""
}

// mentions reports whether segment contains degree as whole words, comparing
// education-normalized forms so "B.S." matches "bs".
func mentions(segment, degree string) bool {
	if degree == "" {
		return false
	}
	needle := strings.TrimSpace(lexicon.NormalizeEducationText(degree))
	if needle == "" {
		return false
	}
	return containsWord(lexicon.NormalizeEducationText(segment), needle)
}

// containsWord reports whether needle occurs in s with a word boundary (as
// regexp \b defines it) on both sides.
func containsWord(s, needle string) bool {
	for from := 0; from+len(needle) <= len(s); {
		i := strings.Index(s[from:], needle)
		if i < 0 {
			return false
		}
		start, end := from+i, from+i+len(needle)
		if boundary(s, start) && boundary(s, end) {
			return true
		}
		from = start + 1
	}
	return false
}

func boundary(s string, i int) bool {
	before := i > 0 && isWordByte(s[i-1])
	after := i < len(s) && isWordByte(s[i])
	return before != after
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func hasInstitutionKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range institutionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// looksLikeProperName accepts up to four words, all capitalized apart from
// connectors, with no digits and not recognized as a place.
func looksLikeProperName(s string, annotator nlp.Annotator) bool {
	words := strings.Fields(s)
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if _, ok := institutionConnectors[strings.ToLower(w)]; ok {
			continue
		}
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) || strings.ContainsAny(w, "0123456789") {
			return false
		}
	}
	doc := annotator.Annotate(s)
	for _, e := range doc.Ents(nlp.LabelGPE, nlp.LabelLoc) {
		if strings.TrimSpace(e.Text) == s {
			return false
		}
	}
	return true
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
