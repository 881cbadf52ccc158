package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/nlp"
)

// Lines equal to one of these are never treated as job titles.
var commonSectionHeaders = map[string]struct{}{
	"experience": {}, "education": {}, "skills": {}, "summary": {}, "objective": {}, "projects": {},
	"awards": {}, "references": {}, "publications": {}, "interests": {}, "activities": {}, "volunteer": {},
	"work experience": {}, "professional experience": {}, "employment history": {}, "certifications": {},
}

const maxEntityWords = 7

var (
	trailingSeparators = regexp.MustCompile(`(?i)(?:[\s,|@(\[–—-]|\bat)+$`)
	leadingSeparators  = regexp.MustCompile(`(?i)^(?:[\s,|@)\]–—:-]|at\b)+`)
	atSeparator        = regexp.MustCompile(`(?i)\s+(?:at|@)\s+`)
)

func trimSeparators(s string) string {
	s = leadingSeparators.ReplaceAllString(s, "")
	return strings.TrimSpace(trailingSeparators.ReplaceAllString(s, ""))
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// validTitle returns s when it reads like a job title: capitalized or
// starting with a digit, short, and not a section heading.
func validTitle(s string) string {
	s = trimSeparators(s)
	if s == "" || strings.Contains(s, "@") || wordCount(s) >= maxEntityWords {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
		return ""
	}
	if _, heading := commonSectionHeaders[strings.ToLower(strings.TrimRight(s, ":"))]; heading {
		return ""
	}
	return s
}

// orgEntities returns organization entities short enough to be a company.
func orgEntities(doc *nlp.Doc) []nlp.Entity {
	var out []nlp.Entity
	for _, e := range doc.Ents(nlp.LabelOrg) {
		if wordCount(e.Text) < maxEntityWords {
			out = append(out, e)
		}
	}
	return out
}

// splitTitleCompany separates a role line such as "Software Engineer | Acme
// Corp" or "Data Analyst at Initech" into title and company.
func splitTitleCompany(text string, annotator nlp.Annotator) (title, company string) {
	text = trimSeparators(text)
	if text == "" {
		return "", ""
	}

	if strings.Contains(text, "|") {
		var parts []string
		for _, p := range strings.Split(text, "|") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			first, second := parts[0], parts[1]
			firstOrg := len(orgEntities(annotator.Annotate(first))) > 0
			secondOrg := len(orgEntities(annotator.Annotate(second))) > 0
			if firstOrg && !secondOrg {
				return trimSeparators(second), trimSeparators(first)
			}
			return trimSeparators(first), trimSeparators(second)
		}
		if len(parts) == 0 {
			return "", ""
		}
		text = parts[0]
	}

	doc := annotator.Annotate(text)
	if orgs := orgEntities(doc); len(orgs) > 0 {
		org := orgs[0]
		company = trimSeparators(org.Text)
		title = validTitle(text[:org.Start])
		if title == "" {
			title = validTitle(text[org.End:])
		}
		return title, company
	}

	if loc := atSeparator.FindStringIndex(text); loc != nil {
		after := trimSeparators(text[loc[1]:])
		if validTitle(after) != "" {
			return validTitle(text[:loc[0]]), after
		}
	}
	return validTitle(text), ""
}
