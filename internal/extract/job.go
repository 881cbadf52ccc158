package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/segment"
)

const maxPlausibleYears = 50

var (
	minimumYearsPattern  = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:(?:-|–|to)\s*\d+\s*)?\+?\s*years?\b`)
	titlePrefixPattern   = regexp.MustCompile(`(?i)^\s*(?:job\s+title|position|role|title)\s*:\s*(.*)$`)
	companyPrefixPattern = regexp.MustCompile(`(?i)^\s*(?:company(?:\s+name)?|employer|organization)\s*:\s*(.*)$`)
	stateSuffixPattern   = regexp.MustCompile(`^\s*,\s*([A-Z]{2})\b`)
)

// BulletList returns the body lines of a section with list markers removed.
func BulletList(seg *segment.Segmenter, section string) []string {
	out := make([]string, 0)
	for _, line := range seg.BodyLines(section) {
		if line = segment.StripBullet(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// MinimumYears returns the first plausible "N+ years" figure found in texts,
// searched in order.
func MinimumYears(texts ...string) *int {
	for _, text := range texts {
		for _, m := range minimumYearsPattern.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n > maxPlausibleYears {
				continue
			}
			return &n
		}
	}
	return nil
}

// labeledValue returns the value of the first "Label: value" line matching
// pattern, or the line after a bare "Label:" line.
func labeledValue(lines []string, pattern *regexp.Regexp) (string, bool) {
	for i, line := range lines {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if rest := strings.TrimSpace(m[1]); rest != "" {
			return rest, true
		}
		if i+1 < len(lines) {
			return strings.TrimSpace(lines[i+1]), true
		}
	}
	return "", false
}

func isLabelLine(line string) bool {
	return titlePrefixPattern.MatchString(line) || companyPrefixPattern.MatchString(line)
}

// JobTitle finds the posting's title in its header lines: a "Job Title:"
// style line, the line after a bare prefix line, or the first line when it
// is not the company name.
func JobTitle(headerLines []string, company string) string {
	if title, ok := labeledValue(headerLines, titlePrefixPattern); ok {
		return title
	}
	for _, line := range headerLines {
		line = strings.TrimSpace(line)
		if line == "" || segment.IsBulletLine(line) || isLabelLine(line) {
			continue
		}
		if company != "" && strings.EqualFold(line, company) {
			continue
		}
		if wordCount(line) < maxHeaderWords {
			return line
		}
		return ""
	}
	return ""
}

// CompanyName returns the value of a "Company:" header line, else the first
// organization named in doc.
func CompanyName(headerLines []string, doc *nlp.Doc) string {
	if company, ok := labeledValue(headerLines, companyPrefixPattern); ok {
		return company
	}
	if orgs := orgEntities(doc); len(orgs) > 0 {
		return trimSeparators(orgs[0].Text)
	}
	return ""
}

// Location returns the first place named in doc, joined with a following
// ", ST" state code when present ("Austin, TX").
func Location(doc *nlp.Doc) string {
	places := doc.Ents(nlp.LabelGPE, nlp.LabelLoc)
	if len(places) == 0 {
		return ""
	}
	first := places[0]
	if m := stateSuffixPattern.FindStringSubmatchIndex(doc.Text[first.End:]); m != nil {
		return doc.Text[first.Start : first.End+m[3]]
	}
	return first.Text
}

// Summary returns the body of a summary section as one paragraph.
func Summary(seg *segment.Segmenter, section string) string {
	return strings.Join(seg.BodyLines(section), " ")
}
