package lexicon

import (
	"encoding/json"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Education ranks. LevelUnknown marks an undetermined level.
const (
	LevelUnknown    = -1
	LevelHighSchool = 0
	LevelCollege    = 1
	LevelAssociate  = 2
	LevelBachelor   = 3
	LevelMaster     = 4
	LevelDoctorate  = 5
)

var defaultEducationRanks = map[string]int{
	"phd": LevelDoctorate, "ph.d": LevelDoctorate, "doctorate": LevelDoctorate, "dphil": LevelDoctorate,
	"doctor of philosophy": LevelDoctorate,
	"master": LevelMaster, "masters": LevelMaster, "msc": LevelMaster, "m.sc": LevelMaster, "m.s.": LevelMaster,
	"ms": LevelMaster, "mba": LevelMaster, "m.b.a": LevelMaster, "meng": LevelMaster, "m.eng": LevelMaster,
	"mtech": LevelMaster, "m.tech": LevelMaster, "ma": LevelMaster, "m.a.": LevelMaster,
	"master of science": LevelMaster, "master of arts": LevelMaster,
	"bachelor": LevelBachelor, "bachelors": LevelBachelor, "bsc": LevelBachelor, "b.sc": LevelBachelor,
	"b.s.": LevelBachelor, "bs": LevelBachelor, "beng": LevelBachelor, "b.eng": LevelBachelor,
	"btech": LevelBachelor, "b.tech": LevelBachelor, "ba": LevelBachelor, "b.a.": LevelBachelor, "bca": LevelBachelor,
	"associate": LevelAssociate, "associates": LevelAssociate, "associate degree": LevelAssociate, "aa": LevelAssociate,
	"college": LevelCollege, "advanced diploma": LevelCollege,
	"high school": LevelHighSchool, "ged": LevelHighSchool, "diploma": LevelHighSchool,
}

var (
	initialDot  = regexp.MustCompile(`\b([a-z])\.`)
	apostropheS = regexp.MustCompile(`'s\b`)
	foldChain   = func() transform.Transformer {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}
)

// Fold lowercases s and strips diacritics.
func Fold(s string) string {
	out, _, err := transform.String(foldChain(), s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// NormalizeEducationText folds s and collapses initialisms, so "B.S." and
// "Bachelor's" become "bs" and "bachelor".
func NormalizeEducationText(s string) string {
	s = Fold(s)
	s = apostropheS.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "’s", "")
	return initialDot.ReplaceAllString(s, "$1")
}

type educationKeyword struct {
	keyword string
	rank    int
	pattern *regexp.Regexp
}

// EducationLevels maps credential keywords to ordinal ranks. It is read-only
// after construction.
type EducationLevels struct {
	// ordered longest keyword first, ties alphabetically
	keywords []educationKeyword
}

// NewEducationLevels builds the table from keyword→rank pairs. Keywords are
// normalized with NormalizeEducationText; when two collapse to the same form
// the higher rank wins.
func NewEducationLevels(ranks map[string]int) *EducationLevels {
	merged := make(map[string]int, len(ranks))
	for k, r := range ranks {
		nk := strings.TrimSpace(NormalizeEducationText(k))
		if nk == "" {
			continue
		}
		if prev, ok := merged[nk]; !ok || r > prev {
			merged[nk] = r
		}
	}

	levels := &EducationLevels{}
	for k, r := range merged {
		levels.keywords = append(levels.keywords, educationKeyword{
			keyword: k,
			rank:    r,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`),
		})
	}
	sort.Slice(levels.keywords, func(i, j int) bool {
		a, b := levels.keywords[i], levels.keywords[j]
		if len(a.keyword) != len(b.keyword) {
			return len(a.keyword) > len(b.keyword)
		}
		return a.keyword < b.keyword
	})
	return levels
}

// DefaultEducationLevels returns the built-in rank table.
func DefaultEducationLevels() *EducationLevels {
	return NewEducationLevels(defaultEducationRanks)
}

// LoadEducationLevels reads a JSON object of keyword→rank. An empty path
// returns the built-in table.
func LoadEducationLevels(path string) (*EducationLevels, error) {
	if path == "" {
		return DefaultEducationLevels(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Message: "failed to read education levels", Path: path, Cause: err}
	}
	var ranks map[string]int
	if err := json.Unmarshal(data, &ranks); err != nil {
		return nil, &ResourceError{Message: "failed to parse education levels", Path: path, Cause: err}
	}
	for k, r := range ranks {
		if r < LevelHighSchool || r > LevelDoctorate {
			return nil, &ResourceError{Message: "education rank out of range for " + k, Path: path}
		}
	}
	return NewEducationLevels(ranks), nil
}

// Level returns the highest rank of any keyword in text, or LevelUnknown.
func (l *EducationLevels) Level(text string) int {
	best := LevelUnknown
	folded := NormalizeEducationText(text)
	for _, kw := range l.keywords {
		if kw.rank > best && kw.pattern.MatchString(folded) {
			best = kw.rank
		}
	}
	return best
}

// MinLevel returns the lowest rank of any keyword in text, or LevelUnknown.
// A posting asking for "a bachelor's or master's degree" requires a bachelor's.
func (l *EducationLevels) MinLevel(text string) int {
	lowest := LevelUnknown
	folded := NormalizeEducationText(text)
	for _, kw := range l.keywords {
		if (lowest == LevelUnknown || kw.rank < lowest) && kw.pattern.MatchString(folded) {
			lowest = kw.rank
		}
	}
	return lowest
}

// LongestKeyword returns the longest keyword found in text, or "".
func (l *EducationLevels) LongestKeyword(text string) string {
	folded := NormalizeEducationText(text)
	for _, kw := range l.keywords {
		if kw.pattern.MatchString(folded) {
			return kw.keyword
		}
	}
	return ""
}

// Keywords returns the normalized keywords, longest first.
func (l *EducationLevels) Keywords() []string {
	out := make([]string, len(l.keywords))
	for i, kw := range l.keywords {
		out[i] = kw.keyword
	}
	return out
}

var levelNames = map[int]string{
	LevelHighSchool: "high school",
	LevelCollege:    "college",
	LevelAssociate:  "associate",
	LevelBachelor:   "bachelor's",
	LevelMaster:     "master's",
	LevelDoctorate:  "doctorate",
}

// LevelName returns a readable name for an education rank.
func LevelName(level int) string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return "unknown"
}
