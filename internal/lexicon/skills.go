// Package lexicon provides the immutable vocabularies the parsers consult:
// the skill lexicon, section-header tables and the education-rank table.
package lexicon

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"strings"
)

//go:embed data/skills.json
var defaultSkillsJSON []byte

// SkillLexicon is an ordered list of lowercase skill phrases plus a set for
// membership tests. It is read-only after construction and safe to share.
type SkillLexicon struct {
	phrases []string
	set     map[string]struct{}
}

// NewSkillLexicon builds a lexicon from phrases, lowercasing and trimming each
// one and dropping blanks and duplicates. Declaration order is preserved.
func NewSkillLexicon(phrases []string) *SkillLexicon {
	lex := &SkillLexicon{set: make(map[string]struct{}, len(phrases))}
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, dup := lex.set[p]; dup {
			continue
		}
		lex.set[p] = struct{}{}
		lex.phrases = append(lex.phrases, p)
	}
	return lex
}

// DefaultSkills returns the built-in lexicon.
func DefaultSkills() *SkillLexicon {
	lex, err := parseSkills(defaultSkillsJSON)
	if err != nil {
		panic(err)
	}
	return lex
}

// LoadSkills reads a JSON array of strings from path. When path is empty the
// built-in lexicon is returned. A missing or malformed file degrades to an
// empty lexicon and a logged warning.
func LoadSkills(path string, logger *slog.Logger) *SkillLexicon {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return DefaultSkills()
	}
	lex, err := ReadSkills(path)
	if err != nil {
		logger.Warn("skill lexicon unavailable, continuing with an empty lexicon",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return NewSkillLexicon(nil)
	}
	logger.Debug("skill lexicon loaded", slog.String("path", path), slog.Int("phrases", lex.Len()))
	return lex
}

// ReadSkills reads a JSON array of strings from path and reports any failure.
func ReadSkills(path string) (*SkillLexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResourceError{Message: "failed to read skill lexicon", Path: path, Cause: err}
	}
	lex, err := parseSkills(data)
	if err != nil {
		return nil, &ResourceError{Message: "failed to parse skill lexicon", Path: path, Cause: err}
	}
	return lex, nil
}

func parseSkills(data []byte) (*SkillLexicon, error) {
	var phrases []string
	if err := json.Unmarshal(data, &phrases); err != nil {
		return nil, err
	}
	return NewSkillLexicon(phrases), nil
}

// Contains reports whether s, already lowercased, is a known skill.
func (l *SkillLexicon) Contains(s string) bool {
	_, ok := l.set[s]
	return ok
}

// Phrases returns the lexicon entries in declaration order.
func (l *SkillLexicon) Phrases() []string {
	out := make([]string, len(l.phrases))
	copy(out, l.phrases)
	return out
}

// MultiWord returns the entries that contain whitespace.
func (l *SkillLexicon) MultiWord() []string {
	var out []string
	for _, p := range l.phrases {
		if strings.ContainsAny(p, " \t") {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of entries.
func (l *SkillLexicon) Len() int {
	return len(l.phrases)
}

// Sorted returns the entries sorted alphabetically.
func (l *SkillLexicon) Sorted() []string {
	out := l.Phrases()
	sort.Strings(out)
	return out
}
