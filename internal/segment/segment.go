// Package segment splits cleaned document text into named sections by
// matching header lines against an ordered pattern table.
package segment

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexicon"
)

// SectionMap maps section names to their text, in order of first appearance.
type SectionMap struct {
	names []string
	texts map[string]string
}

// Get returns the text of a section, or "" when absent.
func (m SectionMap) Get(name string) string {
	return m.texts[name]
}

// Has reports whether a section is present.
func (m SectionMap) Has(name string) bool {
	_, ok := m.texts[name]
	return ok
}

// Names returns the section names in document order.
func (m SectionMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len returns the number of sections.
func (m SectionMap) Len() int {
	return len(m.names)
}

// Join concatenates the named sections that are present, newline separated.
func (m SectionMap) Join(names ...string) string {
	var parts []string
	for _, n := range names {
		if t := m.texts[n]; t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

// Text reassembles the sections in document order.
func (m SectionMap) Text() string {
	return m.Join(m.names...)
}

// MarshalJSON writes the sections as an object in document order.
func (m SectionMap) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range m.names {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(n)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.texts[n])
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

func (m *SectionMap) add(name string, lines []string) {
	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" {
		return
	}
	if m.texts == nil {
		m.texts = make(map[string]string)
	}
	if prev, ok := m.texts[name]; ok {
		m.texts[name] = prev + "\n" + text
		return
	}
	m.names = append(m.names, name)
	m.texts[name] = text
}

type compiledHeader struct {
	name    string
	pattern *regexp.Regexp
}

// Segmenter holds a compiled header table. It is immutable and safe for
// concurrent use.
type Segmenter struct {
	headers []compiledHeader
}

// NewSegmenter compiles headers in order. Patterns that fail to compile are
// skipped with a warning.
func NewSegmenter(headers []lexicon.SectionHeader, logger *slog.Logger) *Segmenter {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Segmenter{}
	for _, h := range headers {
		re, err := regexp.Compile(h.Pattern)
		if err != nil {
			logger.Warn("skipping invalid section header pattern",
				slog.String("section", h.Name),
				slog.String("pattern", h.Pattern),
				slog.String("error", err.Error()))
			continue
		}
		s.headers = append(s.headers, compiledHeader{name: h.Name, pattern: re})
	}
	return s
}

// Match returns the section a line opens, testing patterns in table order.
func (s *Segmenter) Match(line string) (string, bool) {
	for _, h := range s.headers {
		if h.pattern.MatchString(line) {
			return h.name, true
		}
	}
	return "", false
}

// Segment splits cleaned text into sections. Content before the first
// recognized header lands in the "header" section. Header lines stay in
// the section they open. A section that recurs gets the later content
// appended.
func (s *Segmenter) Segment(text string) SectionMap {
	var m SectionMap
	current := lexicon.SectionHead
	var buf []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, ok := s.Match(line); ok {
			m.add(current, buf)
			current = name
			buf = []string{line}
			continue
		}
		buf = append(buf, line)
	}
	m.add(current, buf)
	return m
}

// StripHeader removes the header text from a line that opens a section and
// returns what follows it ("Skills: Go, SQL" -> "Go, SQL").
func (s *Segmenter) StripHeader(line string) (string, bool) {
	for _, h := range s.headers {
		if loc := h.pattern.FindStringIndex(line); loc != nil {
			return strings.TrimSpace(strings.TrimLeft(line[loc[1]:], " :\t")), true
		}
	}
	return line, false
}

// BodyLines returns the lines of a section without its header. Text that
// shares the header line is kept as the first body line.
func (s *Segmenter) BodyLines(section string) []string {
	lines := Lines(section)
	if len(lines) == 0 {
		return lines
	}
	rest, ok := s.StripHeader(lines[0])
	if !ok {
		return lines
	}
	if rest == "" {
		return lines[1:]
	}
	return append([]string{rest}, lines[1:]...)
}

// Body returns the section text without its header.
func (s *Segmenter) Body(section string) string {
	return strings.Join(s.BodyLines(section), "\n")
}
