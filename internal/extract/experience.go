package extract

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/dates"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	monthToken = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`
	dateToken  = `(?:` + monthToken + `\s+\d{4}|\d{1,2}/\d{4}|\d{4})`
)

var (
	dateRangePattern = regexp.MustCompile(`(?i)\b(` + dateToken + `)\s*(?:-|–|—|\bto\b|\buntil\b|\bthrough\b)\s*(` + dateToken + `|present|current|now|today)\b`)
	descriptionLead  = regexp.MustCompile(`^[-–—)\]*•·:,\s]+`)
	experienceWords  = regexp.MustCompile(`(?i)\b(experience|employment|work\s+history|career)\b`)
)

const (
	maxHeaderWords      = 10
	maxSectionLineWords = 3
	maxReclaimedLines   = 2
)

// ExperienceState is the state of the work-history scanner.
type ExperienceState int

const (
	// StateIdle means no role is open; lines collect in the header buffer.
	StateIdle ExperienceState = iota
	// StateRoleOpen means a date range opened a role that now collects description lines.
	StateRoleOpen
)

func (s ExperienceState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRoleOpen:
		return "RoleOpen"
	}
	return "Unknown"
}

// LineKind classifies one input line for the scanner.
type LineKind int

const (
	// LineDateRange carries a start and end date.
	LineDateRange LineKind = iota
	// LineHeader looks like a title/company heading for the next role.
	LineHeader
	// LineText is anything else.
	LineText
	// LineEnd marks the end of the section.
	LineEnd
)

// Event is one classified line.
type Event struct {
	Kind  LineKind
	Line  string
	Pre   string
	Start string
	End   string
	Post  string
}

// ExperienceOptions tunes the experience extractor.
type ExperienceOptions struct {
	// ResolveOverlaps totals the union of role intervals instead of their sum.
	ResolveOverlaps bool
}

// ExperienceResult is the work history of one document.
type ExperienceResult struct {
	Entries    []types.ExperienceEntry
	TotalYears float64
	Companies  []string
}

// ExperienceExtractor scans an experience section line by line.
type ExperienceExtractor struct {
	dates *dates.Parser
	opts  ExperienceOptions
}

// NewExperienceExtractor builds an extractor.
func NewExperienceExtractor(parser *dates.Parser, opts ExperienceOptions) *ExperienceExtractor {
	return &ExperienceExtractor{dates: parser, opts: opts}
}

type interval struct {
	start, end time.Time
}

type roleDraft struct {
	title       string
	company     string
	start       *time.Time
	end         *time.Time
	description []string
	// fixed counts description lines taken from the date line itself.
	fixed int
}

// Machine is the explicit scanner state. Step applies one event.
type Machine struct {
	State     ExperienceState
	Buffer    []string
	x         *ExperienceExtractor
	annotator nlp.Annotator
	current   *roleDraft
	entries   []types.ExperienceEntry
	intervals []interval
	totalDays float64
	companies map[string]struct{}
}

// NewMachine returns a machine in StateIdle.
func (x *ExperienceExtractor) NewMachine(annotator nlp.Annotator) *Machine {
	return &Machine{
		State:     StateIdle,
		x:         x,
		annotator: annotator,
		companies: make(map[string]struct{}),
	}
}

// Extract runs the scanner over an experience section.
func (x *ExperienceExtractor) Extract(section string, annotator nlp.Annotator) ExperienceResult {
	m := x.NewMachine(annotator)
	lines := splitLines(section)
	if len(lines) > 0 && experienceWords.MatchString(lines[0]) && wordCount(lines[0]) <= maxSectionLineWords {
		lines = lines[1:]
	}
	for _, line := range lines {
		m.Step(m.Classify(line))
	}
	m.Step(Event{Kind: LineEnd})
	return m.Result()
}

// Classify turns a line into an event. Whether a line counts as a header
// depends on the current state.
func (m *Machine) Classify(line string) Event {
	if loc := dateRangePattern.FindStringSubmatchIndex(line); loc != nil {
		return Event{
			Kind:  LineDateRange,
			Line:  line,
			Pre:   strings.TrimSpace(line[:loc[0]]),
			Start: line[loc[2]:loc[3]],
			End:   line[loc[4]:loc[5]],
			Post:  strings.TrimSpace(descriptionLead.ReplaceAllString(line[loc[1]:], "")),
		}
	}
	if m.State == StateRoleOpen && m.isRoleHeading(line) {
		return Event{Kind: LineHeader, Line: line}
	}
	return Event{Kind: LineText, Line: line}
}

// isRoleHeading reports whether a line inside an open role starts the next
// one: short, not a bullet, and shaped like "Title | Company" or naming a
// company at its start or after a separator.
func (m *Machine) isRoleHeading(line string) bool {
	if startsWithBullet(line) || wordCount(line) >= maxHeaderWords || strings.HasSuffix(line, ".") {
		return false
	}
	if strings.Contains(line, "|") {
		return true
	}
	doc := m.annotator.Annotate(line)
	for _, org := range orgEntities(doc) {
		before := strings.TrimSpace(line[:org.Start])
		if before == "" || trimSeparators(before) != before || strings.HasSuffix(strings.ToLower(before), " at") {
			return true
		}
	}
	return false
}

func startsWithBullet(line string) bool {
	for _, marker := range []string{"-", "*", "•", "·"} {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// Step applies one event and returns the new state.
func (m *Machine) Step(ev Event) ExperienceState {
	switch ev.Kind {
	case LineDateRange:
		if m.State == StateRoleOpen {
			if title, _ := splitTitleCompany(ev.Pre, m.annotator); title == "" {
				m.reclaimHeading(maxReclaimedLines)
			}
			m.closeRole()
		}
		m.openRole(ev)
		m.State = StateRoleOpen
	case LineHeader:
		if m.State == StateRoleOpen {
			if title, _ := splitTitleCompany(ev.Line, m.annotator); title == "" {
				m.reclaimHeading(1)
			}
			m.closeRole()
			m.State = StateIdle
		}
		m.Buffer = append(m.Buffer, ev.Line)
	case LineText:
		if m.State == StateRoleOpen {
			m.current.description = append(m.current.description, ev.Line)
		} else {
			m.Buffer = append(m.Buffer, ev.Line)
		}
	case LineEnd:
		if m.State == StateRoleOpen {
			m.closeRole()
		}
		m.State = StateIdle
		m.Buffer = nil
	}
	return m.State
}

func (m *Machine) openRole(ev Event) {
	role := &roleDraft{
		start: m.x.dates.Parse(ev.Start),
		end:   m.x.dates.Parse(ev.End),
	}
	role.title, role.company = splitTitleCompany(ev.Pre, m.annotator)

	for i := len(m.Buffer) - 1; i >= 0 && (role.title == "" || role.company == ""); i-- {
		title, company := splitTitleCompany(m.Buffer[i], m.annotator)
		if role.company == "" && company != "" {
			role.company = company
		}
		if role.title == "" && title != "" {
			role.title = title
		}
	}
	if ev.Post != "" {
		role.description = append(role.description, ev.Post)
		role.fixed = len(role.description)
	}
	if role.company != "" {
		m.companies[role.company] = struct{}{}
	}
	m.current = role
	m.Buffer = nil
}

// reclaimHeading moves up to n trailing description lines of the open role
// back into the header buffer when they read like a bare job title. It covers
// the "Title / Company / Dates" layout, where the title line of the next role
// is only recognizable once its company or dates arrive.
func (m *Machine) reclaimHeading(n int) {
	role := m.current
	if role == nil {
		return
	}
	cut := len(role.description)
	for cut > role.fixed && len(role.description)-cut < n && isBareTitle(role.description[cut-1]) {
		cut--
	}
	if cut == len(role.description) {
		return
	}
	reclaimed := append([]string(nil), role.description[cut:]...)
	role.description = role.description[:cut]
	m.Buffer = append(reclaimed, m.Buffer...)
}

func isBareTitle(line string) bool {
	return !startsWithBullet(line) && !strings.HasSuffix(line, ".") && validTitle(line) == line
}

func (m *Machine) closeRole() {
	role := m.current
	m.current = nil
	if role == nil {
		return
	}
	hasRange := role.start != nil && role.end != nil
	if hasRange {
		if days := dates.Between(*role.start, *role.end).ApproxDays(); days > 0 {
			m.totalDays += days
			m.intervals = append(m.intervals, interval{start: *role.start, end: *role.end})
		}
	}
	if role.title == "" && role.company == "" && !hasRange {
		return
	}
	m.entries = append(m.entries, types.ExperienceEntry{
		JobTitle:    types.StringPtr(role.title),
		Company:     types.StringPtr(role.company),
		StartDate:   types.DatePtr(role.start),
		EndDate:     types.DatePtr(role.end),
		Description: strings.Join(role.description, "\n"),
	})
}

// Result returns what the machine has emitted so far.
func (m *Machine) Result() ExperienceResult {
	days := m.totalDays
	if m.x.opts.ResolveOverlaps {
		days = unionDays(m.intervals)
	}
	entries := m.entries
	if entries == nil {
		entries = make([]types.ExperienceEntry, 0)
	}
	return ExperienceResult{
		Entries:    entries,
		TotalYears: math.Round(days/dates.DaysPerYear*10) / 10,
		Companies:  sortedKeys(m.companies),
	}
}

func unionDays(intervals []interval) float64 {
	if len(intervals) == 0 {
		return 0
	}
	sorted := make([]interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start.Before(sorted[j].start) })

	var total float64
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		if !iv.start.After(cur.end) {
			if iv.end.After(cur.end) {
				cur.end = iv.end
			}
			continue
		}
		total += dates.Between(cur.start, cur.end).ApproxDays()
		cur = iv
	}
	return total + dates.Between(cur.start, cur.end).ApproxDays()
}
