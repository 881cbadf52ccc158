// Package dates parses the loose date strings found in résumés and job
// postings and measures the calendar distance between two dates.
package dates

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Strategy is one attempt at turning text into a date.
type Strategy struct {
	Name  string
	Parse func(text string, now time.Time) (time.Time, bool)
}

// Parser tries each strategy in order until one succeeds. The zero value is
// usable: it runs DefaultStrategies against the wall clock.
type Parser struct {
	Strategies []Strategy
	Now        func() time.Time
	Logger     *slog.Logger
}

// NewParser returns a parser with the default strategies.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{Strategies: DefaultStrategies(), Logger: logger}
}

// Parse returns the first date any strategy produces, or nil. It never panics
// on malformed input; failures are logged at warn level.
func (p *Parser) Parse(text string) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	now := time.Now()
	if p.Now != nil {
		now = p.Now()
	}
	strategies := p.Strategies
	if strategies == nil {
		strategies = DefaultStrategies()
	}
	for _, s := range strategies {
		if t, ok := s.Parse(text, now); ok {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("could not parse date", slog.String("text", text))
	return nil
}

// DefaultStrategies returns present-words, the fuzzy parser, then the
// month/year and bare-year fallbacks.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "present", Parse: parsePresent},
		{Name: "fuzzy", Parse: parseFuzzy},
		{Name: "month-name-year", Parse: parseMonthNameYear},
		{Name: "numeric-month-year", Parse: parseNumericMonthYear},
		{Name: "year", Parse: parseYear},
	}
}

var presentWords = map[string]struct{}{
	"present": {}, "current": {}, "now": {}, "today": {}, "til date": {}, "till date": {}, "to date": {},
}

// IsPresent reports whether text names the current date.
func IsPresent(text string) bool {
	_, ok := presentWords[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

func parsePresent(text string, now time.Time) (time.Time, bool) {
	if IsPresent(text) {
		return now, true
	}
	return time.Time{}, false
}

var (
	digitGroups     = regexp.MustCompile(`\d+`)
	monthNameYear   = regexp.MustCompile(`(?i)\b([a-z]{3,9})\.?,?\s+(\d{4})\b`)
	numericMonthYr  = regexp.MustCompile(`\b(\d{1,2})\s*[/-]\s*(\d{4})\b`)
	bareYear        = regexp.MustCompile(`\b(\d{4})\b`)
	hasMonthPattern = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`)
)

// parseFuzzy delegates to dateparse. Components the text does not carry are
// filled with 1 so "2019" and "Jan 2019" land on the first of the period.
func parseFuzzy(text string, _ time.Time) (time.Time, bool) {
	groups := digitGroups.FindAllString(text, -1)
	if len(groups) == 0 {
		return time.Time{}, false
	}
	t, err := parseAny(text)
	if err != nil {
		return time.Time{}, false
	}
	year := strconv.Itoa(t.Year())
	if t.Year() < 1000 || !strings.Contains(text, year) {
		return time.Time{}, false
	}

	hasMonthName := hasMonthPattern.MatchString(text)
	switch {
	case len(groups) == 1 && !hasMonthName:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), true
	case len(groups) == 1:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), true
	case len(groups) == 2 && numericMonthYr.MatchString(text):
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), true
	}
	return t, true
}

// parseAny shields callers from panics inside dateparse on odd inputs.
func parseAny(text string) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dateparse panic: %v", r)
		}
	}()
	return dateparse.ParseAny(text)
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January, "feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March, "apr": time.April, "april": time.April, "may": time.May,
	"jun": time.June, "june": time.June, "jul": time.July, "july": time.July, "aug": time.August,
	"august": time.August, "sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October, "nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ResolveMonth maps a month name or abbreviation to its month.
func ResolveMonth(name string) (time.Month, bool) {
	name = strings.ToLower(strings.TrimSuffix(strings.TrimSpace(name), "."))
	if m, ok := monthNames[name]; ok {
		return m, true
	}
	t, err := parseAny(name + " 1, 2000")
	if err != nil {
		return 0, false
	}
	return t.Month(), true
}

func parseMonthNameYear(text string, _ time.Time) (time.Time, bool) {
	for _, m := range monthNameYear.FindAllStringSubmatch(text, -1) {
		month, ok := ResolveMonth(m[1])
		if !ok {
			continue
		}
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func parseNumericMonthYear(text string, _ time.Time) (time.Time, bool) {
	m := numericMonthYr.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[2])
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
}

func parseYear(text string, _ time.Time) (time.Time, bool) {
	m := bareYear.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
}
