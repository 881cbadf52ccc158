// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// PrintResume outputs a human-readable summary of a parsed résumé.
func (p *Printer) PrintResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}
	if resume.Failed() {
		p.printBox("PARSED RESUME", "Error: "+resume.Error)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience: %.1f years\n", resume.TotalYearsExperience))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", lexicon.LevelName(resume.EducationLevel)))
	if resume.ContactInfo != nil && len(resume.ContactInfo.Emails) > 0 {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", resume.ContactInfo.Emails[0]))
	}
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString("Roles:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s @ %s\n", orDash(e.JobTitle), orDash(e.Company)))
			if e.HasDateRange() {
				sb.WriteString(fmt.Sprintf("    %s → %s\n", e.StartDate, e.EndDate))
			}
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Skills", resume.Skills, maxItemsToShow)

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJob outputs a human-readable summary of a parsed job description.
func (p *Printer) PrintJob(job *types.ParsedJob) {
	if job == nil {
		return
	}
	if job.Failed() {
		p.printBox("PARSED JOB", "Error: "+job.Error)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", orDash(job.CompanyName)))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", orDash(job.JobTitle)))
	sb.WriteString(fmt.Sprintf("Location: %s\n", orDash(job.Location)))
	if job.MinimumYearsExperience != nil {
		sb.WriteString(fmt.Sprintf("Requires: %d+ years\n", *job.MinimumYearsExperience))
	}
	if job.RequiredEducationLevel != nil {
		sb.WriteString(fmt.Sprintf("Degree:   %s\n", lexicon.LevelName(*job.RequiredEducationLevel)))
	}
	sb.WriteString("\n")

	writeList(&sb, "Skills", job.Skills, maxItemsToShow)
	writeList(&sb, "Nice-to-haves", job.PreferredQualifications, 3)

	p.printBox("PARSED JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the factor breakdown of a match result.
func (p *Printer) PrintMatch(res *types.MatchResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:    %.2f\n\n", res.Score))
	factors := []struct {
		name   string
		score  float64
		weight float64
	}{
		{"Skills", res.SkillDetails.Score, res.Weights.Skills},
		{"Experience", res.ExperienceDetails.Score, res.Weights.Experience},
		{"Education", res.EducationDetails.Score, res.Weights.Education},
		{"Title", res.TitleDetails.Score, res.Weights.Title},
		{"Keywords", res.KeywordDetails.Score, res.Weights.Keyword},
	}
	for _, f := range factors {
		sb.WriteString(fmt.Sprintf("%-11s %.2f  (weight %.2f)\n", f.name+":", f.score, f.weight))
	}

	if len(res.Notes) > 0 {
		sb.WriteString("\n")
		for _, note := range res.Notes {
			sb.WriteString(fmt.Sprintf("• %s\n", note))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top N ranked matches with scores and matched skills.
func (p *Printer) PrintRanking(report *types.RankingReport) {
	if report == nil || len(report.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total ranked: %d\n\n", len(report.Ranked)))

	count := min(len(report.Ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := report.Ranked[i]
		name := m.Title
		if name == "" {
			name = m.Source
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", m.Rank, name))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", m.Result.Score))
		if skills := m.Result.SkillDetails.MatchingSkills; len(skills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", truncate(strings.Join(skills, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(report.Ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(report.Ranked)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}
