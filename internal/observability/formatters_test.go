package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	start := types.NewDate(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
	end := types.NewDate(time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC))
	resume := &types.ParsedResume{ParsedDocument: types.ParsedDocument{
		Skills:               []string{"docker", "go", "python", "sql", "aws", "rust"},
		EducationLevel:       3,
		TotalYearsExperience: 2.9,
		Experience: []types.ExperienceEntry{
			{JobTitle: types.StringPtr("Software Engineer"), Company: types.StringPtr("Acme Corp"), StartDate: &start, EndDate: &end},
			{Company: types.StringPtr("Initech")},
		},
		ContactInfo: &types.ContactInfo{Emails: []string{"jane@example.com"}},
	}}

	p.PrintResume(resume)
	output := buf.String()

	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "2.9 years")
	assert.Contains(t, output, "bachelor's")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "• Software Engineer @ Acme Corp ")
	assert.Contains(t, output, "    2019-01-01 → 2021-12-01 ")
	assert.NotContains(t, output, "... │")
	assert.Contains(t, output, "- @ Initech")
	assert.Contains(t, output, "... and 1 more")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "fits", in: "Acme Corp", n: 20, want: "Acme Corp"},
		{name: "exact", in: "abcdef", n: 6, want: "abcdef"},
		{name: "cut", in: "abcdefgh", n: 6, want: "abc..."},
		{name: "multibyte", in: "2019 → 2021 → 2022", n: 10, want: "2019 → ..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), tt.n)
		})
	}
}

func TestPrintResume_Failed(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(&types.ParsedResume{ParsedDocument: types.ParsedDocument{Error: "NLP resource unavailable"}})
	assert.Contains(t, buf.String(), "Error: NLP resource unavailable")
}

func TestPrintJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.ParsedJob{
		ParsedDocument:          types.ParsedDocument{Skills: []string{"go", "sql"}},
		JobTitle:                types.StringPtr("Backend Engineer"),
		CompanyName:             types.StringPtr("Initech"),
		MinimumYearsExperience:  types.IntPtr(3),
		RequiredEducationLevel:  types.IntPtr(4),
		PreferredQualifications: []string{"Kafka"},
	}

	p.PrintJob(job)
	output := buf.String()

	assert.Contains(t, output, "PARSED JOB")
	assert.Contains(t, output, "Initech")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Location: -")
	assert.Contains(t, output, "3+ years")
	assert.Contains(t, output, "master's")
	assert.Contains(t, output, "Kafka")
}

func TestPrintNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil)
	p.PrintJob(nil)
	p.PrintMatch(nil)
	p.PrintRanking(nil)
	p.PrintRanking(&types.RankingReport{})

	assert.Empty(t, buf.String())
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	res := &types.MatchResult{
		Score:        0.6125,
		SkillDetails: types.SkillDetails{Score: 0.5},
		Weights:      types.FactorWeights{Skills: 0.35, Experience: 0.15, Education: 0.05, Title: 0.15, Keyword: 0.3},
		Notes:        []string{"Missing skills: cloud, java"},
	}
	p.PrintMatch(res)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "Overall:    0.61")
	assert.Contains(t, output, "Skills:     0.50  (weight 0.35)")
	assert.Contains(t, output, "• Missing skills: cloud, java")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.RankingReport{RunID: "r", Subject: "resume.txt"}
	for i := 1; i <= 7; i++ {
		report.Ranked = append(report.Ranked, types.RankedMatch{
			Rank:   i,
			Source: "jobs/job.txt",
			Result: types.MatchResult{Score: 1 / float64(i), SkillDetails: types.SkillDetails{MatchingSkills: []string{"go"}}},
		})
	}
	report.Ranked[0].Title = "Backend Engineer"

	p.PrintRanking(report)
	output := buf.String()

	assert.Contains(t, output, "TOP MATCHES")
	assert.Contains(t, output, "Total ranked: 7")
	assert.Contains(t, output, "#1  Backend Engineer")
	assert.Contains(t, output, "#2  jobs/job.txt")
	assert.Contains(t, output, "Skills: go")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "#6")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn", "json")
	logger.Info("hidden")
	logger.Warn("shown", slog.String("path", "a.txt"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "a.txt", entry["path"])

	buf.Reset()
	NewLogger(&buf, "debug", "text").Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}
