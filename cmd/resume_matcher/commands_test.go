package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestParseResumeCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "resume.txt", sampleResume)
	out := filepath.Join(dir, "resume.json")

	stdout, stderr, err := execute(t, "parse-resume", "--in", in, "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully parsed résumé")
	assert.NotContains(t, stderr, "does not validate")

	var resume types.ParsedResume
	readJSON(t, out, &resume)
	assert.False(t, resume.Failed())
	assert.Equal(t, in, resume.Source)
	assert.NotEmpty(t, resume.ID)
	assert.Contains(t, resume.Skills, "python")
	require.NotNil(t, resume.ContactInfo)
	assert.Equal(t, []string{"jane.doe@example.com"}, resume.ContactInfo.Emails)
}

func TestParseResumeCommand_Verbose(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "resume.md", sampleResume)

	stdout, _, err := execute(t, "parse-resume", "--in", in, "--out", filepath.Join(dir, "out.json"), "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PARSED RESUME")
	assert.Contains(t, stdout, "jane.doe@example.com")
}

func TestParseJobCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "job.txt", sampleJob)
	out := filepath.Join(dir, "job.json")

	_, stderr, err := execute(t, "parse-job", "--in", in, "--out", out)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "does not validate")

	var job types.ParsedJob
	readJSON(t, out, &job)
	assert.Equal(t, "Backend Engineer", job.Title())
	assert.Equal(t, []string{"go", "python", "sql"}, job.Skills)
	require.NotNil(t, job.MinimumYearsExperience)
	assert.Equal(t, 3, *job.MinimumYearsExperience)
}

func TestParseCommands_MissingFlags(t *testing.T) {
	_, _, err := execute(t, "parse-resume", "--in", "x.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out")

	_, _, err = execute(t, "parse-job", "--out", "x.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in")
}

func TestParseResumeCommand_UnsupportedInput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "resume.odt", "binary")

	_, _, err := execute(t, "parse-resume", "--in", in, "--out", filepath.Join(dir, "out.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestMatchCommand(t *testing.T) {
	dir := t.TempDir()
	resumePath := writeFile(t, dir, "resume.txt", sampleResume)
	jobPath := writeFile(t, dir, "job.txt", sampleJob)

	stdout, _, err := execute(t, "match", "--resume", resumePath, "--job", jobPath)
	require.NoError(t, err)

	var result types.MatchResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
	assert.ElementsMatch(t, []string{"go", "python", "sql"}, result.SkillDetails.MatchingSkills)
	assert.Equal(t, result.SkillDetails.RequiredCount, result.SkillDetails.MatchCount)
}

func TestMatchCommand_ParsedRecords(t *testing.T) {
	dir := t.TempDir()
	resumeJSON := filepath.Join(dir, "resume.json")
	jobJSON := filepath.Join(dir, "job.json")

	_, _, err := execute(t, "parse-resume", "--in", writeFile(t, dir, "resume.txt", sampleResume), "--out", resumeJSON)
	require.NoError(t, err)
	_, _, err = execute(t, "parse-job", "--in", writeFile(t, dir, "job.txt", sampleJob), "--out", jobJSON)
	require.NoError(t, err)

	out := filepath.Join(dir, "match.json")
	stdout, stderr, err := execute(t, "match", "--resume", resumeJSON, "--job", jobJSON, "--out", out, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "saved to "+out)
	assert.Contains(t, stderr, "MATCH")

	var result types.MatchResult
	readJSON(t, out, &result)
	assert.ElementsMatch(t, []string{"go", "python", "sql"}, result.SkillDetails.MatchingSkills)
}

func TestRankCommand_JobsForResume(t *testing.T) {
	dir := t.TempDir()
	jobsDir := filepath.Join(dir, "jobs")
	require.NoError(t, os.Mkdir(jobsDir, 0755))
	writeFile(t, jobsDir, "a_chef.txt", weakJob)
	writeFile(t, jobsDir, "b_backend.txt", sampleJob)
	resumePath := writeFile(t, dir, "resume.txt", sampleResume)
	out := filepath.Join(dir, "ranking.json")

	_, stderr, err := execute(t, "rank", "--resume", resumePath, "--jobs", jobsDir, "--out", out)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "does not validate")

	var report types.RankingReport
	readJSON(t, out, &report)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, resumePath, report.Subject)
	require.Len(t, report.Ranked, 2)
	assert.Equal(t, 1, report.Ranked[0].Rank)
	assert.Equal(t, "Backend Engineer", report.Ranked[0].Title)
	assert.Equal(t, "Pastry Chef", report.Ranked[1].Title)
	assert.GreaterOrEqual(t, report.Ranked[0].Result.Score, report.Ranked[1].Result.Score)
}

func TestRankCommand_Top(t *testing.T) {
	dir := t.TempDir()
	jobsDir := filepath.Join(dir, "jobs")
	require.NoError(t, os.Mkdir(jobsDir, 0755))
	writeFile(t, jobsDir, "a.txt", weakJob)
	writeFile(t, jobsDir, "b.txt", sampleJob)
	resumePath := writeFile(t, dir, "resume.txt", sampleResume)

	stdout, _, err := execute(t, "rank", "--resume", resumePath, "--jobs", jobsDir, "--top", "1", "--workers", "2")
	require.NoError(t, err)

	var report types.RankingReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Ranked, 1)
	assert.Equal(t, "Backend Engineer", report.Ranked[0].Title)
}

func TestRankCommand_TopFromConfig(t *testing.T) {
	dir := t.TempDir()
	jobsDir := filepath.Join(dir, "jobs")
	require.NoError(t, os.Mkdir(jobsDir, 0755))
	writeFile(t, jobsDir, "a.txt", weakJob)
	writeFile(t, jobsDir, "b.txt", sampleJob)
	resumePath := writeFile(t, dir, "resume.txt", sampleResume)
	cfg := writeFile(t, dir, "matcher.yaml", "rank:\n  top: 1\nlog:\n  level: error\n")

	stdout, _, err := execute(t, "rank", "--config", cfg, "--resume", resumePath, "--jobs", jobsDir)
	require.NoError(t, err)

	var report types.RankingReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Len(t, report.Ranked, 1)
}

func TestRankCommand_ResumesForJob(t *testing.T) {
	dir := t.TempDir()
	resumesDir := filepath.Join(dir, "resumes")
	require.NoError(t, os.Mkdir(resumesDir, 0755))
	writeFile(t, resumesDir, "jane.txt", sampleResume)
	writeFile(t, resumesDir, "sam.txt", "Skills\nWatercolor painting\n")
	jobPath := writeFile(t, dir, "job.txt", sampleJob)

	stdout, _, err := execute(t, "rank", "--job", jobPath, "--resumes", resumesDir)
	require.NoError(t, err)

	var report types.RankingReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Ranked, 2)
	assert.Equal(t, filepath.Join(resumesDir, "jane.txt"), report.Ranked[0].Source)
}

func TestRankCommand_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no subject", args: []string{"rank"}},
		{name: "resume without jobs", args: []string{"rank", "--resume", "r.txt"}},
		{name: "job without resumes", args: []string{"rank", "--job", "j.txt"}},
		{name: "both subjects", args: []string{"rank", "--resume", "r.txt", "--jobs", "d", "--job", "j.txt", "--resumes", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestCommands_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "bad.yaml", "scoring:\n  weights:\n    skills: 0.9\n    experience: 0.9\n")

	_, _, err := execute(t, "match", "--config", cfg, "--resume", "r.txt", "--job", "j.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scoring weights")

	_, _, err = execute(t, "match", "--config", filepath.Join(dir, "missing.yaml"), "--resume", "r.txt", "--job", "j.txt")
	require.Error(t, err)
}
