package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func sampleResume() *types.ParsedResume {
	start := types.NewDate(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
	end := types.NewDate(time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC))
	return &types.ParsedResume{
		ParsedDocument: types.ParsedDocument{
			Skills:         []string{"go", "sql"},
			EducationLevel: 3,
			Education: []types.EducationEntry{
				{DegreeMention: types.StringPtr("BS in Computer Science"), Text: "BS in Computer Science, 2018"},
			},
			Experience: []types.ExperienceEntry{
				{JobTitle: types.StringPtr("Engineer"), Company: types.StringPtr("Acme"), StartDate: &start, EndDate: &end},
			},
			TotalYearsExperience: 2.9,
			Companies:            []string{"Acme"},
			ContactInfo:          &types.ContactInfo{Emails: []string{"a@b.io"}},
		},
		RawEntities: map[string][]string{"ORG": {"Acme"}},
	}
}

func sampleMatch() *types.MatchResult {
	return &types.MatchResult{
		Score: 0.72,
		SkillDetails: types.SkillDetails{
			Score: 0.5, RawScore: 0.5, Confidence: 1,
			MatchingSkills: []string{"go"}, RequiredSkills: []string{"go", "java"}, ResumeSkills: []string{"go"},
			MatchCount: 1, RequiredCount: 2,
		},
		ExperienceDetails: types.ExperienceDetails{Score: 1, ResumeYears: 4, RequiredYears: types.IntPtr(3)},
		EducationDetails:  types.EducationDetails{Score: 1, ResumeLevel: -1},
		TitleDetails: types.TitleDetails{
			Score: 0.5, Method: types.TitleMethodAbsent, ResumeTitles: []string{}, MatchingTitles: []string{},
		},
		KeywordDetails: types.KeywordDetails{Score: 0.4, MatchingKeywords: []string{"api"}, MatchCount: 1},
		Weights:        types.FactorWeights{Skills: 0.35, Experience: 0.15, Education: 0.05, Title: 0.15, Keyword: 0.3},
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{MatchResult, ParsedJob, ParsedResume, RankingReport}, Names())
	for _, name := range Names() {
		src, err := Schema(name)
		require.NoError(t, err)
		var v map[string]any
		assert.NoError(t, json.Unmarshal([]byte(src), &v), name)
	}
}

func TestSchema_Unknown(t *testing.T) {
	_, err := Schema("nope")
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "unknown schema")
}

func TestValidateValue_Records(t *testing.T) {
	job := &types.ParsedJob{
		ParsedDocument:         types.ParsedDocument{Skills: []string{"go"}, EducationLevel: -1, Education: []types.EducationEntry{}, Experience: []types.ExperienceEntry{}, Companies: []string{}},
		JobTitle:               types.StringPtr("Backend Engineer"),
		MinimumYearsExperience: types.IntPtr(3),
		Responsibilities:       []string{"Build APIs"},
	}
	report := &types.RankingReport{
		RunID:   uuid.NewString(),
		Subject: "resume.txt",
		Ranked:  []types.RankedMatch{{Rank: 1, ID: "job-1", Result: *sampleMatch()}},
	}

	tests := []struct {
		name   string
		schema string
		value  any
	}{
		{name: "resume", schema: ParsedResume, value: sampleResume()},
		{name: "failed resume", schema: ParsedResume, value: &types.ParsedResume{ParsedDocument: types.ParsedDocument{Error: "NLP resource unavailable"}}},
		{name: "job", schema: ParsedJob, value: job},
		{name: "match", schema: MatchResult, value: sampleMatch()},
		{name: "report", schema: RankingReport, value: report},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateValue(tt.schema, tt.value))
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		doc    string
	}{
		{name: "resume missing skills", schema: ParsedResume, doc: `{"education_level": 0, "total_years_experience": 1, "education": [], "experience": [], "companies": []}`},
		{name: "education level out of range", schema: ParsedResume, doc: `{"skills": [], "education": [], "education_level": 9, "experience": [], "total_years_experience": 0, "companies": []}`},
		{name: "bad date", schema: ParsedResume, doc: `{"skills": [], "education": [], "education_level": 0, "total_years_experience": 0, "companies": [],
			"experience": [{"job_title": null, "company": null, "start_date": "Jan 2020", "end_date": null, "description": ""}]}`},
		{name: "score above one", schema: MatchResult, doc: `{"score": 1.5}`},
		{name: "report without run id", schema: RankingReport, doc: `{"subject": "x", "ranked": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.schema, []byte(tt.doc))
			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidate_MatchScoreField(t *testing.T) {
	m := sampleMatch()
	m.SkillDetails.Score = 2
	err := ValidateValue(MatchResult, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skill_details.score")
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "match.json")
	data, err := json.MarshalIndent(sampleMatch(), "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(good, data, 0644))
	assert.NoError(t, ValidateFile(MatchResult, good))

	err = ValidateFile(MatchResult, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{ invalid json }"), 0644))
	assert.Error(t, ValidateFile(MatchResult, malformed))
}

func TestValidateJSONString(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["person"],
		"properties": {
			"person": {
				"type": "object",
				"required": ["name"],
				"properties": {"name": {"type": "string"}}
			}
		}
	}`

	assert.NoError(t, ValidateJSONString(schemaContent, `{"person": {"name": "test"}}`))

	err := ValidateJSONString(schemaContent, `{"person": {}}`)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Errors[0].Field, "person")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}
