// Package ranking scores parsed résumés against parsed job descriptions and
// ranks batches of them.
package ranking

import (
	"log/slog"
	"strings"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Engine computes match results. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	annotator nlp.Annotator
	opts      Options
	generic   map[string]struct{}
	logger    *slog.Logger
}

// NewEngine validates opts and returns an engine.
func NewEngine(annotator nlp.Annotator, opts Options, logger *slog.Logger) (*Engine, error) {
	if annotator == nil {
		return nil, &ScoringError{Message: "annotator is required"}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		annotator: annotator,
		opts:      opts,
		generic:   genericSet(opts.GenericTerms),
		logger:    logger,
	}, nil
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Score computes the weighted compatibility of resume with job. Documents
// that failed to parse cannot be scored.
func (e *Engine) Score(resume *types.ParsedResume, job *types.ParsedJob) (*types.MatchResult, error) {
	if resume == nil || job == nil {
		return nil, &ScoringError{Message: "resume and job are required"}
	}
	if resume.Failed() {
		return nil, &ScoringError{Message: "resume has no structured data: " + resume.Error}
	}
	if job.Failed() {
		return nil, &ScoringError{Message: "job has no structured data: " + job.Error}
	}

	w := e.opts.Weights
	res := &types.MatchResult{
		SkillDetails:      computeSkillScore(resume.Skills, job.Skills, e.opts.SkillConfidenceThreshold),
		ExperienceDetails: computeExperienceScore(resume.TotalYearsExperience, job.MinimumYearsExperience, e.opts.ExperienceAbsentScore),
		EducationDetails:  computeEducationScore(resume.EducationLevel, job.RequiredEducationLevel, e.opts.EducationAbsentScore),
		TitleDetails: computeTitleScore(e.annotator, job.Title(), resume.ExperienceTitles(),
			e.opts.TitleAbsentScore, e.opts.TitleMatchThreshold),
		KeywordDetails: computeKeywordScore(e.keywordSet(jobKeywordText(job)), e.keywordSet(resumeKeywordText(resume)),
			e.opts.KeywordAbsentScore),
		Weights: w.record(),
	}

	res.Score = clamp01(w.Skills*res.SkillDetails.Score +
		w.Experience*res.ExperienceDetails.Score +
		w.Education*res.EducationDetails.Score +
		w.Title*res.TitleDetails.Score +
		w.Keyword*res.KeywordDetails.Score)
	res.Notes = generateNotes(res)
	return res, nil
}

func jobKeywordText(job *types.ParsedJob) string {
	parts := []string{job.Title(), job.Description}
	parts = append(parts, job.Responsibilities...)
	parts = append(parts, job.Qualifications...)
	parts = append(parts, job.PreferredQualifications...)
	parts = append(parts, job.Skills...)
	return strings.Join(parts, "\n")
}

func resumeKeywordText(resume *types.ParsedResume) string {
	parts := []string{resume.Summary}
	for _, e := range resume.Experience {
		if e.JobTitle != nil {
			parts = append(parts, *e.JobTitle)
		}
		parts = append(parts, e.Description)
	}
	parts = append(parts, resume.Skills...)
	return strings.Join(parts, "\n")
}
