// Package parsing assembles parsed résumé and job-description records from
// cleaned text, using a Kit built once per process.
package parsing

import (
	"log/slog"
	"time"

	"github.com/jonathan/resume-matcher/internal/dates"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/segment"
)

// Options selects the vocabularies a Kit is built from. Nil fields fall back
// to the embedded defaults.
type Options struct {
	Skills          *lexicon.SkillLexicon
	ResumeHeaders   []lexicon.SectionHeader
	JobHeaders      []lexicon.SectionHeader
	EducationLevels *lexicon.EducationLevels
	ResolveOverlaps bool
	Logger          *slog.Logger
	// Now overrides the clock used for "Present" dates.
	Now func() time.Time
}

// Kit bundles the annotator and the read-only tables every extractor needs.
// It is safe for concurrent use once built.
type Kit struct {
	Annotator      nlp.Annotator
	Skills         *extract.SkillMatcher
	ResumeSections *segment.Segmenter
	JobSections    *segment.Segmenter
	Levels         *lexicon.EducationLevels
	Education      *extract.EducationExtractor
	Experience     *extract.ExperienceExtractor
	Dates          *dates.Parser
	Logger         *slog.Logger
}

// NewKit builds a Kit. A nil annotator is allowed: every document parsed with
// the resulting kit carries ErrAnnotatorUnavailable.
func NewKit(annotator nlp.Annotator, opts Options) *Kit {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	skills := opts.Skills
	if skills == nil {
		skills = lexicon.DefaultSkills()
	}
	resumeHeaders := opts.ResumeHeaders
	if resumeHeaders == nil {
		resumeHeaders = lexicon.DefaultResumeHeaders()
	}
	jobHeaders := opts.JobHeaders
	if jobHeaders == nil {
		jobHeaders = lexicon.DefaultJobHeaders()
	}
	levels := opts.EducationLevels
	if levels == nil {
		levels = lexicon.DefaultEducationLevels()
	}

	parser := dates.NewParser(logger)
	if opts.Now != nil {
		parser.Now = opts.Now
	}

	return &Kit{
		Annotator:      annotator,
		Skills:         extract.NewSkillMatcher(skills),
		ResumeSections: segment.NewSegmenter(resumeHeaders, logger),
		JobSections:    segment.NewSegmenter(jobHeaders, logger),
		Levels:         levels,
		Education:      extract.NewEducationExtractor(levels, parser),
		Experience:     extract.NewExperienceExtractor(parser, extract.ExperienceOptions{ResolveOverlaps: opts.ResolveOverlaps}),
		Dates:          parser,
		Logger:         logger,
	}
}

// ready logs and reports false when no annotator is configured.
func (k *Kit) ready(kind string) bool {
	if k.Annotator != nil {
		return true
	}
	k.Logger.Error("cannot parse document", slog.String("kind", kind), slog.String("error", ErrAnnotatorUnavailable.Error()))
	return false
}
