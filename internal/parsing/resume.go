package parsing

import (
	"log/slog"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/segment"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ParseResume extracts a structured résumé from raw text. It never fails:
// empty input yields an empty record and a missing annotator yields a record
// carrying only an error.
func (k *Kit) ParseResume(raw string) *types.ParsedResume {
	if !k.ready("resume") {
		return &types.ParsedResume{ParsedDocument: failedDocument(ErrAnnotatorUnavailable)}
	}

	res := &types.ParsedResume{ParsedDocument: emptyDocument()}
	text := segment.CleanText(raw)
	if text == "" {
		return res
	}

	sections := k.ResumeSections.Segment(text)
	k.Logger.Debug("segmented resume", slog.Any("sections", sections.Names()))

	res.Summary = extract.Summary(k.ResumeSections, sections.Get(lexicon.SectionSummary))
	if sections.Has(lexicon.SectionSkills) {
		res.Skills = k.Skills.Extract(k.Annotator.Annotate(k.ResumeSections.Body(sections.Get(lexicon.SectionSkills))))
	}

	res.EducationLevel, res.Education = k.Education.Extract(sections.Get(lexicon.SectionEducation), k.Annotator)

	exp := k.Experience.Extract(sections.Get(lexicon.SectionExperience), k.Annotator)
	res.Experience = exp.Entries
	res.TotalYearsExperience = exp.TotalYears
	res.Companies = exp.Companies

	contactText := sections.Get(lexicon.SectionHead)
	if contactText == "" {
		contactText = text
	}
	res.ContactInfo = extract.ContactPtr(contactText)

	res.RawEntities = rawEntities(k.Annotator.Annotate(text))
	res.RawTextSnippet = snippet(text)
	return res
}
