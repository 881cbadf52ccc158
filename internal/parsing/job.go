package parsing

import (
	"log/slog"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/segment"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ParseJob extracts a structured job description from raw text. Like
// ParseResume it never fails.
func (k *Kit) ParseJob(raw string) *types.ParsedJob {
	if !k.ready("job") {
		return &types.ParsedJob{ParsedDocument: failedDocument(ErrAnnotatorUnavailable)}
	}

	job := &types.ParsedJob{ParsedDocument: emptyDocument()}
	text := segment.CleanText(raw)
	if text == "" {
		return job
	}
	job.Description = text

	seg := k.JobSections
	sections := seg.Segment(text)
	k.Logger.Debug("segmented job", slog.Any("sections", sections.Names()))

	header := sections.Get(lexicon.SectionHead)
	headerLines := segment.Lines(header)
	headerDoc := k.Annotator.Annotate(header)

	company := extract.CompanyName(headerLines, headerDoc)
	job.CompanyName = types.StringPtr(company)
	job.JobTitle = types.StringPtr(extract.JobTitle(headerLines, company))
	job.Location = types.StringPtr(extract.Location(headerDoc))
	if loc := extract.BulletList(seg, sections.Get(lexicon.SectionLocation)); len(loc) > 0 {
		job.Location = types.StringPtr(loc[0])
	}
	if company != "" {
		job.Companies = []string{company}
	}

	job.About = seg.Body(sections.Get(lexicon.SectionAbout))
	job.Responsibilities = extract.BulletList(seg, sections.Get(lexicon.SectionResponsibilities))
	job.Qualifications = extract.BulletList(seg, sections.Get(lexicon.SectionQualifications))
	job.PreferredQualifications = extract.BulletList(seg, sections.Get(lexicon.SectionPreferred))
	job.EducationRequirements = extract.BulletList(seg, sections.Get(lexicon.SectionEducation))
	job.Compensation = extract.BulletList(seg, sections.Get(lexicon.SectionCompensation))

	if sections.Has(lexicon.SectionSkills) || sections.Has(lexicon.SectionQualifications) {
		job.Skills = k.Skills.Extract(k.Annotator.Annotate(sections.Join(lexicon.SectionSkills, lexicon.SectionQualifications)))
	}

	qualifications := sections.Get(lexicon.SectionQualifications)
	job.MinimumYearsExperience = extract.MinimumYears(qualifications, sections.Get(lexicon.SectionExperience))

	education := sections.Get(lexicon.SectionEducation)
	job.EducationLevel, job.Education = k.Education.Extract(education, k.Annotator)
	requirementText := education
	if requirementText == "" {
		requirementText = qualifications
	}
	if level := k.Levels.MinLevel(requirementText); level != lexicon.LevelUnknown {
		job.RequiredEducationLevel = types.IntPtr(level)
	}

	job.ContactInfo = extract.ContactPtr(text)
	job.RawTextSnippet = snippet(text)
	return job
}
