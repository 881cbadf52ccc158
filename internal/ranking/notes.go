package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/types"
)

const maxListedSkills = 5

// generateNotes creates short explanations of the factors that held the score back.
func generateNotes(res *types.MatchResult) []string {
	var notes []string

	skills := res.SkillDetails
	switch {
	case skills.RequiredCount == 0:
		notes = append(notes, "Job lists no skills")
	case skills.RawScore >= 0.7:
		notes = append(notes, fmt.Sprintf("Strong skill match (%s)", listSkills(skills.MatchingSkills)))
	case skills.RawScore >= 0.4:
		notes = append(notes, fmt.Sprintf("Moderate skill match (%s)", listSkills(skills.MatchingSkills)))
	case skills.RawScore > 0:
		notes = append(notes, fmt.Sprintf("Weak skill match (%s)", listSkills(skills.MatchingSkills)))
	default:
		notes = append(notes, "No skill matches")
	}
	if missing := missingSkills(skills); len(missing) > 0 {
		notes = append(notes, fmt.Sprintf("Missing skills: %s", listSkills(missing)))
	}
	if skills.Confidence < 1 {
		notes = append(notes, fmt.Sprintf("Only %d skills listed (confidence %.0f%%)", skills.RequiredCount, skills.Confidence*100))
	}

	exp := res.ExperienceDetails
	if exp.RequiredYears != nil && exp.Score == 0 {
		notes = append(notes, fmt.Sprintf("Requires %d+ years of experience, found %.1f", *exp.RequiredYears, exp.ResumeYears))
	}

	edu := res.EducationDetails
	if edu.RequiredLevel != nil && *edu.RequiredLevel >= 0 && edu.Score == 0 {
		notes = append(notes, fmt.Sprintf("Requires %s education, found %s",
			lexicon.LevelName(*edu.RequiredLevel), lexicon.LevelName(edu.ResumeLevel)))
	}

	title := res.TitleDetails
	if title.Method != types.TitleMethodAbsent && len(title.MatchingTitles) == 0 {
		notes = append(notes, fmt.Sprintf("No past title close to %q", title.JobTitle))
	}

	kw := res.KeywordDetails
	if kw.JobKeywordCount > 0 {
		if kw.Score >= 0.5 {
			notes = append(notes, "Good keyword overlap")
		} else if kw.Score > 0 {
			notes = append(notes, "Some keyword overlap")
		}
	}

	return notes
}

func missingSkills(d types.SkillDetails) []string {
	have := toSet(d.MatchingSkills)
	var missing []string
	for _, s := range d.RequiredSkills {
		if _, ok := have[s]; !ok {
			missing = append(missing, s)
		}
	}
	return missing
}

func listSkills(skills []string) string {
	if len(skills) <= maxListedSkills {
		return strings.Join(skills, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(skills[:maxListedSkills], ", "), len(skills)-maxListedSkills)
}
