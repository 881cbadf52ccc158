package ranking

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
)

func uniqueSorted(items []string) []string {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func intersect(a, b map[string]struct{}) []string {
	out := make([]string, 0)
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// computeSkillScore returns |resume ∩ job| / |job|, discounted linearly when
// the job lists fewer than threshold skills. A job without skills matches
// fully.
func computeSkillScore(resumeSkills, jobSkills []string, threshold int) types.SkillDetails {
	required := uniqueSorted(jobSkills)
	have := uniqueSorted(resumeSkills)
	matching := intersect(toSet(required), toSet(have))

	d := types.SkillDetails{
		MatchingSkills: matching,
		RequiredSkills: required,
		ResumeSkills:   have,
		MatchCount:     len(matching),
		RequiredCount:  len(required),
		Confidence:     1,
	}
	if len(required) == 0 {
		d.RawScore, d.Score = 1, 1
		return d
	}
	d.RawScore = float64(len(matching)) / float64(len(required))
	if threshold > 0 && len(required) < threshold {
		d.Confidence = float64(len(required)) / float64(threshold)
	}
	d.Score = clamp01(d.RawScore * d.Confidence)
	return d
}

// computeExperienceScore is a step: met or absent requirements score high,
// shortfalls score zero.
func computeExperienceScore(years float64, required *int, absent float64) types.ExperienceDetails {
	d := types.ExperienceDetails{ResumeYears: years, RequiredYears: required}
	switch {
	case required == nil:
		d.Score = absent
	case years >= float64(*required):
		d.Score = 1
	default:
		d.Score = 0
	}
	return d
}

// computeEducationScore scores 1 when the résumé level meets the required
// level and 0 when it falls short or is unknown.
func computeEducationScore(level int, required *int, absent float64) types.EducationDetails {
	d := types.EducationDetails{ResumeLevel: level, RequiredLevel: required}
	switch {
	case required == nil || *required < 0:
		d.Score = absent
	case level < 0:
		d.Score = 0
	case level >= *required:
		d.Score = 1
	default:
		d.Score = 0
	}
	return d
}

// computeTitleScore takes the best similarity between the job title and any
// résumé title, by vector similarity when the annotator offers it and by
// lemma Jaccard otherwise.
func computeTitleScore(annotator nlp.Annotator, jobTitle string, resumeTitles []string, absent, threshold float64) types.TitleDetails {
	d := types.TitleDetails{
		JobTitle:       jobTitle,
		ResumeTitles:   append([]string{}, resumeTitles...),
		MatchingTitles: []string{},
		Method:         types.TitleMethodJaccard,
	}
	if jobTitle == "" {
		d.Score = absent
		d.Method = types.TitleMethodAbsent
		return d
	}

	jobLemmas := nlp.ContentLemmas(annotator.Annotate(jobTitle))
	seen := make(map[string]struct{})
	for _, title := range resumeTitles {
		sim, ok := annotator.Similarity(jobTitle, title)
		if ok {
			d.Method = types.TitleMethodVector
		} else {
			sim = nlp.Jaccard(jobLemmas, nlp.ContentLemmas(annotator.Annotate(title)))
		}
		sim = clamp01(sim)
		if sim > d.Score {
			d.Score = sim
		}
		if _, dup := seen[title]; !dup && sim >= threshold {
			seen[title] = struct{}{}
			d.MatchingTitles = append(d.MatchingTitles, title)
		}
	}
	return d
}

// computeKeywordScore is the share of job keywords the résumé also uses.
func computeKeywordScore(jobKeywords, resumeKeywords map[string]struct{}, absent float64) types.KeywordDetails {
	matching := intersect(jobKeywords, resumeKeywords)
	d := types.KeywordDetails{
		MatchingKeywords:   matching,
		MatchCount:         len(matching),
		JobKeywordCount:    len(jobKeywords),
		ResumeKeywordCount: len(resumeKeywords),
	}
	if len(jobKeywords) == 0 {
		d.Score = absent
		return d
	}
	d.Score = float64(len(matching)) / float64(len(jobKeywords))
	return d
}
