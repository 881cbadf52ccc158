// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillDetails is the evidence behind the skill factor.
type SkillDetails struct {
	Score          float64  `json:"score"`
	RawScore       float64  `json:"raw_score"`
	Confidence     float64  `json:"confidence"`
	MatchingSkills []string `json:"matching_skills"`
	RequiredSkills []string `json:"required_skills"`
	ResumeSkills   []string `json:"resume_skills"`
	MatchCount     int      `json:"match_count"`
	RequiredCount  int      `json:"required_count"`
}

// ExperienceDetails is the evidence behind the experience factor.
type ExperienceDetails struct {
	Score         float64 `json:"score"`
	ResumeYears   float64 `json:"resume_years"`
	RequiredYears *int    `json:"required_years"`
}

// EducationDetails is the evidence behind the education factor.
type EducationDetails struct {
	Score         float64 `json:"score"`
	ResumeLevel   int     `json:"resume_level"`
	RequiredLevel *int    `json:"required_level"`
}

// The ways a title score can be produced.
const (
	TitleMethodVector  = "vector"
	TitleMethodJaccard = "jaccard"
	TitleMethodAbsent  = "absent"
)

// TitleDetails is the evidence behind the title factor.
type TitleDetails struct {
	Score          float64  `json:"score"`
	Method         string   `json:"method"`
	JobTitle       string   `json:"job_title"`
	ResumeTitles   []string `json:"resume_titles"`
	MatchingTitles []string `json:"matching_titles"`
}

// KeywordDetails is the evidence behind the keyword factor.
type KeywordDetails struct {
	Score              float64  `json:"score"`
	MatchingKeywords   []string `json:"matching_keywords"`
	MatchCount         int      `json:"match_count"`
	JobKeywordCount    int      `json:"job_keyword_count"`
	ResumeKeywordCount int      `json:"resume_keyword_count"`
}

// FactorWeights echoes the weight vector a result was computed with.
type FactorWeights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Title      float64 `json:"title"`
	Keyword    float64 `json:"keyword"`
}

// MatchResult is the weighted compatibility of one résumé with one job.
type MatchResult struct {
	Score             float64           `json:"score"`
	SkillDetails      SkillDetails      `json:"skill_details"`
	ExperienceDetails ExperienceDetails `json:"experience_details"`
	EducationDetails  EducationDetails  `json:"education_details"`
	TitleDetails      TitleDetails      `json:"title_details"`
	KeywordDetails    KeywordDetails    `json:"keyword_details"`
	Weights           FactorWeights     `json:"weights"`
	Notes             []string          `json:"notes,omitempty"`
}

// RankedMatch pairs a match result with the document it was scored against.
type RankedMatch struct {
	Rank   int         `json:"rank"`
	ID     string      `json:"id,omitempty"`
	Source string      `json:"source,omitempty"`
	Title  string      `json:"title,omitempty"`
	Result MatchResult `json:"result"`
}

// RankingReport is the output of a batch ranking run.
type RankingReport struct {
	RunID   string        `json:"run_id"`
	Subject string        `json:"subject"`
	Ranked  []RankedMatch `json:"ranked"`
}
