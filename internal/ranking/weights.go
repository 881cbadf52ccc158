package ranking

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/types"
)

const weightTolerance = 1e-6

// Weights is the contribution of each factor to the final score. The five
// weights must sum to 1.
type Weights struct {
	Skills     float64 `json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `json:"experience" validate:"gte=0,lte=1"`
	Education  float64 `json:"education" validate:"gte=0,lte=1"`
	Title      float64 `json:"title" validate:"gte=0,lte=1"`
	Keyword    float64 `json:"keyword" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the reference five-factor weighting.
func DefaultWeights() Weights {
	return Weights{Skills: 0.35, Experience: 0.15, Education: 0.05, Title: 0.15, Keyword: 0.30}
}

// FourFactorWeights is the older weighting that leaned on experience and
// education more heavily.
func FourFactorWeights() Weights {
	return Weights{Skills: 0.3, Experience: 0.2, Education: 0.1, Title: 0.1, Keyword: 0.3}
}

// Sum returns the total of the five weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.Title + w.Keyword
}

// Validate checks each weight is in [0,1] and that they sum to 1.
func (w Weights) Validate() error {
	if err := validator.New().Struct(w); err != nil {
		return &ScoringError{Message: "invalid weights", Cause: err}
	}
	if sum := w.Sum(); math.Abs(sum-1) > weightTolerance {
		return &ScoringError{Message: fmt.Sprintf("weights must sum to 1.0, got %.6f", sum)}
	}
	return nil
}

func (w Weights) record() types.FactorWeights {
	return types.FactorWeights{
		Skills:     w.Skills,
		Experience: w.Experience,
		Education:  w.Education,
		Title:      w.Title,
		Keyword:    w.Keyword,
	}
}

// Options tunes the matcher.
type Options struct {
	Weights Weights `json:"weights"`
	// SkillConfidenceThreshold is the job skill count below which the skill
	// score is discounted linearly. Zero disables the discount.
	SkillConfidenceThreshold int `json:"skill_confidence_threshold" validate:"gte=0"`
	// Scores used when the job states no requirement for the factor.
	ExperienceAbsentScore float64 `json:"experience_absent_score" validate:"gte=0,lte=1"`
	EducationAbsentScore  float64 `json:"education_absent_score" validate:"gte=0,lte=1"`
	TitleAbsentScore      float64 `json:"title_absent_score" validate:"gte=0,lte=1"`
	KeywordAbsentScore    float64 `json:"keyword_absent_score" validate:"gte=0,lte=1"`
	// TitleMatchThreshold is the similarity at which a résumé title is
	// reported as matching.
	TitleMatchThreshold float64 `json:"title_match_threshold" validate:"gte=0,lte=1"`
	// GenericTerms are dropped from both keyword sets. Nil means the
	// built-in list.
	GenericTerms []string `json:"generic_terms,omitempty"`
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		Weights:                  DefaultWeights(),
		SkillConfidenceThreshold: 4,
		ExperienceAbsentScore:    1.0,
		EducationAbsentScore:     1.0,
		TitleAbsentScore:         0.5,
		KeywordAbsentScore:       0.5,
		TitleMatchThreshold:      0.5,
	}
}

// Validate checks ranges and weights.
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return &ScoringError{Message: "invalid scoring options", Cause: err}
	}
	return o.Weights.Validate()
}
