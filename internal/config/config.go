// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-matcher/internal/ranking"
)

// EnvPrefix is the prefix of every environment override, e.g.
// MATCHER_SCORING_WEIGHTS_SKILLS.
const EnvPrefix = "MATCHER"

// Config holds all matcher configuration. Every field has a default, so an
// empty config file is valid.
type Config struct {
	Lexicon    LexiconConfig    `mapstructure:"lexicon" json:"lexicon"`
	NLP        NLPConfig        `mapstructure:"nlp" json:"nlp"`
	Experience ExperienceConfig `mapstructure:"experience" json:"experience"`
	Scoring    ScoringConfig    `mapstructure:"scoring" json:"scoring"`
	Rank       RankConfig       `mapstructure:"rank" json:"rank"`
	Log        LogConfig        `mapstructure:"log" json:"log"`
}

// LexiconConfig names optional vocabulary overrides. Empty paths use the
// embedded defaults.
type LexiconConfig struct {
	SkillsPath          string `mapstructure:"skills_path" json:"skills_path,omitempty"`
	ResumeHeadersPath   string `mapstructure:"resume_headers_path" json:"resume_headers_path,omitempty"`
	JobHeadersPath      string `mapstructure:"job_headers_path" json:"job_headers_path,omitempty"`
	EducationLevelsPath string `mapstructure:"education_levels_path" json:"education_levels_path,omitempty"`
}

// NLPConfig configures the annotator.
type NLPConfig struct {
	GazetteerPath string `mapstructure:"gazetteer_path" json:"gazetteer_path,omitempty"`
	Vectors       bool   `mapstructure:"vectors" json:"vectors"`
}

// ExperienceConfig configures experience totals.
type ExperienceConfig struct {
	ResolveOverlaps bool `mapstructure:"resolve_overlaps" json:"resolve_overlaps"`
}

// WeightsConfig holds the five factor weights.
type WeightsConfig struct {
	Skills     float64 `mapstructure:"skills" json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `mapstructure:"experience" json:"experience" validate:"gte=0,lte=1"`
	Education  float64 `mapstructure:"education" json:"education" validate:"gte=0,lte=1"`
	Title      float64 `mapstructure:"title" json:"title" validate:"gte=0,lte=1"`
	Keyword    float64 `mapstructure:"keyword" json:"keyword" validate:"gte=0,lte=1"`
}

// ScoringConfig holds matcher settings.
type ScoringConfig struct {
	Weights                  WeightsConfig `mapstructure:"weights" json:"weights"`
	SkillConfidenceThreshold int           `mapstructure:"skill_confidence_threshold" json:"skill_confidence_threshold" validate:"gte=0"`
	ExperienceAbsentScore    float64       `mapstructure:"experience_absent_score" json:"experience_absent_score" validate:"gte=0,lte=1"`
	EducationAbsentScore     float64       `mapstructure:"education_absent_score" json:"education_absent_score" validate:"gte=0,lte=1"`
	TitleAbsentScore         float64       `mapstructure:"title_absent_score" json:"title_absent_score" validate:"gte=0,lte=1"`
	KeywordAbsentScore       float64       `mapstructure:"keyword_absent_score" json:"keyword_absent_score" validate:"gte=0,lte=1"`
	TitleMatchThreshold      float64       `mapstructure:"title_match_threshold" json:"title_match_threshold" validate:"gte=0,lte=1"`
	GenericTerms             []string      `mapstructure:"generic_terms" json:"generic_terms,omitempty"`
}

// RankConfig holds batch ranking settings.
type RankConfig struct {
	Workers int `mapstructure:"workers" json:"workers" validate:"gte=1"`
	Top     int `mapstructure:"top" json:"top" validate:"gte=0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" json:"format" validate:"oneof=text json"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("lexicon.skills_path", "")
	v.SetDefault("lexicon.resume_headers_path", "")
	v.SetDefault("lexicon.job_headers_path", "")
	v.SetDefault("lexicon.education_levels_path", "")

	v.SetDefault("nlp.gazetteer_path", "")
	v.SetDefault("nlp.vectors", true)

	v.SetDefault("experience.resolve_overlaps", false)

	w := ranking.DefaultWeights()
	v.SetDefault("scoring.weights.skills", w.Skills)
	v.SetDefault("scoring.weights.experience", w.Experience)
	v.SetDefault("scoring.weights.education", w.Education)
	v.SetDefault("scoring.weights.title", w.Title)
	v.SetDefault("scoring.weights.keyword", w.Keyword)

	o := ranking.DefaultOptions()
	v.SetDefault("scoring.skill_confidence_threshold", o.SkillConfidenceThreshold)
	v.SetDefault("scoring.experience_absent_score", o.ExperienceAbsentScore)
	v.SetDefault("scoring.education_absent_score", o.EducationAbsentScore)
	v.SetDefault("scoring.title_absent_score", o.TitleAbsentScore)
	v.SetDefault("scoring.keyword_absent_score", o.KeywordAbsentScore)
	v.SetDefault("scoring.title_match_threshold", o.TitleMatchThreshold)

	v.SetDefault("rank.workers", ranking.DefaultWorkers)
	v.SetDefault("rank.top", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadConfig reads configuration from path (JSON, YAML or TOML by extension)
// and MATCHER_* environment variables. An empty path loads defaults and
// environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// Nested keys are only seen by Get when bound explicitly.
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key)
	}
	_ = v.BindEnv("scoring.generic_terms")

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, &ConfigError{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ConfigError{Message: fmt.Sprintf("failed to parse config file %s", path), Cause: err}
		}
	}

	cfg := &Config{}
	cfg.Lexicon = LexiconConfig{
		SkillsPath:          v.GetString("lexicon.skills_path"),
		ResumeHeadersPath:   v.GetString("lexicon.resume_headers_path"),
		JobHeadersPath:      v.GetString("lexicon.job_headers_path"),
		EducationLevelsPath: v.GetString("lexicon.education_levels_path"),
	}
	cfg.NLP = NLPConfig{
		GazetteerPath: v.GetString("nlp.gazetteer_path"),
		Vectors:       v.GetBool("nlp.vectors"),
	}
	cfg.Experience = ExperienceConfig{
		ResolveOverlaps: v.GetBool("experience.resolve_overlaps"),
	}
	cfg.Scoring = ScoringConfig{
		Weights: WeightsConfig{
			Skills:     v.GetFloat64("scoring.weights.skills"),
			Experience: v.GetFloat64("scoring.weights.experience"),
			Education:  v.GetFloat64("scoring.weights.education"),
			Title:      v.GetFloat64("scoring.weights.title"),
			Keyword:    v.GetFloat64("scoring.weights.keyword"),
		},
		SkillConfidenceThreshold: v.GetInt("scoring.skill_confidence_threshold"),
		ExperienceAbsentScore:    v.GetFloat64("scoring.experience_absent_score"),
		EducationAbsentScore:     v.GetFloat64("scoring.education_absent_score"),
		TitleAbsentScore:         v.GetFloat64("scoring.title_absent_score"),
		KeywordAbsentScore:       v.GetFloat64("scoring.keyword_absent_score"),
		TitleMatchThreshold:      v.GetFloat64("scoring.title_match_threshold"),
		GenericTerms:             stringList(v, "scoring.generic_terms"),
	}
	cfg.Rank = RankConfig{
		Workers: v.GetInt("rank.workers"),
		Top:     v.GetInt("rank.top"),
	}
	cfg.Log = LogConfig{
		Level:  strings.ToLower(v.GetString("log.level")),
		Format: strings.ToLower(v.GetString("log.format")),
	}

	return cfg, nil
}

// stringList reads a list key that may also arrive as a comma-separated
// environment value. An unset key yields nil.
func stringList(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks value ranges, that the weights sum to 1, and that every
// configured vocabulary file exists.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &ConfigError{Message: "invalid configuration", Cause: err}
	}
	if err := c.Scoring.Weights.weights().Validate(); err != nil {
		return &ConfigError{Message: "invalid scoring weights", Cause: err}
	}

	paths := map[string]string{
		"lexicon.skills_path":           c.Lexicon.SkillsPath,
		"lexicon.resume_headers_path":   c.Lexicon.ResumeHeadersPath,
		"lexicon.job_headers_path":      c.Lexicon.JobHeadersPath,
		"lexicon.education_levels_path": c.Lexicon.EducationLevelsPath,
		"nlp.gazetteer_path":            c.NLP.GazetteerPath,
	}
	for key, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return &ConfigError{Message: fmt.Sprintf("%s not found: %s", key, path)}
		}
	}
	return nil
}

func (w WeightsConfig) weights() ranking.Weights {
	return ranking.Weights{
		Skills:     w.Skills,
		Experience: w.Experience,
		Education:  w.Education,
		Title:      w.Title,
		Keyword:    w.Keyword,
	}
}

// Options converts the scoring section into matcher options.
func (s ScoringConfig) Options() ranking.Options {
	return ranking.Options{
		Weights:                  s.Weights.weights(),
		SkillConfidenceThreshold: s.SkillConfidenceThreshold,
		ExperienceAbsentScore:    s.ExperienceAbsentScore,
		EducationAbsentScore:     s.EducationAbsentScore,
		TitleAbsentScore:         s.TitleAbsentScore,
		KeywordAbsentScore:       s.KeywordAbsentScore,
		TitleMatchThreshold:      s.TitleMatchThreshold,
		GenericTerms:             s.GenericTerms,
	}
}
