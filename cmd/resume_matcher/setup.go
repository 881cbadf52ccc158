package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/corpus"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/ranking"
)

// app holds everything a command needs, built once from configuration.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	annotator nlp.Annotator
	kit       *parsing.Kit
}

func newApp(stderr io.Writer) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := observability.NewLogger(stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	resumeHeaders, err := lexicon.LoadHeaders(cfg.Lexicon.ResumeHeadersPath, lexicon.DefaultResumeHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to load resume headers: %w", err)
	}
	jobHeaders, err := lexicon.LoadHeaders(cfg.Lexicon.JobHeadersPath, lexicon.DefaultJobHeaders())
	if err != nil {
		return nil, fmt.Errorf("failed to load job headers: %w", err)
	}
	levels, err := lexicon.LoadEducationLevels(cfg.Lexicon.EducationLevelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load education levels: %w", err)
	}

	// Without an annotator every parsed document carries an error instead
	// of failing the command.
	var annotator nlp.Annotator
	if h, err := nlp.New(nlp.Options{GazetteerPath: cfg.NLP.GazetteerPath, Vectors: cfg.NLP.Vectors}); err != nil {
		logger.Error("annotator unavailable", slog.String("error", err.Error()))
	} else {
		annotator = h
	}

	kit := parsing.NewKit(annotator, parsing.Options{
		Skills:          lexicon.LoadSkills(cfg.Lexicon.SkillsPath, logger),
		ResumeHeaders:   resumeHeaders,
		JobHeaders:      jobHeaders,
		EducationLevels: levels,
		ResolveOverlaps: cfg.Experience.ResolveOverlaps,
		Logger:          logger,
	})

	return &app{cfg: cfg, logger: logger, annotator: annotator, kit: kit}, nil
}

func (a *app) engine() (*ranking.Engine, error) {
	if a.annotator == nil {
		return nil, parsing.ErrAnnotatorUnavailable
	}
	return ranking.NewEngine(a.annotator, a.cfg.Scoring.Options(), a.logger)
}

func (a *app) loader(workers int) *corpus.Loader {
	if workers <= 0 {
		workers = a.cfg.Rank.Workers
	}
	return corpus.NewLoader(a.kit, workers, a.logger)
}
