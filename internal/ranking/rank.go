package ranking

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultWorkers is the batch parallelism used when none is given.
const DefaultWorkers = 4

// RankJobs scores one résumé against every job and returns the results by
// descending score, ties in input order. Jobs that cannot be scored are
// skipped with a warning.
func RankJobs(ctx context.Context, engine *Engine, resume *types.ParsedResume, jobs []*types.ParsedJob, workers int) ([]types.RankedMatch, error) {
	return engine.rank(ctx, len(jobs), workers, func(i int) (*types.RankedMatch, error) {
		job := jobs[i]
		res, err := engine.Score(resume, job)
		if err != nil {
			return nil, err
		}
		return &types.RankedMatch{ID: job.ID, Source: job.Source, Title: job.Title(), Result: *res}, nil
	})
}

// RankResumes scores every résumé against one job. Ordering and skipping
// follow RankJobs.
func RankResumes(ctx context.Context, engine *Engine, job *types.ParsedJob, resumes []*types.ParsedResume, workers int) ([]types.RankedMatch, error) {
	return engine.rank(ctx, len(resumes), workers, func(i int) (*types.RankedMatch, error) {
		resume := resumes[i]
		res, err := engine.Score(resume, job)
		if err != nil {
			return nil, err
		}
		title := ""
		if titles := resume.ExperienceTitles(); len(titles) > 0 {
			title = titles[0]
		}
		return &types.RankedMatch{ID: resume.ID, Source: resume.Source, Title: title, Result: *res}, nil
	})
}

func (e *Engine) rank(ctx context.Context, n, workers int, score func(i int) (*types.RankedMatch, error)) ([]types.RankedMatch, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	results := make([]*types.RankedMatch, n)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			m, err := score(i)
			if err != nil {
				e.logger.Warn("skipping unscorable pair", slog.Int("index", i), slog.String("error", err.Error()))
				return nil
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := make([]types.RankedMatch, 0, n)
	for _, m := range results {
		if m != nil {
			ranked = append(ranked, *m)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Score > ranked[j].Result.Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	e.logger.Debug("ranked batch", slog.Int("candidates", n), slog.Int("ranked", len(ranked)))
	return ranked, nil
}

// Top returns at most n leading entries; n <= 0 keeps all.
func Top(ranked []types.RankedMatch, n int) []types.RankedMatch {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
