package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a corpus of jobs for a résumé, or of résumés for a job",
	Long: "Ranks every job in a directory or job sheet (.xlsx, .csv) against one résumé, " +
		"or every résumé in a directory against one job. Results are ordered by descending score " +
		"and documents that cannot be parsed are skipped.",
	RunE: runRank,
}

var (
	rankResume  string
	rankJobs    string
	rankJob     string
	rankResumes string
	rankOutput  string
	rankTop     int
	rankWorkers int
	rankVerbose bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankResume, "resume", "r", "", "Résumé to rank jobs for (use with --jobs)")
	rankCmd.Flags().StringVar(&rankJobs, "jobs", "", "Directory, job sheet or file of jobs")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Job to rank résumés for (use with --resumes)")
	rankCmd.Flags().StringVar(&rankResumes, "resumes", "", "Directory or file of résumés")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankCmd.Flags().IntVarP(&rankTop, "top", "n", 0, "Keep only the N best matches (default: rank.top from config, 0 keeps all)")
	rankCmd.Flags().IntVarP(&rankWorkers, "workers", "w", 0, "Parallel workers (default: rank.workers from config)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print the top matches")

	rankCmd.MarkFlagsRequiredTogether("resume", "jobs")
	rankCmd.MarkFlagsRequiredTogether("job", "resumes")
	rankCmd.MarkFlagsMutuallyExclusive("resume", "job")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	if rankResume == "" && rankJob == "" {
		return errors.New("either --resume with --jobs or --job with --resumes is required")
	}

	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	engine, err := a.engine()
	if err != nil {
		return err
	}

	workers := rankWorkers
	if workers <= 0 {
		workers = a.cfg.Rank.Workers
	}
	top := rankTop
	if !cmd.Flags().Changed("top") {
		top = a.cfg.Rank.Top
	}

	ctx := cmd.Context()
	loader := a.loader(workers)
	report := &types.RankingReport{RunID: uuid.NewString()}

	if rankResume != "" {
		resume, err := loader.LoadResume(rankResume)
		if err != nil {
			return err
		}
		if resume.Failed() {
			return fmt.Errorf("résumé %s could not be parsed: %s", rankResume, resume.Error)
		}
		jobs, err := loader.LoadJobs(ctx, rankJobs)
		if err != nil {
			return err
		}
		report.Subject = rankResume
		report.Ranked, err = ranking.RankJobs(ctx, engine, resume, jobs, workers)
		if err != nil {
			return err
		}
	} else {
		job, err := loader.LoadJob(rankJob)
		if err != nil {
			return err
		}
		if job.Failed() {
			return fmt.Errorf("job %s could not be parsed: %s", rankJob, job.Error)
		}
		resumes, err := loader.LoadResumes(ctx, rankResumes)
		if err != nil {
			return err
		}
		report.Subject = rankJob
		report.Ranked, err = ranking.RankResumes(ctx, engine, job, resumes, workers)
		if err != nil {
			return err
		}
	}
	report.Ranked = ranking.Top(report.Ranked, top)

	a.logger.Info("ranking complete",
		slog.String("run_id", report.RunID),
		slog.String("subject", report.Subject),
		slog.Int("ranked", len(report.Ranked)))

	if err := writeOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), rankOutput, schemas.RankingReport, report); err != nil {
		return err
	}
	if rankVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRanking(report)
	}
	return nil
}
