package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score one résumé against one job",
	Long: "Scores a résumé against a job description on skills, experience, education, title and keywords. " +
		"Either input may be a raw document or a JSON record written by parse-resume or parse-job.",
	RunE: runMatch,
}

var (
	matchResume  string
	matchJob     string
	matchOutput  string
	matchVerbose bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to résumé file or parsed résumé JSON (required)")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job file or parsed job JSON (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a readable breakdown of the match")

	if err := matchCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	engine, err := a.engine()
	if err != nil {
		return err
	}

	loader := a.loader(1)
	resume, err := loader.LoadResume(matchResume)
	if err != nil {
		return err
	}
	job, err := loader.LoadJob(matchJob)
	if err != nil {
		return err
	}

	result, err := engine.Score(resume, job)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), matchOutput, schemas.MatchResult, result); err != nil {
		return err
	}
	if matchVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintMatch(result)
	}
	if matchOutput != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Overall score %.3f, saved to %s\n", result.Score, matchOutput)
	}
	return nil
}
