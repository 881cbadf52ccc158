package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job description into structured JSON",
	Long: "Parses a job posting (text, markdown, HTML, PDF or DOCX) into title, company, responsibilities, qualifications and requirements. " +
		"The output validates against the parsed_job schema.",
	RunE: runParseJob,
}

var (
	parseJobInput   string
	parseJobOutput  string
	parseJobVerbose bool
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseJobInput, "in", "i", "", "Path to input job file (required)")
	parseJobCmd.Flags().StringVarP(&parseJobOutput, "out", "o", "", "Path to output JSON file (required)")
	parseJobCmd.Flags().BoolVarP(&parseJobVerbose, "verbose", "v", false, "Print a summary of the parsed job")

	if err := parseJobCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := parseJobCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	job, err := a.loader(1).LoadJob(parseJobInput)
	if err != nil {
		return err
	}
	if job.Failed() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: job could not be parsed: %s\n", job.Error)
	}

	if err := writeOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), parseJobOutput, schemas.ParsedJob, job); err != nil {
		return err
	}

	if parseJobVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintJob(job)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully parsed job and saved to %s\n", parseJobOutput)
	return nil
}
