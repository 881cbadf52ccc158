package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a résumé into structured JSON",
	Long: "Parses a résumé (text, markdown, HTML, PDF or DOCX) into skills, education, experience and contact details. " +
		"The output validates against the parsed_resume schema.",
	RunE: runParseResume,
}

var (
	parseResumeInput   string
	parseResumeOutput  string
	parseResumeVerbose bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to input résumé file (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (required)")
	parseResumeCmd.Flags().BoolVarP(&parseResumeVerbose, "verbose", "v", false, "Print a summary of the parsed résumé")

	if err := parseResumeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := parseResumeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	resume, err := a.loader(1).LoadResume(parseResumeInput)
	if err != nil {
		return err
	}
	if resume.Failed() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: résumé could not be parsed: %s\n", resume.Error)
	}

	if err := writeOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), parseResumeOutput, schemas.ParsedResume, resume); err != nil {
		return err
	}

	if parseResumeVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintResume(resume)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully parsed résumé and saved to %s\n", parseResumeOutput)
	return nil
}
