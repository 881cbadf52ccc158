// Package main provides the entry point for the resume matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Parse résumés and job descriptions and score how well they match",
	Long: "resume_matcher extracts skills, education, experience and contact details from résumés and job postings, " +
		"then scores each résumé/job pair on five weighted factors: skills, experience, education, title and keywords.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (JSON, YAML or TOML); MATCHER_* env vars override it")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
