package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

Summary
Backend engineer focused on distributed systems.
Skills
Python, SQL, Go, Docker, machine learning
Experience
Backend Engineer | Acme Corp
Jan 2015 - Dec 2021
- Built services in Go
Education
B.S. in Computer Science, Springfield University, May 2014
`

const sampleJob = `Job Title:
Backend Engineer
Company: Initech
Location: Austin, TX
Responsibilities
- Design APIs
Qualifications
- 3+ years of experience with Go
- Python and SQL
Education
Bachelor's degree in Computer Science
`

const weakJob = `Job Title:
Pastry Chef
Company: Le Bakery
Qualifications
- 10+ years of experience baking bread
Education
Master's degree in Culinary Arts
`

// execute runs the root command in-process with fresh flag state.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
