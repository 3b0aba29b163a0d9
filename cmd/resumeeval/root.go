// Command resumeeval runs the resume/job evaluation pipeline from the
// command line, for local testing and ad-hoc scoring outside the service
// layer.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "resumeeval",
	Short: "Evaluate a resume against a job description",
	Long: `resumeeval runs the seven-stage evaluation pipeline (extract, structure,
match, score, synthesize feedback) over a resume document and a job
description, and prints the resulting score and feedback.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}
