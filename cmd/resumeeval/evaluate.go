package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gouthamGottipati/resume-relevance-system/internal/config"
	"github.com/gouthamGottipati/resume-relevance-system/internal/domain"
	"github.com/gouthamGottipati/resume-relevance-system/internal/evaluator"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	jobPath    string
	jsonOutput bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var evaluateCmd = &cobra.Command{
	Use:   "evaluate [resume-file]",
	Short: "Score a resume against a job description",
	Long: `Runs the full evaluation pipeline on a single resume document and prints
the overall score, suitability verdict, and synthesized feedback.

Examples:
  resumeeval evaluate ~/resumes/candidate.pdf --job ~/jobs/backend-role.txt
  resumeeval evaluate ~/resumes/candidate.docx --job ~/jobs/role.txt --json`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringVar(&jobPath, "job", "", "path to the job description text file (required)")
	evaluateCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full result as JSON instead of a summary")
	_ = evaluateCmd.MarkFlagRequired("job")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	resumePath := args[0]
	resumeData, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}

	jdData, err := os.ReadFile(jobPath)
	if err != nil {
		return fmt.Errorf("read job description: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	svc, err := evaluator.NewService(cfg)
	if err != nil {
		return fmt.Errorf("build evaluator: %w", err)
	}

	result, err := svc.Evaluate(ctx, resumeData, mimeFor(resumePath), string(jdData), domain.JobMetadata{})
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printSummary(result)
	return nil
}

func mimeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return domain.MimePDF
	case ".docx":
		return domain.MimeDOCX
	case ".doc":
		return domain.MimeDOC
	default:
		return domain.MimePlain
	}
}

func printSummary(result evaluator.Result) {
	fmt.Printf("Overall score: %.1f/100 (%s)\n", result.Score.OverallScore, result.Score.Suitability)
	fmt.Printf("Confidence: %s\n", result.Score.ConfidenceLevel)
	fmt.Printf("  Hard skills:  %.1f\n", result.Score.Detailed.HardSkillsScore)
	fmt.Printf("  Soft skills:  %.1f\n", result.Score.Detailed.SoftSkillsScore)
	fmt.Printf("  Experience:   %.1f\n", result.Score.Detailed.ExperienceScore)
	fmt.Printf("  Education:    %.1f\n", result.Score.Detailed.EducationScore)
	fmt.Printf("  Semantic:     %.1f\n", result.Score.Detailed.SemanticScore)

	if len(result.Match.MissingSkills) > 0 {
		fmt.Printf("Missing skills: %s\n", strings.Join(result.Match.MissingSkills, ", "))
	}
	if len(result.Feedback.Strengths) > 0 {
		fmt.Println("Strengths:")
		for _, s := range result.Feedback.Strengths {
			fmt.Printf("  - %s\n", s)
		}
	}
	if len(result.Feedback.AreasForImprovement) > 0 {
		fmt.Println("Areas for improvement:")
		for _, s := range result.Feedback.AreasForImprovement {
			fmt.Printf("  - %s\n", s)
		}
	}
}
