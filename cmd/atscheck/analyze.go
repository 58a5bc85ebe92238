package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/muhammadolammi/atsworker/internal/ats"
	"github.com/muhammadolammi/atsworker/internal/extract"
	"github.com/muhammadolammi/atsworker/internal/report"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	jobFile      string
	jobText      string
	outputFormat string
	verbose      bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze RESUME_FILE [flags]",
		Short: "Analyze a resume file",
		Long: `Analyze a resume and print its ATS score, breakdown and recommendations.

Examples:
  # Score a resume on its own
  atscheck analyze resume.pdf

  # Compare against a job description stored in a file
  atscheck analyze resume.docx --job posting.txt

  # Machine-readable output
  atscheck analyze resume.txt --job-text "Python, AWS, Docker" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.jobFile, "job", "", "Path to a job description (pdf, docx, txt)")
	cmd.Flags().StringVar(&opts.jobText, "job-text", "", "Job description text")
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	cmd.MarkFlagsMutuallyExclusive("job", "job-text")

	return cmd
}

func runAnalyze(cmd *cobra.Command, resumePath string, opts *analyzeOptions) error {
	if err := report.ValidateFormat(opts.outputFormat); err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var s *spinner.Spinner
	if opts.outputFormat == "human" {
		s = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = " Extracting resume text..."
		s.Start()
	}
	stop := func() {
		if s != nil {
			s.Stop()
		}
	}

	resumeText, err := readDocument(resumePath)
	if err != nil {
		stop()
		return err
	}
	logger.Debug("resume extracted", slog.String("path", resumePath), slog.Int("chars", len([]rune(resumeText))))

	jobText := opts.jobText
	if opts.jobFile != "" {
		if s != nil {
			s.Suffix = " Extracting job description..."
		}
		jobText, err = readDocument(opts.jobFile)
		if err != nil {
			stop()
			return err
		}
		logger.Debug("job description extracted", slog.String("path", opts.jobFile))
	}
	stop()

	result, err := ats.Analyze(resumeText, jobText)
	if errors.Is(err, ats.ErrEmptyInput) {
		return fmt.Errorf("%s contains no extractable text", resumePath)
	}
	if err != nil {
		return err
	}

	if opts.outputFormat == "human" {
		color.New(color.FgCyan, color.Bold).Fprintf(cmd.OutOrStdout(), "🔍 %s\n", resumePath)
	}
	return report.Display(cmd.OutOrStdout(), result, opts.outputFormat)
}

func readDocument(path string) (string, error) {
	extractor, err := extract.ForFilename(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text, err := extractor.Extract(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", path, err)
	}
	return text, nil
}

func newTaxonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "List the skills atscheck recognizes",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			var current ats.Category
			for _, s := range ats.Taxonomy() {
				if s.Category != current {
					current = s.Category
					color.New(color.Bold).Fprintf(out, "%s skills:\n", current)
				}
				fmt.Fprintf(out, "   %s\n", s.Term)
			}
		},
	}
}
