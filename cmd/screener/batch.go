package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/scoring"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score every resume in a directory against one job posting",
	Long:  "Score all supported resume files (.pdf, .txt) found in a directory against a single job posting, and print the candidates ranked by score.",
	RunE:  runBatch,
}

var (
	batchDir         string
	batchJobPath     string
	batchJobURL      string
	batchTaxonomy    string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "resume-dir", "d", "", "Directory containing resume files (required)")
	batchCmd.Flags().StringVarP(&batchJobPath, "job", "j", "", "Path to job posting text file")
	batchCmd.Flags().StringVarP(&batchJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	batchCmd.Flags().StringVar(&batchTaxonomy, "taxonomy", "", "Path to skill taxonomy JSON file")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of resumes scored in parallel")

	batchCmd.MarkFlagRequired("resume-dir")

	rootCmd.AddCommand(batchCmd)
}

// batchEntry is one ranked row in the batch report.
type batchEntry struct {
	outcome *screenOutcome
	err     error
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchJobPath == "" && batchJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if batchJobPath != "" && batchJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	resumes, err := collectResumes(batchDir)
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		return fmt.Errorf("no supported resume files (.pdf, .txt) found in %s", batchDir)
	}

	cfg := config.Config{
		Job:            batchJobPath,
		JobURL:         batchJobURL,
		Taxonomy:       batchTaxonomy,
		SkillThreshold: 1,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(false, false)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	jobText, _, err := loadJobText(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	index := nlp.NewTaxonomyIndex(nlp.LoadTaxonomy(cfg.Taxonomy, log))
	matcher := scoring.NewMatcher()

	entries := make([]batchEntry, len(resumes))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(batchConcurrency)
	for i, path := range resumes {
		g.Go(func() error {
			outcome, err := screenOne(ctx, matcher, index, path, jobText, cfg.SkillThreshold, nil)
			entries[i] = batchEntry{outcome: outcome, err: err}
			if err != nil {
				log.Warn("skipping resume",
					zap.String("path", path), zap.Error(err))
			}
			// Failures are reported per-file, not fatal for the batch.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printBatchReport(entries)
	return nil
}

// collectResumes lists the supported resume files directly under dir.
func collectResumes(dir string) ([]string, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	supported := make(map[string]bool)
	for _, ext := range ingestion.SupportedExtensions {
		supported[ext] = true
	}

	var paths []string
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		if supported[strings.ToLower(filepath.Ext(item.Name()))] {
			paths = append(paths, filepath.Join(dir, item.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func printBatchReport(entries []batchEntry) {
	scored := make([]batchEntry, 0, len(entries))
	failed := 0
	for _, e := range entries {
		if e.err != nil {
			failed++
			continue
		}
		scored = append(scored, e)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].outcome.Result.FinalScore > scored[j].outcome.Result.FinalScore
	})

	fmt.Printf("Scored %d resume(s)", len(scored))
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Println()
	fmt.Println()

	for rank, e := range scored {
		name := e.outcome.Contact.Name
		if name == "" {
			name = filepath.Base(e.outcome.ResumePath)
		}
		fmt.Printf("%2d. %-30s %6.2f  %s\n",
			rank+1, name, e.outcome.Result.FinalScore, e.outcome.Result.Rating)
	}
}
