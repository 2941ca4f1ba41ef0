package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/fetch"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Score a resume against a job posting",
	Long:  "Score a single resume (.pdf or .txt) against a job posting from a text file or URL, and print the compatibility score, rating, and feedback.",
	RunE:  runScreen,
}

var (
	resumePath       string
	jobPath          string
	jobURL           string
	taxonomyPath     string
	configPath       string
	similarityWeight float64
	skillsWeight     float64
	skillThreshold   int
	saveResult       bool
	jsonOutput       bool
	verbose          bool
)

func init() {
	screenCmd.Flags().StringVarP(&resumePath, "resume", "r", "", "Path to resume file (.pdf or .txt)")
	screenCmd.Flags().StringVarP(&jobPath, "job", "j", "", "Path to job posting text file")
	screenCmd.Flags().StringVarP(&jobURL, "job-url", "u", "", "URL to fetch the job posting from")
	screenCmd.Flags().StringVar(&taxonomyPath, "taxonomy", "", "Path to skill taxonomy JSON file (built-in taxonomy when omitted)")
	screenCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	screenCmd.Flags().Float64Var(&similarityWeight, "similarity-weight", 0, "Weight for lexical similarity (default 0.5)")
	screenCmd.Flags().Float64Var(&skillsWeight, "skills-weight", 0, "Weight for skill overlap (default 0.5)")
	screenCmd.Flags().IntVar(&skillThreshold, "threshold", 1, "Minimum occurrences for a skill to count")
	screenCmd.Flags().BoolVar(&saveResult, "save", false, "Save the screening to the database (requires DATABASE_URL)")
	screenCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON instead of formatted text")
	screenCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the per-category skill breakdown")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:           resumePath,
		Job:              jobPath,
		JobURL:           jobURL,
		Taxonomy:         taxonomyPath,
		SimilarityWeight: similarityWeight,
		SkillsWeight:     skillsWeight,
		SkillThreshold:   skillThreshold,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		Verbose:          verbose,
	}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := zap.NewNop()
	if cfg.Verbose {
		var err error
		if log, err = logger.New(false, false); err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
	}

	index := nlp.NewTaxonomyIndex(nlp.LoadTaxonomy(cfg.Taxonomy, log))
	matcher := scoring.NewMatcher()

	jobText, jobSource, err := loadJobText(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	weights := weightsFromConfig(&cfg)
	if cmd.Flags().Changed("similarity-weight") || cmd.Flags().Changed("skills-weight") {
		// Explicit flags win over config-file values, including an explicit
		// zero, which weightsFromConfig cannot distinguish from unset.
		w := types.DefaultWeights()
		if weights != nil {
			w = *weights
		}
		if cmd.Flags().Changed("similarity-weight") {
			w.Similarity = similarityWeight
		}
		if cmd.Flags().Changed("skills-weight") {
			w.Skills = skillsWeight
		}
		weights = &w
	}

	outcome, err := screenOne(cmd.Context(), matcher, index, cfg.Resume, jobText, cfg.SkillThreshold, weights)
	if err != nil {
		return err
	}

	if cfg.DatabaseURL != "" && saveResult {
		id, err := saveScreening(cmd.Context(), cfg.DatabaseURL, outcome, jobSource, jobText)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved screening %s\n", id)
	}

	return printOutcome(outcome, cfg.Verbose)
}

// screenOutcome bundles everything one screening produces.
type screenOutcome struct {
	ResumePath   string
	ResumeText   string
	Contact      types.ContactInfo
	ResumeSkills *types.SkillExtractionResult
	JobSkills    *types.SkillExtractionResult
	Result       *types.ScoringResult
}

// screenOne runs the extraction and scoring pipeline for a single resume
// file against an already-loaded job posting text.
func screenOne(
	_ context.Context,
	matcher *scoring.Matcher,
	index *nlp.TaxonomyIndex,
	resumePath, jobText string,
	threshold int,
	weights *types.Weights,
) (*screenOutcome, error) {
	rawResume, err := ingestion.ExtractTextFromFile(resumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume %s: %w", resumePath, err)
	}

	cleanResume := ingestion.CleanText(rawResume)
	contact := ingestion.ExtractContactInfo(rawResume)

	// Both sides are normalized but never cleaned before extraction and
	// scoring: cleaning strips the punctuation that skills like "c++" and
	// "c#" depend on, and the two texts must get identical treatment.
	resumeNorm := nlp.Normalize(rawResume)
	jobNorm := nlp.Normalize(jobText)

	if threshold < 1 {
		threshold = 1
	}
	resumeSkills := index.Extract(resumeNorm, threshold)
	jobSkills := index.Extract(jobNorm, threshold)

	result, err := matcher.ScoreResume(resumeNorm, jobNorm, resumeSkills, jobSkills, weights)
	if err != nil {
		return nil, err
	}

	return &screenOutcome{
		ResumePath:   resumePath,
		ResumeText:   cleanResume,
		Contact:      contact,
		ResumeSkills: resumeSkills,
		JobSkills:    jobSkills,
		Result:       result,
	}, nil
}

// weightsFromConfig returns nil when neither weight was set, so the scorer
// falls back to its defaults. A zero value in the config means unset, so a
// single configured weight keeps the 0.5 default for the other side.
func weightsFromConfig(cfg *config.Config) *types.Weights {
	if cfg.SimilarityWeight == 0 && cfg.SkillsWeight == 0 {
		return nil
	}
	w := types.DefaultWeights()
	if cfg.SimilarityWeight != 0 {
		w.Similarity = cfg.SimilarityWeight
	}
	if cfg.SkillsWeight != 0 {
		w.Skills = cfg.SkillsWeight
	}
	return &w
}

// loadJobText reads the job posting from a file or fetches it from a URL,
// returning the text and a short source label.
func loadJobText(ctx context.Context, cfg config.Config) (text, source string, err error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", "", fmt.Errorf("failed to read job posting %s: %w", cfg.Job, err)
		}
		return string(data), cfg.Job, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, fetch.DefaultTimeout)
	defer cancel()

	text, err = fetch.JobText(fetchCtx, cfg.JobURL, nil)
	if err != nil {
		return "", "", err
	}
	return text, cfg.JobURL, nil
}

func saveScreening(ctx context.Context, databaseURL string, outcome *screenOutcome, jobSource, jobText string) (string, error) {
	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database, err := db.Connect(connCtx, databaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Init(connCtx); err != nil {
		return "", fmt.Errorf("failed to initialize database schema: %w", err)
	}

	id, err := database.SaveScreening(connCtx, outcome.Result,
		outcome.ResumePath, jobSource, outcome.ResumeText, jobText)
	if err != nil {
		return "", err
	}

	if _, err := database.SaveCandidate(connCtx, outcome.Contact,
		outcome.ResumeText, outcome.ResumePath); err != nil {
		return "", err
	}

	return id.String(), nil
}

func printOutcome(outcome *screenOutcome, verbose bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"result":         outcome.Result,
			"candidate_info": outcome.Contact,
			"resume_skills":  outcome.ResumeSkills,
			"jd_skills":      outcome.JobSkills,
		})
	}

	printer := observability.NewPrinter(os.Stdout)
	if verbose {
		printer.PrintSkillExtraction("Resume Skills", outcome.ResumeSkills)
		printer.PrintSkillExtraction("Job Posting Skills", outcome.JobSkills)
	}
	printer.PrintScoringResult(outcome.Result)
	printer.PrintFeedback(outcome.Result)
	return nil
}
