// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume   string `json:"resume,omitempty"`   // Path to resume file (.pdf or .txt)
	Job      string `json:"job,omitempty"`      // Path to job posting text file
	JobURL   string `json:"job_url,omitempty"`  // URL to fetch job posting from
	Taxonomy string `json:"taxonomy,omitempty"` // Path to skill taxonomy JSON file

	// Scoring
	SimilarityWeight float64 `json:"similarity_weight,omitempty"` // Weight for lexical similarity (>= 0)
	SkillsWeight     float64 `json:"skills_weight,omitempty"`     // Weight for skill overlap (>= 0)
	SkillThreshold   int     `json:"skill_threshold,omitempty"`   // Minimum occurrences for a skill to count

	// Behavior
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed scoring breakdown
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.SimilarityWeight < 0 {
		return fmt.Errorf("config error: 'similarity_weight' must be non-negative")
	}
	if c.SkillsWeight < 0 {
		return fmt.Errorf("config error: 'skills_weight' must be non-negative")
	}
	if c.SkillThreshold < 0 {
		return fmt.Errorf("config error: 'skill_threshold' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SimilarityWeight == 0 {
		result.SimilarityWeight = defaults.SimilarityWeight
	}
	if result.SkillsWeight == 0 {
		result.SkillsWeight = defaults.SkillsWeight
	}
	if result.SkillThreshold == 0 {
		result.SkillThreshold = defaults.SkillThreshold
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
