package models

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when --config is not given.
const DefaultConfigPath = "polishpages.yaml"

// WordBand bounds the per-page word count checked by the validator.
type WordBand struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// SitemapConfig holds the defaults stamped into sitemap entries.
type SitemapConfig struct {
	ChangeFreq string `yaml:"changefreq"`
	LastMod    string `yaml:"lastmod"` // YYYY-MM-DD, empty means build date
}

// Config is the runtime configuration of a generation run.
type Config struct {
	SiteOrigin string `yaml:"site_origin"`
	OutputDir  string `yaml:"output_dir"`
	DBPath     string `yaml:"db_path"`

	// TargetTotal pins the expected corpus size. Zero means "derive it
	// from the catalog and the phase 2 settings".
	TargetTotal      int   `yaml:"target_total"`
	Phase2Counts     []int `yaml:"phase2_counts"`
	Phase2Stride     int   `yaml:"phase2_stride"`
	Phase2Priorities []int `yaml:"phase2_priorities"`

	MinLinks      int `yaml:"min_links"`
	MaxLinks      int `yaml:"max_links"`
	RelinkWorkers int `yaml:"relink_workers"`

	WordBand   WordBand `yaml:"word_band"`
	SampleSize int      `yaml:"sample_size"`

	Sitemap SitemapConfig `yaml:"sitemap"`
}

// DefaultConfig returns the configuration that produces the shipped
// 150-page corpus.
func DefaultConfig() Config {
	return Config{
		SiteOrigin:       "https://www.mumbaifurniturepolish.in",
		OutputDir:        "dist",
		DBPath:           "polishpages.db",
		TargetTotal:      150,
		Phase2Counts:     []int{4, 3},
		Phase2Stride:     3,
		Phase2Priorities: []int{PriorityHigh, PriorityMedium},
		MinLinks:         3,
		MaxLinks:         12,
		RelinkWorkers:    1,
		WordBand:         WordBand{Min: 500, Max: 2500},
		SampleSize:       10,
		Sitemap:          SitemapConfig{ChangeFreq: "monthly"},
	}
}

// LoadConfig reads .env (if present), then the YAML file at path on top of
// DefaultConfig, then applies environment overrides. A missing file is not
// an error.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv("POLISHPAGES_SITE_ORIGIN"); v != "" {
		cfg.SiteOrigin = v
	}
	if v := os.Getenv("POLISHPAGES_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("POLISHPAGES_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	return cfg, cfg.Check()
}

// Check rejects configurations the generator cannot honour.
func (c Config) Check() error {
	if len(c.Phase2Counts) == 0 {
		return errors.New("phase2_counts must not be empty")
	}
	for _, n := range c.Phase2Counts {
		if n < 0 {
			return fmt.Errorf("phase2_counts contains negative value %d", n)
		}
	}
	if c.Phase2Stride < 0 {
		return fmt.Errorf("phase2_stride must be >= 0, got %d", c.Phase2Stride)
	}
	if c.MinLinks < 0 || c.MaxLinks < c.MinLinks {
		return fmt.Errorf("invalid link bounds: min %d max %d", c.MinLinks, c.MaxLinks)
	}
	if c.WordBand.Min > c.WordBand.Max {
		return fmt.Errorf("invalid word band: min %d max %d", c.WordBand.Min, c.WordBand.Max)
	}
	return nil
}
