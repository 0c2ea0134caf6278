package generate

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/polishpages/internal/common"
	"github.com/dtnitsch/polishpages/models"
	dbpkg "github.com/dtnitsch/polishpages/pkg/db"
	"github.com/dtnitsch/polishpages/pkg/generator"
	"github.com/dtnitsch/polishpages/pkg/linkgraph"
	"github.com/dtnitsch/polishpages/pkg/manifest"
	"github.com/dtnitsch/polishpages/pkg/sitemap"
	"github.com/dtnitsch/polishpages/pkg/storage"
	"github.com/dtnitsch/polishpages/pkg/validator"
)

// Output file names written next to the page files.
const (
	SitemapFile = "sitemap.xml"
	RobotsFile  = "robots.txt"
)

// RunSummary is printed to stdout after generate.
type RunSummary struct {
	RunID      string           `yaml:"run_id"`
	Pages      int              `yaml:"pages"`
	Phases     map[string]int   `yaml:"phases"`
	Links      linkgraph.Report `yaml:"links"`
	Valid      bool             `yaml:"valid"`
	Errors     []string         `yaml:"errors,omitempty"`
	Warnings   int              `yaml:"warnings"`
	OutputDir  string           `yaml:"output_dir,omitempty"`
	Manifest   string           `yaml:"manifest,omitempty"`
	Bytes      int64            `yaml:"bytes_written,omitempty"`
	Stored     bool             `yaml:"stored"`
	DurationMS int64            `yaml:"duration_ms"`
}

// ValidationReport is printed to stdout after validate.
type ValidationReport struct {
	Source   string   `yaml:"source"`
	Pages    int      `yaml:"pages"`
	Valid    bool     `yaml:"valid"`
	Errors   []string `yaml:"errors,omitempty"`
	Warnings []string `yaml:"warnings,omitempty"`
}

func applyFlags(c *cli.Context, cfg *models.Config) {
	if c.IsSet("output") {
		cfg.OutputDir = c.String("output")
	}
	if c.IsSet("origin") {
		cfg.SiteOrigin = c.String("origin")
	}
	if c.IsSet("workers") {
		cfg.RelinkWorkers = c.Int("workers")
	}
}

func validate(c *cli.Context, cfg models.Config, records []models.PageRecord) validator.Result {
	res := validator.New(cfg, generator.ExpectedTotal(cfg)).Validate(records)
	if c.Bool("check-language") {
		res.Warnings = append(res.Warnings, validator.NewLanguageCheck().Check(records, cfg.SampleSize)...)
	}
	return res
}

func GenerateAction(c *cli.Context) error {
	startTime := time.Now()

	cfg, logger, err := common.Setup(c)
	if err != nil {
		return err
	}
	applyFlags(c, &cfg)

	corpus, err := generator.New(cfg, logger).GenerateAll(c.Context)
	if err != nil {
		return common.Fail(logger, "failed to generate corpus", err)
	}

	res := validate(c, cfg, corpus.Records)
	for _, w := range res.Warnings {
		logger.Warn("validation warning", "message", w)
	}
	for _, e := range res.Errors {
		logger.Error("validation error", "message", e)
	}

	summary := RunSummary{
		RunID:    corpus.RunID,
		Pages:    len(corpus.Records),
		Phases:   corpus.PhaseCounts,
		Links:    corpus.Links,
		Valid:    res.IsValid,
		Errors:   res.Errors,
		Warnings: len(res.Warnings),
	}

	if !c.Bool("dry-run") {
		written, manifestPath, err := writeOutputs(cfg, corpus, res)
		if err != nil {
			return common.Fail(logger, "failed to write outputs", err)
		}
		summary.OutputDir = cfg.OutputDir
		summary.Manifest = manifestPath
		summary.Bytes = written
		logger.Info("Outputs written", "dir", cfg.OutputDir, "bytes", written)
	}

	if !c.Bool("dry-run") && !c.Bool("no-db") {
		if err := storeRun(cfg, corpus, res); err != nil {
			return common.Fail(logger, "failed to store run", err)
		}
		summary.Stored = true
		logger.Info("Run stored", "run_id", corpus.RunID, "db", cfg.DBPath)
	}

	summary.DurationMS = time.Since(startTime).Milliseconds()
	if err := common.WriteYAML(os.Stdout, summary); err != nil {
		return common.Fail(logger, "failed to print summary", err)
	}

	if err := res.Err(); err != nil {
		return cli.Exit(err.Error(), common.ExitInvalid)
	}
	return nil
}

func writeOutputs(cfg models.Config, corpus *generator.Corpus, res validator.Result) (int64, string, error) {
	s := storage.New(cfg.OutputDir)

	written, err := s.WritePages(corpus.Records)
	if err != nil {
		return written, "", err
	}
	if err := s.WriteCorpus(corpus.Records); err != nil {
		return written, "", err
	}

	lastMod := cfg.Sitemap.LastMod
	if lastMod == "" {
		lastMod = corpus.GeneratedAt.Format("2006-01-02")
	}
	xmlData, err := sitemap.Marshal(sitemap.Build(corpus.Records, sitemap.Options{
		Origin:     cfg.SiteOrigin,
		LastMod:    lastMod,
		ChangeFreq: cfg.Sitemap.ChangeFreq,
	}))
	if err != nil {
		return written, "", err
	}
	if err := s.SaveFile(SitemapFile, xmlData); err != nil {
		return written, "", err
	}
	if err := s.SaveFile(RobotsFile, []byte(sitemap.Robots(cfg.SiteOrigin))); err != nil {
		return written, "", err
	}

	manifestPath, err := manifest.GenerateSummary(manifest.Input{
		RunID:       corpus.RunID,
		GeneratedAt: corpus.GeneratedAt,
		SiteOrigin:  cfg.SiteOrigin,
		Records:     corpus.Records,
		PhaseCounts: corpus.PhaseCounts,
		MinLinks:    cfg.MinLinks,
		Validation:  res,
	}, s)
	return written, manifestPath, err
}

func storeRun(cfg models.Config, corpus *generator.Corpus, res validator.Result) error {
	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	return database.SaveRun(dbpkg.RunInput{
		RunID:      corpus.RunID,
		CreatedAt:  corpus.GeneratedAt,
		SiteOrigin: cfg.SiteOrigin,
		Records:    corpus.Records,
		Errors:     res.Errors,
		Warnings:   res.Warnings,
	})
}

func ValidateAction(c *cli.Context) error {
	cfg, logger, err := common.Setup(c)
	if err != nil {
		return err
	}

	records, source, err := LoadRecords(c, cfg, logger)
	if err != nil {
		return common.Fail(logger, "failed to load corpus", err)
	}

	res := validate(c, cfg, records)
	report := ValidationReport{
		Source:   source,
		Pages:    len(records),
		Valid:    res.IsValid,
		Errors:   res.Errors,
		Warnings: res.Warnings,
	}
	if err := common.WriteYAML(os.Stdout, report); err != nil {
		return common.Fail(logger, "failed to print report", err)
	}

	if err := res.Err(); err != nil {
		return cli.Exit(err.Error(), common.ExitInvalid)
	}
	logger.Info("Corpus valid", "source", source, "pages", len(records))
	return nil
}
