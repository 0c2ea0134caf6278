package generate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/polishpages/models"
	dbpkg "github.com/dtnitsch/polishpages/pkg/db"
	"github.com/dtnitsch/polishpages/pkg/generator"
	"github.com/dtnitsch/polishpages/pkg/storage"
)

// SourceFlags select where read-only commands take their corpus from.
var SourceFlags = []cli.Flag{
	&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "read records from a corpus.json file"},
	&cli.StringFlag{Name: "run", Usage: "read records of a stored run (default: latest)"},
	&cli.BoolFlag{Name: "fresh", Usage: "generate the corpus in memory instead of reading it"},
}

// LoadRecords resolves the corpus for read-only commands: --input first,
// then --fresh, then the stored run. The second return value describes
// the source.
func LoadRecords(c *cli.Context, cfg models.Config, logger *slog.Logger) ([]models.PageRecord, string, error) {
	if file := c.String("input"); file != "" {
		records, err := storage.LoadCorpus(file)
		if err != nil {
			return nil, "", err
		}
		return records, file, nil
	}

	if c.Bool("fresh") {
		corpus, err := generator.New(cfg, logger).GenerateAll(c.Context)
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate corpus: %w", err)
		}
		return corpus.Records, "fresh:" + corpus.RunID, nil
	}

	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID := c.String("run")
	if runID == "" {
		runID, err = database.LatestRunID()
		if errors.Is(err, dbpkg.ErrNoRuns) {
			return nil, "", fmt.Errorf("no runs found. Run 'polishpages generate' first or pass --fresh")
		}
		if err != nil {
			return nil, "", err
		}
	}

	records, err := database.LoadRecords(runID)
	if err != nil {
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", fmt.Errorf("run %s has no pages", runID)
	}
	return records, "run:" + runID, nil
}
