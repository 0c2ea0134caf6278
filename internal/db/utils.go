package db

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/polishpages/internal/common"
	dbpkg "github.com/dtnitsch/polishpages/pkg/db"
)

// openFromConfig opens the database named by the loaded configuration.
func openFromConfig(c *cli.Context) (*dbpkg.DB, error) {
	cfg, _, err := common.Setup(c)
	if err != nil {
		return nil, err
	}
	database, err := dbpkg.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// GetRunIDOrLatest returns the run ID from args, or the latest run if not provided
func GetRunIDOrLatest(c *cli.Context, database *dbpkg.DB) (string, error) {
	if c.NArg() > 0 {
		return c.Args().First(), nil
	}
	runID, err := database.LatestRunID()
	if errors.Is(err, dbpkg.ErrNoRuns) {
		return "", fmt.Errorf("no runs found. Run 'polishpages generate' first")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}
