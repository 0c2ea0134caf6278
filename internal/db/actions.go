package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/polishpages/internal/common"
	dbpkg "github.com/dtnitsch/polishpages/pkg/db"
)

func RunsAction(c *cli.Context) error {
	database, err := openFromConfig(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-38s %-20s %-7s %-7s %-7s %-9s %-6s\n",
		"Run ID", "Created", "Pages", "Links", "Errors", "Warnings", "Valid")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range runs {
		fmt.Printf("%-38s %-20s %-7d %-7d %-7d %-9d %-6t\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.PageCount,
			r.LinkCount,
			r.ErrorCount,
			r.WarningCount,
			r.Valid,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'polishpages db run <id>' to see details\n")

	return nil
}

// RunAction shows details and validation messages for one run
func RunAction(c *cli.Context) error {
	database, err := openFromConfig(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return err
	}
	errs, err := database.GetValidationMessages(runID, dbpkg.SeverityError)
	if err != nil {
		return err
	}
	warnings, err := database.GetValidationMessages(runID, dbpkg.SeverityWarning)
	if err != nil {
		return err
	}

	fmt.Printf("Run:      %s\n", run.RunID)
	fmt.Printf("Created:  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Origin:   %s\n", run.SiteOrigin)
	fmt.Printf("Pages:    %d\n", run.PageCount)
	fmt.Printf("Links:    %d\n", run.LinkCount)
	fmt.Printf("Valid:    %t\n", run.Valid)

	if len(errs) > 0 {
		fmt.Printf("\nErrors (%d):\n", len(errs))
		for _, m := range errs {
			fmt.Printf("  - %s\n", m)
		}
	}
	if len(warnings) > 0 {
		fmt.Printf("\nWarnings (%d):\n", len(warnings))
		for _, m := range warnings {
			fmt.Printf("  - %s\n", m)
		}
	}

	return nil
}

func PagesAction(c *cli.Context) error {
	database, err := openFromConfig(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	pages, err := database.GetRunPages(runID, c.String("category"), c.String("location"))
	if err != nil {
		return err
	}

	if len(pages) == 0 {
		fmt.Println("No pages found")
		return nil
	}

	if fields := c.String("fields"); fields != "" {
		out := make([]map[string]any, len(pages))
		for i, p := range pages {
			out[i] = common.FilterFields(p, fields)
		}
		return common.WriteYAML(os.Stdout, out)
	}

	fmt.Printf("%-5s %-60s %-22s %-18s %-8s %-6s\n",
		"#", "URL", "Category", "Variation", "Words", "In")
	fmt.Println(strings.Repeat("-", 125))

	for _, p := range pages {
		fmt.Printf("%-5d %-60s %-22s %-18s %-8d %-6d\n",
			p.Position,
			p.URL,
			p.ServiceCategory,
			p.TitleVariation,
			p.WordCount,
			p.InLinks,
		)
	}

	fmt.Printf("\nTotal: %d pages in run %s\n", len(pages), runID)
	return nil
}

func OrphansAction(c *cli.Context) error {
	database, err := openFromConfig(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	orphans, err := database.OrphanURLs(runID)
	if err != nil {
		return err
	}
	if len(orphans) == 0 {
		fmt.Printf("No orphan pages in run %s\n", runID)
		return nil
	}
	for _, u := range orphans {
		fmt.Println(u)
	}
	fmt.Printf("\nTotal: %d orphan pages in run %s\n", len(orphans), runID)
	return nil
}

func DeleteAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("usage: polishpages db delete <run-id>", common.ExitFailure)
	}
	database, err := openFromConfig(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runID := c.Args().First()
	if err := database.DeleteRun(runID); err != nil {
		return err
	}
	fmt.Printf("Deleted run %s\n", runID)
	return nil
}
