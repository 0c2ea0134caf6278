package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/polishpages/internal/audit"
	"github.com/dtnitsch/polishpages/internal/db"
	"github.com/dtnitsch/polishpages/internal/generate"
	"github.com/dtnitsch/polishpages/internal/links"
	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/help"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withSource(flags ...cli.Flag) []cli.Flag {
	return append(append([]cli.Flag{}, generate.SourceFlags...), flags...)
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "polishpages",
		Usage: "generate SEO landing pages for furniture polishing services in Mumbai",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   models.DefaultConfigPath,
				Usage:   "YAML config file (missing file means defaults)",
				EnvVars: []string{"POLISHPAGES_CONFIG"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "generate, link and validate the full corpus",
				Action: generate.GenerateAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output directory (overrides config)"},
					&cli.StringFlag{Name: "origin", Usage: "site origin used for canonical URLs"},
					&cli.IntFlag{Name: "workers", Usage: "parallel workers for the link pass"},
					&cli.BoolFlag{Name: "dry-run", Usage: "generate and validate without writing anything"},
					&cli.BoolFlag{Name: "no-db", Usage: "do not store the run in the database"},
					&cli.BoolFlag{Name: "check-language", Usage: "warn on sampled pages not detected as English"},
				},
			},
			{
				Name:   "validate",
				Usage:  "validate a stored or written corpus",
				Action: generate.ValidateAction,
				Flags: withSource(
					&cli.BoolFlag{Name: "check-language", Usage: "warn on sampled pages not detected as English"},
				),
			},
			{
				Name:  "links",
				Usage: "inspect the related-services link graph",
				Subcommands: []*cli.Command{
					{
						Name:   "stats",
						Usage:  "print degree statistics",
						Action: links.StatsAction,
						Flags:  withSource(),
					},
					{
						Name:   "orphans",
						Usage:  "list pages with no incoming links",
						Action: links.OrphansAction,
						Flags:  withSource(),
					},
					{
						Name:   "cycles",
						Usage:  "list strongly connected groups of pages",
						Action: links.CyclesAction,
						Flags: withSource(
							&cli.BoolFlag{Name: "summary", Usage: "print only the number and sizes of groups"},
						),
					},
					{
						Name:   "mutual",
						Usage:  "list pages that link to each other",
						Action: links.MutualAction,
						Flags:  withSource(),
					},
					{
						Name:      "show",
						Usage:     "show outgoing and incoming links of one page",
						ArgsUsage: "<url>",
						Action:    links.ShowAction,
						Flags:     withSource(),
					},
				},
			},
			{
				Name:   "audit",
				Usage:  "render page heads and audit titles, descriptions and keyword density",
				Action: audit.AuditAction,
				Flags: withSource(
					&cli.Float64Flag{Name: "max-density", Value: audit.DefaultMaxDensity, Usage: "service name density limit in percent"},
					&cli.IntFlag{Name: "top", Value: 0, Usage: "also print the N most frequent corpus keywords"},
					&cli.BoolFlag{Name: "strict", Usage: "exit non-zero on audit errors"},
				),
			},
			{
				Name:   "quickstart",
				Usage:  "print a YAML quick start",
				Action: func(c *cli.Context) error {
					fmt.Print(help.QuickstartYAML)
					return nil
				},
			},
			{
				Name:  "db",
				Usage: "query stored runs",
				Subcommands: []*cli.Command{
					{
						Name:   "runs",
						Usage:  "list runs",
						Action: db.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "maximum runs to show"},
						},
					},
					{
						Name:      "run",
						Usage:     "show one run and its validation messages",
						ArgsUsage: "[run-id]",
						Action:    db.RunAction,
					},
					{
						Name:      "pages",
						Usage:     "list pages of a run",
						ArgsUsage: "[run-id]",
						Action:    db.PagesAction,
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "category", Usage: "filter by service category ID"},
							&cli.StringFlag{Name: "location", Usage: "filter by location name"},
							&cli.StringFlag{Name: "fields", Usage: "comma-separated fields to print as YAML"},
						},
					},
					{
						Name:      "orphans",
						Usage:     "list pages of a run with no incoming links",
						ArgsUsage: "[run-id]",
						Action:    db.OrphansAction,
					},
					{
						Name:      "delete",
						Usage:     "delete a run",
						ArgsUsage: "<run-id>",
						Action:    db.DeleteAction,
					},
				},
			},
		},
	}
}
