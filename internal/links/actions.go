package links

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/polishpages/internal/common"
	"github.com/dtnitsch/polishpages/internal/generate"
	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/linkgraph"
)

// PageLinks is the outgoing and incoming view of one page.
type PageLinks struct {
	URL      string               `yaml:"url"`
	Outgoing []models.RelatedLink `yaml:"outgoing"`
	Incoming []string             `yaml:"incoming"`
}

func load(c *cli.Context) ([]models.PageRecord, models.Config, error) {
	cfg, logger, err := common.Setup(c)
	if err != nil {
		return nil, cfg, err
	}
	records, _, err := generate.LoadRecords(c, cfg, logger)
	if err != nil {
		return nil, cfg, common.Fail(logger, "failed to load corpus", err)
	}
	return records, cfg, nil
}

func OrphansAction(c *cli.Context) error {
	records, _, err := load(c)
	if err != nil {
		return err
	}

	orphans := linkgraph.Orphans(records)
	if len(orphans) == 0 {
		fmt.Println("No orphan pages")
		return nil
	}
	for _, u := range orphans {
		fmt.Println(u)
	}
	fmt.Printf("\nTotal: %d orphan pages of %d\n", len(orphans), len(records))
	return nil
}

func CyclesAction(c *cli.Context) error {
	records, _, err := load(c)
	if err != nil {
		return err
	}

	cycles := linkgraph.FindCycles(records)
	if c.Bool("summary") {
		sizes := make([]int, len(cycles))
		for i, cyc := range cycles {
			sizes[i] = len(cyc)
		}
		return common.WriteYAML(os.Stdout, map[string]any{"cycles": len(cycles), "sizes": sizes})
	}
	return common.WriteYAML(os.Stdout, cycles)
}

func MutualAction(c *cli.Context) error {
	records, _, err := load(c)
	if err != nil {
		return err
	}

	pairs := linkgraph.MutualPairs(records)
	for _, p := range pairs {
		fmt.Printf("%s <-> %s\n", p[0], p[1])
	}
	fmt.Printf("\nTotal: %d mutual pairs\n", len(pairs))
	return nil
}

func StatsAction(c *cli.Context) error {
	records, cfg, err := load(c)
	if err != nil {
		return err
	}
	return common.WriteYAML(os.Stdout, linkgraph.ComputeStats(records, cfg.MinLinks))
}

func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("usage: polishpages links show <url>", common.ExitFailure)
	}
	records, _, err := load(c)
	if err != nil {
		return err
	}

	target := c.Args().First()
	for _, r := range records {
		if r.URL != target {
			continue
		}
		incoming := linkgraph.ReverseIndex(records)[target]
		if incoming == nil {
			incoming = []string{}
		}
		return common.WriteYAML(os.Stdout, PageLinks{
			URL:      r.URL,
			Outgoing: r.RelatedServices,
			Incoming: incoming,
		})
	}
	return cli.Exit(fmt.Sprintf("page not found: %s", target), common.ExitFailure)
}
