package audit

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/polishpages/internal/common"
	"github.com/dtnitsch/polishpages/internal/generate"
	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/analytics"
	"github.com/dtnitsch/polishpages/pkg/mapreduce"
	"github.com/dtnitsch/polishpages/pkg/meta"
)

// DefaultMaxDensity is the service-name density, in percent, above which a
// page is flagged as stuffed.
const DefaultMaxDensity = 5.0

// Report is printed to stdout by the audit command.
type Report struct {
	Source     string         `yaml:"source"`
	Pages      int            `yaml:"pages"`
	Errors     int            `yaml:"errors"`
	Warnings   int            `yaml:"warnings"`
	AvgDensity float64        `yaml:"avg_density"`
	Findings   []meta.Finding `yaml:"findings,omitempty"`
}

// densityFindings flags pages whose service name density exceeds limit.
// Returns the findings and the average density across records.
func densityFindings(records []models.PageRecord, limit float64) ([]meta.Finding, float64) {
	a := &analytics.Analytics{}
	var findings []meta.Finding
	var total float64
	for _, r := range records {
		d := a.KeywordDensity(r.ToPlainText(), r.ServiceName)
		total += d
		if d > limit {
			findings = append(findings, meta.Finding{
				URL:      r.URL,
				Severity: meta.SeverityWarning,
				Message:  fmt.Sprintf("service name density %.1f%% exceeds %.1f%%", d, limit),
			})
		}
	}
	if len(records) == 0 {
		return findings, 0
	}
	return findings, total / float64(len(records))
}

func AuditAction(c *cli.Context) error {
	cfg, logger, err := common.Setup(c)
	if err != nil {
		return err
	}

	records, source, err := generate.LoadRecords(c, cfg, logger)
	if err != nil {
		return common.Fail(logger, "failed to load corpus", err)
	}

	findings, err := meta.AuditRecords(records, cfg.SiteOrigin)
	if err != nil {
		return common.Fail(logger, "failed to audit pages", err)
	}
	stuffed, avg := densityFindings(records, c.Float64("max-density"))
	findings = append(findings, stuffed...)

	report := Report{
		Source:     source,
		Pages:      len(records),
		Errors:     meta.Count(findings, meta.SeverityError),
		Warnings:   meta.Count(findings, meta.SeverityWarning),
		AvgDensity: avg,
		Findings:   findings,
	}
	if err := common.WriteYAML(os.Stdout, report); err != nil {
		return common.Fail(logger, "failed to print report", err)
	}

	if n := c.Int("top"); n > 0 {
		fmt.Printf("\nTop %d keywords:\n", n)
		a := &analytics.Analytics{}
		mapreduce.PrintTopKeywords(os.Stdout, mapreduce.Reduce(mapreduce.MapAll(records, a)), n)
	}

	if report.Errors > 0 && c.Bool("strict") {
		return cli.Exit(fmt.Sprintf("audit found %d error(s)", report.Errors), common.ExitInvalid)
	}
	return nil
}
