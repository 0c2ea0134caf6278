// Package generator assembles the full landing-page corpus in two
// deterministic phases and then computes the link graph over it.
package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/catalog"
	"github.com/dtnitsch/polishpages/pkg/linkgraph"
	"github.com/dtnitsch/polishpages/pkg/slug"
)

// Phase labels.
const (
	PhaseGeneric  = "generic"
	PhasePriority = "priority"
)

// Corpus is the output of one generation run.
type Corpus struct {
	RunID       string
	GeneratedAt time.Time
	Records     []models.PageRecord
	Registry    *slug.Registry
	Links       linkgraph.Report
	PhaseCounts map[string]int
}

// Generator drives the two generation phases. A Generator owns its URL
// registry for the duration of GenerateAll and is not safe for concurrent use.
type Generator struct {
	cfg       models.Config
	logger    *slog.Logger
	assembler Assembler
}

// New returns a Generator. A nil logger discards output.
func New(cfg models.Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		cfg:       cfg,
		logger:    logger,
		assembler: Assembler{SiteOrigin: cfg.SiteOrigin},
	}
}

// phase2Count is the number of phase 2 pages for the category at index i.
func phase2Count(cfg models.Config, i, available int) int {
	if len(cfg.Phase2Counts) == 0 {
		return 0
	}
	return min(cfg.Phase2Counts[i%len(cfg.Phase2Counts)], available)
}

// ExpectedTotal computes the corpus size the configuration produces from
// the catalog cardinalities alone.
func ExpectedTotal(cfg models.Config) int {
	categories := len(catalog.Categories())
	total := categories * len(catalog.Variations())

	available := len(catalog.PriorityLocations(cfg.Phase2Priorities...))
	if available == 0 {
		return total
	}
	for i := 0; i < categories; i++ {
		total += phase2Count(cfg, i, available)
	}
	return total
}

// GeneratePhase1 produces one page per category and variation at the
// generic location.
func (g *Generator) GeneratePhase1(reg *slug.Registry) []models.PageRecord {
	generic := catalog.Generic()
	categories := catalog.Categories()
	variations := catalog.Variations()

	records := make([]models.PageRecord, 0, len(categories)*len(variations))
	for _, c := range categories {
		for _, v := range variations {
			records = append(records, g.assembler.Assemble(c, generic, v, reg))
		}
	}
	g.logger.Info("Phase complete", "phase", PhaseGeneric, "pages", len(records))
	return records
}

// GeneratePhase2 produces pages for the priority locations. Category i
// starts at location (i*stride) mod n and takes consecutive distinct
// locations; the variation cursor runs across the whole phase.
func (g *Generator) GeneratePhase2(reg *slug.Registry) []models.PageRecord {
	locations := catalog.PriorityLocations(g.cfg.Phase2Priorities...)
	variations := catalog.Variations()
	n := len(locations)
	if n == 0 {
		g.logger.Warn("no priority locations match", "priorities", g.cfg.Phase2Priorities)
		return nil
	}

	var records []models.PageRecord
	cursor := 0
	for i, c := range catalog.Categories() {
		count := phase2Count(g.cfg, i, n)
		start := (i * g.cfg.Phase2Stride) % n
		for k := 0; k < count; k++ {
			loc := locations[(start+k)%n]
			v := variations[cursor%len(variations)]
			cursor++
			records = append(records, g.assembler.Assemble(c, loc, v, reg))
		}
	}
	g.logger.Info("Phase complete", "phase", PhasePriority, "pages", len(records))
	return records
}

// CheckConfig rejects phase 2 counts larger than the number of priority
// locations, which would otherwise repeat a location within a category.
func CheckConfig(cfg models.Config) error {
	n := len(catalog.PriorityLocations(cfg.Phase2Priorities...))
	for _, c := range cfg.Phase2Counts {
		if c > n {
			return fmt.Errorf("phase2 count %d exceeds the %d priority locations", c, n)
		}
	}
	return nil
}

// GenerateAll runs both phases against one registry and rewrites every
// record's related links over the finished corpus.
func (g *Generator) GenerateAll(ctx context.Context) (*Corpus, error) {
	if err := CheckConfig(g.cfg); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	reg := slug.NewRegistry()

	phase1 := g.GeneratePhase1(reg)
	phase2 := g.GeneratePhase2(reg)

	records := make([]models.PageRecord, 0, len(phase1)+len(phase2))
	records = append(records, phase1...)
	records = append(records, phase2...)

	report, err := linkgraph.Relink(ctx, records, linkgraph.Options{
		GenericLocation: catalog.Generic().Name,
		MinLinks:        g.cfg.MinLinks,
		MaxLinks:        g.cfg.MaxLinks,
		Workers:         g.cfg.RelinkWorkers,
		Logger:          g.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build link graph: %w", err)
	}

	return &Corpus{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Records:     records,
		Registry:    reg,
		Links:       report,
		PhaseCounts: map[string]int{
			PhaseGeneric:  len(phase1),
			PhasePriority: len(phase2),
		},
	}, nil
}
