// Package manifest summarises a generation run as a YAML build manifest.
package manifest

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dtnitsch/polishpages/internal/common"
	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/analytics"
	"github.com/dtnitsch/polishpages/pkg/catalog"
	"github.com/dtnitsch/polishpages/pkg/linkgraph"
	"github.com/dtnitsch/polishpages/pkg/mapreduce"
	"github.com/dtnitsch/polishpages/pkg/storage"
	"github.com/dtnitsch/polishpages/pkg/validator"
)

// Keyword list lengths.
const (
	aggregateKeywordCount = 25
	pageKeywordCount      = 5
)

// Input is everything Build summarises.
type Input struct {
	RunID       string
	GeneratedAt time.Time
	SiteOrigin  string
	Records     []models.PageRecord
	PhaseCounts map[string]int
	MinLinks    int
	Validation  validator.Result
}

// Build assembles the manifest for a run.
func Build(in Input) BuildManifest {
	m := BuildManifest{
		RunID:       in.RunID,
		GeneratedAt: in.GeneratedAt.Format(time.RFC3339),
		SiteOrigin:  in.SiteOrigin,
		TotalPages:  len(in.Records),
		Phases:      in.PhaseCounts,
		Variations:  make(map[string]int),
		Zones:       make(map[string]int),
		Categories:  make(map[string]int),
		Locations:   make(map[string]int),
		Links:       linkgraph.ComputeStats(in.Records, in.MinLinks),
		Validation: ValidationSummary{
			Valid:    in.Validation.IsValid,
			Errors:   in.Validation.Errors,
			Warnings: in.Validation.Warnings,
		},
	}

	a := &analytics.Analytics{}
	counts := mapreduce.MapAll(in.Records, a)
	m.AggregateKeywords = mapreduce.TopKeywords(mapreduce.Reduce(counts), aggregateKeywordCount)

	for i, r := range in.Records {
		m.Variations[string(r.TitleVariation)]++
		m.Categories[r.ServiceCategory]++
		m.Locations[r.Location]++
		zone := "unknown"
		if loc, ok := catalog.LocationByName(r.Location); ok {
			zone = string(loc.Zone)
		}
		m.Zones[zone]++

		m.Pages = append(m.Pages, PageSummary{
			URL:         r.URL,
			FilePath:    storage.PageFile(r),
			WordCount:   validator.WordCount(r),
			Links:       len(r.RelatedServices),
			TopKeywords: mapreduce.TopKeywords(counts[i], pageKeywordCount),
		})
	}

	return m
}

// GenerateSummary builds the manifest and saves it through s. Returns the
// path of the written file.
func GenerateSummary(in Input, s *storage.Storage) (string, error) {
	var buf bytes.Buffer
	if err := common.WriteYAML(&buf, Build(in)); err != nil {
		return "", fmt.Errorf("error marshalling manifest: %w", err)
	}
	if err := s.SaveFile(FileName, buf.Bytes()); err != nil {
		return "", fmt.Errorf("error saving manifest: %w", err)
	}
	return s.Path(FileName), nil
}
