package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/meta"
)

func TestDensityFindings(t *testing.T) {
	records := []models.PageRecord{
		{
			URL:          "/services/stuffed",
			ServiceName:  "Teak Polishing",
			Introduction: "teak polishing teak polishing and more teak polishing here",
		},
		{
			URL:          "/services/clean",
			ServiceName:  "Teak Polishing",
			Introduction: "we restore old furniture with care across the city every day",
		},
	}

	findings, avg := densityFindings(records, DefaultMaxDensity)
	require.Len(t, findings, 1)
	assert.Equal(t, "/services/stuffed", findings[0].URL)
	assert.Equal(t, meta.SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "exceeds 5.0%")
	assert.InDelta(t, 30.0, avg, 0.01)
}

func TestDensityFindingsEmpty(t *testing.T) {
	findings, avg := densityFindings(nil, DefaultMaxDensity)
	assert.Empty(t, findings)
	assert.Zero(t, avg)
}
