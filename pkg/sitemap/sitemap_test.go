package sitemap

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/polishpages/models"
)

func TestBuild(t *testing.T) {
	records := []models.PageRecord{
		{URL: "/services/best-wood-polishing-mumbai", Priority: 0.8, ChangeFreq: "weekly"},
		{URL: "/services/quick-pu-polishing-powai"},
	}
	set := Build(records, Options{Origin: "https://example.in/", LastMod: "2026-10-17", ChangeFreq: "monthly"})

	require.Len(t, set.URLs, 3)
	assert.Equal(t, "https://example.in/", set.URLs[0].Loc)
	assert.Equal(t, "1.0", set.URLs[0].Priority)
	assert.Equal(t, "https://example.in/services/best-wood-polishing-mumbai", set.URLs[1].Loc)
	assert.Equal(t, "0.8", set.URLs[1].Priority)
	assert.Equal(t, "weekly", set.URLs[1].ChangeFreq)
	assert.Equal(t, "monthly", set.URLs[2].ChangeFreq)
	assert.Empty(t, set.URLs[2].Priority)
	assert.Equal(t, "2026-10-17", set.URLs[2].LastMod)
}

func TestMarshal(t *testing.T) {
	set := Build([]models.PageRecord{{URL: "/services/a"}}, Options{Origin: "https://example.in"})
	data, err := Marshal(set)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://example.in/services/a</loc>")
	assert.NotContains(t, out, "<lastmod>")

	var back URLSet
	require.NoError(t, xml.Unmarshal(data, &back))
	assert.Len(t, back.URLs, 2)
}

func TestRobots(t *testing.T) {
	robots := Robots("https://example.in/")
	assert.Contains(t, robots, "User-agent: *\n")
	assert.Contains(t, robots, "Disallow: /api/\n")
	assert.Contains(t, robots, "Sitemap: https://example.in/sitemap.xml\n")
}
