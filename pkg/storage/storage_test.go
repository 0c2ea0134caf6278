package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtnitsch/polishpages/models"
)

func TestSaveAndReadFile(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.SaveFile("a/b/c.txt", []byte("teak")))
	assert.True(t, s.HasFile("a/b/c.txt"))
	assert.False(t, s.HasFile("missing.txt"))

	data, err := s.ReadFile("a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "teak", string(data))

	stats, err := s.GetFileStats("a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.SizeBytes)

	_, err = s.ReadFile("missing.txt")
	assert.Error(t, err)
}

func TestWritePagesAndCorpus(t *testing.T) {
	s := New(t.TempDir())
	records := []models.PageRecord{
		{URL: "/services/best-wood-polishing-mumbai", Title: "A"},
		{URL: "/services/quick-pu-polishing-powai", Title: "B",
			RelatedServices: []models.RelatedLink{{Name: "A", URL: "/services/best-wood-polishing-mumbai"}}},
	}

	n, err := s.WritePages(records)
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, filepath.Join("pages", "quick-pu-polishing-powai.json"), PageFile(records[1]))
	assert.True(t, s.HasFile(PageFile(records[0])))

	require.NoError(t, s.WriteCorpus(records))
	loaded, err := LoadCorpus(s.Path(CorpusFile))
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	_, err = LoadCorpus(s.Path("nope.json"))
	assert.Error(t, err)
}
