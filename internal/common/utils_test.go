package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	h := ContentHash([]byte("teak"))
	assert.Len(t, h, 64)
	assert.Equal(t, h, ContentHash([]byte("teak")))
	assert.NotEqual(t, h, ContentHash([]byte("teak ")))
}

func TestNewLoggerQuiet(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, true).Info("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Error("shown", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	buf.Reset()
	newLogger(&buf, false).Info("visible")
	assert.Contains(t, buf.String(), `"level":"INFO"`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, map[string]any{"pages": 150, "links": map[string]int{"min": 3}}))
	assert.Equal(t, "links:\n  min: 3\npages: 150\n", buf.String())
}

func TestFilterFields(t *testing.T) {
	type row struct {
		URL   string `json:"url"`
		Title string `json:"title"`
		Words int    `json:"words"`
	}
	r := row{URL: "/services/x", Title: "X", Words: 10}

	assert.Len(t, FilterFields(r, ""), 3)
	got := FilterFields(r, "url, words,missing")
	assert.Equal(t, map[string]any{"url": "/services/x", "words": float64(10)}, got)
}
