package mapreduce

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtnitsch/polishpages/models"
	"github.com/dtnitsch/polishpages/pkg/analytics"
)

func TestMapReduce(t *testing.T) {
	a := &analytics.Analytics{}
	records := []models.PageRecord{
		{Introduction: "teak polishing in Powai"},
		{Introduction: "teak restoration", FAQs: []models.FAQ{{Question: "Why teak?", Answer: "Durable."}}},
	}

	maps := MapAll(records, a)
	assert.Len(t, maps, 2)
	assert.Equal(t, 1, maps[0]["teak"])

	total := Reduce(maps)
	assert.Equal(t, 3, total["teak"])
	assert.Equal(t, 1, total["durable"])
	assert.Equal(t, 0, total["in"])
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"wood": 5, "teak": 5, "duco": 1, "pu": 3}
	assert.Equal(t, []string{"teak:5", "wood:5", "pu:3"}, TopKeywords(counts, 3))
	assert.Len(t, TopKeywords(counts, 10), 4)
	assert.Empty(t, TopKeywords(counts, 0))

	var buf bytes.Buffer
	PrintTopKeywords(&buf, counts, 2)
	assert.Equal(t, "1. teak: 5\n2. wood: 5\n", buf.String())
}
