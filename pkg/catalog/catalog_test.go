package catalog

import (
	"testing"

	"github.com/dtnitsch/polishpages/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardinalities(t *testing.T) {
	assert.Len(t, Categories(), 20)
	assert.Len(t, Locations(), 42)
	assert.Len(t, Variations(), 4)
}

func TestExactlyOneGenericLocation(t *testing.T) {
	var generic []models.Location
	for _, l := range Locations() {
		if l.IsGeneric() {
			generic = append(generic, l)
		}
	}
	require.Len(t, generic, 1)
	assert.Equal(t, GenericLocationID, generic[0].ID)
	assert.Equal(t, models.ZoneAll, generic[0].Zone)
	assert.Equal(t, generic[0], Generic())
}

func TestIdentitiesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories() {
		assert.False(t, seen[c.ID], "duplicate category %s", c.ID)
		seen[c.ID] = true
	}

	seen = map[string]bool{}
	for _, l := range Locations() {
		assert.False(t, seen[l.ID], "duplicate location %s", l.ID)
		seen[l.ID] = true
		if !l.IsGeneric() {
			assert.NotEqual(t, models.ZoneAll, l.Zone, l.ID)
			assert.GreaterOrEqual(t, l.Priority, models.PriorityHigh, l.ID)
			assert.LessOrEqual(t, l.Priority, models.PriorityLow, l.ID)
		}
	}
}

func TestPriorityLocations(t *testing.T) {
	locs := PriorityLocations(models.PriorityHigh, models.PriorityMedium)
	assert.Len(t, locs, 34)
	for _, l := range locs {
		assert.False(t, l.IsGeneric())
		assert.Contains(t, []int{1, 2}, l.Priority)
	}
	assert.Empty(t, PriorityLocations(models.PriorityGeneric))
}

func TestLookups(t *testing.T) {
	c, ok := CategoryByID("french-polishing")
	require.True(t, ok)
	assert.Equal(t, "French Polishing", c.Name)

	_, ok = CategoryByID("does-not-exist")
	assert.False(t, ok)

	v, ok := VariationByType(models.VariationExpert)
	require.True(t, ok)
	assert.Equal(t, "Professional", v.Prefix)
	assert.Equal(t, 3, VariationIndex(models.VariationExpert))
	assert.Equal(t, -1, VariationIndex("unknown"))

	l, ok := LocationByName("Andheri West")
	require.True(t, ok)
	assert.Equal(t, "andheri-west", l.Slug)
}

func TestAccessorsReturnCopies(t *testing.T) {
	cats := Categories()
	cats[0].Name = "mutated"
	assert.Equal(t, "Furniture Polishing", Categories()[0].Name)
}
