package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Counts(t *testing.T) {
	root := scenarioRoot(t)
	writeJSON(t, root, "projects/alpha", project("alpha", true))
	writeJSON(t, root, "projects/bravo", project("bravo", false))
	services, loader := newServices(t, root)

	stats, err := services.Stats.Stats(ctx())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Posts)
	assert.Equal(t, 2, stats.Projects)
	assert.Equal(t, 1, stats.FeaturedProjects)
	assert.Equal(t, 1, stats.Categories)
	assert.Equal(t, 3, stats.Tags)
	assert.Equal(t, 5, stats.CachedDocuments)
	assert.Equal(t, 5, loader.Cached())
}
