package service_test

import (
	"errors"
	"testing"

	"github.com/portfolio-content-api/internal/content"
	"github.com/portfolio-content-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(slug string, featured bool) models.Project {
	return models.Project{
		Title:       "Project " + slug,
		Slug:        slug,
		Description: "Description of " + slug,
		Tags:        []string{"Go"},
		GitHub:      "https://github.com/example/" + slug,
		Featured:    featured,
	}
}

func projectRoot(t *testing.T) string {
	root := t.TempDir()
	writeJSON(t, root, "projects/bravo", project("bravo", false))
	writeJSON(t, root, "projects/alpha", project("alpha", true))
	writeJSON(t, root, "projects/charlie", project("charlie", true))
	return root
}

func TestProjectService_AllProjectsInFileOrder(t *testing.T) {
	services, _ := newServices(t, projectRoot(t))

	projects, err := services.Projects.AllProjects(ctx())
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "alpha", projects[0].Slug)
	assert.Equal(t, "bravo", projects[1].Slug)
	assert.Equal(t, "charlie", projects[2].Slug)
}

func TestProjectService_Featured(t *testing.T) {
	services, _ := newServices(t, projectRoot(t))

	featured, err := services.Projects.FeaturedProjects(ctx())
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, "alpha", featured[0].Slug)
	assert.Equal(t, "charlie", featured[1].Slug)
}

func TestProjectService_FeaturedEmpty(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, root, "projects/solo", project("solo", false))
	services, _ := newServices(t, root)

	featured, err := services.Projects.FeaturedProjects(ctx())
	require.NoError(t, err)
	assert.NotNil(t, featured)
	assert.Empty(t, featured)
}

func TestProjectService_ProjectBySlug(t *testing.T) {
	services, _ := newServices(t, projectRoot(t))

	p, err := services.Projects.ProjectBySlug(ctx(), "bravo")
	require.NoError(t, err)
	assert.Equal(t, "Project bravo", p.Title)

	_, err = services.Projects.ProjectBySlug(ctx(), "delta")
	assert.True(t, errors.Is(err, content.ErrNotFound))
}
