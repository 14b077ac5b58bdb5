package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestProjects(t *testing.T) {
	c := DefaultCatalog()

	projects := c.SuggestProjects("Data Analyst")

	require.Len(t, projects, 2)
	assert.Equal(t, "Data Insights Report", projects[0].Title)
	assert.NotEmpty(t, projects[0].Description)
	assert.NotEmpty(t, projects[0].TechStack)
}

func TestSuggestProjects_FallbackForRolesWithoutProjects(t *testing.T) {
	c := DefaultCatalog()

	projects := c.SuggestProjects("General")

	require.Len(t, projects, 1)
	assert.Equal(t, "General - Practice Project", projects[0].Title)
	assert.Len(t, projects[0].TechStack, 3)
}

func TestSuggestProjects_UnknownRoleResolvesViaCatalog(t *testing.T) {
	c := DefaultCatalog()

	projects := c.SuggestProjects("Quantum Basket Weaving")
	require.NotEmpty(t, projects)
	assert.Equal(t, "General - Practice Project", projects[0].Title)
}

func TestSuggestProjects_Cap(t *testing.T) {
	c, err := ParseCatalog([]byte(`{
		"Backend Developer": {
			"skills": ["sql"],
			"projects": [
				{"title": "A", "description": "a"},
				{"title": "B", "description": "b"},
				{"title": "C", "description": "c"},
				{"title": "D", "description": "d"}
			]
		}
	}`))
	require.NoError(t, err)

	projects := c.SuggestProjects("Backend Developer")
	require.Len(t, projects, maxSuggestedProjects)
	for _, p := range projects {
		assert.NotNil(t, p.TechStack)
	}
}
