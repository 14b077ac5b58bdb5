package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	roles := c.Roles()
	require.NotEmpty(t, roles)
	assert.Contains(t, roles, "Data Analyst")
	assert.Contains(t, roles, "General")

	// deterministic ordering
	assert.IsIncreasing(t, roles)

	skills := c.SkillsFor("Data Analyst")
	require.NotEmpty(t, skills)
	assert.Contains(t, skills, "python")
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := ParseCatalog([]byte(`not json`))
	assert.Error(t, err)
}

func TestMatchRole(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"exact", "Data Analyst", "Data Analyst"},
		{"case insensitive", "data analyst", "Data Analyst"},
		{"substring", "data", "Data Analyst"},
		{"role contains target", "Frontend", "Frontend Developer"},
		{"fuzzy typo", "Dta Analyst", "Data Analyst"},
		{"token overlap", "Engineer of Chaos Wonderland", "Cloud Engineer"},
		{"unknown role", "Quantum Basket Weaving", "General"},
		{"empty", "", "General"},
		{"whitespace", "   ", "General"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.MatchRole(tt.target))
		})
	}
}

func TestMatchRole_FallbackWithoutGeneral(t *testing.T) {
	c, err := ParseCatalog([]byte(`{"Backend Developer": {"skills": ["sql"]}}`))
	require.NoError(t, err)

	assert.Equal(t, "Backend Developer", c.MatchRole("Quantum Basket Weaving"))
}
