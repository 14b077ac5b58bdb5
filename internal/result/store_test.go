package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_PreAnalysisState(t *testing.T) {
	s := NewStore()

	assert.False(t, s.HasAnalysis())
	assert.NotNil(t, s.Result())
	assert.Empty(t, s.SelectedRole())
	assert.Equal(t, Horizon30, s.ActiveHorizon())
	assert.False(t, s.ConsumeScrollSignal())
}

func TestSetResult_SelectsFirstRecommendation(t *testing.T) {
	s := NewStore()
	res := Empty()
	res.RoleRecommendations = []RoleRecommendation{
		{Title: "Data Scientist", Readiness: 72},
		{Title: "Data Analyst", Readiness: 65},
	}

	s.SetResult(res)

	assert.Equal(t, "Data Scientist", s.SelectedRole())
	assert.True(t, s.HasAnalysis())
}

func TestSetResult_ReplacesWholesale(t *testing.T) {
	s := NewStore()

	first := Empty()
	first.Skills = []string{"Python", "SQL"}
	first.RoleRecommendations = []RoleRecommendation{{Title: "Data Analyst"}}
	s.SetResult(first)
	s.SelectRole("Data Analyst")

	second := Empty()
	second.Skills = []string{"Go"}
	s.SetResult(second)

	// nothing from the first analysis survives, including the selection
	assert.Equal(t, []string{"Go"}, s.Result().Skills)
	assert.Empty(t, s.Result().RoleRecommendations)
	assert.Empty(t, s.SelectedRole())
	assert.False(t, s.ConsumeScrollSignal())
}

func TestSetResult_NilInstallsEmpty(t *testing.T) {
	s := NewStore()
	s.SetResult(nil)

	require.NotNil(t, s.Result())
	assert.False(t, s.HasAnalysis())
	assert.NotNil(t, s.Result().Skills)
}

func TestSetRaw(t *testing.T) {
	s := NewStore()

	err := s.SetRaw([]byte(`{"skills": ["Go"], "role_recommendations": [{"title": "Backend Developer", "readiness": 80}]}`))
	require.NoError(t, err)
	assert.True(t, s.HasAnalysis())
	assert.Equal(t, "Backend Developer", s.SelectedRole())

	// unparseable JSON leaves the store untouched
	err = s.SetRaw([]byte(`{broken`))
	assert.Error(t, err)
	assert.Equal(t, "Backend Developer", s.SelectedRole())
	assert.Equal(t, []string{"Go"}, s.Result().Skills)
}

func TestSelectRole(t *testing.T) {
	s := NewStore()
	res := Empty()
	res.RoleRecommendations = []RoleRecommendation{{Title: "Data Scientist"}, {Title: "ML Engineer"}}
	s.SetResult(res)

	s.SelectRole("ML Engineer")
	assert.Equal(t, "ML Engineer", s.SelectedRole())
	assert.True(t, s.ConsumeScrollSignal())
	// the signal is one-shot
	assert.False(t, s.ConsumeScrollSignal())

	// empty titles are ignored
	s.SelectRole("")
	assert.Equal(t, "ML Engineer", s.SelectedRole())
	assert.False(t, s.ConsumeScrollSignal())
}

func TestSelectHorizon(t *testing.T) {
	s := NewStore()
	s.SelectRole("Data Scientist")
	_ = s.ConsumeScrollSignal()

	assert.True(t, s.SelectHorizon(Horizon60))
	assert.Equal(t, Horizon60, s.ActiveHorizon())

	assert.True(t, s.SelectHorizon(Horizon90))
	assert.Equal(t, Horizon90, s.ActiveHorizon())

	// unknown keys are ignored and role selection is untouched
	assert.False(t, s.SelectHorizon("120_days"))
	assert.Equal(t, Horizon90, s.ActiveHorizon())
	assert.Equal(t, "Data Scientist", s.SelectedRole())
}

func TestProcessing_SerializesSubmissions(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Processing())
	assert.True(t, s.BeginProcessing())
	assert.True(t, s.Processing())

	// a second submission is refused while one is in flight
	assert.False(t, s.BeginProcessing())

	s.EndProcessing()
	assert.False(t, s.Processing())
	assert.True(t, s.BeginProcessing())
}

func TestProcessing_ClearedBySetResult(t *testing.T) {
	s := NewStore()
	require.True(t, s.BeginProcessing())

	res := Empty()
	res.RoleRecommendations = []RoleRecommendation{{Title: "Data Analyst"}}
	s.SetResult(res)

	assert.False(t, s.Processing(), "a completed analysis must clear the in-flight flag")
	assert.True(t, s.BeginProcessing())
}

func TestHasAnalysis_SummaryOnlyPayload(t *testing.T) {
	s := NewStore()
	res := Empty()
	res.SummaryText = "You are 60% ready."
	s.SetResult(res)

	assert.True(t, s.HasAnalysis())
}
