package analysis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataResume = `Data professional with 4 years of experience. Built ETL
pipelines in Python and SQL, analyzed datasets with pandas and numpy,
trained models with scikit-learn and presented statistics to stakeholders.`

func newTestAnalyzer() *Analyzer {
	catalog := DefaultCatalog()
	return NewAnalyzer(catalog, NewPlanGenerator(catalog, nil))
}

func TestAnalyze(t *testing.T) {
	a := newTestAnalyzer()

	resp, err := a.Analyze(context.Background(), Request{
		ResumeText: dataResume,
		TargetRole: "Data Scientist",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Contains(t, resp.Skills, "Python")
	assert.Contains(t, resp.Skills, "Sql")
	assert.NotEmpty(t, resp.RoleRecommendations)
	assert.NotEmpty(t, resp.LearningPlan.Days30)
	assert.Greater(t, resp.ATS.Score, 0)
	assert.NotEmpty(t, resp.Projects)
	assert.NotEmpty(t, resp.SummaryText)
	assert.Equal(t, resp.LearningPlan.MissingSkills, resp.MissingSkills)

	require.NotNil(t, resp.Chart)
	assert.Len(t, resp.Chart.Salary, len(resp.RoleRecommendations))
	assert.Len(t, resp.Chart.Demand, len(resp.RoleRecommendations))
	assert.Len(t, resp.MarketInsights, len(resp.RoleRecommendations))
}

func TestAnalyze_MatchPercentFromTargetRecommendation(t *testing.T) {
	a := newTestAnalyzer()

	resp, err := a.Analyze(context.Background(), Request{
		ResumeText: dataResume,
		TargetRole: "Data Scientist",
	})
	require.NoError(t, err)

	var target *Recommendation
	for i := range resp.RoleRecommendations {
		if resp.RoleRecommendations[i].Title == "Data Scientist" {
			target = &resp.RoleRecommendations[i]
			break
		}
	}
	require.NotNil(t, target, "the target role should be recommended for this resume")
	assert.Equal(t, target.Readiness, resp.MatchPercent)
}

func TestAnalyze_EmptyResume(t *testing.T) {
	a := newTestAnalyzer()

	resp, err := a.Analyze(context.Background(), Request{
		ResumeText: "",
		TargetRole: "Data Analyst",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotNil(t, resp.Skills)
	assert.Empty(t, resp.Skills)
	assert.NotEmpty(t, resp.RoleRecommendations)
	assert.NotEmpty(t, resp.SummaryText)
	assert.GreaterOrEqual(t, resp.MatchPercent, 0)
	assert.LessOrEqual(t, resp.MatchPercent, 100)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer()
	req := Request{ResumeText: dataResume, TargetRole: "Data Analyst"}

	first, err := a.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_WireShape(t *testing.T) {
	a := newTestAnalyzer()

	resp, err := a.Analyze(context.Background(), Request{
		ResumeText: dataResume,
		TargetRole: "Data Scientist",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{
		"skills", "role_recommendations", "learning_plan", "ats",
		"projects", "missing_skills", "match_percent", "summary_text", "chart",
	} {
		assert.Contains(t, decoded, key)
	}

	plan, ok := decoded["learning_plan"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, plan, "30_days")
	assert.Contains(t, plan, "60_days")
	assert.Contains(t, plan, "90_days")

	ats, ok := decoded["ats"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, ats, "ats_score")
}
