package schemas

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackmycareer/careertrack/internal/analysis"
)

const validPayload = `{
	"skills": ["Python"],
	"ats": {"ats_score": 78, "matched": 6, "total": 10, "matched_keywords": ["python"]},
	"role_recommendations": [{"title": "Data Scientist", "reason": "match", "readiness": 72}],
	"learning_plan": {"30_days": [{"task": "Learn Pandas", "estimated_hours": 15}]},
	"projects": [{"title": "Churn Model", "description": "classifier"}],
	"missing_skills": ["Pandas"],
	"match_percent": 60,
	"summary_text": "ready"
}`

func TestCheckAnalysisResult_Valid(t *testing.T) {
	assert.NoError(t, CheckAnalysisResult([]byte(validPayload)))
}

func TestCheckAnalysisResult_MissingRequiredField(t *testing.T) {
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPayload), &payload))
	delete(payload, "summary_text")
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	err = CheckAnalysisResult(raw)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "summary_text")
}

func TestCheckAnalysisResult_OutOfRangeScore(t *testing.T) {
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPayload), &payload))
	payload["match_percent"] = 130
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	err = CheckAnalysisResult(raw)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
}

func TestCheckAnalysisResult_NotJSON(t *testing.T) {
	assert.Error(t, CheckAnalysisResult([]byte("not json")))
}

func TestEngineOutputConforms(t *testing.T) {
	catalog := analysis.DefaultCatalog()
	a := analysis.NewAnalyzer(catalog, analysis.NewPlanGenerator(catalog, nil))

	resp, err := a.Analyze(context.Background(), analysis.Request{
		ResumeText: "Python, SQL, pandas and statistics experience.",
		TargetRole: "Data Analyst",
	})
	require.NoError(t, err)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NoError(t, CheckAnalysisResult(raw))
}
