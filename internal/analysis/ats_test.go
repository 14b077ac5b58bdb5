package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreATS(t *testing.T) {
	c := DefaultCatalog()

	res := c.ScoreATS("python sql pandas", "Data Analyst", "")

	// 3 core hits at weight 1.2 over 10 keywords, plus the core boost
	assert.Equal(t, 39, res.Score)
	assert.Equal(t, 3, res.Matched)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, []string{"pandas", "python", "sql"}, res.MatchedKeywords)
}

func TestScoreATS_StrongerResumeScoresHigher(t *testing.T) {
	c := DefaultCatalog()

	weak := c.ScoreATS("python", "Data Analyst", "")
	strong := c.ScoreATS("python sql pandas excel tableau statistics etl", "Data Analyst", "")

	assert.Greater(t, strong.Score, weak.Score)
	assert.Greater(t, strong.Matched, weak.Matched)
}

func TestScoreATS_JobDescriptionAugmentsKeywords(t *testing.T) {
	c := DefaultCatalog()

	jd := "Looking for warehouse experience. Warehouse modeling, warehouse design."
	res := c.ScoreATS("python sql", "Data Analyst", jd)

	// the job description adds tokens beyond the role's 10 skills
	assert.Greater(t, res.Total, 10)
	assert.NotContains(t, res.MatchedKeywords, "warehouse")

	withHit := c.ScoreATS("python sql warehouse", "Data Analyst", jd)
	assert.Contains(t, withHit.MatchedKeywords, "warehouse")
}

func TestScoreATS_EmptyResume(t *testing.T) {
	c := DefaultCatalog()

	res := c.ScoreATS("", "Data Analyst", "")
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 10, res.Total)
	assert.Empty(t, res.MatchedKeywords)
}

func TestScoreATS_ScoreBounds(t *testing.T) {
	c := DefaultCatalog()

	full := "python sql pandas excel tableau power bi data visualization statistics data cleaning etl"
	res := c.ScoreATS(full, "Data Analyst", "")

	require.LessOrEqual(t, res.Score, 100)
	require.GreaterOrEqual(t, res.Score, 0)
	assert.Equal(t, 10, res.Matched)
}

func TestClampScoreInt(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 0, clampScore(0))
	assert.Equal(t, 57, clampScore(57))
	assert.Equal(t, 100, clampScore(100))
	assert.Equal(t, 100, clampScore(130))
}
