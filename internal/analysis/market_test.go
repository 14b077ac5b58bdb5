package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketInsights(t *testing.T) {
	recs := []Recommendation{
		{Title: "Data Scientist"},
		{Title: "Data Analyst"},
	}

	insights := MarketInsights(recs)
	require.Len(t, insights, 2)
	for i, in := range insights {
		assert.Equal(t, recs[i].Title, in.Role)
		assert.GreaterOrEqual(t, in.DemandScore, 50)
		assert.LessOrEqual(t, in.DemandScore, 100)
		assert.GreaterOrEqual(t, in.AverageSalaryLPA, 4)
		assert.LessOrEqual(t, in.AverageSalaryLPA, 16)
	}

	// same role, same numbers
	again := MarketInsights(recs)
	assert.Equal(t, insights, again)
}

func TestMarketInsights_Empty(t *testing.T) {
	insights := MarketInsights(nil)
	assert.NotNil(t, insights)
	assert.Empty(t, insights)
}

func TestChartSeries(t *testing.T) {
	insights := []MarketInsight{
		{Role: "A", DemandScore: 70, AverageSalaryLPA: 8},
		{Role: "B", DemandScore: 90, AverageSalaryLPA: 12},
	}

	salary, demand := ChartSeries(insights)
	assert.Equal(t, []float64{8, 12}, salary)
	assert.Equal(t, []float64{70, 90}, demand)

	salary, demand = ChartSeries(nil)
	assert.NotNil(t, salary)
	assert.NotNil(t, demand)
}
