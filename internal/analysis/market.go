package analysis

import "hash/fnv"

// MarketInsight is a deterministic demand/salary estimate for a role.
// Values derive from a hash of the title so the same role always
// charts the same; real market data is an external concern.
type MarketInsight struct {
	Role             string `json:"role"`
	DemandScore      int    `json:"demand_score"`       // 50-100
	AverageSalaryLPA int    `json:"average_salary_lpa"` // 4-16
}

// MarketInsights produces one insight per recommended role.
func MarketInsights(recs []Recommendation) []MarketInsight {
	out := make([]MarketInsight, 0, len(recs))
	for _, r := range recs {
		out = append(out, MarketInsight{
			Role:             r.Title,
			DemandScore:      int(stableHash(r.Title)%50) + 50,
			AverageSalaryLPA: int(stableHash(reverse(r.Title))%12) + 4,
		})
	}
	return out
}

// ChartSeries converts insights into the salary and demand series the
// dashboard charts consume, in recommendation order.
func ChartSeries(insights []MarketInsight) (salary, demand []float64) {
	salary = make([]float64, 0, len(insights))
	demand = make([]float64, 0, len(insights))
	for _, in := range insights {
		salary = append(salary, float64(in.AverageSalaryLPA))
		demand = append(demand, float64(in.DemandScore))
	}
	return salary, demand
}

func stableHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
