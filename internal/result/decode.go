package result

import (
	"encoding/json"
	"fmt"
	"math"
)

// Decode normalizes a raw analysis payload. Fields with the wrong
// runtime shape degrade to their documented defaults rather than
// failing the whole payload; only unparseable JSON is an error.
func Decode(data []byte) (*AnalysisResult, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("analysis payload is not a JSON object: %w", err)
	}
	return FromMap(raw), nil
}

// FromMap normalizes an already-unmarshaled payload. A nil map yields
// the empty result.
func FromMap(raw map[string]any) *AnalysisResult {
	res := Empty()
	if raw == nil {
		return res
	}

	res.Skills = asStringSlice(raw["skills"])
	res.MissingSkills = asStringSlice(raw["missing_skills"])
	res.MatchPercent = asNumber(raw["match_percent"])
	res.SummaryText = asString(raw["summary_text"])

	if ats, ok := raw["ats"].(map[string]any); ok {
		res.ATS = ATS{
			Score:           asNumber(ats["ats_score"]),
			Matched:         int(asNumber(ats["matched"])),
			Total:           int(asNumber(ats["total"])),
			MatchedKeywords: asStringSlice(ats["matched_keywords"]),
		}
	}

	if recs, ok := raw["role_recommendations"].([]any); ok {
		for _, r := range recs {
			rec, ok := r.(map[string]any)
			if !ok {
				continue
			}
			res.RoleRecommendations = append(res.RoleRecommendations, RoleRecommendation{
				Title:     asString(rec["title"]),
				Reason:    asString(rec["reason"]),
				Readiness: asNumber(rec["readiness"]),
			})
		}
	}

	if plan, ok := raw["learning_plan"].(map[string]any); ok {
		for _, horizon := range Horizons {
			items, ok := plan[horizon].([]any)
			if !ok {
				continue
			}
			decoded := make([]PlanItem, 0, len(items))
			for _, it := range items {
				item, ok := it.(map[string]any)
				if !ok {
					continue
				}
				decoded = append(decoded, decodePlanItem(item))
			}
			res.LearningPlan[horizon] = decoded
		}
	}

	if projects, ok := raw["projects"].([]any); ok {
		for _, p := range projects {
			proj, ok := p.(map[string]any)
			if !ok {
				continue
			}
			res.Projects = append(res.Projects, Project{
				Title:       asString(proj["title"]),
				Description: asString(proj["description"]),
				TechStack:   asStringSlice(proj["tech_stack"]),
			})
		}
	}

	if chart, ok := raw["chart"].(map[string]any); ok {
		res.Chart = Chart{
			Salary: asNumberSlice(chart["salary"]),
			Demand: asNumberSlice(chart["demand"]),
		}
	}

	return res
}

func decodePlanItem(item map[string]any) PlanItem {
	out := PlanItem{
		Task:           asString(item["task"]),
		Notes:          asString(item["notes"]),
		EstimatedHours: asNumber(item["estimated_hours"]),
		Resources:      []PlanResource{},
	}
	if resources, ok := item["resources"].([]any); ok {
		for _, r := range resources {
			resource, ok := r.(map[string]any)
			if !ok {
				continue
			}
			out.Resources = append(out.Resources, PlanResource{
				Type:  asString(resource["type"]),
				Title: asString(resource["title"]),
				URL:   asString(resource["url"]),
			})
		}
	}
	return out
}

// asString returns v as a string, or "" for any other shape.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asNumber returns v as a finite float64, or 0 for any other shape.
func asNumber(v any) float64 {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// asStringSlice returns the string elements of v, skipping anything
// that isn't a string. Never nil.
func asStringSlice(v any) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// asNumberSlice returns the numeric elements of v. Never nil.
func asNumberSlice(v any) []float64 {
	out := []float64{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, it := range items {
		if f, ok := it.(float64); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			out = append(out, f)
		}
	}
	return out
}
