// Package result models the analysis payload the dashboard consumes
// and the derived state built from it. The backend's JSON is treated
// as untrusted shape: Decode defaults every field independently so
// the presenters never see nil collections or type errors.
package result

import "math"

// Plan horizon keys as they appear on the wire.
const (
	Horizon30 = "30_days"
	Horizon60 = "60_days"
	Horizon90 = "90_days"
)

// Horizons lists the plan horizons in display order.
var Horizons = []string{Horizon30, Horizon60, Horizon90}

// ATS is the applicant-tracking score block.
type ATS struct {
	Score           float64
	Matched         int
	Total           int
	MatchedKeywords []string
}

// RoleRecommendation is one recommended role.
type RoleRecommendation struct {
	Title     string
	Reason    string
	Readiness float64
}

// PlanResource points at learning material for a plan item.
type PlanResource struct {
	Type  string
	Title string
	URL   string
}

// PlanItem is one task inside a plan horizon.
type PlanItem struct {
	Task           string
	Notes          string
	EstimatedHours float64
	Resources      []PlanResource
}

// Project is a suggested portfolio project.
type Project struct {
	Title       string
	Description string
	TechStack   []string
}

// Chart carries the market chart series.
type Chart struct {
	Salary []float64
	Demand []float64
}

// AnalysisResult is the normalized analysis payload. Every collection
// is non-nil after Decode; a zero AnalysisResult is the valid
// "no analysis yet" state.
type AnalysisResult struct {
	Skills              []string
	ATS                 ATS
	RoleRecommendations []RoleRecommendation
	LearningPlan        map[string][]PlanItem
	Projects            []Project
	MissingSkills       []string
	MatchPercent        float64
	SummaryText         string
	Chart               Chart
}

// Empty returns an AnalysisResult with every collection initialized,
// the state presenters render before any analysis arrives.
func Empty() *AnalysisResult {
	return &AnalysisResult{
		Skills:              []string{},
		ATS:                 ATS{MatchedKeywords: []string{}},
		RoleRecommendations: []RoleRecommendation{},
		LearningPlan:        map[string][]PlanItem{},
		Projects:            []Project{},
		MissingSkills:       []string{},
		Chart:               Chart{Salary: []float64{}, Demand: []float64{}},
	}
}

// ClampScore bounds a score to 0..100 for display. Non-finite values
// clamp to 0 so a bad payload renders as a placeholder, not a crash.
func ClampScore(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
