package analysis

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Chart holds the market series the dashboard renders.
type Chart struct {
	Salary []float64 `json:"salary"`
	Demand []float64 `json:"demand"`
}

// Response is the analysis payload returned to clients. Its JSON
// shape is the contract the dashboard's state store decodes, and it
// matches what an external analysis backend returns in relay mode.
type Response struct {
	Skills              []string         `json:"skills"`
	RoleRecommendations []Recommendation `json:"role_recommendations"`
	LearningPlan        LearningPlan     `json:"learning_plan"`
	ATS                 ATSResult        `json:"ats"`
	Projects            []RoleProject    `json:"projects"`
	MissingSkills       []string         `json:"missing_skills"`
	MatchPercent        int              `json:"match_percent"`
	SummaryText         string           `json:"summary_text"`
	Chart               *Chart           `json:"chart,omitempty"`
	MarketInsights      []MarketInsight  `json:"market_insights,omitempty"`
}

// Request carries everything the engine needs for one analysis.
type Request struct {
	ResumeText     string
	TargetRole     string
	JobDescription string
}

// Analyzer runs the full analysis pipeline.
type Analyzer struct {
	catalog *Catalog
	plans   *PlanGenerator
}

// NewAnalyzer builds an Analyzer around a catalog and plan generator.
func NewAnalyzer(catalog *Catalog, plans *PlanGenerator) *Analyzer {
	if plans == nil {
		plans = NewPlanGenerator(catalog, nil)
	}
	return &Analyzer{catalog: catalog, plans: plans}
}

// Analyze runs skill extraction, then the independent scoring stages
// concurrently, and assembles the response. It never fails on content:
// an empty resume yields an empty-but-valid payload.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Response, error) {
	skills := a.catalog.ExtractSkills(req.ResumeText)

	var (
		ats      ATSResult
		recs     []Recommendation
		plan     LearningPlan
		projects []RoleProject
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ats = a.catalog.ScoreATS(req.ResumeText, req.TargetRole, req.JobDescription)
		return nil
	})
	g.Go(func() error {
		recs = a.catalog.RecommendRoles(skills)
		return nil
	})
	g.Go(func() error {
		plan = a.plans.Generate(gctx, req.TargetRole, skills)
		return nil
	})
	g.Go(func() error {
		projects = a.catalog.SuggestProjects(req.TargetRole)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	targetKey := a.catalog.MatchRole(req.TargetRole)
	matchPercent := a.resolveMatchPercent(targetKey, skills, recs)

	insights := MarketInsights(recs)
	salary, demand := ChartSeries(insights)

	resp := &Response{
		Skills:              skills,
		RoleRecommendations: recs,
		LearningPlan:        plan,
		ATS:                 ats,
		Projects:            projects,
		MissingSkills:       plan.MissingSkills,
		MatchPercent:        matchPercent,
		SummaryText:         BuildSummary(targetKey, matchPercent, plan.MissingSkills),
		MarketInsights:      insights,
	}
	if len(insights) > 0 {
		resp.Chart = &Chart{Salary: salary, Demand: demand}
	}
	return resp, nil
}

// resolveMatchPercent prefers the target role's readiness from the
// recommendations, then direct skill overlap against the catalog,
// then the top recommendation's readiness.
func (a *Analyzer) resolveMatchPercent(targetKey string, skills []string, recs []Recommendation) int {
	for _, r := range recs {
		if strings.EqualFold(r.Title, targetKey) {
			return r.Readiness
		}
	}

	roleSkills := a.catalog.SkillsFor(targetKey)
	if len(roleSkills) > 0 {
		have := make(map[string]bool, len(skills))
		for _, s := range skills {
			have[strings.ToLower(s)] = true
		}
		overlap := 0
		for _, rs := range roleSkills {
			if have[rs] {
				overlap++
			}
		}
		if overlap > 0 {
			return clampScore((overlap*100 + len(roleSkills)/2) / len(roleSkills))
		}
	}

	if len(recs) > 0 {
		return recs[0].Readiness
	}
	return 0
}
