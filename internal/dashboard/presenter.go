package dashboard

import (
	"fmt"

	"github.com/trackmycareer/careertrack/internal/result"
)

// Placeholder copy shown while a section has no data.
const (
	PlaceholderLoading      = "Analyzing your resume..."
	PlaceholderNoPlan       = "Plan for this horizon is not available yet."
	PlaceholderNoProjects   = "Project suggestions will appear after analysis."
	PlaceholderNoRoles      = "Role recommendations will appear after analysis."
	PlaceholderNoSummary    = "Select a role to see your readiness summary."
	PlaceholderInvalidScore = "Score unavailable."
)

// RoleCard is one entry in the roles section.
type RoleCard struct {
	Title     string
	Reason    string
	Readiness float64
	Selected  bool
}

// RolesSection lists the recommended roles.
type RolesSection struct {
	Cards       []RoleCard
	Placeholder string
}

// RadarSection is the detected-skills radar chart.
type RadarSection struct {
	Skills      []string
	Visual      Visual
	Placeholder string
}

// MarketSection holds the salary and demand charts.
type MarketSection struct {
	Salary      Visual
	Demand      Visual
	Placeholder string
}

// ProjectsSection lists suggested portfolio projects.
type ProjectsSection struct {
	Projects    []result.Project
	Placeholder string
}

// ATSSection is the circular ATS gauge plus keyword detail.
type ATSSection struct {
	Score           float64
	Matched         int
	Total           int
	MatchedKeywords []string
	Gauge           Visual
	Placeholder     string
}

// SummarySection describes readiness for the selected role.
type SummarySection struct {
	Role          string
	SummaryText   string
	MatchPercent  float64
	PercentAway   float64
	AwayText      string
	MissingSkills []string
	Placeholder   string
}

// PlanSection shows the active horizon of the learning plan.
type PlanSection struct {
	ActiveHorizon string
	Horizons      []string
	Items         []result.PlanItem
	Placeholder   string
}

// View is the full dashboard view model: a pure function of the
// store's state. Every section carries its own placeholder so the
// first render (before any analysis) shows loading hints instead of a
// blank screen.
type View struct {
	Roles           RolesSection
	Radar           RadarSection
	Market          MarketSection
	Projects        ProjectsSection
	ATS             ATSSection
	Summary         SummarySection
	Plan            PlanSection
	// Processing is true while an upload round-trip is in flight;
	// the front end disables the submit control and shows the
	// loading state off it.
	Processing      bool
	ScrollToSummary bool
}

// Present builds the dashboard view from the store. renderer may be
// nil, in which case the neutral renderer is used.
func Present(store *result.Store, renderer ChartRenderer) View {
	if renderer == nil {
		renderer = NeutralRenderer{}
	}
	res := store.Result()

	view := View{
		Roles:           presentRoles(res, store.SelectedRole()),
		Radar:           presentRadar(res, renderer),
		Market:          presentMarket(res, renderer),
		Projects:        presentProjects(res),
		ATS:             presentATS(res, renderer),
		Summary:         presentSummary(res, store.SelectedRole()),
		Plan:            presentPlan(res, store.ActiveHorizon()),
		Processing:      store.Processing(),
		ScrollToSummary: store.ConsumeScrollSignal(),
	}
	return view
}

func presentRoles(res *result.AnalysisResult, selected string) RolesSection {
	if len(res.RoleRecommendations) == 0 {
		return RolesSection{Cards: []RoleCard{}, Placeholder: PlaceholderNoRoles}
	}
	cards := make([]RoleCard, 0, len(res.RoleRecommendations))
	for _, rec := range res.RoleRecommendations {
		cards = append(cards, RoleCard{
			Title:     rec.Title,
			Reason:    rec.Reason,
			Readiness: result.ClampScore(rec.Readiness),
			Selected:  rec.Title == selected,
		})
	}
	return RolesSection{Cards: cards}
}

func presentRadar(res *result.AnalysisResult, renderer ChartRenderer) RadarSection {
	section := RadarSection{Skills: res.Skills}
	values := make([]float64, len(res.Skills))
	for i := range values {
		values[i] = 1
	}
	section.Visual = renderer.Radar(Dataset{Labels: res.Skills, Values: values})
	if len(res.Skills) == 0 {
		section.Placeholder = PlaceholderLoading
	}
	return section
}

func presentMarket(res *result.AnalysisResult, renderer ChartRenderer) MarketSection {
	labels := make([]string, 0, len(res.RoleRecommendations))
	for _, rec := range res.RoleRecommendations {
		labels = append(labels, rec.Title)
	}
	section := MarketSection{
		Salary: renderer.Bar(Dataset{Labels: labels, Values: res.Chart.Salary}),
		Demand: renderer.Line(Dataset{Labels: labels, Values: res.Chart.Demand}),
	}
	if len(res.Chart.Salary) == 0 && len(res.Chart.Demand) == 0 {
		section.Placeholder = PlaceholderLoading
	}
	return section
}

func presentProjects(res *result.AnalysisResult) ProjectsSection {
	if len(res.Projects) == 0 {
		return ProjectsSection{Projects: []result.Project{}, Placeholder: PlaceholderNoProjects}
	}
	return ProjectsSection{Projects: res.Projects}
}

func presentATS(res *result.AnalysisResult, renderer ChartRenderer) ATSSection {
	score := result.ClampScore(res.ATS.Score)
	section := ATSSection{
		Score:           score,
		Matched:         res.ATS.Matched,
		Total:           res.ATS.Total,
		MatchedKeywords: res.ATS.MatchedKeywords,
		Gauge:           renderer.Gauge(score),
	}
	if res.ATS.Total == 0 {
		section.Placeholder = PlaceholderLoading
	}
	return section
}

func presentSummary(res *result.AnalysisResult, selected string) SummarySection {
	match := result.ClampScore(res.MatchPercent)
	away := 100 - match
	section := SummarySection{
		Role:          selected,
		SummaryText:   res.SummaryText,
		MatchPercent:  match,
		PercentAway:   away,
		AwayText:      fmt.Sprintf("%.0f%% away from dream job", away),
		MissingSkills: res.MissingSkills,
	}
	if selected == "" && res.SummaryText == "" {
		section.Placeholder = PlaceholderNoSummary
	}
	return section
}

func presentPlan(res *result.AnalysisResult, activeHorizon string) PlanSection {
	section := PlanSection{
		ActiveHorizon: activeHorizon,
		Horizons:      result.Horizons,
		Items:         []result.PlanItem{},
	}
	items, ok := res.LearningPlan[activeHorizon]
	if !ok || len(items) == 0 {
		section.Placeholder = PlaceholderNoPlan
		return section
	}
	section.Items = items
	return section
}
