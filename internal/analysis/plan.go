package analysis

import (
	"fmt"
	"strings"
)

// Plan-horizon keys used by the learning plan and the dashboard.
const (
	Horizon30 = "30_days"
	Horizon60 = "60_days"
	Horizon90 = "90_days"
)

// Horizons lists the plan horizons in order.
var Horizons = []string{Horizon30, Horizon60, Horizon90}

// PlanResource points at learning material for a plan item.
type PlanResource struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Hours int    `json:"hours,omitempty"`
}

// PlanItem is one task inside a plan horizon.
type PlanItem struct {
	Task           string         `json:"task"`
	EstimatedHours int            `json:"estimated_hours,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Resources      []PlanResource `json:"resources,omitempty"`
}

// ScheduleEntry describes the suggested daily study rhythm.
type ScheduleEntry struct {
	DayRange  string `json:"day_range"`
	Morning   string `json:"morning,omitempty"`
	Afternoon string `json:"afternoon,omitempty"`
	Evening   string `json:"evening,omitempty"`
}

// LearningPlan is the 30/60/90-day roadmap toward a role.
type LearningPlan struct {
	Days30        []PlanItem      `json:"30_days"`
	Days60        []PlanItem      `json:"60_days"`
	Days90        []PlanItem      `json:"90_days"`
	DailySchedule []ScheduleEntry `json:"daily_schedule"`
	MissingSkills []string        `json:"missing_skills"`
}

// MissingSkills returns the role's skills the candidate does not have,
// in catalog order, title-cased for display.
func (c *Catalog) MissingSkills(targetRole string, skills []string) []string {
	roleKey := c.MatchRole(targetRole)
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[strings.ToLower(s)] = true
	}
	missing := []string{}
	for _, rs := range c.SkillsFor(roleKey) {
		if !have[rs] {
			missing = append(missing, titleCase(rs))
		}
	}
	return missing
}

// BuildLearningPlan produces a deterministic 30/60/90-day plan: core
// learning for the top missing skills first, integration projects at
// 60 days, portfolio and interview prep at 90.
func (c *Catalog) BuildLearningPlan(targetRole string, skills []string) LearningPlan {
	missing := c.MissingSkills(targetRole, skills)

	plan := LearningPlan{
		Days30:        []PlanItem{},
		Days60:        []PlanItem{},
		Days90:        []PlanItem{},
		MissingSkills: missing,
	}

	topMissing := missing
	if len(topMissing) > 3 {
		topMissing = topMissing[:3]
	}
	if len(topMissing) == 0 {
		plan.Days30 = append(plan.Days30, PlanItem{
			Task:           "Polish fundamentals & build a small practice project",
			EstimatedHours: 25,
			Notes:          "Consolidate core knowledge and document work.",
			Resources: []PlanResource{
				{Type: "YouTube", Title: "Crash course (free)", Hours: 6},
			},
		})
	} else {
		for _, m := range topMissing {
			plan.Days30 = append(plan.Days30, PlanItem{
				Task:           fmt.Sprintf("Learn core of %s", m),
				EstimatedHours: 15,
				Notes:          fmt.Sprintf("Hands-on exercises and tutorials focused on %s", m),
				Resources: []PlanResource{
					{Type: "YouTube", Title: fmt.Sprintf("%s - Intro (free)", m), Hours: 4},
				},
			})
		}
	}

	plan.Days60 = append(plan.Days60, PlanItem{
		Task:           "Build 1-2 small projects integrating 30-day learnings",
		EstimatedHours: 40,
		Notes:          "Push to GitHub and write READMEs.",
		Resources: []PlanResource{
			{Type: "Kaggle/Medium", Title: "Project tutorials", Hours: 20},
		},
	})

	plan.Days90 = append(plan.Days90, PlanItem{
		Task:           "Polish portfolio & interview prep",
		EstimatedHours: 40,
		Notes:          "Mock interviews and polish README + demo video.",
		Resources: []PlanResource{
			{Type: "Platform", Title: "Mock interviews", Hours: 15},
		},
	})

	plan.DailySchedule = []ScheduleEntry{
		{DayRange: "Mon-Fri", Morning: "1h theory", Afternoon: "2h hands-on", Evening: "1h revision"},
		{DayRange: "Weekend", Morning: "3h project", Afternoon: "2h practice"},
	}

	return plan
}
