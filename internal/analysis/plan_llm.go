package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/trackmycareer/careertrack/internal/llm"
)

const planPromptTemplate = `Create a COMPLETE 30 / 60 / 90 day learning plan for:

Role: %s
Skills: %s

Return JSON with exactly these keys:
{
  "30_days": [{"task": "...", "estimated_hours": 20, "notes": "...",
               "resources": [{"type": "free", "title": "...", "url": "https://"}]}],
  "60_days": [...],
  "90_days": [...],
  "daily_schedule": [{"day_range": "Mon-Fri", "morning": "...", "afternoon": "...", "evening": "..."}]
}`

// PlanGenerator builds learning plans, preferring an LLM when one is
// configured and always falling back to the deterministic plan.
type PlanGenerator struct {
	catalog *Catalog
	client  llm.Client
}

// NewPlanGenerator returns a generator. client may be nil, in which
// case only the deterministic plan is produced.
func NewPlanGenerator(catalog *Catalog, client llm.Client) *PlanGenerator {
	return &PlanGenerator{catalog: catalog, client: client}
}

// Generate returns the learning plan for the role and skills. LLM
// failures degrade silently to the deterministic plan; missing skills
// always come from the catalog so the dashboard's gap list stays
// consistent with the ATS view.
func (g *PlanGenerator) Generate(ctx context.Context, targetRole string, skills []string) LearningPlan {
	fallback := g.catalog.BuildLearningPlan(targetRole, skills)
	if g.client == nil {
		return fallback
	}

	prompt := fmt.Sprintf(planPromptTemplate, targetRole, strings.Join(skills, ", "))
	raw, err := g.client.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("[analysis] LLM plan generation failed, using deterministic plan: %v", err)
		return fallback
	}

	var plan LearningPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		log.Printf("[analysis] LLM plan was not valid JSON, using deterministic plan: %v", err)
		return fallback
	}
	if len(plan.Days30) == 0 && len(plan.Days60) == 0 && len(plan.Days90) == 0 {
		return fallback
	}

	if plan.Days30 == nil {
		plan.Days30 = []PlanItem{}
	}
	if plan.Days60 == nil {
		plan.Days60 = []PlanItem{}
	}
	if plan.Days90 == nil {
		plan.Days90 = []PlanItem{}
	}
	plan.MissingSkills = fallback.MissingSkills
	return plan
}
