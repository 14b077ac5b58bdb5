package analysis

import "fmt"

// maxSuggestedProjects caps the project list per analysis.
const maxSuggestedProjects = 3

// SuggestProjects returns the catalog's portfolio projects for the
// target role, or a practice-project fallback when the role carries
// none.
func (c *Catalog) SuggestProjects(targetRole string) []RoleProject {
	roleKey := c.MatchRole(targetRole)
	profile, _ := c.Profile(roleKey)

	out := make([]RoleProject, 0, maxSuggestedProjects)
	for _, p := range profile.Projects {
		if len(out) == maxSuggestedProjects {
			break
		}
		if p.TechStack == nil {
			p.TechStack = []string{}
		}
		out = append(out, p)
	}

	if len(out) == 0 {
		stack := c.SkillsFor(roleKey)
		if len(stack) > 3 {
			stack = stack[:3]
		}
		out = append(out, RoleProject{
			Title:       fmt.Sprintf("%s - Practice Project", roleKey),
			Description: "Build a small project that addresses role fundamentals and document outcomes.",
			TechStack:   stack,
		})
	}
	return out
}
