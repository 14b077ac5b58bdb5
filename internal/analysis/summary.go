package analysis

import (
	"fmt"
	"strings"
)

// BuildSummary renders the one-paragraph readiness summary. The match
// percent selects the tone band; lower bands name the top missing
// skills to close.
func BuildSummary(targetRole string, matchPercent int, missingSkills []string) string {
	switch {
	case matchPercent >= 95:
		return fmt.Sprintf("You are exceptionally well matched (%d%%) for %s - highlight these strengths on your resume.",
			matchPercent, targetRole)
	case matchPercent >= 70:
		return fmt.Sprintf("You are %d%% ready for %s. Focus on the missing skills to reach a hiring-ready level.",
			matchPercent, targetRole)
	case matchPercent >= 40:
		return fmt.Sprintf("You are %d%% ready for %s. You have a solid base but need to close gaps in: %s.",
			matchPercent, targetRole, topMissingList(missingSkills, "core skills"))
	default:
		return fmt.Sprintf("You are %d%% ready for %s. Prioritize learning: %s.",
			matchPercent, targetRole, topMissingList(missingSkills, "core fundamentals"))
	}
}

func topMissingList(missing []string, fallback string) string {
	if len(missing) == 0 {
		return fallback
	}
	if len(missing) > 5 {
		missing = missing[:5]
	}
	return strings.Join(missing, ", ")
}
