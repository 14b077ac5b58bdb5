package analysis

import (
	"fmt"
	"sort"
	"strings"
)

// Recommendation is one suggested role with a readiness estimate.
type Recommendation struct {
	Title         string   `json:"title"`
	Readiness     int      `json:"readiness"`
	Reason        string   `json:"reason"`
	MatchedSkills []string `json:"matched_skills"`
}

// topRecommendations is how many roles RecommendRoles returns.
const topRecommendations = 4

// domainKeywords groups roles and skills into domains so that a
// resume full of frontend skills does not surface AR/VR roles.
var domainKeywords = map[string][]string{
	"ar/vr":    {"unity", "unreal", "xr", "vr", "3d", "oculus", "arcore", "arkit"},
	"frontend": {"javascript", "react", "typescript", "html", "css", "tailwind", "vue"},
	"backend":  {"python", "node", "java", "sql", "api", "fastapi", "express"},
	"data":     {"sql", "pandas", "numpy", "statistics", "tableau", "power bi"},
	"devops":   {"docker", "kubernetes", "ci/cd", "terraform", "linux"},
	"mobile":   {"kotlin", "swift", "flutter", "react native"},
	"security": {"penetration", "owasp", "security", "nist"},
	"cloud":    {"aws", "gcp", "azure", "serverless"},
}

const (
	inDomainBoost      = 10
	outOfDomainPenalty = 25
)

// RecommendRoles scores every catalog role against the detected
// skills and returns the top roles by readiness. Matching combines
// exact skill hits with a strict fuzzy pass (ratio > 0.88 on tokens
// longer than 4); roles outside the resume's detected domains take a
// heavy penalty so unrelated roles never outrank in-domain ones.
func (c *Catalog) RecommendRoles(skills []string) []Recommendation {
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[strings.ToLower(s)] = true
	}

	detected := detectDomains(have)

	recs := make([]Recommendation, 0, len(c.keys))
	for _, role := range c.keys {
		roleSkills := c.SkillsFor(role)
		if len(roleSkills) == 0 {
			continue
		}

		var exact []string
		for _, rs := range roleSkills {
			if have[rs] {
				exact = append(exact, rs)
			}
		}

		fuzzy := 0
		for _, rs := range roleSkills {
			if len(rs) <= 4 {
				continue
			}
			for s := range have {
				if len(s) > 4 && !have[rs] && similarity(rs, s) > 0.88 {
					fuzzy++
					break
				}
			}
		}

		total := len(exact) + fuzzy
		readiness := clampScore(total * 100 / len(roleSkills))
		if detected[roleDomain(role)] {
			readiness += inDomainBoost
		} else {
			readiness -= outOfDomainPenalty
		}
		readiness = clampScore(readiness)

		sort.Strings(exact)
		matchedTitles := make([]string, len(exact))
		for i, s := range exact {
			matchedTitles[i] = titleCase(s)
		}

		recs = append(recs, Recommendation{
			Title:         role,
			Readiness:     readiness,
			Reason:        fmt.Sprintf("Matched %d / %d key skills", total, len(roleSkills)),
			MatchedSkills: matchedTitles,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Readiness != recs[j].Readiness {
			return recs[i].Readiness > recs[j].Readiness
		}
		return recs[i].Title < recs[j].Title
	})
	if len(recs) > topRecommendations {
		recs = recs[:topRecommendations]
	}
	return recs
}

// detectDomains finds which skill domains the resume covers.
// Resumes with no recognizable domain map to "general".
func detectDomains(have map[string]bool) map[string]bool {
	detected := make(map[string]bool)
	for domain, keys := range domainKeywords {
		for _, k := range keys {
			if have[k] {
				detected[domain] = true
				break
			}
		}
	}
	if len(detected) == 0 {
		detected["general"] = true
	}
	return detected
}

// roleDomain classifies a role title by scanning the domain skill
// keywords against it; titles matching none are "general", which
// pairs with detectDomains' general fallback: general roles take the
// boost only when the resume detected no domain at all. Domains are
// scanned in sorted order so titles that could match several always
// resolve the same way.
func roleDomain(role string) string {
	r := strings.ToLower(role)
	domains := make([]string, 0, len(domainKeywords))
	for d := range domainKeywords {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	for _, domain := range domains {
		for _, k := range domainKeywords[domain] {
			if strings.Contains(r, k) {
				return domain
			}
		}
	}
	return "general"
}

// titleCase uppercases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
