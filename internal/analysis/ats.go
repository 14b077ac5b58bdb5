package analysis

import (
	"sort"
	"strings"
)

// ATSResult is the applicant-tracking compatibility estimate for a
// resume against a role's keyword set.
type ATSResult struct {
	Score           int      `json:"ats_score"`
	Matched         int      `json:"matched"`
	Total           int      `json:"total"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// jobDescriptionKeywordCap limits how many job-description tokens
// augment the role keyword set.
const jobDescriptionKeywordCap = 30

// ScoreATS computes the ATS score for resume text against a target
// role. Core role skills weigh 1.2, job-description keywords 1.0; a
// small boost applies when several core skills match. The score is
// clamped to 0..100.
func (c *Catalog) ScoreATS(resumeText, targetRole, jobDescription string) ATSResult {
	txt := NormalizeText(resumeText)
	roleKey := c.MatchRole(targetRole)

	roleSkills := make(map[string]bool)
	for _, s := range c.SkillsFor(roleKey) {
		roleSkills[s] = true
	}

	keywords := make(map[string]bool, len(roleSkills))
	for s := range roleSkills {
		keywords[s] = true
	}
	for _, t := range topJobDescriptionTokens(jobDescription) {
		keywords[t] = true
	}
	if len(keywords) == 0 {
		for _, s := range []string{"python", "sql", "javascript", "git"} {
			keywords[s] = true
		}
	}

	matched := make(map[string]bool)
	weight := 0.0
	for kw := range keywords {
		switch {
		case containsWord(txt, kw):
			matched[kw] = true
			if roleSkills[kw] {
				weight += 1.2
			} else {
				weight += 1.0
			}
		case strings.Contains(txt, kw):
			// substring fallback for compound tokens (c++, ci/cd)
			matched[kw] = true
			weight += 1.0
		}
	}

	total := len(keywords)
	score := clampScore(int(weight/float64(total)*100 + 0.5))

	matchedCore := 0
	for kw := range matched {
		if roleSkills[kw] {
			matchedCore++
		}
	}
	coreThreshold := len(roleSkills) / 4
	if coreThreshold > 3 {
		coreThreshold = 3
	}
	if coreThreshold < 1 {
		coreThreshold = 1
	}
	if matchedCore >= coreThreshold {
		score = clampScore(score + 3)
	}

	matchedList := make([]string, 0, len(matched))
	for kw := range matched {
		matchedList = append(matchedList, kw)
	}
	sort.Strings(matchedList)

	return ATSResult{
		Score:           score,
		Matched:         len(matched),
		Total:           total,
		MatchedKeywords: matchedList,
	}
}

// topJobDescriptionTokens returns the most frequent tokens of a job
// description, capped, for keyword augmentation.
func topJobDescriptionTokens(jobDescription string) []string {
	if jobDescription == "" {
		return nil
	}
	freq := make(map[string]int)
	for _, t := range tokenize(NormalizeText(jobDescription)) {
		freq[t]++
	}
	tokens := make([]string, 0, len(freq))
	for t := range freq {
		tokens = append(tokens, t)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if freq[tokens[i]] != freq[tokens[j]] {
			return freq[tokens[i]] > freq[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})
	if len(tokens) > jobDescriptionKeywordCap {
		tokens = tokens[:jobDescriptionKeywordCap]
	}
	return tokens
}

// clampScore bounds a score to the displayable 0..100 range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
