package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// maxExtractedSkills caps the skill list returned to callers.
const maxExtractedSkills = 200

// languageTokenRe catches language names that word-boundary matching
// misses (c++, c#) or that are too short for the token scan (go, r).
var languageTokenRe = regexp.MustCompile(`c\+\+|c#|\bjava\b|\bpython\b|\bruby\b|\bgo\b|\brust\b|\btypescript\b`)

// ExtractSkills detects the catalog's skills in resume text.
// Multi-word phrases are matched first (longest first), then language
// tokens, then a fuzzy token scan against the master skill list.
func (c *Catalog) ExtractSkills(resumeText string) []string {
	txt := NormalizeText(resumeText)
	if txt == "" {
		return []string{}
	}

	found := make(map[string]bool)

	phrases := make([]string, len(c.master))
	copy(phrases, c.master)
	sort.Slice(phrases, func(i, j int) bool { return len(phrases[i]) > len(phrases[j]) })
	for _, phrase := range phrases {
		if len(phrase) < 2 {
			continue
		}
		if containsWord(txt, phrase) {
			if canonical, ok := aliases[phrase]; ok {
				found[canonical] = true
			} else {
				found[phrase] = true
			}
		}
	}

	for _, tok := range languageTokenRe.FindAllString(strings.ToLower(resumeText), -1) {
		found[tok] = true
	}

	masterSet := make(map[string]bool, len(c.master))
	for _, m := range c.master {
		masterSet[m] = true
	}
	for _, t := range uniqueTokens(txt) {
		if canonical, ok := aliases[t]; ok {
			found[canonical] = true
			continue
		}
		if masterSet[t] {
			found[t] = true
			continue
		}
		if close := closestMatch(t, c.master, 0.86); close != "" {
			found[close] = true
		}
	}

	return readableSkills(found)
}

// techCasing holds tokens whose conventional casing differs from
// simple capitalization.
var techCasing = map[string]string{
	"c++": "c++", "c#": "c#",
	"python": "Python", "java": "Java", "javascript": "Javascript",
	"sql": "Sql", "react": "React", "node": "Node",
}

// readableSkills renders the detected skill set as a sorted,
// display-cased, capped list.
func readableSkills(found map[string]bool) []string {
	keys := make([]string, 0, len(found))
	for s := range found {
		keys = append(keys, s)
	}
	sort.Strings(keys)

	readable := make([]string, 0, len(keys))
	for _, s := range keys {
		if cased, ok := techCasing[s]; ok {
			readable = append(readable, cased)
			continue
		}
		if !strings.Contains(s, " ") && s == strings.ToLower(s) {
			readable = append(readable, capitalize(s))
		} else {
			readable = append(readable, s)
		}
	}
	if len(readable) > maxExtractedSkills {
		readable = readable[:maxExtractedSkills]
	}
	return readable
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
