package analysis

import (
	"regexp"
	"strings"
)

var (
	separatorRe = regexp.MustCompile(`[\r\n\t,;|]+`)
	// keep +, #, -, . and ' so tokens like c++, c#, ci/cd survive
	punctRe      = regexp.MustCompile(`[^\w\s+#\-.']`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	tokenRe      = regexp.MustCompile(`[a-zA-Z0-9+#]{3,}`)
)

// NormalizeText lowercases text and collapses separators and stray
// punctuation so keyword matching sees a single-space token stream.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	txt := strings.ToLower(text)
	txt = separatorRe.ReplaceAllString(txt, " ")
	txt = punctRe.ReplaceAllString(txt, " ")
	txt = whitespaceRe.ReplaceAllString(txt, " ")
	return strings.TrimSpace(txt)
}

// tokenize returns the alphanumeric tokens (length >= 3) of text.
func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// uniqueTokens returns the deduplicated tokens of text in first-seen order.
func uniqueTokens(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tokenize(text) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// containsWord reports whether text contains word on word boundaries.
// Compound tokens like c++ defeat \b anchoring; callers that need them
// fall back to substring matching.
func containsWord(text, word string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return strings.Contains(text, word)
	}
	return re.MatchString(text)
}
