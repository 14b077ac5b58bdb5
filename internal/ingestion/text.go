// Package ingestion turns uploaded resumes (PDF, DOCX, plain text or
// pasted text) into cleaned plain text for the analysis engine.
package ingestion

import (
	"regexp"
	"strings"
)

var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// unicodeReplacements maps typographic characters that PDF extractors
// emit to their plain-text equivalents.
var unicodeReplacements = map[string]string{
	"–": "-", // en dash
	"—": "-", // em dash
	"•": "*", // bullet
}

// CleanText normalizes resume text: CRLF to LF, typographic dashes and
// bullets to ASCII, trailing whitespace stripped per line, and runs of
// blank lines collapsed to one.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	for from, to := range unicodeReplacements {
		content = strings.ReplaceAll(content, from, to)
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")
	content = blankLinesRe.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

// PreferLonger picks between pasted text and text extracted from an
// uploaded file: the file wins unless the pasted text is longer,
// which usually means the file extraction came back near-empty.
func PreferLonger(pasted, extracted string) string {
	if pasted != "" && len(pasted) > len(extracted) {
		return pasted
	}
	if extracted != "" {
		return extracted
	}
	return pasted
}
