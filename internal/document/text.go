package document

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
)

// NormalizeText cleans extracted document text while preserving its line
// structure. Postings rely on bullet lists and section breaks, so lines
// are kept; only trailing whitespace, repeated spaces, and runs of blank
// lines are collapsed.
func NormalizeText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses repeated spaces but keeps leading indentation so
// nested bullet lists survive.
func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := innerSpaceRe.ReplaceAllString(strings.TrimRight(trimmed, " \t"), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}
