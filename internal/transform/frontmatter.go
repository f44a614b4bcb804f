package transform

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractTitle finds a leading heading (the first non-blank line starting
// with "# "), removes it together with any immediately following blank
// lines, and returns its trimmed text as the title.
func extractTitle(text string) (string, string) {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		after, ok := strings.CutPrefix(trimmed, "# ")
		if !ok {
			break
		}

		rest := i + 1
		for rest < len(lines) && strings.TrimSpace(lines[rest]) == "" {
			rest++
		}

		remaining := append(lines[:i:i], lines[rest:]...)
		return strings.TrimSpace(after), strings.Join(remaining, "\n")
	}

	return "", text
}

// assemble produces the final document: an optional frontmatter block,
// the import declarations separated from the body by a blank line, then
// the body.
func assemble(title string, description string, imports []string, body string) string {
	var b strings.Builder

	if title != "" || description != "" {
		b.WriteString("---\n")
		if title != "" {
			fmt.Fprintf(&b, "title: %s\n", frontmatterValue(title))
		}
		if description != "" {
			fmt.Fprintf(&b, "description: %s\n", frontmatterValue(description))
		}
		b.WriteString("---\n\n")
	}

	for _, decl := range imports {
		b.WriteString(decl)
		b.WriteByte('\n')
	}
	if len(imports) > 0 {
		b.WriteByte('\n')
	}

	b.WriteString(body)
	return b.String()
}

// frontmatterValue serializes a field value as a quoted string. JSON
// string encoding is valid YAML and handles embedded quotes.
func frontmatterValue(s string) string {
	encoded, _ := json.Marshal(s)
	return string(encoded)
}
