package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
)

// TabItem is one entry of a tabs block, parsed from a title|content line.
type TabItem struct {
	Title   string
	Content string
}

// StepItem is one entry of a steps block.
type StepItem struct {
	Title   string
	Content string
}

// AccordionItem is one entry of an accordion block.
type AccordionItem struct {
	Title   string
	Content string
}

var stepLineRegex = regexp.MustCompile(`(?i)^Step\s+(\d+):\s*(.+)$`)

// ParseTabs splits tabs block content into items. A line without a |
// separator is a validation error naming the type, but the line is still
// kept as label-less content rather than dropped.
func ParseTabs(content string, startLine int) ([]TabItem, []scanner.TransformError) {
	pairs, errs := parsePipeLines(content, "tabs", startLine)

	items := make([]TabItem, len(pairs))
	for i, pair := range pairs {
		items[i] = TabItem{Title: pair.label, Content: pair.body}
	}
	return items, errs
}

// ParseAccordion splits accordion block content with the same grammar as
// tabs.
func ParseAccordion(content string, startLine int) ([]AccordionItem, []scanner.TransformError) {
	pairs, errs := parsePipeLines(content, "accordion", startLine)

	items := make([]AccordionItem, len(pairs))
	for i, pair := range pairs {
		items[i] = AccordionItem{Title: pair.label, Content: pair.body}
	}
	return items, errs
}

// ParseSteps matches each non-blank line against "Step N: text". Lines
// that do not match fall back to a bare "Step" title instead of erroring.
func ParseSteps(content string) []StepItem {
	var items []StepItem

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if m := stepLineRegex.FindStringSubmatch(line); m != nil {
			items = append(items, StepItem{
				Title:   "Step " + m[1],
				Content: strings.TrimSpace(m[2]),
			})
			continue
		}

		items = append(items, StepItem{Title: "Step", Content: line})
	}

	return items
}

type pipePair struct {
	label string
	body  string
}

func parsePipeLines(content string, typ string, startLine int) ([]pipePair, []scanner.TransformError) {
	var pairs []pipePair
	var errs []scanner.TransformError

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		label, body, found := strings.Cut(line, "|")
		if !found {
			errs = append(errs, scanner.TransformError{
				Message:        fmt.Sprintf("%s line %q has no | separator", typ, strings.TrimSpace(line)),
				Line:           startLine,
				Kind:           scanner.KindError,
				AnnotationType: typ,
			})
			pairs = append(pairs, pipePair{body: strings.TrimSpace(line)})
			continue
		}

		pairs = append(pairs, pipePair{
			label: strings.TrimSpace(label),
			body:  strings.TrimSpace(body),
		})
	}

	return pairs, errs
}
