package transform

import (
	"strings"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
)

// enhanceFenceTitles produces edits that add a title attribute to
// ordinary fenced code blocks, inferred from the nearest preceding
// heading of level 2 or 3. The backward search stops entirely at the
// first level-1 heading. Fences inside annotation block spans, fences
// without a language tag, and fences already carrying a title are left
// alone.
func enhanceFenceTitles(lines []string, blocks []scanner.AnnotationBlock) []edit {
	covered := make([]bool, len(lines)+1)
	for _, block := range blocks {
		for n := block.StartLine; n <= block.EndLine && n < len(covered); n++ {
			covered[n] = true
		}
	}

	var edits []edit
	inFence := false

	for i, line := range lines {
		if covered[i+1] {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "```") {
			continue
		}

		if inFence {
			inFence = false
			continue
		}
		inFence = true

		info := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
		if info == "" || strings.Contains(info, "title=") {
			continue
		}

		title, ok := nearestHeadingTitle(lines, i)
		if !ok {
			continue
		}

		edits = append(edits, edit{
			startLine:   i + 1,
			endLine:     i + 1,
			replacement: []string{line + ` title="` + escapeAttr(title) + `"`},
		})
	}

	return edits
}

func nearestHeadingTitle(lines []string, fenceIdx int) (string, bool) {
	for j := fenceIdx - 1; j >= 0; j-- {
		level, text := atxHeading(lines[j])
		switch level {
		case 1:
			return "", false
		case 2, 3:
			return text, true
		}
	}
	return "", false
}

// atxHeading returns the level (1-6) and trimmed text of an ATX heading
// line, or 0 for anything else.
func atxHeading(line string) (int, string) {
	trimmed := strings.TrimSpace(line)

	level := 0
	for level < len(trimmed) && level < 7 && trimmed[level] == '#' {
		level++
	}
	if level < 1 || level > 6 || level >= len(trimmed) || trimmed[level] != ' ' {
		return 0, ""
	}

	return level, strings.TrimSpace(trimmed[level+1:])
}
