package transform

import (
	"slices"
	"sort"
	"strings"
)

// edit replaces the 1-based inclusive line span [startLine, endLine] with
// the replacement lines. Edits never overlap: block spans are disjoint by
// construction and fence-title edits only touch lines outside them.
type edit struct {
	startLine   int
	endLine     int
	replacement []string
}

// applyEdits applies all edits in a single pass over an immutable line
// slice, so no edit ever invalidates the line numbers of another.
func applyEdits(lines []string, edits []edit) []string {
	if len(edits) == 0 {
		return lines
	}

	ordered := slices.Clone(edits)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].startLine < ordered[j].startLine
	})

	out := make([]string, 0, len(lines))
	next := 0

	for i := 0; i < len(lines); {
		if next < len(ordered) && ordered[next].startLine == i+1 {
			out = append(out, ordered[next].replacement...)
			i = ordered[next].endLine
			next++
			continue
		}

		out = append(out, lines[i])
		i++
	}

	return out
}

// trimBlankEdges drops leading and trailing blank lines, keeping interior
// blanks intact.
func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}

	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return lines[start:end]
}
