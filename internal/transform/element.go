package transform

import (
	"regexp"
	"strings"
)

// element is one matched component occurrence in markup text. Line
// numbers are 1-based; inner holds every line strictly between the
// opening and closing tags, including those of nested same-named tags.
type element struct {
	name       string
	attrs      map[string]string
	startLine  int
	endLine    int
	inner      []string
	selfClosed bool
}

var tagAttrRegex = regexp.MustCompile(`([A-Za-z][A-Za-z0-9_-]*)="([^"]*)"`)

// findElements scans lines for top-level occurrences of the named tag.
// A stack depth keyed by the tag name keeps same-named children inside
// their parent, so sibling and nested constructs are delimited
// unambiguously. Tag-like text inside fenced code is ignored.
func findElements(lines []string, name string) []element {
	openRegex := regexp.MustCompile(`^<` + name + `(?:\s+([^>]*?))?\s*(/?)>$`)
	closer := "</" + name + ">"

	var elems []element
	var current *element
	depth := 0
	inFence := false

	appendInner := func(line string) {
		if current != nil {
			current.inner = append(current.inner, line)
		}
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			appendInner(line)
			continue
		}
		if inFence {
			appendInner(line)
			continue
		}

		if trimmed == closer {
			if current == nil {
				continue
			}

			depth--
			if depth == 0 {
				current.endLine = i + 1
				elems = append(elems, *current)
				current = nil
			} else {
				appendInner(line)
			}
			continue
		}

		if m := openRegex.FindStringSubmatch(trimmed); m != nil {
			selfClosed := m[2] == "/"

			if current == nil {
				elem := element{
					name:       name,
					attrs:      parseTagAttrs(m[1]),
					startLine:  i + 1,
					selfClosed: selfClosed,
				}
				if selfClosed {
					elem.endLine = i + 1
					elems = append(elems, elem)
					continue
				}
				current = &elem
				depth = 1
				continue
			}

			appendInner(line)
			if !selfClosed {
				depth++
			}
			continue
		}

		appendInner(line)
	}

	return elems
}

func parseTagAttrs(raw string) map[string]string {
	attrs := map[string]string{}
	for _, m := range tagAttrRegex.FindAllStringSubmatch(raw, -1) {
		attrs[m[1]] = unescapeAttr(m[2])
	}
	return attrs
}
