package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
)

// Reverse reconstructs annotation text from component markup: import
// declarations are stripped, heading-derived fence titles are removed,
// each component kind is pattern-matched back into its annotation form,
// and a frontmatter title is reinserted as a leading level-1 heading.
// Frontmatter is otherwise dropped entirely in this direction.
func Reverse(text string, opts Options) Result {
	title, body := splitFrontmatter(text)
	patterns := opts.titlePatterns()

	lines := strings.Split(body, "\n")
	lines = stripImportLines(lines, opts)
	lines = stripFenceTitles(lines, patterns)

	passes := []struct {
		tag string
		fn  func(element) []string
	}{
		{"Tabs", reverseTabs},
		{"Steps", reverseSteps},
		{"Accordions", reverseAccordions},
		{"Files", reverseFiles},
		{"CodeBlock", func(e element) []string { return reverseCodeBlock(e, patterns) }},
		{"Callout", reverseCallout},
		{"Banner", reverseBanner},
	}

	for _, pass := range passes {
		elems := findElements(lines, pass.tag)
		if len(elems) == 0 {
			continue
		}

		edits := make([]edit, 0, len(elems))
		for _, e := range elems {
			edits = append(edits, edit{
				startLine:   e.startLine,
				endLine:     e.endLine,
				replacement: pass.fn(e),
			})
		}
		lines = applyEdits(lines, edits)
	}

	out := strings.Join(lines, "\n")
	if title != "" {
		out = "# " + title + "\n\n" + strings.TrimLeft(out, "\n")
	}

	return Result{Content: out}
}

func splitFrontmatter(text string) (string, string) {
	var meta struct {
		Title string `yaml:"title"`
	}

	rest, err := frontmatter.Parse(strings.NewReader(text), &meta)
	if err != nil {
		return "", text
	}

	return meta.Title, string(rest)
}

// stripImportLines removes import declarations belonging to this
// system's component namespace, plus configured custom import lines,
// along with blank lines immediately following them.
func stripImportLines(lines []string, opts Options) []string {
	custom := make(map[string]struct{}, len(opts.CustomImports))
	for _, decl := range opts.CustomImports {
		custom[strings.TrimSpace(decl)] = struct{}{}
	}

	var out []string
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		_, isCustom := custom[trimmed]
		isOwn := strings.HasPrefix(trimmed, "import ") && strings.Contains(trimmed, componentNamespace)

		if isOwn || isCustom {
			i++
			for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				i++
			}
			continue
		}

		out = append(out, lines[i])
		i++
	}

	return out
}

var fenceTitleRegex = regexp.MustCompile(`\s*title="([^"]*)"`)

// stripFenceTitles removes heading-derived title attributes from fence
// info strings, undoing the forward enhancer. Titles classified as
// explicit are left in place.
func stripFenceTitles(lines []string, patterns []*regexp.Regexp) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	inFence := false
	for i, line := range out {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "```") {
			continue
		}

		if inFence {
			inFence = false
			continue
		}
		inFence = true

		title, without, found := cutFenceTitle(line)
		if found && isHeadingDerived(title, patterns) {
			out[i] = without
		}
	}

	return out
}

func cutFenceTitle(line string) (string, string, bool) {
	m := fenceTitleRegex.FindStringSubmatchIndex(line)
	if m == nil {
		return "", line, false
	}

	title := unescapeAttr(line[m[2]:m[3]])
	return title, line[:m[0]] + line[m[1]:], true
}

func reverseCallout(e element) []string {
	kind := e.attrs["type"]
	if kind == "" {
		kind = "info"
	}

	out := []string{":::callout-" + kind}
	out = append(out, trimBlankEdges(e.inner)...)
	return append(out, ":::")
}

func reverseBanner(e element) []string {
	kind := e.attrs["type"]
	if kind == "" {
		kind = "info"
	}

	out := []string{":::banner " + annotationAttr("type", kind)}
	out = append(out, trimBlankEdges(e.inner)...)
	return append(out, ":::")
}

func reverseTabs(e element) []string {
	out := []string{":::tabs"}
	for _, tab := range findElements(e.inner, "Tab") {
		out = append(out, tab.attrs["value"]+"|"+joinInline(tab.inner))
	}
	return append(out, ":::")
}

var stepHeadingRegex = regexp.MustCompile(`(?i)^##\s+step(?:\s+(\d+))?$`)

func reverseSteps(e element) []string {
	out := []string{":::steps"}

	for _, step := range findElements(e.inner, "Step") {
		inner := trimBlankEdges(step.inner)
		if len(inner) == 0 {
			continue
		}

		m := stepHeadingRegex.FindStringSubmatch(strings.TrimSpace(inner[0]))
		if m == nil {
			out = append(out, joinInline(inner))
			continue
		}

		body := joinInline(inner[1:])
		if m[1] != "" {
			out = append(out, fmt.Sprintf("Step %s: %s", m[1], body))
		} else if body != "" {
			out = append(out, body)
		}
	}

	return append(out, ":::")
}

func reverseAccordions(e element) []string {
	out := []string{":::accordion"}
	for _, item := range findElements(e.inner, "Accordion") {
		out = append(out, item.attrs["title"]+"|"+joinInline(item.inner))
	}
	return append(out, ":::")
}

var (
	folderOpenRegex = regexp.MustCompile(`^<Folder\s+name="([^"]*)"\s*>$`)
	fileTagRegex    = regexp.MustCompile(`^<File\s+name="([^"]*)"\s*/>$`)
)

func reverseFiles(e element) []string {
	out := []string{":::files"}
	depth := 0

	for _, line := range e.inner {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "</Folder>":
			if depth > 0 {
				depth--
			}
		case folderOpenRegex.MatchString(trimmed):
			name := unescapeAttr(folderOpenRegex.FindStringSubmatch(trimmed)[1])
			if !strings.HasSuffix(name, "/") {
				name += "/"
			}
			out = append(out, strings.Repeat("  ", depth)+name)
			depth++
		case fileTagRegex.MatchString(trimmed):
			name := unescapeAttr(fileTagRegex.FindStringSubmatch(trimmed)[1])
			out = append(out, strings.Repeat("  ", depth)+name)
		}
	}

	return append(out, ":::")
}

// reverseCodeBlock applies the heading-derived-title heuristic: a
// heading-like title is stripped and the element collapses to a plain
// fenced code block, while any other title is preserved as an explicit
// annotation attribute.
func reverseCodeBlock(e element, patterns []*regexp.Regexp) []string {
	code, fenceLang := extractFenceBody(e.inner)

	lang := e.attrs["lang"]
	if lang == "" {
		lang = fenceLang
	}
	if lang == "" {
		lang = "text"
	}

	title, hasTitle := e.attrs["title"]
	if hasTitle && isHeadingDerived(title, patterns) {
		out := []string{"```" + lang}
		out = append(out, code...)
		return append(out, "```")
	}

	open := ":::code-block " + annotationAttr("lang", lang)
	if hasTitle && title != "" {
		open += " " + annotationAttr("title", title)
	}

	out := []string{open}
	out = append(out, code...)
	return append(out, ":::")
}

// extractFenceBody pulls the code lines out of the first fenced block
// found in inner, along with the fence's language tag. Inner content
// without a fence is returned as-is.
func extractFenceBody(inner []string) ([]string, string) {
	start := -1
	lang := ""

	for i, line := range inner {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			start = i
			if fields := strings.Fields(strings.TrimPrefix(trimmed, "```")); len(fields) > 0 {
				lang = fields[0]
			}
			break
		}
	}

	if start == -1 {
		return trimBlankEdges(inner), ""
	}

	end := len(inner)
	for i := len(inner) - 1; i > start; i-- {
		if strings.HasPrefix(strings.TrimSpace(inner[i]), "```") {
			end = i
			break
		}
	}

	return inner[start+1 : end], lang
}

// annotationAttr renders a key=value attribute token, quoting only when
// the value is empty or contains whitespace.
func annotationAttr(key string, value string) string {
	if value == "" || strings.ContainsAny(value, " \t") {
		return key + `="` + value + `"`
	}
	return key + "=" + value
}

func joinInline(lines []string) string {
	var parts []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}
