package transform

import (
	"fmt"
	"strings"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
)

var calloutKinds = map[string]struct{}{
	"info":  {},
	"warn":  {},
	"error": {},
	"note":  {},
}

// emitBlock maps one annotation block to its component markup and
// registers the import declarations it needs. A failure is reported as
// diagnostics for that block alone; the returned markup is empty only
// when the block must be left unmodified in the output.
func emitBlock(block *scanner.AnnotationBlock, opts Options, imports importSet) (string, []scanner.TransformError) {
	switch block.Type {
	case "tabs":
		return emitTabs(block, opts, imports)
	case "steps":
		return emitSteps(block, opts, imports)
	case "accordion":
		return emitAccordion(block, opts, imports)
	case "code-block":
		return emitCodeBlock(block, opts, imports)
	case "files":
		return emitFiles(block, opts, imports)
	case "banner":
		return emitBanner(block, opts, imports)
	default:
		if kind, ok := strings.CutPrefix(block.Type, "callout-"); ok {
			if _, known := calloutKinds[kind]; known {
				return emitCallout(block, kind, opts, imports)
			}
		}
		return emitCustom(block, opts, imports)
	}
}

func emitCallout(block *scanner.AnnotationBlock, kind string, opts Options, imports importSet) (string, []scanner.TransformError) {
	var errs []scanner.TransformError

	content := strings.TrimSpace(block.Content)
	if content == "" {
		errs = append(errs, scanner.TransformError{
			Message:        fmt.Sprintf("callout-%s block has no content", kind),
			Line:           block.StartLine,
			Kind:           scanner.KindWarning,
			AnnotationType: block.Type,
		})
	}

	imports.add(opts.importFor("callout"))

	var b strings.Builder
	fmt.Fprintf(&b, "<Callout type=\"%s\">\n", escapeAttr(kind))
	if content != "" {
		b.WriteString(content)
		b.WriteByte('\n')
	}
	b.WriteString("</Callout>")
	return b.String(), errs
}

func emitTabs(block *scanner.AnnotationBlock, opts Options, imports importSet) (string, []scanner.TransformError) {
	items, errs := ParseTabs(block.Content, block.StartLine)
	imports.add(opts.importFor("tabs"))

	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = "'" + escapeSingleQuotes(item.Title) + "'"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<Tabs items={[%s]}>\n", strings.Join(labels, ", "))
	for _, item := range items {
		fmt.Fprintf(&b, "<Tab value=\"%s\">\n", escapeAttr(item.Title))
		if item.Content != "" {
			b.WriteString(item.Content)
			b.WriteByte('\n')
		}
		b.WriteString("</Tab>\n")
	}
	b.WriteString("</Tabs>")
	return b.String(), errs
}

func emitSteps(block *scanner.AnnotationBlock, opts Options, imports importSet) (string, []scanner.TransformError) {
	items := ParseSteps(block.Content)
	imports.add(opts.importFor("steps"))

	var b strings.Builder
	b.WriteString("<Steps>\n")
	for _, item := range items {
		b.WriteString("<Step>\n")
		fmt.Fprintf(&b, "## %s\n", item.Title)
		if item.Content != "" {
			b.WriteString(item.Content)
			b.WriteByte('\n')
		}
		b.WriteString("</Step>\n")
	}
	b.WriteString("</Steps>")
	return b.String(), nil
}

func emitAccordion(block *scanner.AnnotationBlock, opts Options, imports importSet) (string, []scanner.TransformError) {
	items, errs := ParseAccordion(block.Content, block.StartLine)
	imports.add(opts.importFor("accordion"))

	var b strings.Builder
	b.WriteString("<Accordions>\n")
	for _, item := range items {
		fmt.Fprintf(&b, "<Accordion title=\"%s\">\n", escapeAttr(item.Title))
		if item.Content != "" {
			b.WriteString(item.Content)
			b.WriteByte('\n')
		}
		b.WriteString("</Accordion>\n")
	}
	b.WriteString("</Accordions>")
	return b.String(), errs
}

func emitCodeBlock(block *scanner.AnnotationBlock, opts Options, imports importSet) (string, []scanner.TransformError) {
	var errs []scanner.TransformError

	lang := block.Attributes["lang"]
	if lang == "" {
		lang = "text"
		errs = append(errs, scanner.TransformError{
			Message:        `code-block has no lang attribute, defaulting to "text"`,
			Line:           block.StartLine,
			Kind:           scanner.KindWarning,
			AnnotationType: block.Type,
		})
	}

	imports.add(opts.importFor("code-block"))

	// Attribute order is fixed: lang before title.
	var b strings.Builder
	fmt.Fprintf(&b, "<CodeBlock lang=\"%s\"", escapeAttr(lang))
	if title, ok := block.Attributes["title"]; ok && title != "" {
		fmt.Fprintf(&b, " title=\"%s\"", escapeAttr(title))
	}
	b.WriteString(">\n")
	fmt.Fprintf(&b, "```%s\n", lang)
	if block.Content != "" {
		b.WriteString(block.Content)
		b.WriteByte('\n')
	}
	b.WriteString("```\n")
	b.WriteString("</CodeBlock>")
	return b.String(), errs
}

func emitFiles(block *scanner.AnnotationBlock, opts Options, imports importSet) (string, []scanner.TransformError) {
	var errs []scanner.TransformError

	roots := ParseFileTree(block.Content)
	if len(roots) == 0 {
		errs = append(errs, scanner.TransformError{
			Message:        "files block has no entries",
			Line:           block.StartLine,
			Kind:           scanner.KindWarning,
			AnnotationType: block.Type,
		})
	}

	imports.add(opts.importFor("files"))

	var b strings.Builder
	b.WriteString("<Files>\n")
	for _, root := range roots {
		writeFileTreeNode(&b, root, 1)
	}
	b.WriteString("</Files>")
	return b.String(), errs
}

func writeFileTreeNode(b *strings.Builder, node *FileTreeNode, depth int) {
	indent := strings.Repeat("  ", depth)

	if node.IsFile {
		fmt.Fprintf(b, "%s<File name=\"%s\" />\n", indent, escapeAttr(node.Name))
		return
	}

	fmt.Fprintf(b, "%s<Folder name=\"%s\">\n", indent, escapeAttr(node.Name+"/"))
	for _, child := range node.Children {
		writeFileTreeNode(b, child, depth+1)
	}
	fmt.Fprintf(b, "%s</Folder>\n", indent)
}

func emitBanner(block *scanner.AnnotationBlock, opts Options, imports importSet) (string, []scanner.TransformError) {
	var errs []scanner.TransformError

	kind := block.Attributes["type"]
	if kind == "" {
		kind = "info"
		errs = append(errs, scanner.TransformError{
			Message:        `banner has no type attribute, defaulting to "info"`,
			Line:           block.StartLine,
			Kind:           scanner.KindWarning,
			AnnotationType: block.Type,
		})
	}

	imports.add(opts.importFor("banner"))

	var b strings.Builder
	fmt.Fprintf(&b, "<Banner type=\"%s\">\n", escapeAttr(kind))
	if content := strings.TrimSpace(block.Content); content != "" {
		b.WriteString(content)
		b.WriteByte('\n')
	}
	b.WriteString("</Banner>")
	return b.String(), errs
}

func emitCustom(block *scanner.AnnotationBlock, opts Options, imports importSet) (string, []scanner.TransformError) {
	tmpl, ok := opts.CustomComponents[block.Type]
	if !ok {
		return "", []scanner.TransformError{{
			Message:        fmt.Sprintf("unknown annotation type %q", block.Type),
			Line:           block.StartLine,
			Kind:           scanner.KindError,
			AnnotationType: block.Type,
		}}
	}

	if decl, declared := opts.CustomImports[block.Type]; declared {
		imports.add(decl)
	}

	return strings.ReplaceAll(tmpl, "{{content}}", block.Content), nil
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
