package transform

import (
	"strings"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
)

// Forward rewrites annotation blocks in text into component markup,
// promotes a leading heading to frontmatter, and prepends the import
// declarations for the component types used. It is a pure function of
// its inputs: every call uses a fresh import accumulator and returns the
// complete diagnostic list.
func Forward(text string, opts Options) Result {
	scan := scanner.Scan(text)
	errs := append([]scanner.TransformError(nil), scan.Errors...)

	lines := strings.Split(text, "\n")
	imports := importSet{}
	var edits []edit

	for i := range scan.Blocks {
		block := &scan.Blocks[i]

		markup, blockErrs := emitBlock(block, opts, imports)
		errs = append(errs, blockErrs...)
		if markup == "" {
			// Unknown type: the block stays unmodified in the output.
			continue
		}

		edits = append(edits, edit{
			startLine:   block.StartLine,
			endLine:     block.EndLine,
			replacement: strings.Split(markup, "\n"),
		})
	}

	if opts.EnhanceCodeTitles {
		edits = append(edits, enhanceFenceTitles(lines, scan.Blocks)...)
	}

	body := strings.Join(applyEdits(lines, edits), "\n")
	title, body := extractTitle(body)

	sortedImports := imports.sorted()
	return Result{
		Content: assemble(title, opts.Description, sortedImports, body),
		Imports: sortedImports,
		Errors:  errs,
	}
}
