// Package transform implements the bidirectional annotation transpiler:
// the forward direction rewrites :::type annotation blocks into component
// markup with frontmatter and import declarations, and the reverse
// direction pattern-matches that markup back into annotation text.
package transform

import (
	"regexp"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
)

// Options configures a single transform call. The zero value uses the
// built-in component set and the default heading-title patterns.
type Options struct {
	// Description is merged into the generated frontmatter when non-empty.
	Description string

	// CustomComponents maps annotation types without a built-in emitter to
	// a markup template containing a {{content}} placeholder.
	CustomComponents map[string]string

	// CustomImports maps annotation types to the import declaration
	// registered when that type is emitted. Entries for built-in types
	// override the default declarations.
	CustomImports map[string]string

	// EnhanceCodeTitles turns on the fence-title enhancer for ordinary
	// fenced code blocks outside annotation blocks.
	EnhanceCodeTitles bool

	// TitlePatterns is the heading-derived-title classification table used
	// on the reverse path. Nil selects DefaultTitlePatterns.
	TitlePatterns []*regexp.Regexp
}

// Result is the outcome of one forward or reverse transform call. All
// state is per-call; nothing is shared between invocations.
type Result struct {
	Content string
	Imports []string
	Errors  []scanner.TransformError
}

// Success reports whether the transform produced no error-kind
// diagnostics. Warnings never flip success to failure.
func (r Result) Success() bool {
	for _, e := range r.Errors {
		if e.Kind == scanner.KindError {
			return false
		}
	}
	return true
}

// WarningCount counts warning-kind diagnostics.
func (r Result) WarningCount() int {
	count := 0
	for _, e := range r.Errors {
		if e.Kind == scanner.KindWarning {
			count++
		}
	}
	return count
}
