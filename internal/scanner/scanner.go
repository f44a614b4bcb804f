package scanner

import (
	"fmt"
	"regexp"
	"strings"
)

var openerRegex = regexp.MustCompile(`^:::\s*([a-zA-Z-]+)(?:\s+(.+))?$`)

const closerMarker = ":::"

// Result holds the blocks found in one pass over a document, in source
// order, plus any structural errors encountered along the way.
type Result struct {
	Blocks []AnnotationBlock
	Errors []TransformError
}

type openBlock struct {
	typ       string
	rawAttrs  string
	startLine int
	content   []string
}

// Scan walks the document line by line and collects annotation blocks.
// The grammar has no nesting: a second opener before a closer discards
// the previously open block with an error and starts tracking the new
// one, and a closer with no open block is reported as stray.
func Scan(text string) Result {
	lines := strings.Split(text, "\n")

	var result Result
	var open *openBlock

	for i, line := range lines {
		lineNo := i + 1

		if line == closerMarker {
			if open == nil {
				result.Errors = append(result.Errors, TransformError{
					Message: fmt.Sprintf("closing marker ::: on line %d has no open annotation block", lineNo),
					Line:    lineNo,
					Kind:    KindError,
				})
				continue
			}

			result.Blocks = append(result.Blocks, AnnotationBlock{
				Type:         open.typ,
				Attributes:   ParseAttributes(open.rawAttrs),
				Content:      strings.Join(open.content, "\n"),
				StartLine:    open.startLine,
				EndLine:      lineNo,
				OriginalText: strings.Join(lines[open.startLine-1:lineNo], "\n"),
			})
			open = nil
			continue
		}

		if m := openerRegex.FindStringSubmatch(line); m != nil {
			if open != nil {
				result.Errors = append(result.Errors, unclosedError(open))
			}

			open = &openBlock{
				typ:       m[1],
				rawAttrs:  m[2],
				startLine: lineNo,
			}
			continue
		}

		if open != nil {
			open.content = append(open.content, line)
		}
	}

	if open != nil {
		result.Errors = append(result.Errors, unclosedError(open))
	}

	return result
}

func unclosedError(open *openBlock) TransformError {
	return TransformError{
		Message: fmt.Sprintf(
			"annotation block %q opened on line %d is never closed",
			open.typ,
			open.startLine,
		),
		Line:           open.startLine,
		Kind:           KindError,
		AnnotationType: open.typ,
	}
}
