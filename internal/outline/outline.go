// Package outline extracts heading structure from markdown and MDX
// documents for reporting.
package outline

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// Extract parses content and returns its headings in document order with
// 1-based line numbers.
func Extract(content []byte) []Heading {
	content = stripBOM(content)
	body := content
	fmLineOffset := 0
	if stripped, offset := stripFrontmatter(content); offset > 0 {
		body = stripped
		fmLineOffset = offset
	}

	mdParser := parser.NewWithExtensions(parser.CommonExtensions)
	doc := mdParser.Parse(body)

	var headings []Heading
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}

		if heading, isHeading := node.(*ast.Heading); isHeading {
			if text := extractText(heading); text != "" {
				headings = append(headings, Heading{Level: heading.Level, Text: text})
			}
		}
		return ast.GoToNext
	})

	assignLineNumbers(headings, body, fmLineOffset)
	return headings
}

func extractText(node ast.Node) string {
	var buf strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if entering {
			switch t := n.(type) {
			case *ast.Text:
				buf.Write(t.Literal)
			case *ast.Code:
				buf.Write(t.Literal)
			}
		}
		return ast.GoToNext
	})
	return strings.Join(strings.Fields(buf.String()), " ")
}

// assignLineNumbers scans content for heading markers and assigns the
// correct line number to each heading in document order. Necessary
// because gomarkdown's AST does not store source positions.
func assignLineNumbers(headings []Heading, content []byte, lineOffset int) {
	if len(headings) == 0 {
		return
	}

	lines := bytes.Split(content, []byte("\n"))
	hi := 0
	inFenced := false

	for lineIdx := 0; lineIdx < len(lines) && hi < len(headings); lineIdx++ {
		trimmed := bytes.TrimSpace(lines[lineIdx])

		if bytes.HasPrefix(trimmed, []byte("```")) || bytes.HasPrefix(trimmed, []byte("~~~")) {
			inFenced = !inFenced
			continue
		}
		if inFenced {
			continue
		}

		if level := atxLevel(trimmed); level == headings[hi].Level {
			headings[hi].Line = lineOffset + lineIdx + 1
			hi++
			continue
		}

		if level := setextLevel(lines, lineIdx, trimmed); level == headings[hi].Level {
			headings[hi].Line = lineOffset + lineIdx + 1
			hi++
		}
	}
}

func atxLevel(trimmed []byte) int {
	level := 0
	for level < len(trimmed) && level < 7 && trimmed[level] == '#' {
		level++
	}
	if level >= 1 && level <= 6 && level < len(trimmed) && trimmed[level] == ' ' {
		return level
	}
	return 0
}

func setextLevel(lines [][]byte, lineIdx int, trimmed []byte) int {
	if lineIdx+1 >= len(lines) || len(trimmed) == 0 {
		return 0
	}

	next := bytes.TrimSpace(lines[lineIdx+1])
	if allSameByte(next, '=') {
		return 1
	}
	if allSameByte(next, '-') {
		return 2
	}
	return 0
}

func allSameByte(b []byte, ch byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c != ch {
			return false
		}
	}
	return true
}

func stripBOM(content []byte) []byte {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:]
	}
	return content
}

// stripFrontmatter drops a leading --- delimited block, returning the
// body and the number of lines removed.
func stripFrontmatter(content []byte) ([]byte, int) {
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return content, 0
	}

	rest := content[4:]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end == -1 {
		return content, 0
	}

	body := rest[end+5:]
	removed := bytes.Count(content[:len(content)-len(body)], []byte("\n"))
	return body, removed
}
