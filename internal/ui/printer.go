package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/batch"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
)

type styles struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	dim    *color.Color
	bold   *color.Color
}

func newStyles() styles {
	return styles{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		dim:    color.New(color.Faint),
		bold:   color.New(color.Bold),
	}
}

// Printer renders per-file conversion results to stderr with colored
// output.
type Printer struct {
	w      io.Writer
	dryRun bool
	mu     sync.Mutex
	s      styles
}

// NewPrinter creates a Printer that writes to stderr.
func NewPrinter(dryRun bool) *Printer {
	return &Printer{
		w:      os.Stderr,
		dryRun: dryRun,
		s:      newStyles(),
	}
}

// NewPrinterWithWriter creates a Printer that writes to the given writer.
func NewPrinterWithWriter(w io.Writer, dryRun bool) *Printer {
	return &Printer{
		w:      w,
		dryRun: dryRun,
		s:      newStyles(),
	}
}

// PrintFile renders one file's outcome, followed by its diagnostics.
func (p *Printer) PrintFile(result batch.FileResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name := p.s.bold.Sprint(result.Path)

	switch result.Status {
	case batch.StatusSkipped:
		fmt.Fprintf(p.w, "%s %s %s\n",
			p.s.dim.Sprint("—"),
			name,
			p.s.dim.Sprint("(unchanged)"),
		)

	case batch.StatusFailed:
		fmt.Fprintf(p.w, "%s %s\n", p.s.red.Sprint("✗"), name)
		if result.Err != nil {
			fmt.Fprintf(p.w, "  %s\n", result.Err)
		}

	default:
		fmt.Fprintf(p.w, "%s %s %s\n",
			p.s.green.Sprint("✓"),
			name,
			p.s.dim.Sprintf("→ %s", result.Output),
		)
	}

	for _, problem := range result.Result.Errors {
		p.printProblem(problem)
	}
}

func (p *Printer) printProblem(problem scanner.TransformError) {
	label := p.s.yellow.Sprint("warning")
	if problem.Kind == scanner.KindError {
		label = p.s.red.Sprint("error")
	}

	fmt.Fprintf(p.w, "  %s: %s %s\n",
		label,
		problem.Message,
		p.s.dim.Sprintf("(line %d)", problem.Line),
	)
}

// PrintSummary renders a final summary line after the batch completes.
func (p *Printer) PrintSummary(summary *batch.Summary) {
	if summary == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w)

	label := "done"
	if p.dryRun {
		label = p.s.yellow.Sprint("dry-run complete")
	}

	line := fmt.Sprintf("%s: %d converted, %d skipped, %d warning(s)",
		label,
		summary.Converted,
		summary.Skipped,
		summary.Warnings,
	)

	if summary.Failed > 0 {
		line += fmt.Sprintf(", %s", p.s.red.Sprintf("%d failed", summary.Failed))
	}

	fmt.Fprintln(p.w, line)

	if p.dryRun {
		fmt.Fprintln(p.w, p.s.dim.Sprint("no files were written"))
	}
}
