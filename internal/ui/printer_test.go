package ui_test

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/batch"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/transform"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/ui"
)

func init() {
	color.NoColor = true
}

func TestPrintFile(t *testing.T) {
	tests := []struct {
		name   string
		result batch.FileResult
		want   []string
	}{
		{
			name: "converted",
			result: batch.FileResult{
				Path:   "docs/a.md",
				Output: "docs/a.mdx",
				Status: batch.StatusConverted,
			},
			want: []string{"✓", "docs/a.md", "→ docs/a.mdx"},
		},
		{
			name: "skipped",
			result: batch.FileResult{
				Path:   "docs/b.md",
				Status: batch.StatusSkipped,
			},
			want: []string{"—", "docs/b.md", "(unchanged)"},
		},
		{
			name: "failed with diagnostics",
			result: batch.FileResult{
				Path:   "docs/c.md",
				Status: batch.StatusFailed,
				Result: transform.Result{
					Errors: []scanner.TransformError{
						{Message: "unknown annotation type \"mystery\"", Line: 3, Kind: scanner.KindError},
						{Message: "banner has no type attribute", Line: 9, Kind: scanner.KindWarning},
					},
				},
			},
			want: []string{
				"✗", "docs/c.md",
				"error: unknown annotation type \"mystery\" (line 3)",
				"warning: banner has no type attribute (line 9)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			ui.NewPrinterWithWriter(&buf, false).PrintFile(tt.result)

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output %q missing %q", buf.String(), want)
				}
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	var buf strings.Builder
	ui.NewPrinterWithWriter(&buf, false).PrintSummary(&batch.Summary{
		Converted: 3,
		Skipped:   1,
		Warnings:  2,
		Failed:    1,
	})

	out := buf.String()
	if !strings.Contains(out, "done: 3 converted, 1 skipped, 2 warning(s)") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "1 failed") {
		t.Errorf("output = %q, want the failure count", out)
	}
}

func TestPrintSummary_DryRun(t *testing.T) {
	var buf strings.Builder
	ui.NewPrinterWithWriter(&buf, true).PrintSummary(&batch.Summary{Converted: 1})

	out := buf.String()
	if !strings.Contains(out, "dry-run complete") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "no files were written") {
		t.Errorf("output = %q", out)
	}
}
