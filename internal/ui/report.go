package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/batch"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
)

type ReportOptions struct {
	JSON bool
}

type fileReport struct {
	Path     string                   `json:"path"`
	Output   string                   `json:"output,omitempty"`
	Status   batch.Status             `json:"status"`
	Imports  []string                 `json:"imports,omitempty"`
	Problems []scanner.TransformError `json:"problems,omitempty"`
	Error    string                   `json:"error,omitempty"`
}

// RenderReport renders the batch outcome as a table, or as JSON when
// requested.
func RenderReport(summary *batch.Summary, opts ReportOptions) error {
	if opts.JSON {
		return renderReportJSON(summary)
	}

	renderReportTable(summary)
	return nil
}

func renderReportJSON(summary *batch.Summary) error {
	reports := make([]fileReport, 0, len(summary.Results))
	for _, result := range summary.Results {
		report := fileReport{
			Path:     result.Path,
			Output:   result.Output,
			Status:   result.Status,
			Imports:  result.Result.Imports,
			Problems: result.Result.Errors,
		}
		if result.Err != nil {
			report.Error = result.Err.Error()
		}
		reports = append(reports, report)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(reports); err != nil {
		return fmt.Errorf("encode report json: %w", err)
	}

	return nil
}

func renderReportTable(summary *batch.Summary) {
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.SetStyle(table.StyleRounded)

	writer.AppendHeader(table.Row{"FILE", "STATUS", "OUTPUT", "WARNINGS", "ERRORS"})

	for _, result := range summary.Results {
		errorCount := 0
		for _, problem := range result.Result.Errors {
			if problem.Kind == scanner.KindError {
				errorCount++
			}
		}
		if result.Err != nil {
			errorCount++
		}

		writer.AppendRow(table.Row{
			result.Path,
			string(result.Status),
			result.Output,
			strconv.Itoa(result.Result.WarningCount()),
			strconv.Itoa(errorCount),
		})
	}

	writer.AppendFooter(table.Row{
		fmt.Sprintf("%d file(s)", len(summary.Results)),
		fmt.Sprintf("%d converted", summary.Converted),
		fmt.Sprintf("%d skipped", summary.Skipped),
		fmt.Sprintf("%d warning(s)", summary.Warnings),
		fmt.Sprintf("%d failed", summary.Failed),
	})

	writer.Render()
}
