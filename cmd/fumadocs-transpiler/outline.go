package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/outline"
)

func newOutlineCommand() *cli.Command {
	return &cli.Command{
		Name:      "outline",
		Usage:     "Print the heading outline of a Markdown or MDX file",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "Emit the outline as JSON"},
		},
		Action: outlineAction,
	}
}

func outlineAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("CONFIG_INVALID").
			Hint("Pass exactly one file to outline").
			Errorf("outline requires a single file argument")
	}

	path := cmd.Args().First()
	content, err := os.ReadFile(path)
	if err != nil {
		return oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(err, "reading source file")
	}

	headings := outline.Extract(content)

	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(headings)
	}

	if len(headings) == 0 {
		fmt.Println("no headings found")
		return nil
	}

	w := table.NewWriter()
	w.SetOutputMirror(os.Stdout)
	w.SetStyle(table.StyleRounded)
	w.AppendHeader(table.Row{"LINE", "HEADING"})
	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-1)
		w.AppendRow(table.Row{h.Line, indent + h.Text})
	}
	w.Render()

	return nil
}
