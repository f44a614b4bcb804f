package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/batch"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/config"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/source"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/transform"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/ui"
)

func newConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert annotated Markdown files to MDX",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to config file"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Show planned conversions without writing files"},
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Convert even when the source is unchanged"},
			&cli.BoolFlag{Name: "no-backup", Usage: "Do not write .bak copies of overwritten outputs"},
			&cli.IntFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "Maximum parallel conversions"},
			&cli.StringFlag{Name: "url", Usage: "Convert a remote document and print it to stdout"},
			&cli.BoolFlag{Name: "stdout", Usage: "Print the result of a single file to stdout"},
			&cli.StringFlag{Name: "description", Aliases: []string{"d"}, Usage: "Description for the generated frontmatter"},
		},
		Action: convertAction,
	}
}

func convertAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.Bool("no-backup") {
		cfg.Backup = false
	}

	topts := batch.TransformOptions(cfg, cmd.String("description"))

	if rawURL := cmd.String("url"); rawURL != "" {
		return convertRemote(ctx, rawURL, topts)
	}

	if cmd.Bool("stdout") {
		return convertToStdout(cmd, topts, batch.DirectionForward)
	}

	return runBatch(ctx, cfg, batch.Options{
		Direction:   batch.DirectionForward,
		Paths:       cmd.Args().Slice(),
		Description: cmd.String("description"),
		DryRun:      cmd.Bool("dry-run"),
		Force:       cmd.Bool("force"),
		MaxParallel: int(cmd.Int("parallel")),
	})
}

func convertRemote(ctx context.Context, rawURL string, topts transform.Options) error {
	content, err := source.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}

	return printResult(rawURL, transform.Forward(string(content), topts))
}

func convertToStdout(cmd *cli.Command, topts transform.Options, direction batch.Direction) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("CONFIG_INVALID").
			Hint("Pass exactly one file when using --stdout").
			Errorf("--stdout requires a single file argument")
	}

	path := cmd.Args().First()
	content, err := os.ReadFile(path)
	if err != nil {
		return oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(err, "reading source file")
	}

	var result transform.Result
	if direction == batch.DirectionReverse {
		result = transform.Reverse(string(content), topts)
	} else {
		result = transform.Forward(string(content), topts)
	}

	return printResult(path, result)
}

func printResult(name string, result transform.Result) error {
	fmt.Print(result.Content)

	for _, problem := range result.Errors {
		fmt.Fprintf(os.Stderr, "%s: %s: %s (line %d)\n", name, problem.Kind, problem.Message, problem.Line)
	}

	if !result.Success() {
		return oops.
			Code("TRANSFORM_FAILED").
			With("input", name).
			Errorf("transform reported errors")
	}

	return nil
}

func runBatch(ctx context.Context, cfg *config.Config, opts batch.Options) error {
	summary, err := batch.Run(ctx, cfg, opts)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(opts.DryRun)
	for _, result := range summary.Results {
		printer.PrintFile(result)
	}
	printer.PrintSummary(summary)

	if summary.Failed > 0 {
		return oops.
			Code("TRANSFORM_FAILED").
			With("failed_files", summary.Failed).
			Errorf("%d file(s) failed", summary.Failed)
	}

	return nil
}
