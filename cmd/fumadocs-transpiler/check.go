package main

import (
	"context"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/batch"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/config"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/ui"
)

func newCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate annotated Markdown files without writing anything",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to config file"},
			&cli.BoolFlag{Name: "json", Usage: "Emit the report as JSON"},
			&cli.BoolFlag{Name: "reverse", Usage: "Check MDX files for the reverse direction instead"},
			&cli.IntFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "Maximum parallel checks"},
		},
		Action: checkAction,
	}
}

func checkAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	direction := batch.DirectionForward
	if cmd.Bool("reverse") {
		direction = batch.DirectionReverse
	}

	summary, err := batch.Run(ctx, cfg, batch.Options{
		Direction:   direction,
		Paths:       cmd.Args().Slice(),
		DryRun:      true,
		Force:       true,
		MaxParallel: int(cmd.Int("parallel")),
	})
	if err != nil {
		return err
	}

	if err := ui.RenderReport(summary, ui.ReportOptions{JSON: cmd.Bool("json")}); err != nil {
		return err
	}

	if summary.Failed > 0 {
		return oops.
			Code("CHECK_FAILED").
			With("failed_files", summary.Failed).
			Errorf("%d file(s) have errors", summary.Failed)
	}

	return nil
}
