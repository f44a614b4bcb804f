package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/batch"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/config"
)

func newRevertCommand() *cli.Command {
	return &cli.Command{
		Name:      "revert",
		Usage:     "Convert MDX files back to annotated Markdown",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to config file"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Show planned conversions without writing files"},
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "Convert even when the source is unchanged"},
			&cli.BoolFlag{Name: "no-backup", Usage: "Do not write .bak copies of overwritten outputs"},
			&cli.IntFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "Maximum parallel conversions"},
			&cli.BoolFlag{Name: "stdout", Usage: "Print the result of a single file to stdout"},
		},
		Action: revertAction,
	}
}

func revertAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	if cmd.Bool("no-backup") {
		cfg.Backup = false
	}

	if cmd.Bool("stdout") {
		return convertToStdout(cmd, batch.TransformOptions(cfg, ""), batch.DirectionReverse)
	}

	return runBatch(ctx, cfg, batch.Options{
		Direction:   batch.DirectionReverse,
		Paths:       cmd.Args().Slice(),
		DryRun:      cmd.Bool("dry-run"),
		Force:       cmd.Bool("force"),
		MaxParallel: int(cmd.Int("parallel")),
	})
}
