package main

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"
)

const starterConfig = `# fumadocs-transpiler configuration.

# Extension used for converted output files.
output_ext = ".mdx"

# Maximum number of files converted in parallel.
parallel = 4

# Write a .bak copy before overwriting an existing output.
backup = true

# Add title="..." to untitled code fences from the nearest heading.
enhance_code_titles = true

# Map custom annotation types to component templates. {{content}} is
# replaced with the block body.
# [components.custom]
# demo = "<Demo>\n{{content}}\n</Demo>"

# Import lines for custom components, keyed by annotation type.
# [components.imports]
# demo = "import { Demo } from '@/components/demo';"

# Regular expressions marking code fence titles as heading-derived.
# [code_titles]
# patterns = ["(?i)^example\\b"]
`

func newInitCommand() *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Write a starter transpiler.toml in the current directory",
		Action: initAction,
	}
}

func initAction(_ context.Context, _ *cli.Command) error {
	const path = "transpiler.toml"

	if _, err := os.Stat(path); err == nil {
		return oops.
			Code("CONFIG_EXISTS").
			With("path", path).
			Hint("Remove the existing file first if you want a fresh one").
			Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return oops.
			Code("WRITE_FAILED").
			With("path", path).
			Wrapf(err, "writing config file")
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}
