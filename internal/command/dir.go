// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tagtint/tagtint/internal/config"
	"github.com/tagtint/tagtint/internal/meta"
)

// dirCommandAction prints the resolved configuration directory. An empty
// resolution is not an error; it just means this platform offered no home
// or app-data source.
func dirCommandAction(ctx context.Context, cmd *cli.Command) error {
	dir := config.ResolveConfigDir()
	if dir == "" {
		fmt.Fprintln(os.Stderr, "no configuration directory resolvable on this platform")
		return nil
	}
	fmt.Fprintln(os.Stdout, dir)
	return nil
}

// dirCommandBuilder constructs the cli.Command for "dir".
func dirCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "dir",
		Usage:     "print the per-user configuration directory",
		UsageText: "tagtint dir",
		Metadata: map[string]any{
			"meta": m,
		},
		Action: dirCommandAction,
	}
}
