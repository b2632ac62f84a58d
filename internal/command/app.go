// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tagtint/tagtint/internal/config"
	"github.com/tagtint/tagtint/internal/log"
	"github.com/tagtint/tagtint/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// Settings are optional; running without any is the common case, so a
	// load failure only gets a debug line.
	settings, err := config.LoadSettings()
	if err != nil {
		log.Debugf("no settings loaded: %v", err)
	}

	m := meta.Meta{
		Args:        args,
		Settings:    settings,
		Context:     ctx,
		ConfigDir:   config.ResolveConfigDir(),
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "tagtint",
		Usage: "tag-colored test output",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "tagtint version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		renderCommandBuilder(m),
		colorsCommandBuilder(m),
		dirCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
