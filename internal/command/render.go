// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tagtint/tagtint/internal/config"
	"github.com/tagtint/tagtint/internal/meta"
	"github.com/tagtint/tagtint/internal/recorder"
)

// renderCommandAction is the action handler for the "render" subcommand. It
// reads a test event stream from a file or stdin and renders it with the
// user's tag colors applied.
func renderCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	in, closer, err := openStream(cmd)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}

	opts := config.LoadTagColorOptions(configDirArg(cmd)...)
	opts = append(opts, recorderToggles(cmd, m)...)

	r := recorder.New(opts...)
	if err := r.Render(in); err != nil {
		return fmt.Errorf("failed to read event stream: %w", err)
	}

	if cmd.Bool("summary") {
		r.Summary()
	}

	return nil
}

// recorderToggles translates flags and settings into recorder options. Flags
// win over the settings file; with neither present the recorder keeps its
// TTY-based default.
func recorderToggles(cmd *cli.Command, m meta.Meta) []recorder.Option {
	var opts []recorder.Option

	switch {
	case cmd.Bool("no-color"):
		opts = append(opts, recorder.WithColor(false))
	case cmd.Bool("color"):
		opts = append(opts, recorder.WithColor(true))
	default:
		if enabled, err := m.Settings.GetBool("render.color"); err == nil {
			opts = append(opts, recorder.WithColor(enabled))
		}
	}

	if cmd.Bool("verbose") {
		opts = append(opts, recorder.WithVerbose(true))
	}

	return opts
}

// openStream returns the input reader for the render command: the file named
// by the first positional argument, or stdin for "-" or no argument.
func openStream(cmd *cli.Command) (io.Reader, func(), error) {
	args := cmd.Args().Slice()
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, nil, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open event stream: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// renderCommandBuilder constructs the cli.Command for "render", wiring
// metadata, flags, and the action handler.
func renderCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render a test event stream with tag colors",
		UsageText: "tagtint render [file|-] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "summary",
				Aliases:     []string{"s"},
				Usage:       "print pass/fail/skip totals after the stream ends",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "pass test output lines through",
				HideDefault: true,
			},
		}, NewGlobalFlags()...),
		Action: renderCommandAction,
	}
}
