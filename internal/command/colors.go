// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/tagtint/tagtint/internal/config"
	"github.com/tagtint/tagtint/internal/meta"
	"github.com/tagtint/tagtint/internal/tag"
)

// colorsCommandAction is the action handler for the "colors" subcommand. It
// loads the effective tag color mapping and emits it per the --output flag.
func colorsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	colors := config.TagColors(configDirArg(cmd)...)
	if len(colors) == 0 {
		fmt.Fprintln(os.Stderr, "no tag colors configured")
		return nil
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.Marshal(colors)
		if err != nil {
			return fmt.Errorf("failed to marshal colors: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(jsonOutput))
	case "yaml":
		plain := make(map[string]string, len(colors))
		for t, c := range colors {
			plain[t.String()] = c.String()
		}
		yamlOutput, err := yaml.Marshal(plain)
		if err != nil {
			return fmt.Errorf("failed to marshal colors: %w", err)
		}
		os.Stdout.Write(yamlOutput)
	default:
		colorTableWriter(colors, cmd, os.Stdout)
	}

	return nil
}

// colorTableWriter renders the mapping in tabular form with a styled swatch
// per tag. Output is written to w. If w is nil, os.Stdout is used.
func colorTableWriter(colors map[tag.Tag]tag.Color, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	if cmd.Bool("no-color") {
		styled = false
	} else if cmd.Bool("color") {
		styled = true
	}

	tags := make([]tag.Tag, 0, len(colors))
	for t := range colors {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 2, 0, 0).Align(lipgloss.Left)
	)

	var rows [][]string
	for _, t := range tags {
		swatch := "██████"
		if styled {
			swatch = lipgloss.NewStyle().Foreground(colors[t].TerminalColor()).Render(swatch)
		}
		rows = append(rows, []string{t.String(), colors[t].String(), swatch})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("tag", "color", "").
		BorderHeader(false).
		Rows(rows...)

	fmt.Fprintln(w, t)
}

// colorsCommandBuilder constructs the cli.Command for "colors", wiring
// metadata, flags, and the action handler.
func colorsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "colors",
		Usage:     "show the effective tag color mapping",
		UsageText: "tagtint colors [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append([]cli.Flag{
			NewOutputFlag("colors", m.Settings.Source),
		}, NewGlobalFlags()...),
		Action: colorsCommandAction,
	}
}
