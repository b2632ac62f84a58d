// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/tagtint/tagtint/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// configDirArg returns the directory the loaders should read from: the
// --config-dir flag when set, otherwise nothing so the loaders fall back to
// their own resolution.
func configDirArg(cmd *cli.Command) []string {
	if dir := cmd.String("config-dir"); dir != "" {
		return []string{dir}
	}
	return nil
}
