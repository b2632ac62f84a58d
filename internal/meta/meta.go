// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/tagtint/tagtint/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI
// arguments, loaded user settings, context, the resolved configuration
// directory, and the starting working directory.
type Meta struct {
	Args        []string
	Settings    config.Settings
	Context     context.Context
	ConfigDir   string
	StartingDir string
}
