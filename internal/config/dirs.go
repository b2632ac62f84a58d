// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
)

// configDirName is the fixed subdirectory appended to the platform base
// path.
const configDirName = ".tagtint"

// ResolveConfigDir returns the absolute path of the user's tagtint
// configuration directory, or "" when no home or app-data source is
// resolvable on this platform. It never fails and performs no caching; the
// ambient environment is consulted on every call.
func ResolveConfigDir() string {
	home := homeDir()
	if home == "" {
		return ""
	}
	return filepath.Join(home, configDirName)
}
