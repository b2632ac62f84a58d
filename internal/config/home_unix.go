// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package config

import (
	"os"
	"os/user"
)

// homeDir resolves the user's home directory. Sources are tried in order:
// the platform home query, the HOME environment variable, and the effective
// user's record in the system user database. First non-empty result wins.
func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if u, err := user.Current(); err == nil {
		return u.HomeDir
	}
	return ""
}
