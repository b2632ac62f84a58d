// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build !unix && !windows

package config

// homeDir has no resolvable home source on this platform. Tag colors and
// user settings are simply unavailable here.
func homeDir() string {
	return ""
}
