// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config resolves the per-user tagtint configuration directory and
// loads the optional files inside it. The directory is a fixed ".tagtint"
// folder under a platform-dependent base:
//   - Linux/macOS and other POSIX platforms: the user's home directory,
//     resolved from os.UserHomeDir, $HOME, or the system user database.
//   - Windows: the local application data known folder.
//
// Loading is fail-soft throughout: a missing or malformed file never
// surfaces an error, it just contributes nothing.
package config
