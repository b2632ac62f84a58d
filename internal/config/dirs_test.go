// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build unix

package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := ResolveConfigDir()
	assert.Equal(t, filepath.Join(home, ".tagtint"), dir)
	assert.True(t, strings.HasSuffix(dir, string(filepath.Separator)+".tagtint"))
}

func TestResolveConfigDirFreshPerCall(t *testing.T) {
	t.Setenv("HOME", "/first/home")
	first := ResolveConfigDir()

	t.Setenv("HOME", "/second/home")
	second := ResolveConfigDir()

	// No caching: the environment is consulted on every call.
	assert.Equal(t, filepath.Join("/first/home", ".tagtint"), first)
	assert.Equal(t, filepath.Join("/second/home", ".tagtint"), second)
}

func TestHomeDirFallsBackToUserDatabase(t *testing.T) {
	// With HOME unset, os.UserHomeDir fails and resolution continues to the
	// effective user's record. The record may legitimately resolve on CI
	// hosts, so only the no-panic/no-error contract is asserted: whatever
	// comes back, ResolveConfigDir is total.
	t.Setenv("HOME", "")

	dir := ResolveConfigDir()
	if dir != "" {
		assert.True(t, strings.HasSuffix(dir, ".tagtint"))
	}
}
