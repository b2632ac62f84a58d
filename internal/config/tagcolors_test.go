// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build !notagcolors

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagtint/tagtint/internal/tag"
)

// writeTagColors drops a tag-colors.json with the given content into a fresh
// directory and returns the directory path.
func writeTagColors(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "tag-colors.json"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestLoadTagColorOptions(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantOptions int
	}{
		{
			name:        "mixed concrete and null entries",
			content:     `{"unit": "red", "flaky": null}`,
			wantOptions: 1,
		},
		{
			name:        "only null entries",
			content:     `{"flaky": null}`,
			wantOptions: 0,
		},
		{
			name:        "empty object",
			content:     `{}`,
			wantOptions: 0,
		},
		{
			name:        "truncated JSON",
			content:     `{"unit": "r`,
			wantOptions: 0,
		},
		{
			name:        "top level not an object",
			content:     `["unit", "red"]`,
			wantOptions: 0,
		},
		{
			name:        "one malformed value fails the whole file",
			content:     `{"unit": "red", "broken": "not-a-color"}`,
			wantOptions: 0,
		},
		{
			name:        "all recognized encodings",
			content:     `{"unit": "green", "ui": "#00c8f0", "slow": {"red": 200, "green": 100, "blue": 0}}`,
			wantOptions: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeTagColors(t, tt.content)
			opts := LoadTagColorOptions(dir)
			assert.Len(t, opts, tt.wantOptions)
		})
	}
}

func TestLoadTagColorOptionsMissingFile(t *testing.T) {
	assert.Empty(t, LoadTagColorOptions(t.TempDir()))
}

func TestLoadTagColorOptionsEmptyDirSentinel(t *testing.T) {
	assert.Empty(t, LoadTagColorOptions(""))
}

func TestLoadTagColorOptionsDefaultsToResolvedDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("resolution is driven by HOME only on POSIX platforms")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".tagtint"), 0o755))
	err := os.WriteFile(
		filepath.Join(home, ".tagtint", "tag-colors.json"),
		[]byte(`{"unit": "blue"}`), 0o644)
	require.NoError(t, err)

	assert.Len(t, LoadTagColorOptions(), 1)
}

func TestTagColorsFiltersNullEntries(t *testing.T) {
	dir := writeTagColors(t, `{"unit": "red", "flaky": null}`)

	colors := TagColors(dir)
	require.Len(t, colors, 1)

	red, err := tag.Palette("red")
	require.NoError(t, err)
	assert.Equal(t, red, colors[tag.Tag("unit")])
	assert.NotContains(t, colors, tag.Tag("flaky"))
}

func TestTagColorsIdempotent(t *testing.T) {
	dir := writeTagColors(t, `{"unit": "red", "ui": "#336699"}`)

	first := TagColors(dir)
	second := TagColors(dir)
	assert.Equal(t, first, second)
}

func TestTagColorsUnreadableFile(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are ineffective for root")
	}

	dir := writeTagColors(t, `{"unit": "red"}`)
	require.NoError(t, os.Chmod(filepath.Join(dir, "tag-colors.json"), 0o000))

	assert.Empty(t, TagColors(dir))
	assert.Empty(t, LoadTagColorOptions(dir))
}
