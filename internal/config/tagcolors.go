// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build !notagcolors

package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/apex/log"

	"github.com/tagtint/tagtint/internal/recorder"
	"github.com/tagtint/tagtint/internal/tag"
)

// tagColorsFile is the fixed name of the user-editable tag color file inside
// the configuration directory.
const tagColorsFile = "tag-colors.json"

// LoadTagColorOptions reads <dir>/tag-colors.json and wraps the decoded
// tag colors in a single recorder option. With no argument the directory
// defaults to ResolveConfigDir(); passing one explicitly is mainly for
// tests. An all-null or empty file yields zero options, not one option
// wrapping an empty map.
//
// The function is total: an unresolved directory, a missing or unreadable
// file, or malformed JSON all degrade to an empty slice. A broken color
// file must never break a test run, so failures are only logged at debug
// level.
func LoadTagColorOptions(dir ...string) []recorder.Option {
	colors := TagColors(dir...)
	if len(colors) == 0 {
		return nil
	}
	return []recorder.Option{recorder.WithTagColors(colors)}
}

// TagColors returns the decoded, filtered tag color mapping with the same
// directory defaulting and fail-soft behavior as LoadTagColorOptions. The
// result is nil on any failure.
func TagColors(dir ...string) map[tag.Tag]tag.Color {
	d := ""
	if len(dir) > 0 {
		d = dir[0]
	} else {
		d = ResolveConfigDir()
	}
	if d == "" {
		log.Debug("no configuration directory resolved, skipping tag colors")
		return nil
	}

	path := filepath.Join(d, tagColorsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("tag colors unavailable: %v", err)
		return nil
	}

	colors, err := decodeTagColors(data)
	if err != nil {
		log.Debugf("tag colors ignored: %v", err)
		return nil
	}
	return colors
}

// decodeTagColors decodes the file atomically: one malformed entry fails the
// whole document. Entries whose decoded value is the none sentinel are
// filtered out after the decode, not during it, so "key present but null"
// stays distinct from "key absent" until the last moment.
func decodeTagColors(data []byte) (map[tag.Tag]tag.Color, error) {
	var raw map[tag.Tag]tag.Color
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	colors := make(map[tag.Tag]tag.Color, len(raw))
	for t, c := range raw {
		if c.IsNone() {
			continue
		}
		colors[t] = c
	}
	return colors, nil
}
