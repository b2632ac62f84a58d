// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build notagcolors

package config

import (
	"github.com/tagtint/tagtint/internal/recorder"
	"github.com/tagtint/tagtint/internal/tag"
)

// LoadTagColorOptions is inert when tag color support is compiled out.
func LoadTagColorOptions(dir ...string) []recorder.Option {
	return nil
}

// TagColors is inert when tag color support is compiled out.
func TagColors(dir ...string) map[tag.Tag]tag.Color {
	return nil
}
