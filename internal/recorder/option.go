// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package recorder

import (
	"io"

	"github.com/tagtint/tagtint/internal/tag"
)

// Option configures a Recorder. Options are opaque to their producers; the
// config loader builds them without knowing how the recorder applies them.
type Option func(*Recorder)

// WithTagColors associates display colors with tags. The mapping is copied,
// so later mutation by the caller has no effect on the recorder.
func WithTagColors(colors map[tag.Tag]tag.Color) Option {
	return func(r *Recorder) {
		r.tagColors = make(map[tag.Tag]tag.Color, len(colors))
		for t, c := range colors {
			r.tagColors[t] = c
		}
	}
}

// WithWriter directs rendered output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Recorder) {
		r.w = w
	}
}

// WithColor forces colored output on or off, overriding TTY detection.
func WithColor(enabled bool) Option {
	return func(r *Recorder) {
		r.color = enabled
	}
}

// WithVerbose passes test output lines through instead of dropping them.
func WithVerbose(enabled bool) Option {
	return func(r *Recorder) {
		r.verbose = enabled
	}
}
