// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tag

// Tag is an opaque, unique string label a test can be annotated with. No
// validation of the label content is performed here; any non-empty string a
// harness emits is a usable tag.
type Tag string

// String returns the raw tag label.
func (t Tag) String() string {
	return string(t)
}
