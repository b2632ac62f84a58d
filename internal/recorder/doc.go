// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package recorder renders a streamed sequence of test events to a
// terminal, coloring results by the tags a test carries. The event stream
// is the `go test -json` format, optionally extended with a Tags array.
package recorder
