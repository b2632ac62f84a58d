// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tag defines the tag identifiers tests are annotated with and the
// display colors users can associate with them.
package tag
