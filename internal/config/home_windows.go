// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package config

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// homeDir resolves the per-user local application data folder. The shell
// allocates the returned path; it must be freed on every exit path once the
// Go string has been extracted.
func homeDir() string {
	var buf *uint16
	if err := windows.SHGetKnownFolderPath(windows.FOLDERID_LocalAppData, 0, 0, &buf); err != nil {
		return ""
	}
	defer windows.CoTaskMemFree(unsafe.Pointer(buf))
	return windows.UTF16PtrToString(buf)
}
