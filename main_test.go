// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no args",
			args: []string{"tagtint"},
			want: false,
		},
		{
			name: "long flag",
			args: []string{"tagtint", "--version"},
			want: true,
		},
		{
			name: "short flag",
			args: []string{"tagtint", "-v"},
			want: true,
		},
		{
			name: "flag after subcommand belongs to the subcommand",
			args: []string{"tagtint", "render", "-v"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.want {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "naked invocation gets help",
			args:     []string{"tagtint"},
			expected: []string{"tagtint", "--help"},
		},
		{
			name:     "subcommand left alone",
			args:     []string{"tagtint", "render"},
			expected: []string{"tagtint", "render"},
		},
		{
			name:     "flags left alone",
			args:     []string{"tagtint", "--help"},
			expected: []string{"tagtint", "--help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleNakedCommand(tt.args); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}
