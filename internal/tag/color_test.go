// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tag

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		isNone  bool
		wantErr bool
	}{
		{
			name:  "palette name",
			input: `"red"`,
			want:  "red",
		},
		{
			name:  "another palette name",
			input: `"purple"`,
			want:  "purple",
		},
		{
			name:  "hex string",
			input: `"#ff8800"`,
			want:  "#ff8800",
		},
		{
			name:  "hex string uppercase digits",
			input: `"#FF8800"`,
			want:  "#ff8800",
		},
		{
			name:  "rgb object",
			input: `{"red": 255, "green": 136, "blue": 0}`,
			want:  "#ff8800",
		},
		{
			name:   "null is the none sentinel",
			input:  `null`,
			want:   "none",
			isNone: true,
		},
		{
			name:    "unknown palette name",
			input:   `"magenta"`,
			wantErr: true,
		},
		{
			name:    "short hex",
			input:   `"#f80"`,
			wantErr: true,
		},
		{
			name:    "non-hex digits",
			input:   `"#zzzzzz"`,
			wantErr: true,
		},
		{
			name:    "rgb object missing channel",
			input:   `{"red": 255, "green": 136}`,
			wantErr: true,
		},
		{
			name:    "rgb channel out of range",
			input:   `{"red": 300, "green": 0, "blue": 0}`,
			wantErr: true,
		},
		{
			name:    "number",
			input:   `42`,
			wantErr: true,
		},
		{
			name:    "array",
			input:   `[255, 136, 0]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			err := json.Unmarshal([]byte(tt.input), &c)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
			assert.Equal(t, tt.isNone, c.IsNone())
		})
	}
}

func TestColorMarshal(t *testing.T) {
	c, err := Palette("green")
	require.NoError(t, err)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"green"`, string(out))

	out, err = json.Marshal(RGB(0, 16, 255))
	require.NoError(t, err)
	assert.Equal(t, `"#0010ff"`, string(out))

	out, err = json.Marshal(None())
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestPaletteUnknownName(t *testing.T) {
	_, err := Palette("chartreuse")
	assert.Error(t, err)
}

func TestTerminalColorDistinguishesForms(t *testing.T) {
	red, err := Palette("red")
	require.NoError(t, err)

	// Palette colors resolve to indexed terminal colors, RGB colors to
	// 24-bit values; they must not collapse to the same representation.
	assert.NotEqual(t, red.TerminalColor(), RGB(255, 0, 0).TerminalColor())
}
