// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tag

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Color is a display color associated with a Tag, or the explicit "none"
// sentinel. None is a valid decoded value distinct from a decode failure; it
// exists so that one configuration source can cancel a color set by another
// without the entry being mistaken for a missing key.
//
// Recognized JSON encodings:
//   - a palette name string: "red", "orange", "yellow", "green", "blue",
//     "purple"
//   - a "#RRGGBB" hex string
//   - an object {"red": 0-255, "green": 0-255, "blue": 0-255}
//   - null (the none sentinel)
//
// Any other shape is a decode error.
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
}

type colorKind int

const (
	colorNone colorKind = iota
	colorPalette
	colorRGB
)

// paletteColors maps the predefined palette names to their terminal color
// specs. Orange has no slot in the basic ANSI palette, so it uses the
// closest 256-color index.
var paletteColors = map[string]string{
	"red":    "1",
	"orange": "208",
	"yellow": "3",
	"green":  "2",
	"blue":   "4",
	"purple": "5",
}

// None returns the explicit no-color sentinel.
func None() Color {
	return Color{}
}

// Palette returns the named palette color. The name must be one of the
// predefined palette names.
func Palette(name string) (Color, error) {
	if _, ok := paletteColors[name]; !ok {
		return Color{}, fmt.Errorf("unknown palette color %q", name)
	}
	return Color{kind: colorPalette, name: name}, nil
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsNone reports whether c is the none sentinel.
func (c Color) IsNone() bool {
	return c.kind == colorNone
}

// TerminalColor returns a lipgloss-compatible color value. It must not be
// called on the none sentinel; callers filter none entries first.
func (c Color) TerminalColor() color.Color {
	switch c.kind {
	case colorPalette:
		return lipgloss.Color(paletteColors[c.name])
	case colorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b))
	default:
		return lipgloss.Color("")
	}
}

// String returns the canonical text form: the palette name, a "#RRGGBB"
// string, or "none".
func (c Color) String() string {
	switch c.kind {
	case colorPalette:
		return c.name
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "none"
	}
}

// UnmarshalJSON decodes any of the recognized color encodings. A JSON null
// decodes to the none sentinel rather than failing, so a whole-file decode
// stays atomic while still carrying the "no color" intent through.
func (c *Color) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = None()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return c.decodeString(s)
	}

	var rgb struct {
		Red   *int `json:"red"`
		Green *int `json:"green"`
		Blue  *int `json:"blue"`
	}
	if err := json.Unmarshal(data, &rgb); err != nil {
		return fmt.Errorf("unrecognized color value %s", data)
	}
	if rgb.Red == nil || rgb.Green == nil || rgb.Blue == nil {
		return fmt.Errorf("color object %s must have red, green and blue", data)
	}
	for _, ch := range []int{*rgb.Red, *rgb.Green, *rgb.Blue} {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("color channel %d out of range", ch)
		}
	}
	*c = RGB(uint8(*rgb.Red), uint8(*rgb.Green), uint8(*rgb.Blue))
	return nil
}

// MarshalJSON emits the canonical encoding: palette name, hex string, or
// null for the none sentinel.
func (c Color) MarshalJSON() ([]byte, error) {
	if c.kind == colorNone {
		return []byte("null"), nil
	}
	return json.Marshal(c.String())
}

func (c *Color) decodeString(s string) error {
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return fmt.Errorf("hex color %q must be #RRGGBB", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return fmt.Errorf("hex color %q must be #RRGGBB", s)
		}
		*c = RGB(uint8(v>>16), uint8(v>>8), uint8(v))
		return nil
	}

	p, err := Palette(s)
	if err != nil {
		return err
	}
	*c = p
	return nil
}
