// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/color.go
// Summary: Colour values in the modes terminals actually support.

package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode defines the type of colour stored.
type ColorMode uint8

const (
	ColorUnset    ColorMode = iota // inherit from the surrounding context
	ColorDefault                   // explicit reset to the terminal default
	ColorStandard                  // the basic 16 ANSI colours
	Color256                       // 256-colour palette
	ColorRGB                       // 24-bit "true" colour
)

// Color represents a colour in potentially different modes. The zero
// value is unset, which is distinct from the terminal default.
type Color struct {
	Mode    ColorMode
	Value   uint8 // colour code for Standard (0-15) and 256 mode
	R, G, B uint8 // channel values for RGB mode
}

// Standard ANSI colour codes for ANSI16.
const (
	ANSIBlack uint8 = iota
	ANSIRed
	ANSIGreen
	ANSIYellow
	ANSIBlue
	ANSIMagenta
	ANSICyan
	ANSIWhite
)

// Default is the explicit terminal-default colour.
var Default = Color{Mode: ColorDefault}

// ANSI returns a basic 16-colour palette colour.
func ANSI(code uint8) Color {
	return Color{Mode: ColorStandard, Value: code}
}

// Palette returns a 256-colour palette colour.
func Palette(code uint8) Color {
	return Color{Mode: Color256, Value: code}
}

// RGB returns a 24-bit colour.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Set reports whether the colour carries a value (is not inherited).
func (c Color) Set() bool {
	return c.Mode != ColorUnset
}

// ParseColor parses a hex colour string such as "#1e1e2e" or "#fff"
// into an RGB colour.
func ParseColor(s string) (Color, error) {
	if len(s) == 4 && s[0] == '#' {
		// colorful.Hex only accepts the long form.
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("style: parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}
