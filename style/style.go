// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style/style.go
// Summary: Cell styling attributes and the merge algebra.
// Usage: Carried on every rendered cell; patches merge onto base styles
//        with set-attribute precedence.

// Package style defines the attribute set of a rendered cell and the
// merge operation combining a base style with a patch. A zero Style
// sets nothing and is the merge identity: unset attributes inherit
// whatever the surrounding context supplies.
package style

// Attr defines text attribute flags.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrReverse
	AttrBlink
	AttrDim
	AttrItalic
	AttrStrike
)

// String returns a human-readable representation of the attribute flags.
func (a Attr) String() string {
	if a == 0 {
		return "none"
	}
	names := []struct {
		bit  Attr
		name string
	}{
		{AttrBold, "bold"},
		{AttrUnderline, "underline"},
		{AttrReverse, "reverse"},
		{AttrBlink, "blink"},
		{AttrDim, "dim"},
		{AttrItalic, "italic"},
		{AttrStrike, "strike"},
	}
	var out string
	for _, n := range names {
		if a&n.bit == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	if out == "" {
		return "unknown"
	}
	return out
}

// Style is a patch of cell attributes. Each attribute is either set or
// inherited: colours carry their own unset mode, attribute flags are
// governed by Mask (only bits present in Mask are set by this style).
// Styles are plain comparable data.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr // flag values, meaningful only where Mask has the bit
	Mask  Attr // which flags this style explicitly sets
}

// None is the empty style: sets nothing, merge identity.
var None = Style{}

// Merge combines base with patch. For every attribute the result takes
// the patch's value where the patch sets it and the base's value
// otherwise. Merge is associative and has None as identity.
func Merge(base, patch Style) Style {
	out := base
	if patch.Fg.Mode != ColorUnset {
		out.Fg = patch.Fg
	}
	if patch.Bg.Mode != ColorUnset {
		out.Bg = patch.Bg
	}
	out.Attrs = (base.Attrs &^ patch.Mask) | (patch.Attrs & patch.Mask)
	out.Mask = base.Mask | patch.Mask
	return out
}

// IsZero reports whether the style sets nothing at all.
func (s Style) IsZero() bool {
	return s == None
}

// WithFg returns a copy of the style with the foreground set.
func (s Style) WithFg(c Color) Style {
	s.Fg = c
	return s
}

// WithBg returns a copy of the style with the background set.
func (s Style) WithBg(c Color) Style {
	s.Bg = c
	return s
}

// WithAttr returns a copy of the style that explicitly sets the given
// flags to on or off.
func (s Style) WithAttr(a Attr, on bool) Style {
	s.Mask |= a
	if on {
		s.Attrs |= a
	} else {
		s.Attrs &^= a
	}
	return s
}

// Has reports whether the style explicitly sets the flag on.
func (s Style) Has(a Attr) bool {
	return s.Mask&a != 0 && s.Attrs&a != 0
}
