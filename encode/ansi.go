// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: encode/ansi.go
// Summary: Serialises a rendered grid to ANSI escape sequences.

// Package encode maps rendered grids onto concrete display targets:
// an ANSI escape string for plain writers and a tcell.Screen blitter
// for interactive programs. The grid itself stays display-agnostic;
// everything terminal-specific lives here.
package encode

import (
	"strconv"
	"strings"

	"github.com/framegrace/texelblock/grid"
	"github.com/framegrace/texelblock/style"
)

// ANSI renders the grid as newline-joined text with SGR escape
// sequences. Transparent cells emit plain spaces; attributes reset at
// every style change and at the end of each row. Unset style fields
// emit no code at all, so output inherits the terminal's current
// state, and trailing unstyled blanks are trimmed per row.
func ANSI(g *grid.Grid) string {
	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(ansiRow(g, y))
	}
	return sb.String()
}

func ansiRow(g *grid.Grid, y int) string {
	var sb strings.Builder
	current := style.None
	active := false
	pendingBlanks := 0

	flushBlanks := func() {
		for ; pendingBlanks > 0; pendingBlanks-- {
			sb.WriteByte(' ')
		}
	}

	for x := 0; x < g.Width(); x++ {
		cell := g.At(x, y)
		if cell.Cont {
			continue
		}
		if cell.Transparent() {
			if active {
				sb.WriteString("\x1b[0m")
				active = false
				current = style.None
			}
			pendingBlanks++
			continue
		}
		if cell.Style != current || (!active && !cell.Style.IsZero()) {
			if active {
				sb.WriteString("\x1b[0m")
			}
			flushBlanks()
			if seq := sgr(cell.Style); seq != "" {
				sb.WriteString(seq)
				active = true
			} else {
				active = false
			}
			current = cell.Style
		} else {
			flushBlanks()
		}
		sb.WriteString(cell.Grapheme)
	}
	if active {
		sb.WriteString("\x1b[0m")
	}
	return sb.String()
}

// sgr builds the escape sequence for a style, or "" when it sets
// nothing.
func sgr(st style.Style) string {
	var codes []string
	attr := func(bit style.Attr, code string) {
		if st.Has(bit) {
			codes = append(codes, code)
		}
	}
	attr(style.AttrBold, "1")
	attr(style.AttrDim, "2")
	attr(style.AttrItalic, "3")
	attr(style.AttrUnderline, "4")
	attr(style.AttrBlink, "5")
	attr(style.AttrReverse, "7")
	attr(style.AttrStrike, "9")
	codes = append(codes, colorCodes(st.Fg, false)...)
	codes = append(codes, colorCodes(st.Bg, true)...)
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func colorCodes(c style.Color, background bool) []string {
	base := 30
	if background {
		base = 40
	}
	switch c.Mode {
	case style.ColorDefault:
		return []string{strconv.Itoa(base + 9)}
	case style.ColorStandard:
		code := base + int(c.Value)
		if c.Value >= 8 {
			// Bright variants live in the 90/100 range.
			code = base + 60 + int(c.Value) - 8
		}
		return []string{strconv.Itoa(code)}
	case style.Color256:
		return []string{strconv.Itoa(base + 8), "5", strconv.Itoa(int(c.Value))}
	case style.ColorRGB:
		return []string{
			strconv.Itoa(base + 8), "2",
			strconv.Itoa(int(c.R)), strconv.Itoa(int(c.G)), strconv.Itoa(int(c.B)),
		}
	}
	return nil
}
