// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: encode/tcell.go
// Summary: Blits rendered grids onto a tcell screen.
// Usage: Interactive front ends draw composited frames through this.

package encode

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelblock/grid"
	"github.com/framegrace/texelblock/style"
)

// ScreenBlitter draws grids onto a tcell.Screen, converting styles on
// the fly and caching the conversions. Not safe for concurrent use,
// like the screen it wraps.
type ScreenBlitter struct {
	screen tcell.Screen
	cache  map[style.Style]tcell.Style
}

// NewScreenBlitter wraps the provided screen.
func NewScreenBlitter(screen tcell.Screen) *ScreenBlitter {
	return &ScreenBlitter{
		screen: screen,
		cache:  make(map[style.Style]tcell.Style),
	}
}

// Blit draws the grid with its top-left corner at (x, y). Transparent
// cells leave the existing screen content untouched, continuation
// cells are skipped (tcell tracks wide glyphs itself).
func (b *ScreenBlitter) Blit(x, y int, g *grid.Grid) {
	for gy := 0; gy < g.Height(); gy++ {
		for gx := 0; gx < g.Width(); gx++ {
			cell := g.At(gx, gy)
			if cell.Transparent() || cell.Cont {
				continue
			}
			main, comb := splitRunes(cell.Grapheme)
			b.screen.SetContent(x+gx, y+gy, main, comb, b.convert(cell.Style))
		}
	}
}

func (b *ScreenBlitter) convert(st style.Style) tcell.Style {
	if cached, ok := b.cache[st]; ok {
		return cached
	}
	out := tcell.StyleDefault.
		Foreground(toTcellColor(st.Fg)).
		Background(toTcellColor(st.Bg)).
		Bold(st.Has(style.AttrBold)).
		Underline(st.Has(style.AttrUnderline)).
		Reverse(st.Has(style.AttrReverse)).
		Blink(st.Has(style.AttrBlink)).
		Dim(st.Has(style.AttrDim)).
		Italic(st.Has(style.AttrItalic)).
		StrikeThrough(st.Has(style.AttrStrike))
	b.cache[st] = out
	return out
}

func toTcellColor(c style.Color) tcell.Color {
	switch c.Mode {
	case style.ColorStandard:
		return tcell.PaletteColor(int(c.Value))
	case style.Color256:
		return tcell.PaletteColor(int(c.Value))
	case style.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	case style.ColorDefault:
		return tcell.ColorReset
	}
	// Unset inherits; tcell has no inherit, default is the closest.
	return tcell.ColorDefault
}

func splitRunes(grapheme string) (rune, []rune) {
	runes := []rune(grapheme)
	if len(runes) == 0 {
		return ' ', nil
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}
