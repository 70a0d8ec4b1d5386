// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: grid/grid.go
// Summary: Rectangular grid of styled grapheme cells.
// Usage: Produced by block rendering and consumed by encoders.

// Package grid holds the rendered value type: a rectangular array of
// (grapheme, style) cells with uniform row width. A wide grapheme
// occupies a head cell plus a continuation cell so that every row has
// exactly Width cells. The zero-value cell is transparent.
package grid

import (
	"strings"

	"github.com/framegrace/texelblock/style"
)

// Cell is one addressable unit of the rendered grid. A cell is either
// a grapheme head (Width 1 or 2), the continuation of a wide grapheme
// to its left (Cont), or transparent (the zero value, modulo style).
type Cell struct {
	Grapheme string
	Style    style.Style
	Width    int
	Cont     bool
}

// Transparent reports whether the cell carries no content. Transparent
// cells may still carry a style patch.
func (c Cell) Transparent() bool {
	return c.Grapheme == "" && !c.Cont
}

// Grid is a rectangular cell array. Rows always hold exactly Width
// cells. Grids are mutable builders; blocks hand out freshly rendered
// grids, never shared ones.
type Grid struct {
	width  int
	height int
	rows   [][]Cell
}

// New creates a fully transparent grid.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
	}
	return &Grid{width: width, height: height, rows: rows}
}

// Width returns the declared grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the cell at (x, y), or a transparent cell out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return Cell{}
	}
	return g.rows[y][x]
}

// Set writes the cell at (x, y). Writes outside the bounds are dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		return
	}
	g.rows[y][x] = c
}

// Row returns the backing slice for a row, or nil out of bounds.
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	return g.rows[y]
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// PlaceCluster writes a grapheme head at (x, y) and, for a wide
// grapheme, the continuation cell at (x+1, y). A wide grapheme whose
// continuation would fall outside the grid cannot be shown whole and
// is dropped. Returns the number of columns advanced.
func (g *Grid) PlaceCluster(x, y int, grapheme string, width int, st style.Style) int {
	if width <= 0 {
		width = 0
	}
	if width == 2 && x+1 >= g.width {
		return width
	}
	g.Set(x, y, Cell{Grapheme: grapheme, Style: st, Width: width})
	if width == 2 {
		g.Set(x+1, y, Cell{Style: st, Cont: true})
	}
	return width
}

// Blit copies src onto the grid with its top-left corner at (x, y),
// overwriting the destination region cell for cell. Cells landing
// outside the bounds are clipped; a wide head whose continuation is
// clipped degrades to transparent.
func (g *Grid) Blit(x, y int, src *Grid) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			cell := src.rows[sy][sx]
			dx, dy := x+sx, y+sy
			if !g.inBounds(dx, dy) {
				continue
			}
			if cell.Width == 2 && !g.inBounds(dx+1, dy) {
				cell = Cell{Style: cell.Style}
			}
			if cell.Cont && dx == 0 {
				// Head was clipped off at the left edge.
				cell = Cell{Style: cell.Style}
			}
			g.rows[dy][dx] = cell
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := New(g.width, g.height)
	for y := range g.rows {
		copy(out.rows[y], g.rows[y])
	}
	return out
}

// Lines returns the plain-text rows of the grid. Transparent cells
// become spaces; continuation cells emit nothing (the wide head
// already covers both columns). Trailing spaces are trimmed.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var sb strings.Builder
		for x := 0; x < g.width; x++ {
			cell := g.rows[y][x]
			switch {
			case cell.Cont:
			case cell.Transparent():
				sb.WriteByte(' ')
			default:
				sb.WriteString(cell.Grapheme)
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

// String renders the grid as newline-joined plain text.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Equal reports whether two grids are cell-for-cell identical.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.rows {
		for x := range g.rows[y] {
			if g.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}
