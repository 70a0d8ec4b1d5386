// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: block/render.go
// Summary: Flattens a block tree into a cell grid.
// Usage: The compositing half of the engine; sizes come from layout.go.

package block

import (
	"github.com/framegrace/texelblock/grid"
	"github.com/framegrace/texelblock/style"
)

// Render flattens the block into a freshly allocated cell grid of
// exactly Size() cells. Rendering is deterministic: the same block
// value always produces an identical grid.
func (b *Block) Render() *grid.Grid {
	sz := b.Size()
	switch b.kind {
	case KindLeaf:
		return b.renderLeaf(sz)
	case KindPadded:
		return b.renderPadded(sz)
	case KindJoined:
		return b.renderJoined(sz)
	case KindOverlaid:
		return b.renderOverlaid(sz)
	case KindStyled:
		out := b.child.Render()
		for y := 0; y < out.Height(); y++ {
			row := out.Row(y)
			for x := range row {
				row[x].Style = style.Merge(row[x].Style, b.patch)
			}
		}
		return out
	}
	panic("block: unknown block kind")
}

func (b *Block) renderLeaf(sz Size) *grid.Grid {
	g := grid.New(sz.Width, sz.Height)
	for y, line := range b.lines {
		x := 0
		for _, cell := range line {
			x += g.PlaceCluster(x, y, cell.Grapheme, cell.Width, cell.Style)
		}
	}
	return g
}

func (b *Block) renderPadded(sz Size) *grid.Grid {
	g := grid.New(sz.Width, sz.Height)
	if b.fill.Grapheme != "" && b.fillWidth > 0 {
		cs := b.child.Size()
		inner := func(x, y int) bool {
			return x >= b.left && x < b.left+cs.Width && y >= b.top && y < b.top+cs.Height
		}
		for y := 0; y < sz.Height; y++ {
			for x := 0; x < sz.Width; {
				if inner(x, y) {
					x++
					continue
				}
				// A wide fill grapheme may not fit before the child
				// region or the right edge; leave that column alone.
				if b.fillWidth == 2 && (inner(x+1, y) || x+1 >= sz.Width) {
					x++
					continue
				}
				g.PlaceCluster(x, y, b.fill.Grapheme, b.fillWidth, b.fill.Style)
				x += b.fillWidth
			}
		}
	}
	g.Blit(b.left, b.top, b.child.Render())
	return g
}

func (b *Block) renderJoined(sz Size) *grid.Grid {
	g := grid.New(sz.Width, sz.Height)
	offset := 0
	for _, c := range b.children {
		cs := c.Size()
		var childCross int
		if b.axis == Horizontal {
			childCross = cs.Height
		} else {
			childCross = cs.Width
		}
		var crossExtent int
		if b.axis == Horizontal {
			crossExtent = sz.Height
		} else {
			crossExtent = sz.Width
		}
		place := crossOffset(b.align, crossExtent, childCross)
		cg := c.Render()
		if b.axis == Horizontal {
			g.Blit(offset, place, cg)
			offset += cs.Width
		} else {
			g.Blit(place, offset, cg)
			offset += cs.Height
		}
	}
	return g
}

// crossOffset positions a child inside the cross-axis extent. Stretch
// places at 0: children in this model do not reflow, so the stretched
// remainder stays transparent.
func crossOffset(align Alignment, extent, child int) int {
	switch align {
	case End:
		return extent - child
	case Center:
		return (extent - child) / 2
	default: // Start, Stretch
		return 0
	}
}

func (b *Block) renderOverlaid(sz Size) *grid.Grid {
	g := grid.New(sz.Width, sz.Height)
	n := len(b.children)
	layers := make([]*grid.Grid, n)
	offs := make([][2]int, n)
	for i, l := range b.children {
		lg := l.Render()
		layers[i] = lg
		if b.anchor == AnchorCenter {
			offs[i] = [2]int{(sz.Width - lg.Width()) / 2, (sz.Height - lg.Height()) / 2}
		}
	}

	// winner[x] remembers which layer supplied the head in column x of
	// the current row, so a continuation cell only counts when its own
	// head survived compositing.
	winner := make([]int, sz.Width)
	for y := 0; y < sz.Height; y++ {
		for x := 0; x < sz.Width; x++ {
			k := -1
			var win grid.Cell
			for i := 0; i < n; i++ {
				c := layers[i].At(x-offs[i][0], y-offs[i][1])
				if c.Transparent() {
					continue
				}
				if c.Cont {
					if x > 0 && winner[x-1] == i && g.At(x-1, y).Width == 2 {
						k = i
						win = c
						break
					}
					// Orphaned continuation: its head lost the column
					// to its left, fall through to deeper layers.
					continue
				}
				k = i
				win = c
				break
			}
			// A wide head in the previous column needs its continuation
			// here; if another cell won instead, degrade that head.
			if x > 0 && g.At(x-1, y).Width == 2 && !(k >= 0 && win.Cont) {
				g.Set(x-1, y, grid.Cell{Style: g.At(x-1, y).Style})
				winner[x-1] = -1
			}
			if k < 0 {
				g.Set(x, y, grid.Cell{Style: foldStyles(layers, offs, x, y, n-1)})
				winner[x] = -1
				continue
			}
			win.Style = foldStyles(layers, offs, x, y, k)
			if win.Width == 2 && x+1 >= sz.Width {
				// Wide head clipped by the front layer's bound.
				g.Set(x, y, grid.Cell{Style: win.Style})
				winner[x] = -1
				continue
			}
			g.Set(x, y, win)
			winner[x] = k
		}
	}
	return g
}

// foldStyles merges layer styles back to front, starting at the
// winning layer and patching every layer in front of it on top.
// Layers behind the winner contribute nothing.
func foldStyles(layers []*grid.Grid, offs [][2]int, x, y, k int) style.Style {
	if k < 0 || k >= len(layers) {
		return style.None
	}
	st := layers[k].At(x-offs[k][0], y-offs[k][1]).Style
	for i := k - 1; i >= 0; i-- {
		lx, ly := x-offs[i][0], y-offs[i][1]
		if lx < 0 || ly < 0 || lx >= layers[i].Width() || ly >= layers[i].Height() {
			continue
		}
		st = style.Merge(st, layers[i].At(lx, ly).Style)
	}
	return st
}
