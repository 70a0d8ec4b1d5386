// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: block/layout.go
// Summary: Deterministic size computation for block trees.

package block

import "github.com/framegrace/texelblock/grid"

// Size computes the block's extent in cells without materializing its
// grid. The result depends only on the block's structure and is
// memoized per node with compute-once semantics, so shared sub-blocks
// pay the recursion once even across concurrent renders.
func (b *Block) Size() Size {
	b.sizeOnce.Do(func() {
		b.size = b.computeSize()
	})
	return b.size
}

func (b *Block) computeSize() Size {
	switch b.kind {
	case KindLeaf:
		w := b.leafW
		for _, line := range b.lines {
			if lw := lineWidth(line); lw > w {
				w = lw
			}
		}
		return Size{Width: w, Height: len(b.lines)}
	case KindPadded:
		cs := b.child.Size()
		return Size{
			Width:  cs.Width + b.left + b.right,
			Height: cs.Height + b.top + b.bottom,
		}
	case KindJoined:
		var main, cross int
		for _, c := range b.children {
			s := c.Size()
			if b.axis == Horizontal {
				main += s.Width
				if s.Height > cross {
					cross = s.Height
				}
			} else {
				main += s.Height
				if s.Width > cross {
					cross = s.Width
				}
			}
		}
		if b.axis == Horizontal {
			return Size{Width: main, Height: cross}
		}
		return Size{Width: cross, Height: main}
	case KindOverlaid:
		return b.children[0].Size()
	case KindStyled:
		return b.child.Size()
	}
	panic("block: unknown block kind")
}

func lineWidth(cells []grid.Cell) int {
	w := 0
	for _, c := range cells {
		w += c.Width
	}
	return w
}
