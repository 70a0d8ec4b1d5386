// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: block/border.go
// Summary: Box-drawing frame combinator built from joins and leaves.

package block

import (
	"strings"

	"github.com/framegrace/texelblock/style"
)

// BorderSet names the eight glyphs of a box-drawing frame.
type BorderSet struct {
	TopLeft, Top, TopRight          string
	Left, Right                     string
	BottomLeft, Bottom, BottomRight string
}

// BorderSingle is the light box-drawing set.
var BorderSingle = BorderSet{
	TopLeft: "┌", Top: "─", TopRight: "┐",
	Left: "│", Right: "│",
	BottomLeft: "└", Bottom: "─", BottomRight: "┘",
}

// BorderRound is the light set with rounded corners.
var BorderRound = BorderSet{
	TopLeft: "╭", Top: "─", TopRight: "╮",
	Left: "│", Right: "│",
	BottomLeft: "╰", Bottom: "─", BottomRight: "╯",
}

// BorderDouble is the double-line set.
var BorderDouble = BorderSet{
	TopLeft: "╔", Top: "═", TopRight: "╗",
	Left: "║", Right: "║",
	BottomLeft: "╚", Bottom: "═", BottomRight: "╝",
}

// Border frames a child with a one-cell box-drawing border. The frame
// is built from ordinary leaves and joins, so the result obeys the
// usual size arithmetic: child size plus two in each dimension.
func Border(child *Block, set BorderSet, st style.Style) *Block {
	cs := child.Size()

	top := NewLeaf(set.TopLeft+strings.Repeat(set.Top, cs.Width)+set.TopRight, st)
	bottom := NewLeaf(set.BottomLeft+strings.Repeat(set.Bottom, cs.Width)+set.BottomRight, st)
	left := NewFilled(1, cs.Height, set.Left, st)
	right := NewFilled(1, cs.Height, set.Right, st)

	middle, err := NewJoin(Horizontal, Start, left, child, right)
	if err != nil {
		panic("block: border join cannot be empty")
	}
	framed, err := NewJoin(Vertical, Start, top, middle, bottom)
	if err != nil {
		panic("block: border join cannot be empty")
	}
	return framed
}
