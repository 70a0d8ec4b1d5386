// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: block/block.go
// Summary: Immutable block tree and its construction combinators.
// Usage: Applications build layouts bottom-up from these constructors
//        and render them to a grid.

// Package block composes rectangular blocks of styled monospaced text.
// A Block is an immutable node in a composition tree (leaf text,
// padding, joined sequence, overlay stack, style override). Because
// blocks never change after construction, the same value may appear
// under several parents; construction is strictly bottom-up, so the
// structure is always acyclic. All validation happens at construction
// time; layout and rendering are total afterwards.
package block

import (
	"errors"
	"strings"
	"sync"

	"github.com/framegrace/texelblock/cellwidth"
	"github.com/framegrace/texelblock/grid"
	"github.com/framegrace/texelblock/style"
)

var (
	// ErrInvalidPadding reports a negative margin passed to NewPad.
	ErrInvalidPadding = errors.New("block: negative padding")
	// ErrEmptyComposite reports a join or overlay with no children.
	// Callers needing an empty slot must supply a spacer explicitly.
	ErrEmptyComposite = errors.New("block: composite needs at least one child")
)

// Axis selects the direction children are concatenated along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Alignment positions a child within the cross-axis extent of a join.
type Alignment int

const (
	Start Alignment = iota
	Center
	End
	// Stretch re-lays-out each child at the stretched cross size.
	// Leaves do not rewrap, so their remainder stays transparent.
	Stretch
)

// Anchor positions overlay layers smaller than the front layer.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
)

// Size is a block extent in cells.
type Size struct {
	Width  int
	Height int
}

// Kind tags the closed set of block variants.
type Kind int

const (
	KindLeaf Kind = iota
	KindPadded
	KindJoined
	KindOverlaid
	KindStyled
)

// Fill describes the cell used for padding margins. The zero value is
// transparent.
type Fill struct {
	Grapheme string
	Style    style.Style
}

// Block is an immutable composition-tree node. Fields are populated
// according to kind and never mutated after the constructor returns;
// the memoized size is the only lazily written state.
type Block struct {
	kind Kind

	// leaf: grapheme head cells per line, natural per-line widths.
	// Shorter lines are padded with transparency at render time only.
	lines [][]grid.Cell
	leafW int // declared minimum width (spacers, filled blocks)

	// padded, styled
	child *Block

	// padded
	top, right, bottom, left int
	fill                     Fill
	fillWidth                int

	// joined, overlaid
	children []*Block
	axis     Axis
	align    Alignment
	anchor   Anchor

	// styled
	patch style.Style

	sizeOnce sync.Once
	size     Size
}

// Kind returns the variant tag of the block.
func (b *Block) Kind() Kind {
	return b.kind
}

// NewLeaf builds a literal text block using the default width oracle.
// The empty string yields a zero-size block.
func NewLeaf(text string, st style.Style) *Block {
	return NewLeafWithOracle(text, st, cellwidth.Default())
}

// NewLeafWithOracle builds a literal text block, measuring grapheme
// clusters through the supplied oracle. Text splits on newlines; a
// zero-width cluster attaches to the preceding cell, or keeps its own
// one-cell column at the start of a line.
func NewLeafWithOracle(text string, st style.Style, oracle *cellwidth.Oracle) *Block {
	b := &Block{kind: KindLeaf}
	if text == "" {
		return b
	}
	for _, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		var cells []grid.Cell
		for _, cluster := range cellwidth.Clusters(raw) {
			w := oracle.ClusterWidth(cluster)
			if w == 0 && len(cells) > 0 {
				cells[len(cells)-1].Grapheme += cluster
				continue
			}
			if w == 0 {
				w = 1
			}
			cells = append(cells, grid.Cell{Grapheme: cluster, Style: st, Width: w})
		}
		b.lines = append(b.lines, cells)
	}
	return b
}

// NewSpacer builds a fully transparent block of the given size.
func NewSpacer(width, height int) *Block {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Block{kind: KindLeaf, lines: make([][]grid.Cell, height), leafW: width}
}

// NewFilled builds a block of the given size tiled with one grapheme.
// An empty grapheme yields a spacer. If a wide fill grapheme does not
// divide the width evenly, the final column stays transparent.
func NewFilled(width, height int, grapheme string, st style.Style) *Block {
	if grapheme == "" {
		return NewSpacer(width, height)
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	gw := cellwidth.Default().ClusterWidth(grapheme)
	if gw == 0 {
		gw = 1
	}
	b := &Block{kind: KindLeaf, lines: make([][]grid.Cell, height), leafW: width}
	for y := range b.lines {
		var cells []grid.Cell
		for x := 0; x+gw <= width; x += gw {
			cells = append(cells, grid.Cell{Grapheme: grapheme, Style: st, Width: gw})
		}
		b.lines[y] = cells
	}
	return b
}

// NewPad wraps a child with four margins filled with the given cell.
// Margins must be non-negative.
func NewPad(child *Block, top, right, bottom, left int, fill Fill) (*Block, error) {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return nil, ErrInvalidPadding
	}
	fw := 0
	if fill.Grapheme != "" {
		fw = cellwidth.Default().ClusterWidth(fill.Grapheme)
	}
	return &Block{
		kind:      KindPadded,
		child:     child,
		top:       top,
		right:     right,
		bottom:    bottom,
		left:      left,
		fill:      fill,
		fillWidth: fw,
	}, nil
}

// NewJoin concatenates children along an axis. The cross-axis extent
// is the maximum of the children's; alignment positions each child
// within it, with the remainder transparent.
func NewJoin(axis Axis, align Alignment, children ...*Block) (*Block, error) {
	if len(children) == 0 {
		return nil, ErrEmptyComposite
	}
	kids := make([]*Block, len(children))
	copy(kids, children)
	return &Block{kind: KindJoined, children: kids, axis: axis, align: align}, nil
}

// NewOverlay stacks layers front to back, anchored top-left. The
// composite takes the front layer's size; larger layers are clipped,
// smaller ones surrounded by transparency.
func NewOverlay(layers ...*Block) (*Block, error) {
	return NewOverlayAnchored(AnchorTopLeft, layers...)
}

// NewOverlayAnchored stacks layers front to back with an explicit
// anchor for layers smaller than the front layer.
func NewOverlayAnchored(anchor Anchor, layers ...*Block) (*Block, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyComposite
	}
	kids := make([]*Block, len(layers))
	copy(kids, layers)
	return &Block{kind: KindOverlaid, children: kids, anchor: anchor}, nil
}

// NewStyled attaches a style patch applied to every cell the child
// renders, transparent cells included. Size is unchanged.
func NewStyled(child *Block, patch style.Style) *Block {
	return &Block{kind: KindStyled, child: child, patch: patch}
}
