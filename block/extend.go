// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: block/extend.go
// Summary: Convenience combinators for padding blocks to a target size.

package block

// PadToWidth pads a block with transparency until it is at least
// width cells wide. Alignment picks where the block sits inside the
// target extent: Start keeps it left, End right, Center splits the
// slack. Blocks already wide enough are returned unchanged.
func PadToWidth(b *Block, width int, align Alignment) *Block {
	slack := width - b.Size().Width
	if slack <= 0 {
		return b
	}
	left := crossOffset(align, width, b.Size().Width)
	return mustPad(b, 0, slack-left, 0, left)
}

// PadToHeight pads a block with transparency until it is at least
// height cells tall, aligned the same way along the vertical axis.
func PadToHeight(b *Block, height int, align Alignment) *Block {
	slack := height - b.Size().Height
	if slack <= 0 {
		return b
	}
	top := crossOffset(align, height, b.Size().Height)
	return mustPad(b, top, 0, slack-top, 0)
}

// PadToSize pads along both axes.
func PadToSize(b *Block, size Size, horizontal, vertical Alignment) *Block {
	return PadToHeight(PadToWidth(b, size.Width, horizontal), size.Height, vertical)
}

// mustPad wraps NewPad for margins known to be non-negative.
func mustPad(b *Block, top, right, bottom, left int) *Block {
	out, err := NewPad(b, top, right, bottom, left, Fill{})
	if err != nil {
		panic("block: internal padding arithmetic produced a negative margin")
	}
	return out
}
