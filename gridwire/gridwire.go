// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: gridwire/gridwire.go
// Summary: Compact binary encoding for rendered cell grids.
// Usage: Frame persistence and any transport that ships grids between
//        processes.

// Package gridwire serialises a rendered grid into a compact binary
// form: a deduplicated style table followed by per-row spans of
// contiguous same-style text. Transparent runs are simply absent.
// Grapheme widths are not stored; decoding re-measures text through a
// width oracle, so both sides must agree on the ambiguous-width
// policy.
package gridwire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/framegrace/texelblock/cellwidth"
	"github.com/framegrace/texelblock/grid"
	"github.com/framegrace/texelblock/style"
)

var (
	// ErrFrameTooLarge reports a grid exceeding the format's uint16
	// dimension and table limits.
	ErrFrameTooLarge = errors.New("gridwire: frame exceeds limits")
	errTruncated     = errors.New("gridwire: truncated payload")
)

const maxDim = 0xFFFF

// span is a run of same-style cells starting at a column.
type span struct {
	startCol   uint16
	styleIndex uint16
	text       string
}

// Encode serialises the grid. The layout is:
//
//	u16 width, u16 height
//	u16 style count, styles (12 bytes each)
//	u16 row count, rows: u16 row index, u16 span count,
//	    spans: u16 start col, u16 style index, u16 byte len, text
//
// All integers are little endian, matching the rest of the wire
// formats in this module's lineage.
func Encode(g *grid.Grid) ([]byte, error) {
	if g.Width() > maxDim || g.Height() > maxDim {
		return nil, ErrFrameTooLarge
	}

	styles := []style.Style{}
	styleIndex := map[style.Style]uint16{}
	indexOf := func(st style.Style) (uint16, error) {
		if idx, ok := styleIndex[st]; ok {
			return idx, nil
		}
		if len(styles) > maxDim {
			return 0, ErrFrameTooLarge
		}
		idx := uint16(len(styles))
		styleIndex[st] = idx
		styles = append(styles, st)
		return idx, nil
	}

	type rowSpans struct {
		row   uint16
		spans []span
	}
	var rows []rowSpans

	for y := 0; y < g.Height(); y++ {
		var spans []span
		var cur *span
		col := 0
		for x := 0; x < g.Width(); x++ {
			cell := g.At(x, y)
			if cell.Cont {
				continue
			}
			if cell.Transparent() {
				cur = nil
				col = x + 1
				continue
			}
			idx, err := indexOf(cell.Style)
			if err != nil {
				return nil, err
			}
			if cur == nil || cur.styleIndex != idx || col != x {
				spans = append(spans, span{startCol: uint16(x), styleIndex: idx})
				cur = &spans[len(spans)-1]
			}
			cur.text += cell.Grapheme
			col = x + cell.Width
		}
		if len(spans) > 0 {
			if len(spans) > maxDim {
				return nil, ErrFrameTooLarge
			}
			rows = append(rows, rowSpans{row: uint16(y), spans: spans})
		}
	}

	buf := bytes.NewBuffer(make([]byte, 0, 128))
	le := binary.LittleEndian
	put16 := func(v uint16) {
		var tmp [2]byte
		le.PutUint16(tmp[:], v)
		buf.Write(tmp[:])
	}

	put16(uint16(g.Width()))
	put16(uint16(g.Height()))
	put16(uint16(len(styles)))
	for _, st := range styles {
		buf.WriteByte(byte(st.Fg.Mode))
		buf.Write([]byte{st.Fg.Value, st.Fg.R, st.Fg.G, st.Fg.B})
		buf.WriteByte(byte(st.Bg.Mode))
		buf.Write([]byte{st.Bg.Value, st.Bg.R, st.Bg.G, st.Bg.B})
		put16(uint16(st.Attrs))
		put16(uint16(st.Mask))
	}
	put16(uint16(len(rows)))
	for _, r := range rows {
		put16(r.row)
		put16(uint16(len(r.spans)))
		for _, sp := range r.spans {
			if len(sp.text) > maxDim {
				return nil, ErrFrameTooLarge
			}
			put16(sp.startCol)
			put16(sp.styleIndex)
			put16(uint16(len(sp.text)))
			buf.WriteString(sp.text)
		}
	}
	return buf.Bytes(), nil
}

// Decode reconstructs a grid from its binary form, measuring grapheme
// widths through the supplied oracle. A nil oracle uses the default.
func Decode(data []byte, oracle *cellwidth.Oracle) (*grid.Grid, error) {
	if oracle == nil {
		oracle = cellwidth.Default()
	}
	r := &reader{data: data}

	width := int(r.u16())
	height := int(r.u16())
	styleCount := int(r.u16())
	styles := make([]style.Style, styleCount)
	for i := range styles {
		var st style.Style
		st.Fg = decodeColor(r)
		st.Bg = decodeColor(r)
		st.Attrs = style.Attr(r.u16())
		st.Mask = style.Attr(r.u16())
		styles[i] = st
	}

	g := grid.New(width, height)
	rowCount := int(r.u16())
	for i := 0; i < rowCount; i++ {
		row := int(r.u16())
		spanCount := int(r.u16())
		for j := 0; j < spanCount; j++ {
			startCol := int(r.u16())
			styleIdx := int(r.u16())
			text := r.str(int(r.u16()))
			if r.err != nil {
				return nil, r.err
			}
			if styleIdx >= len(styles) {
				return nil, fmt.Errorf("gridwire: style index %d out of range", styleIdx)
			}
			x := startCol
			for _, cluster := range cellwidth.Clusters(text) {
				w := oracle.ClusterWidth(cluster)
				if w == 0 {
					w = 1
				}
				x += g.PlaceCluster(x, row, cluster, w, styles[styleIdx])
			}
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return g, nil
}

// Text returns the decoded grid's plain-text form without rebuilding
// cell styles; convenience for diagnostics.
func Text(data []byte) (string, error) {
	g, err := Decode(data, nil)
	if err != nil {
		return "", err
	}
	return strings.Join(g.Lines(), "\n"), nil
}

func decodeColor(r *reader) style.Color {
	mode := style.ColorMode(r.u8())
	var c style.Color
	c.Mode = mode
	c.Value = r.u8()
	c.R = r.u8()
	c.G = r.u8()
	c.B = r.u8()
	return c
}

type reader struct {
	data []byte
	pos  int
	err  error
}

func (r *reader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	if r.pos+1 > len(r.data) {
		r.err = errTruncated
		return 0
	}
	v := r.data[r.pos]
	r.pos++
	return v
}

func (r *reader) u16() uint16 {
	if r.err != nil {
		return 0
	}
	if r.pos+2 > len(r.data) {
		r.err = errTruncated
		return 0
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v
}

func (r *reader) str(n int) string {
	if r.err != nil {
		return ""
	}
	if r.pos+n > len(r.data) {
		r.err = errTruncated
		return ""
	}
	s := string(r.data[r.pos : r.pos+n])
	r.pos += n
	return s
}
