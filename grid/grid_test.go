package grid

import (
	"testing"

	"github.com/framegrace/texelblock/style"
)

func TestNewTransparent(t *testing.T) {
	g := New(3, 2)
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("size = %dx%d", g.Width(), g.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if !g.At(x, y).Transparent() {
				t.Fatalf("cell (%d,%d) not transparent", x, y)
			}
		}
	}
	if g := New(-1, -1); g.Width() != 0 || g.Height() != 0 {
		t.Fatalf("negative dimensions must clamp to zero")
	}
}

func TestPlaceCluster(t *testing.T) {
	g := New(4, 1)
	x := 0
	x += g.PlaceCluster(x, 0, "a", 1, style.None)
	x += g.PlaceCluster(x, 0, "世", 2, style.None)
	g.PlaceCluster(x, 0, "b", 1, style.None)

	if g.At(0, 0).Grapheme != "a" {
		t.Fatalf("cell 0 = %#v", g.At(0, 0))
	}
	if got := g.At(1, 0); got.Grapheme != "世" || got.Width != 2 {
		t.Fatalf("cell 1 = %#v", got)
	}
	if !g.At(2, 0).Cont {
		t.Fatalf("cell 2 should be a continuation")
	}
	if g.At(3, 0).Grapheme != "b" {
		t.Fatalf("cell 3 = %#v", g.At(3, 0))
	}
	if g.String() != "a世b" {
		t.Fatalf("text = %q", g.String())
	}
}

func TestPlaceClusterClipsWide(t *testing.T) {
	g := New(1, 1)
	g.PlaceCluster(0, 0, "世", 2, style.None)
	if !g.At(0, 0).Transparent() {
		t.Fatalf("clipped wide head should not be written: %#v", g.At(0, 0))
	}
}

func TestBlitClipping(t *testing.T) {
	src := New(2, 1)
	src.PlaceCluster(0, 0, "世", 2, style.None)

	dst := New(3, 1)
	dst.Blit(2, 0, src)
	if !dst.At(2, 0).Transparent() {
		t.Fatalf("wide head with clipped continuation must degrade to transparent")
	}

	dst2 := New(3, 1)
	dst2.Blit(1, 0, src)
	if dst2.At(1, 0).Grapheme != "世" || !dst2.At(2, 0).Cont {
		t.Fatalf("in-bounds wide blit failed: %#v %#v", dst2.At(1, 0), dst2.At(2, 0))
	}
}

func TestLinesTrimTrailing(t *testing.T) {
	g := New(4, 2)
	g.PlaceCluster(1, 0, "x", 1, style.None)
	lines := g.Lines()
	if lines[0] != " x" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "" {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestCloneAndEqual(t *testing.T) {
	g := New(2, 1)
	g.PlaceCluster(0, 0, "a", 1, style.None.WithAttr(style.AttrBold, true))
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatalf("clone should compare equal")
	}
	c.Set(1, 0, Cell{Grapheme: "z", Width: 1})
	if g.Equal(c) {
		t.Fatalf("mutated clone should not compare equal")
	}
}
