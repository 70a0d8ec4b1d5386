package block

import (
	"sync"
	"testing"

	"github.com/framegrace/texelblock/style"
)

func mustJoin(t *testing.T, axis Axis, align Alignment, children ...*Block) *Block {
	t.Helper()
	b, err := NewJoin(axis, align, children...)
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	return b
}

func mustOverlay(t *testing.T, layers ...*Block) *Block {
	t.Helper()
	b, err := NewOverlay(layers...)
	if err != nil {
		t.Fatalf("overlay failed: %v", err)
	}
	return b
}

func TestLeafSize(t *testing.T) {
	cases := []struct {
		text string
		want Size
	}{
		{"Hi", Size{2, 1}},
		{"", Size{0, 0}},
		{"a\nbbb\ncc", Size{3, 3}},
		{"a世b", Size{4, 1}},
		{"one\n", Size{3, 2}},
	}
	for _, c := range cases {
		if got := NewLeaf(c.text, style.None).Size(); got != c.want {
			t.Fatalf("size of %q = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestSpacerAndFilledSize(t *testing.T) {
	if got := NewSpacer(4, 3).Size(); got != (Size{4, 3}) {
		t.Fatalf("spacer size = %v", got)
	}
	if got := NewSpacer(-1, -2).Size(); got != (Size{0, 0}) {
		t.Fatalf("negative spacer size = %v", got)
	}
	if got := NewFilled(5, 2, "#", style.None).Size(); got != (Size{5, 2}) {
		t.Fatalf("filled size = %v", got)
	}
	// Wide fill in an odd width still declares the full width.
	if got := NewFilled(5, 1, "世", style.None).Size(); got != (Size{5, 1}) {
		t.Fatalf("wide filled size = %v", got)
	}
}

func TestPadSize(t *testing.T) {
	b := NewLeaf("Hi", style.None)
	p, err := NewPad(b, 1, 2, 3, 4, Fill{})
	if err != nil {
		t.Fatalf("pad failed: %v", err)
	}
	if got := p.Size(); got != (Size{8, 5}) {
		t.Fatalf("padded size = %v", got)
	}
}

func TestPadNegative(t *testing.T) {
	b := NewLeaf("x", style.None)
	for _, margins := range [][4]int{{-1, 0, 0, 0}, {0, -1, 0, 0}, {0, 0, -1, 0}, {0, 0, 0, -1}} {
		if _, err := NewPad(b, margins[0], margins[1], margins[2], margins[3], Fill{}); err != ErrInvalidPadding {
			t.Fatalf("margins %v: err = %v, want ErrInvalidPadding", margins, err)
		}
	}
}

func TestJoinSizeArithmetic(t *testing.T) {
	a := NewLeaf("a\na", style.None) // 1x2
	b := NewLeaf("BB", style.None)   // 2x1
	c := NewLeaf("ccc", style.None)  // 3x1

	h := mustJoin(t, Horizontal, Start, a, b, c)
	if got := h.Size(); got != (Size{6, 2}) {
		t.Fatalf("horizontal join size = %v", got)
	}

	v := mustJoin(t, Vertical, Start, a, b, c)
	if got := v.Size(); got != (Size{3, 4}) {
		t.Fatalf("vertical join size = %v", got)
	}
}

func TestJoinWidthIsSumOfChildren(t *testing.T) {
	blocks := []*Block{
		NewLeaf("Hi", style.None),
		NewSpacer(3, 2),
		NewFilled(2, 2, "#", style.None),
	}
	for _, a := range blocks {
		for _, b := range blocks {
			j := mustJoin(t, Horizontal, Center, a, b)
			as, bs := a.Size(), b.Size()
			if j.Size().Width != as.Width+bs.Width {
				t.Fatalf("join width %d != %d + %d", j.Size().Width, as.Width, bs.Width)
			}
			wantH := as.Height
			if bs.Height > wantH {
				wantH = bs.Height
			}
			if j.Size().Height != wantH {
				t.Fatalf("join height %d != max(%d, %d)", j.Size().Height, as.Height, bs.Height)
			}
		}
	}
}

func TestEmptyComposites(t *testing.T) {
	if _, err := NewJoin(Horizontal, Start); err != ErrEmptyComposite {
		t.Fatalf("empty join err = %v", err)
	}
	if _, err := NewOverlay(); err != ErrEmptyComposite {
		t.Fatalf("empty overlay err = %v", err)
	}
}

func TestOverlaySizeIsFrontLayer(t *testing.T) {
	front := NewLeaf("A", style.None)
	back := NewLeaf("BBBB\nBBBB", style.None)
	o := mustOverlay(t, front, back)
	if got := o.Size(); got != (Size{1, 1}) {
		t.Fatalf("overlay size = %v, want front layer's 1x1", got)
	}
}

func TestStyledSizeUnchanged(t *testing.T) {
	b := NewLeaf("abc\nd", style.None)
	s := NewStyled(b, style.None.WithAttr(style.AttrBold, true))
	if s.Size() != b.Size() {
		t.Fatalf("styled size %v != child size %v", s.Size(), b.Size())
	}
}

func TestSizeMemoizedAndConcurrent(t *testing.T) {
	shared := NewLeaf("shared", style.None)
	tree := mustJoin(t, Vertical, Start, shared, shared, shared)

	var wg sync.WaitGroup
	results := make([]Size, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tree.Size()
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		if got != (Size{6, 3}) {
			t.Fatalf("concurrent size = %v", got)
		}
	}
	if tree.Size() != tree.Size() {
		t.Fatalf("size not stable across calls")
	}
}

func TestPadToWidth(t *testing.T) {
	b := NewLeaf("Hi", style.None)
	for _, align := range []Alignment{Start, Center, End, Stretch} {
		p := PadToWidth(b, 6, align)
		if got := p.Size(); got != (Size{6, 1}) {
			t.Fatalf("align %v: size = %v", align, got)
		}
	}
	if PadToWidth(b, 1, Start) != b {
		t.Fatalf("padding below current width must return the block unchanged")
	}
	if got := PadToSize(b, Size{4, 3}, Center, End).Size(); got != (Size{4, 3}) {
		t.Fatalf("PadToSize = %v", got)
	}
}
