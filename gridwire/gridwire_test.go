package gridwire

import (
	"testing"

	"github.com/framegrace/texelblock/block"
	"github.com/framegrace/texelblock/style"
)

func TestRoundTrip(t *testing.T) {
	red := style.None.WithFg(style.ANSI(style.ANSIRed))
	inner, err := block.NewJoin(block.Vertical, block.Start,
		block.NewLeaf("hello 世界", red),
		block.NewLeaf("plain", style.None),
	)
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	b := block.Border(inner, block.BorderSingle, style.None)
	g := b.Render()

	payload, err := Encode(g)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := Decode(payload, nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded.Width() != g.Width() || decoded.Height() != g.Height() {
		t.Fatalf("size mismatch: %dx%d vs %dx%d", decoded.Width(), decoded.Height(), g.Width(), g.Height())
	}
	if !decoded.Equal(g) {
		t.Fatalf("round trip mismatch:\n%s\nvs\n%s", decoded.String(), g.String())
	}
}

func TestTransparencySurvives(t *testing.T) {
	// "A" padded to width 3: two transparent cells must stay
	// transparent after a round trip, not become spaces.
	g := block.PadToWidth(block.NewLeaf("A", style.None), 3, block.Start).Render()
	payload, err := Encode(g)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := Decode(payload, nil)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !decoded.At(1, 0).Transparent() || !decoded.At(2, 0).Transparent() {
		t.Fatalf("transparent cells lost: %#v", decoded.At(1, 0))
	}
}

func TestStyleTableDeduplicated(t *testing.T) {
	red := style.None.WithFg(style.ANSI(style.ANSIRed))
	j, err := block.NewJoin(block.Horizontal, block.Start,
		block.NewLeaf("aa", red),
		block.NewLeaf("bb", red),
		block.NewLeaf("cc", red),
	)
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	payload, err := Encode(j.Render())
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	// width + height + style count, then exactly one 12-byte style.
	styleCount := int(payload[4]) | int(payload[5])<<8
	if styleCount != 1 {
		t.Fatalf("style count = %d, want 1", styleCount)
	}
}

func TestDecodeTruncated(t *testing.T) {
	g := block.NewLeaf("hello", style.None).Render()
	payload, err := Encode(g)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	for _, n := range []int{0, 1, 3, len(payload) / 2, len(payload) - 1} {
		if _, err := Decode(payload[:n], nil); err == nil {
			t.Fatalf("expected error for %d-byte prefix", n)
		}
	}
}

func TestText(t *testing.T) {
	payload, err := Encode(block.NewLeaf("Hi", style.None).Render())
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	text, err := Text(payload)
	if err != nil {
		t.Fatalf("text failed: %v", err)
	}
	if text != "Hi" {
		t.Fatalf("text = %q", text)
	}
}
