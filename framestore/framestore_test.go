package framestore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/framegrace/texelblock/block"
	"github.com/framegrace/texelblock/style"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "frames.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	b := block.Border(block.NewLeaf("hello", style.None.WithFg(style.ANSI(style.ANSIGreen))), block.BorderSingle, style.None)
	g := b.Render()

	if err := s.Save("welcome", g); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := s.Load("welcome", nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.Equal(g) {
		t.Fatalf("loaded frame differs:\n%s\nvs\n%s", loaded.String(), g.String())
	}
}

func TestLoadLatestRevision(t *testing.T) {
	s := openTestStore(t)

	first := block.NewLeaf("v1", style.None).Render()
	second := block.NewLeaf("v2", style.None).Render()
	if err := s.Save("frame", first); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.Save("frame", second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := s.Load("frame", nil)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.String() != "v2" {
		t.Fatalf("loaded %q, want latest revision", loaded.String())
	}
}

func TestLoadMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load("nope", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListAndPrune(t *testing.T) {
	s := openTestStore(t)
	g := block.NewLeaf("x", style.None).Render()
	for i := 0; i < 3; i++ {
		if err := s.Save("frame", g); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	infos, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("list length = %d", len(infos))
	}
	if infos[0].Width != 1 || infos[0].Height != 1 || infos[0].Name != "frame" {
		t.Fatalf("unexpected info: %#v", infos[0])
	}

	if err := s.Prune("frame", 1); err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	infos, err = s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("after prune, list length = %d", len(infos))
	}
}
