// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelblock-demo/main.go
// Summary: Composes a sample layout and prints it as ANSI text.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/texelblock/block"
	"github.com/framegrace/texelblock/cellwidth"
	"github.com/framegrace/texelblock/config"
	"github.com/framegrace/texelblock/encode"
	"github.com/framegrace/texelblock/framestore"
	"github.com/framegrace/texelblock/highlight"
	"github.com/framegrace/texelblock/style"
)

const sample = `package main

import "fmt"

func main() {
	fmt.Println("hello from texelblock")
}
`

func main() {
	configPath := flag.String("config", "", "path to texelblock.json (default: ~/.texelblock/texelblock.json)")
	styleName := flag.String("style", "", "chroma style for the code pane")
	storePath := flag.String("store", "", "save the rendered frame to this SQLite database")
	frameName := flag.String("frame", "demo", "frame name used with -store")
	flag.Parse()

	cfg := config.Get()
	if *configPath != "" {
		cfg = config.Load(*configPath)
	}
	if *styleName != "" {
		cfg.HighlightStyle = *styleName
	}

	frame := buildFrame(cfg)

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	if frame.Size().Width > width {
		log.Printf("frame is %d cells wide, terminal only %d; output will wrap", frame.Size().Width, width)
	}

	g := frame.Render()
	fmt.Println(encode.ANSI(g))

	if *storePath != "" {
		store, err := framestore.Open(*storePath)
		if err != nil {
			log.Fatalf("open frame store: %v", err)
		}
		defer store.Close()
		if err := store.Save(*frameName, g); err != nil {
			log.Fatalf("save frame: %v", err)
		}
		log.Printf("saved frame %q to %s", *frameName, *storePath)
	}
}

// buildFrame composes the demo layout: a bordered title bar above a
// highlighted code pane, with a badge overlaid in the corner.
func buildFrame(cfg config.Render) *block.Block {
	oracle := cellwidth.NewOracle(cfg.WidthPolicy())
	frameStyle := style.None.WithFg(style.ANSI(style.ANSICyan))
	titleStyle := style.None.WithAttr(style.AttrBold, true)

	code := highlight.Source(sample, highlight.Options{
		Filename:  "main.go",
		StyleName: cfg.HighlightStyle,
	})
	codePane := block.Border(pad(code, 0, 1, 0, 1), block.BorderRound, frameStyle)

	title := block.NewLeafWithOracle("texelblock демо", titleStyle, oracle)
	titleBar := block.Border(
		block.PadToWidth(title, codePane.Size().Width-2, block.Center),
		block.BorderSingle, frameStyle)

	body, err := block.NewJoin(block.Vertical, block.Start, titleBar, codePane)
	if err != nil {
		log.Fatalf("compose body: %v", err)
	}

	badge := block.NewLeaf(" v1 ", style.None.
		WithFg(style.ANSI(style.ANSIBlack)).
		WithBg(style.ANSI(style.ANSIYellow)))
	framed, err := block.NewOverlayAnchored(cfg.Anchor(),
		block.PadToSize(badge, body.Size(), block.End, block.Start), body)
	if err != nil {
		log.Fatalf("compose overlay: %v", err)
	}
	return framed
}

func pad(b *block.Block, top, right, bottom, left int) *block.Block {
	out, err := block.NewPad(b, top, right, bottom, left, block.Fill{Grapheme: " "})
	if err != nil {
		log.Fatalf("pad: %v", err)
	}
	return out
}
