// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: highlight/highlight.go
// Summary: Builds syntax-highlighted blocks from source code.
// Usage: Front ends drop highlighted snippets into larger layouts.

// Package highlight turns source code into a styled block. The lexer
// is picked by enry language detection (falling back to chroma's own
// analysis), token colours come from a chroma style.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texelblock/block"
	"github.com/framegrace/texelblock/style"
)

const defaultStyleName = "catppuccin-mocha"

// Options configure highlighting. The zero value picks the default
// chroma style and auto-detects the language.
type Options struct {
	// Filename guides language detection; may be empty.
	Filename string
	// Language forces a lexer by name, bypassing detection.
	Language string
	// StyleName selects the chroma style; empty for the default.
	StyleName string
}

// Source builds a block of highlighted source code, one leaf per
// styled token run, joined into lines. Never fails on unknown
// languages: unrecognized input renders with the fallback lexer.
func Source(code string, opts Options) *block.Block {
	lexer := pickLexer(code, opts)
	chromaStyle := pickStyle(opts.StyleName)

	tokens, err := chroma.Tokenise(lexer, nil, code)
	if err != nil {
		// Tokenising plain text cannot fail; render unstyled.
		return block.NewLeaf(code, style.None)
	}

	base := chromaStyle.Get(chroma.Text)
	var rows []*block.Block
	var segs []*block.Block

	flush := func() {
		switch len(segs) {
		case 0:
			rows = append(rows, block.NewSpacer(0, 1))
		case 1:
			rows = append(rows, segs[0])
		default:
			row, err := block.NewJoin(block.Horizontal, block.Start, segs...)
			if err != nil {
				panic("highlight: non-empty row join cannot fail")
			}
			rows = append(rows, row)
		}
		segs = nil
	}

	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(chromaStyle.Get(tok.Type), base)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				flush()
			}
			if part == "" {
				continue
			}
			segs = append(segs, block.NewLeaf(part, st))
		}
	}
	flush()

	// Tokenisers emit a trailing newline for the final line; drop the
	// resulting empty row so "a\n" stays one row tall.
	if len(rows) > 1 {
		if last := rows[len(rows)-1]; last.Size() == (block.Size{Width: 0, Height: 1}) {
			rows = rows[:len(rows)-1]
		}
	}

	doc, err := block.NewJoin(block.Vertical, block.Start, rows...)
	if err != nil {
		panic("highlight: document join cannot fail")
	}
	return doc
}

func pickLexer(code string, opts Options) chroma.Lexer {
	var lexer chroma.Lexer
	if opts.Language != "" {
		lexer = lexers.Get(opts.Language)
	}
	if lexer == nil && (opts.Filename != "" || code != "") {
		if lang := enry.GetLanguage(opts.Filename, []byte(code)); lang != "" {
			lexer = lexers.Get(lang)
		}
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// pickStyle resolves a style name, falling back to the default.
func pickStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	if st := styles.Get(name); st != nil {
		return st
	}
	return styles.Fallback
}

// tokenStyle converts a chroma style entry into a cell style patch.
// Colours matching the base text colour stay unset so the surrounding
// layout keeps control of the default foreground.
func tokenStyle(entry chroma.StyleEntry, base chroma.StyleEntry) style.Style {
	st := style.None
	if entry.Colour.IsSet() && entry.Colour != base.Colour {
		st = st.WithFg(style.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if entry.Bold == chroma.Yes {
		st = st.WithAttr(style.AttrBold, true)
	}
	if entry.Italic == chroma.Yes {
		st = st.WithAttr(style.AttrItalic, true)
	}
	if entry.Underline == chroma.Yes {
		st = st.WithAttr(style.AttrUnderline, true)
	}
	return st
}
