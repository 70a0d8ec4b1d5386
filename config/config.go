// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Render configuration store for texelblock tools.

// Package config loads the optional texelblock.json configuration and
// exposes typed render settings with embedded defaults. A missing or
// unreadable file silently falls back to defaults; a malformed one is
// logged and ignored.
package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/framegrace/texelblock/block"
	"github.com/framegrace/texelblock/cellwidth"
)

const configName = "texelblock.json"

// Render holds the tunable rendering defaults.
type Render struct {
	// AmbiguousWidth resolves East-Asian ambiguous clusters:
	// "narrow" (default) or "wide".
	AmbiguousWidth string `json:"ambiguous_width"`
	// OverlayAnchor positions undersized overlay layers:
	// "top-left" (default) or "center".
	OverlayAnchor string `json:"overlay_anchor"`
	// HighlightStyle names the chroma style for highlighted blocks.
	HighlightStyle string `json:"highlight_style"`
}

type fileFormat struct {
	Render Render `json:"render"`
}

var (
	once   sync.Once
	render Render
)

// Defaults returns the built-in render settings.
func Defaults() Render {
	return Render{
		AmbiguousWidth: "narrow",
		OverlayAnchor:  "top-left",
		HighlightStyle: "catppuccin-mocha",
	}
}

// Get returns the render settings, loading ~/.texelblock/texelblock.json
// once on first use.
func Get() Render {
	once.Do(func() {
		render = Load(defaultPath())
	})
	return render
}

// Load reads render settings from an explicit path, applying defaults
// for missing keys. Used directly by tests and tools with their own
// config locations.
func Load(path string) Render {
	out := Defaults()
	if path == "" {
		return out
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return out
	}
	var parsed fileFormat
	if err := json.Unmarshal(data, &parsed); err != nil {
		log.Printf("config: ignoring malformed %s: %v", path, err)
		return out
	}
	if parsed.Render.AmbiguousWidth != "" {
		out.AmbiguousWidth = parsed.Render.AmbiguousWidth
	}
	if parsed.Render.OverlayAnchor != "" {
		out.OverlayAnchor = parsed.Render.OverlayAnchor
	}
	if parsed.Render.HighlightStyle != "" {
		out.HighlightStyle = parsed.Render.HighlightStyle
	}
	return out
}

func defaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".texelblock", configName)
}

// WidthPolicy translates the configured ambiguous-width name.
// Unrecognized values fall back to narrow.
func (r Render) WidthPolicy() cellwidth.AmbiguousPolicy {
	if r.AmbiguousWidth == "wide" {
		return cellwidth.AmbiguousWide
	}
	return cellwidth.AmbiguousNarrow
}

// Anchor translates the configured overlay anchor name. Unrecognized
// values fall back to top-left.
func (r Render) Anchor() block.Anchor {
	if r.OverlayAnchor == "center" {
		return block.AnchorCenter
	}
	return block.AnchorTopLeft
}
