// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cellwidth/oracle.go
// Summary: Display-width oracle for grapheme clusters.
// Usage: Consulted by leaf construction and by anything that truncates
//        or wraps text to a fixed cell width.

// Package cellwidth measures the terminal display width of grapheme
// clusters. Widths are always 0, 1 or 2 cells. East-Asian "ambiguous"
// clusters resolve through a per-oracle policy; the default policy is
// AmbiguousNarrow (one cell), matching go-runewidth's own default.
package cellwidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// AmbiguousPolicy selects how East-Asian ambiguous-width clusters are
// measured.
type AmbiguousPolicy int

const (
	// AmbiguousNarrow measures ambiguous clusters as one cell.
	AmbiguousNarrow AmbiguousPolicy = iota
	// AmbiguousWide measures ambiguous clusters as two cells.
	AmbiguousWide
)

// String returns a human-readable policy name.
func (p AmbiguousPolicy) String() string {
	if p == AmbiguousWide {
		return "wide"
	}
	return "narrow"
}

// Oracle answers display-width queries for grapheme clusters. It is
// read-only after construction and safe for concurrent use.
type Oracle struct {
	policy AmbiguousPolicy
	cond   *runewidth.Condition
}

// NewOracle builds an oracle with the given ambiguous-width policy.
func NewOracle(policy AmbiguousPolicy) *Oracle {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = policy == AmbiguousWide
	return &Oracle{policy: policy, cond: cond}
}

var defaultOracle = NewOracle(AmbiguousNarrow)

// Default returns the shared narrow-policy oracle.
func Default() *Oracle {
	return defaultOracle
}

// Policy reports the oracle's ambiguous-width policy.
func (o *Oracle) Policy() AmbiguousPolicy {
	return o.policy
}

// ClusterWidth returns the display width of a single grapheme cluster.
// Zero-width combining clusters report 0; unrecognized clusters fall
// back to width 1. Results never exceed 2: a cluster is at most one
// wide glyph plus zero-width marks.
func (o *Oracle) ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := o.cond.StringWidth(cluster)
	if w < 0 {
		w = 1
	}
	if w > 2 {
		w = 2
	}
	return w
}

// StringWidth returns the total display width of a single-line string.
func (o *Oracle) StringWidth(s string) int {
	total := 0
	for _, g := range Clusters(s) {
		total += o.ClusterWidth(g)
	}
	return total
}

// Clusters segments a string into grapheme clusters in order.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}
