// Copyright © 2025 Texelblock contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: framestore/framestore.go
// Summary: SQLite-backed store of rendered frames.
// Usage: Lets tools record named frames and load them back later, with
//        a content hash guarding against corrupt payloads.

// Package framestore persists rendered grids in a SQLite database.
// Each save appends a new revision of the named frame; loads return
// the most recent revision.
package framestore

import (
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/framegrace/texelblock/cellwidth"
	"github.com/framegrace/texelblock/grid"
	"github.com/framegrace/texelblock/gridwire"
)

var (
	// ErrNotFound reports a frame name with no stored revisions.
	ErrNotFound = errors.New("framestore: frame not found")
	// ErrCorrupt reports a payload whose stored hash no longer matches.
	ErrCorrupt = errors.New("framestore: stored frame hash mismatch")
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS frames (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		width      INTEGER NOT NULL,
		height     INTEGER NOT NULL,
		hash       TEXT NOT NULL,
		payload    BLOB NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_frames_name ON frames(name, id DESC)`,
}

// Store is a handle to the frame database. Safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// FrameInfo describes one stored revision.
type FrameInfo struct {
	Name      string
	CreatedAt time.Time
	Width     int
	Height    int
	Hash      string
}

// Open opens (creating if needed) the frame database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("framestore: open %s: %w", path, err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("framestore: init schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Save appends a new revision of the named frame.
func (s *Store) Save(name string, g *grid.Grid) error {
	payload, err := gridwire.Encode(g)
	if err != nil {
		return err
	}
	sum := sha1.Sum(payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.Exec(
		`INSERT INTO frames (name, created_at, width, height, hash, payload) VALUES (?, ?, ?, ?, ?, ?)`,
		name, time.Now().UTC().Unix(), g.Width(), g.Height(), hex.EncodeToString(sum[:]), payload,
	)
	if err != nil {
		return fmt.Errorf("framestore: save %q: %w", name, err)
	}
	return nil
}

// Load returns the most recent revision of the named frame, measuring
// grapheme widths with the supplied oracle (nil for the default).
func (s *Store) Load(name string, oracle *cellwidth.Oracle) (*grid.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var hash string
	var payload []byte
	err := s.db.QueryRow(
		`SELECT hash, payload FROM frames WHERE name = ? ORDER BY id DESC LIMIT 1`,
		name,
	).Scan(&hash, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("framestore: load %q: %w", name, err)
	}

	sum := sha1.Sum(payload)
	if hex.EncodeToString(sum[:]) != hash {
		return nil, ErrCorrupt
	}
	return gridwire.Decode(payload, oracle)
}

// List returns every stored revision, newest first.
func (s *Store) List() ([]FrameInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT name, created_at, width, height, hash FROM frames ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("framestore: list: %w", err)
	}
	defer rows.Close()

	var out []FrameInfo
	for rows.Next() {
		var info FrameInfo
		var created int64
		if err := rows.Scan(&info.Name, &created, &info.Width, &info.Height, &info.Hash); err != nil {
			return nil, err
		}
		info.CreatedAt = time.Unix(created, 0).UTC()
		out = append(out, info)
	}
	return out, rows.Err()
}

// Prune deletes all but the newest keep revisions of the named frame.
func (s *Store) Prune(name string, keep int) error {
	if keep < 0 {
		keep = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(
		`DELETE FROM frames WHERE name = ? AND id NOT IN (
			SELECT id FROM frames WHERE name = ? ORDER BY id DESC LIMIT ?
		)`,
		name, name, keep,
	)
	if err != nil {
		return fmt.Errorf("framestore: prune %q: %w", name, err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
