// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package comment implements the per-hero discussion threads.

Comments are insert-only: they are created once, never edited or removed, and
always belong to exactly one hero. On every read path the hero reference is
resolved ("populated") into the full hero record.
*/
package comment

import (
	"time"

	"github.com/taibuivan/herodex/internal/core/hero"
)

// Comment is a single free-text entry on a hero's thread.
type Comment struct {
	ID        string    `json:"id"`
	HeroID    string    `json:"hero_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"` // Store-assigned at insert

	// Hero is the populated hero reference, present on all read paths.
	Hero *hero.Hero `json:"hero,omitempty"`
}

// # Field Identifiers

const (
	FieldHeroID = "hero_id"
	FieldBody   = "body"
)
