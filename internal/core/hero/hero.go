// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package hero defines the core domain entities for the Herodex catalog.

It manages the read side of the hero roster: browsing, detail lookup, and
the three search modes (name prefix, minimum powerstats, combined).

Core Responsibility:

  - Catalog: The seeded hero roster, always sorted by name.
  - Discovery: Prefix search, per-stat lower bounds, and gender filtering.

Heroes are seeded through migrations and never created or deleted through
the API; this package exposes no mutation operations.
*/
package hero

import "time"

// # Core Entities

// Hero is the central aggregate of the Herodex domain.
// It represents a single entry in the seeded hero roster.
type Hero struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"` // Canonical sort key on every list endpoint
	Slug      string     `json:"slug"` // URL-safe identifier
	FullName  *string    `json:"full_name,omitempty"`
	Publisher *string    `json:"publisher,omitempty"`
	Alignment string     `json:"alignment"`
	ImageURL  *string    `json:"image_url,omitempty"`
	Powerstats Powerstats `json:"powerstats"`
	Appearance Appearance `json:"appearance"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Appearance groups the physical attributes used for exact-match filtering.
type Appearance struct {
	Gender string  `json:"gender"`
	Race   *string `json:"race,omitempty"`
}

// Powerstats is the fixed mapping of the six named stats. Every value is an
// integer in [0, 100].
type Powerstats struct {
	Intelligence int `json:"intelligence"`
	Strength     int `json:"strength"`
	Speed        int `json:"speed"`
	Durability   int `json:"durability"`
	Power        int `json:"power"`
	Combat       int `json:"combat"`
}

// # Search & Filtering

// Filter holds the parameters for a filtered hero list query.
//
// # Absence Semantics
//
// A zero-value field contributes no predicate at all. An absent stat key in
// MinStats leaves that stat unconstrained — it is never treated as a zero
// threshold by the storage layer.
type Filter struct {
	// Name is matched as a case-insensitive prefix against the hero name.
	// User input is treated as literal text, never as pattern syntax.
	Name string `json:"name,omitempty"`

	// Gender is an exact match against the appearance gender attribute.
	Gender string `json:"gender,omitempty"`

	// MinStats maps a powerstat key to an inclusive lower bound.
	// Keys outside [StatKeys] are ignored.
	MinStats map[string]int `json:"powerstats,omitempty"`
}

// IsZero reports whether the filter constrains nothing (matches all heroes).
func (f Filter) IsZero() bool {
	return f.Name == "" && f.Gender == "" && len(f.MinStats) == 0
}

// StatKeys returns the six powerstat keys in canonical order.
//
// The order is fixed so that generated SQL predicates are deterministic.
func StatKeys() []string {
	return []string{"intelligence", "strength", "speed", "durability", "power", "combat"}
}

// # Field Identifiers

// Query parameter names shared by the combined search handler.
const (
	FieldName   = "name"
	FieldGender = "gender"
)
