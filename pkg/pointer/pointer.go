// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer provides generic helpers for pointer creation and
// dereferencing, mainly for the catalog's nullable columns (full name,
// publisher, image URL) that surface as pointer fields on the models.
package pointer

// To returns a pointer to the provided value, so literals can be assigned
// to pointer fields without an intermediate variable.
func To[T any](v T) *T {
	return &v
}
