// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides quick type-conversion utilities.

It wraps [strconv] for contexts where a malformed input should silently fall
back to a known value, such as optional query parameters. Do not use this
package when malformed data and zero values must be distinguished; use
[strconv] directly there.
*/
package convert

import "strconv"

// ToInt converts a string to an integer, silencing parsing errors.
// Empty and unparsable strings become 0.
func ToInt(s string) int {
	return ToIntD(s, 0)
}

// ToIntD converts a string to an integer, returning def for empty or
// unparsable input.
func ToIntD(s string, def int) int {
	if s == "" {
		return def
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}

	return v
}
