// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
// Page sizes are fixed per endpoint by the caller; clients only choose the page.
package pagination

import (
	"net/http"

	"github.com/taibuivan/herodex/pkg/convert"
)

// DefaultPage is the starting page (1-indexed).
const DefaultPage = 1

// Params holds the resolved page number and the endpoint's fixed page size.
type Params struct {
	Page int
	Size int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Size].
//
// Page is clamped to 1 at parse time, so the offset is never negative.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// Meta is the pagination metadata included in API list responses.
//
// NextPage is deliberately not clamped to PageCount: requesting a page past
// the end yields an empty data slice, and NextPage simply keeps counting.
type Meta struct {
	Page         int `json:"page"`
	PageCount    int `json:"page_count"`
	PreviousPage int `json:"previous_page"`
	NextPage     int `json:"next_page"`
}

// NewMeta constructs pagination metadata for a response.
//
// # Rules
//
//   - PageCount = ceil(total / size); 0 when total is 0.
//   - PreviousPage = page - 1, never below 1.
//   - NextPage = page + 1, unclamped.
func NewMeta(page, size, total int) Meta {
	pageCount := 0
	if size > 0 {
		pageCount = (total + size - 1) / size
	}

	previousPage := page - 1
	if previousPage < 1 {
		previousPage = 1
	}

	return Meta{
		Page:         page,
		PageCount:    pageCount,
		PreviousPage: previousPage,
		NextPage:     page + 1,
	}
}

// FromRequest parses the "page" query parameter and pairs it with the
// endpoint's fixed page size.
//
// # Clamping
//
// Absent, non-numeric, zero, and negative values all normalize to
// [DefaultPage]. The page size is never taken from the request.
func FromRequest(r *http.Request, size int) Params {
	return Params{Page: PageFromRequest(r), Size: size}
}

// PageFromRequest parses the 1-based "page" query parameter.
func PageFromRequest(r *http.Request) int {
	page := convert.ToIntD(r.URL.Query().Get("page"), DefaultPage)
	if page < 1 {
		return DefaultPage
	}

	return page
}
