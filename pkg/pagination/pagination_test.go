// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herodex/pkg/pagination"
)

/*
TestPageFromRequest verifies that every malformed page input normalizes to 1.
*/
func TestPageFromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"absent", "/heroes", 1},
		{"empty", "/heroes?page=", 1},
		{"non_numeric", "/heroes?page=abc", 1},
		{"zero", "/heroes?page=0", 1},
		{"negative", "/heroes?page=-3", 1},
		{"valid", "/heroes?page=7", 7},
		{"float", "/heroes?page=2.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, pagination.PageFromRequest(request))
		})
	}
}

/*
TestParams_Offset verifies the skip arithmetic, including that a clamped
page 1 always produces offset 0.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
		want int
	}{
		{"first_page", 1, 10, 0},
		{"second_page", 2, 10, 10},
		{"comments_page_4", 4, 3, 9},
		{"clamped_floor", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := pagination.Params{Page: tt.page, Size: tt.size}
			assert.Equal(t, tt.want, params.Offset())
		})
	}
}

/*
TestNewMeta verifies page-count ceiling math and prev/next derivation.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		size          int
		total         int
		wantPageCount int
		wantPrevious  int
		wantNext      int
	}{
		{"empty_set", 1, 10, 0, 0, 1, 2},
		{"exact_fit", 1, 10, 20, 2, 1, 2},
		{"partial_last_page", 2, 10, 25, 3, 1, 3},
		{"single_record", 1, 3, 1, 1, 1, 2},
		{"comments_size", 1, 3, 7, 3, 1, 2},
		{"beyond_last_page", 9, 10, 25, 3, 8, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.size, tt.total)

			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.wantPageCount, meta.PageCount)
			assert.Equal(t, tt.wantPrevious, meta.PreviousPage)
			assert.Equal(t, tt.wantNext, meta.NextPage)
		})
	}
}

/*
TestFromRequest wires page parsing and fixed size together.
*/
func TestFromRequest(t *testing.T) {
	request := httptest.NewRequest("GET", "/heroes?page=2", nil)
	params := pagination.FromRequest(request, 10)

	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 10, params.Size)
	assert.Equal(t, 10, params.Offset())
}
