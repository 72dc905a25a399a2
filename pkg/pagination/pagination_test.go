// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantoapp/quanto/pkg/pagination"
)

/*
TestNewPage verifies page math and boundary flags.
*/
func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		total      int
		content    int
		totalPages int
		first      bool
		last       bool
	}{
		{"first_of_three", 0, 2, 5, 2, 3, true, false},
		{"middle", 1, 2, 5, 2, 3, false, false},
		{"last_partial", 2, 2, 5, 1, 3, false, true},
		{"single_page", 0, 20, 5, 5, 1, true, true},
		{"empty", 0, 20, 0, 0, 0, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := make([]string, tt.content)
			params := pagination.Params{Page: tt.page, Size: tt.size, SortBy: "name", SortDir: pagination.Ascending}

			page := pagination.NewPage(content, params, tt.total)

			assert.Equal(t, tt.total, page.TotalElements)
			assert.Equal(t, tt.totalPages, page.TotalPages)
			assert.Equal(t, tt.first, page.First)
			assert.Equal(t, tt.last, page.Last)
			assert.Equal(t, tt.content, page.NumberOfElements)
			assert.Equal(t, "name,asc", page.Pageable.Sort)
		})
	}
}

/*
TestNewPage_NilContent verifies nil content becomes an empty slice.
*/
func TestNewPage_NilContent(t *testing.T) {
	page := pagination.NewPage[string](nil, pagination.Params{Size: 20}, 0)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
}

/*
TestFromRequest verifies query parameter parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		page    int
		size    int
		sortBy  string
		sortDir string
	}{
		{"defaults", "", 0, 20, "", "asc"},
		{"explicit", "?page=2&size=50&sortBy=name&sortDirection=desc", 2, 50, "name", "desc"},
		{"negative_page", "?page=-3", 0, 20, "", "asc"},
		{"oversized", "?size=1000", 0, 20, "", "asc"},
		{"zero_size", "?size=0", 0, 20, "", "asc"},
		{"garbage", "?page=abc&size=xyz&sortDirection=sideways", 0, 20, "", "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.size, params.Size)
			assert.Equal(t, tt.sortBy, params.SortBy)
			assert.Equal(t, tt.sortDir, params.SortDir)
		})
	}
}

/*
TestMap verifies content transformation preserves paging metadata.
*/
func TestMap(t *testing.T) {
	source := pagination.NewPage([]int{1, 2, 3}, pagination.Params{Page: 0, Size: 3}, 7)

	mapped := pagination.Map(source, func(n int) int { return n * 10 })

	assert.Equal(t, []int{10, 20, 30}, mapped.Content)
	assert.Equal(t, source.TotalElements, mapped.TotalElements)
	assert.Equal(t, source.TotalPages, mapped.TotalPages)
	assert.Equal(t, source.Pageable, mapped.Pageable)
}
