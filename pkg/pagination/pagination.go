// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting page object is delivered inside the API response
// envelope. Pages are zero-indexed on the wire.
package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	// DefaultSize is the number of items per page if not specified.
	DefaultSize = 20
	// MaxSize is the upper bound for items per page to prevent system abuse.
	MaxSize = 100
	// DefaultPage is the starting page (0-indexed).
	DefaultPage = 0

	// Ascending and Descending are the accepted sortDirection values.
	Ascending  = "asc"
	Descending = "desc"
)

// Params holds the parsing result of page, size, and sort query parameters.
type Params struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// Offset returns the SQL OFFSET value derived from Page and Size.
func (p Params) Offset() int {
	if p.Page <= 0 {
		return 0
	}
	return p.Page * p.Size
}

// SortString renders the sort description included in the pageable block,
// e.g. "name,asc", or "unsorted" when no sort field was requested.
func (p Params) SortString() string {
	if p.SortBy == "" {
		return "unsorted"
	}
	return p.SortBy + "," + p.SortDir
}

// Pageable echoes the paging request back inside a page object.
type Pageable struct {
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
	Sort       string `json:"sort"`
}

// Page is the wire representation of one page of results.
type Page[T any] struct {
	Content          []T      `json:"content"`
	TotalElements    int      `json:"totalElements"`
	TotalPages       int      `json:"totalPages"`
	First            bool     `json:"first"`
	Last             bool     `json:"last"`
	NumberOfElements int      `json:"numberOfElements"`
	Pageable         Pageable `json:"pageable"`
}

// NewPage assembles a [Page] from the content slice and the total match count.
//
// Content is never serialized as null: an empty page carries an empty array.
func NewPage[T any](content []T, params Params, total int) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if params.Size > 0 {
		totalPages = (total + params.Size - 1) / params.Size
	}

	return Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		First:            params.Page == 0,
		Last:             params.Page >= totalPages-1,
		NumberOfElements: len(content),
		Pageable: Pageable{
			PageNumber: params.Page,
			PageSize:   params.Size,
			Sort:       params.SortString(),
		},
	}
}

// Map converts a Page of one content type into a Page of another, keeping
// all paging metadata intact.
func Map[T any, U any](page Page[T], transform func(T) U) Page[U] {
	content := make([]U, len(page.Content))
	for i, item := range page.Content {
		content[i] = transform(item)
	}

	return Page[U]{
		Content:          content,
		TotalElements:    page.TotalElements,
		TotalPages:       page.TotalPages,
		First:            page.First,
		Last:             page.Last,
		NumberOfElements: page.NumberOfElements,
		Pageable:         page.Pageable,
	}
}

// FromRequest parses "page", "size", "sortBy", and "sortDirection" query
// parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultSize], or [MaxSize]. A sortDirection outside
// asc/desc falls back to ascending.
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	size := parseIntParam(r, "size", DefaultSize)

	if page < 0 {
		page = DefaultPage
	}

	if size < 1 || size > MaxSize {
		size = DefaultSize
	}

	sortDir := strings.ToLower(r.URL.Query().Get("sortDirection"))
	if sortDir != Ascending && sortDir != Descending {
		sortDir = Ascending
	}

	return Params{
		Page:    page,
		Size:    size,
		SortBy:  r.URL.Query().Get("sortBy"),
		SortDir: sortDir,
	}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
