package service

import "net/http"

// Result is the uniform envelope every workflow returns. Expected business
// conditions (duplicates, not-found, bad input) come back as a failed Result,
// never as an error.
type Result[T any] struct {
	Success bool
	Status  int
	Message string
	Data    T
}

func succeed[T any](status int, message string, data T) Result[T] {
	return Result[T]{
		Success: true,
		Status:  status,
		Message: message,
		Data:    data,
	}
}

func fail[T any](status int, message string) Result[T] {
	return Result[T]{
		Status:  status,
		Message: message,
	}
}

// internalError hides infrastructure details behind a generic message; the
// cause is logged where it occurred.
func internalError[T any]() Result[T] {
	return fail[T](http.StatusInternalServerError, "something went wrong")
}

// Page carries one page of a listing plus the pagination meta the HTTP
// surface exposes.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int64 `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	Limit       int   `json:"limit"`
}

func newPage[T any](items []T, totalCount int64, page, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  (totalCount + int64(limit) - 1) / int64(limit),
		CurrentPage: page,
		Limit:       limit,
	}
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// normalizePaging clamps page/limit to sane values; out-of-range pages are
// answered with an empty item list downstream, never an error.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	return page, limit
}
