package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Params is a page/limit pair as accepted by the list endpoints.
type Params struct {
	Page  int
	Limit int
}

// ParseParams reads page and limit from the request query string.
// Invalid or missing values fall back to page 1 and the default limit;
// the limit is clamped to MaxLimit.
func ParseParams(r *http.Request) Params {
	page := 1
	limit := DefaultLimit
	if raw := r.URL.Query().Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			page = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
			limit = v
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the number of records to skip for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes one page of a listing.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta computes pagination metadata for a total record count.
// An empty result set still reports one page, and pages past the end
// are not an error; they simply carry no data.
func NewMeta(total int64, p Params) Meta {
	totalPages := 1
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return Meta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}
