package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int64 and PostgreSQL's OFFSET range
	MaxPage = 1_000_000
)

// Pagination is returned alongside paginated listings
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes TotalPages as ceil(total/limit)
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ParsePage parses page and limit query values. Missing or non-positive values
// fall back to the defaults. Page is capped at MaxPage and limit at MaxLimit;
// values too large for an int are capped too.
func ParsePage(pageStr, limitStr string) (page, limit int) {
	page = DefaultPage
	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	} else if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(pageStr), "-") {
		page = MaxPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	limit = DefaultLimit
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
		limit = l
	} else if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(limitStr), "-") {
		limit = MaxLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset returns the number of rows skipped before page. Out of range inputs
// are clamped so the result is never negative.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return (page - 1) * limit
}
