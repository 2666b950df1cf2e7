package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	MinLimit     = 1
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse extracts and validates page/limit from query parameters
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = DefaultPage
	}
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Page is the envelope returned by every paginated repository query.
type Page[T any] struct {
	Items       []T   `json:"items"`
	TotalCount  int64 `json:"totalCount"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

// NewPage computes TotalPages as ceil(totalCount/limit); zero rows yield zero
// pages regardless of the requested limit.
func NewPage[T any](items []T, totalCount int64, page, limit int) Page[T] {
	totalPages := 0
	if totalCount > 0 && limit > 0 {
		totalPages = int((totalCount + int64(limit) - 1) / int64(limit))
	}
	return Page[T]{
		Items:       items,
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
	}
}
