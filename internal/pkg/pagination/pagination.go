package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Params carries the standard list-query parameters.
type Params struct {
	Page      int
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}

// FromQuery parses page/limit/sortBy/sortOrder with the usual defaults.
// Sort columns are whitelisted by the repositories, not here.
func FromQuery(c *gin.Context) Params {
	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}

	limit := defaultLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= maxLimit {
		limit = v
	}

	sortOrder := "desc"
	if c.Query("sortOrder") == "asc" {
		sortOrder = "asc"
	}

	sortBy := c.DefaultQuery("sortBy", "created_at")

	return Params{
		Page:      page,
		Limit:     limit,
		Offset:    (page - 1) * limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

// Order returns an ORDER BY clause using col when p.SortBy is not in the
// allowed set.
func (p Params) Order(allowed map[string]string, fallback string) string {
	col, ok := allowed[p.SortBy]
	if !ok {
		col = fallback
	}
	if p.SortOrder == "asc" {
		return col + " asc"
	}
	return col + " desc"
}
