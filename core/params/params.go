package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// QueryParams carries the common list options: pagination, free-text search
// and sorting. Repositories are responsible for whitelisting SortBy.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string
	SortBy     string
	SortOrder  string // "asc" | "desc"
}

// FromEchoContext parses ?page=&limit=&search=&sort_by=&sort_order= with
// defaults and clamping. Unknown sort fields are passed through untouched;
// the repository decides what is legal.
func FromEchoContext(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
		Search:     c.QueryParam("search"),
		SortBy:     c.QueryParam("sort_by"),
		SortOrder:  c.QueryParam("sort_order"),
	}

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		p.PageNumber = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		p.PageSize = v
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = "desc"
	}
	return p
}
