package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FanSt3/naturale-api/internal/service"
)

// listFilter parses the shared list query parameters. Page defaults to 1 and
// limit to 10, matching what the panel and the public site have always sent.
func listFilter(c *gin.Context) service.ListFilter {
	filter := service.ListFilter{
		Search: c.Query("search"),
		Page:   1,
		Limit:  10,
	}
	if page := c.Query("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			filter.Page = p
		}
	}
	if limit := c.Query("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			filter.Limit = l
		}
	}
	if published := c.Query("published"); published != "" {
		b := published == "true"
		filter.Published = &b
	}
	return filter
}

// cacheFilter encodes the non-paging list parameters into the cache key.
func cacheFilter(filter service.ListFilter) string {
	pub := ""
	if filter.Published != nil {
		pub = strconv.FormatBool(*filter.Published)
	}
	return filter.Search + ":" + pub
}
