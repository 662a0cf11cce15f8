package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"property-portal/internal/model"
)

// PropertyList is the upstream's paginated listing shape.
type PropertyList struct {
	Properties []model.Property `json:"properties"`
	Pagination Pagination       `json:"pagination"`
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Properties fetches the public listing with the given filter applied.
func (c *Client) Properties(ctx context.Context, filter model.PropertyFilter) (PropertyList, error) {
	var out PropertyList
	err := c.do(ctx, http.MethodGet, "/api/properties", filterQuery(filter), "", nil, &out)
	return out, err
}

// FeaturedProperties fetches the curated home-page set.
func (c *Client) FeaturedProperties(ctx context.Context) ([]model.Property, error) {
	var out []model.Property
	err := c.do(ctx, http.MethodGet, "/api/properties/featured", nil, "", nil, &out)
	return out, err
}

// PropertyByID fetches a single public listing.
func (c *Client) PropertyByID(ctx context.Context, id int64) (model.Property, error) {
	var out model.Property
	err := c.do(ctx, http.MethodGet, "/api/properties/"+strconv.FormatInt(id, 10), nil, "", nil, &out)
	return out, err
}

// LogSearch records a search for the admin analytics dashboard. Best
// effort: callers typically ignore the error.
func (c *Client) LogSearch(ctx context.Context, filter model.PropertyFilter) error {
	body := map[string]any{}
	if filter.Status != "" {
		body["status"] = filter.Status
	}
	if filter.Type != "" {
		body["type"] = filter.Type
	}
	if filter.Keyword != "" {
		body["keyword"] = filter.Keyword
	}
	if filter.MinPrice > 0 {
		body["minPrice"] = filter.MinPrice
	}
	if filter.MaxPrice > 0 {
		body["maxPrice"] = filter.MaxPrice
	}

	return c.do(ctx, http.MethodPost, "/api/log-search", nil, "", body, nil)
}

func filterQuery(filter model.PropertyFilter) url.Values {
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Type != "" {
		query.Set("type", filter.Type)
	}
	if filter.Keyword != "" {
		query.Set("keyword", filter.Keyword)
	}
	if filter.MinPrice > 0 {
		query.Set("minPrice", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice > 0 {
		query.Set("maxPrice", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}

	return query
}
