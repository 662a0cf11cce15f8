package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"property-portal/internal/model"
)

// Admin endpoints. Every call carries the admin token; the upstream
// re-validates it on each request regardless of what the client
// believes about the session.

func (c *Client) Stats(ctx context.Context, token string) (model.DashboardStats, error) {
	var out model.DashboardStats
	err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, token, nil, &out)
	return out, err
}

func (c *Client) PropertiesByType(ctx context.Context, token string) ([]model.TypeCount, error) {
	var out []model.TypeCount
	err := c.do(ctx, http.MethodGet, "/api/admin/properties-by-type", nil, token, nil, &out)
	return out, err
}

func (c *Client) SearchStats(ctx context.Context, token string) ([]model.SearchStat, error) {
	var out []model.SearchStat
	err := c.do(ctx, http.MethodGet, "/api/admin/search-stats", nil, token, nil, &out)
	return out, err
}

func (c *Client) RevenueStats(ctx context.Context, token string) ([]model.RevenueEntry, error) {
	var out []model.RevenueEntry
	err := c.do(ctx, http.MethodGet, "/api/admin/revenue-stats", nil, token, nil, &out)
	return out, err
}

func (c *Client) Amenities(ctx context.Context, token string) ([]model.Amenity, error) {
	var out []model.Amenity
	err := c.do(ctx, http.MethodGet, "/api/admin/amenities", nil, token, nil, &out)
	return out, err
}

// AdminProperties lists properties for the back office, optionally
// narrowed by keyword and status.
func (c *Client) AdminProperties(ctx context.Context, token string, keyword string, status string) ([]model.Property, error) {
	query := url.Values{}
	if keyword != "" {
		query.Set("keyword", keyword)
	}
	if status != "" {
		query.Set("status", status)
	}

	var out []model.Property
	err := c.do(ctx, http.MethodGet, "/api/admin/properties", query, token, nil, &out)
	return out, err
}

func (c *Client) AdminPropertyByID(ctx context.Context, token string, id int64) (model.Property, error) {
	var out model.Property
	err := c.do(ctx, http.MethodGet, "/api/admin/properties/"+strconv.FormatInt(id, 10), nil, token, nil, &out)
	return out, err
}

func (c *Client) CreateProperty(ctx context.Context, token string, property model.Property) (model.Property, error) {
	var out model.Property
	err := c.do(ctx, http.MethodPost, "/api/admin/properties", nil, token, property, &out)
	return out, err
}

func (c *Client) UpdateProperty(ctx context.Context, token string, id int64, property model.Property) (model.Property, error) {
	var out model.Property
	err := c.do(ctx, http.MethodPut, "/api/admin/properties/"+strconv.FormatInt(id, 10), nil, token, property, &out)
	return out, err
}

func (c *Client) DeleteProperty(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/properties/"+strconv.FormatInt(id, 10), nil, token, nil, nil)
}

// CloseDeal marks a property sold or rented with its final price.
func (c *Client) CloseDeal(ctx context.Context, token string, id int64, deal model.CloseDealRequest) error {
	return c.do(ctx, http.MethodPost, "/api/admin/properties/"+strconv.FormatInt(id, 10)+"/close-deal", nil, token, deal, nil)
}

// DeleteImage removes a gallery image from a property.
func (c *Client) DeleteImage(ctx context.Context, token string, imageID int64) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/images/"+strconv.FormatInt(imageID, 10), nil, token, nil, nil)
}

// Users lists all registered accounts for the back office.
func (c *Client) Users(ctx context.Context, token string) ([]model.User, error) {
	var out []model.User
	err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, token, nil, &out)
	return out, err
}

// DeleteUser removes an account. The upstream refuses to delete admin
// accounts; that rejection surfaces as a regular API error.
func (c *Client) DeleteUser(ctx context.Context, token string, userID int64) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+strconv.FormatInt(userID, 10), nil, token, nil, nil)
}
