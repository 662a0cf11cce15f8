package api

import (
	"context"
	"net/http"
	"strconv"

	"property-portal/internal/model"
)

// Favorites fetches the full favorites collection for the token's user
// as a list of property ids.
func (c *Client) Favorites(ctx context.Context, token string) ([]int64, error) {
	var out []int64
	err := c.do(ctx, http.MethodGet, "/api/customer/favorites", nil, token, nil, &out)
	return out, err
}

// AddFavorite creates the favorite relationship upstream. A 409-class
// response means the relationship already exists; callers distinguish
// it through apierror.IsConflict.
func (c *Client) AddFavorite(ctx context.Context, token string, propertyID int64) error {
	return c.do(ctx, http.MethodPost, "/api/customer/favorites", nil, token, model.FavoriteRequest{PropertyID: propertyID}, nil)
}

// RemoveFavorite deletes the favorite relationship upstream.
func (c *Client) RemoveFavorite(ctx context.Context, token string, propertyID int64) error {
	return c.do(ctx, http.MethodDelete, "/api/customer/favorites/"+strconv.FormatInt(propertyID, 10), nil, token, nil, nil)
}

// Profile fetches the token owner's account details.
func (c *Client) Profile(ctx context.Context, token string) (model.UserProfile, error) {
	var out model.UserProfile
	err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, token, nil, &out)
	return out, err
}

// UpdateProfile saves the editable account fields. Callers refetch the
// profile afterwards; the update response body is not relied on.
func (c *Client) UpdateProfile(ctx context.Context, token string, req model.UpdateProfileRequest) error {
	return c.do(ctx, http.MethodPut, "/api/users/profile", nil, token, req, nil)
}

// ChangePassword rotates the account password. The upstream verifies
// the current password; a wrong one comes back as a regular API error.
func (c *Client) ChangePassword(ctx context.Context, token string, currentPassword string, newPassword string) error {
	body := model.ChangePasswordRequest{CurrentPassword: currentPassword, NewPassword: newPassword}
	return c.do(ctx, http.MethodPut, "/api/users/change-password", nil, token, body, nil)
}
