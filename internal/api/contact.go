package api

import (
	"context"
	"net/http"

	"property-portal/internal/model"
)

// SendContactMessage forwards a contact-form submission upstream.
func (c *Client) SendContactMessage(ctx context.Context, contact model.ContactRequest) error {
	return c.do(ctx, http.MethodPost, "/api/contact", nil, "", contact, nil)
}
