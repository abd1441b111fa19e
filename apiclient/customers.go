package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Customers lists warranty customers.
func (c *Client) Customers(ctx context.Context) ([]Customer, error) {
	var resp envelope[struct {
		Customers []Customer `json:"customers"`
	}]
	if err := c.do(ctx, request{method: http.MethodGet, path: "customer"}, &resp); err != nil {
		return nil, err
	}

	return resp.Data.Customers, nil
}

// RegisterWarranty registers a sold product against a customer.
func (c *Client) RegisterWarranty(ctx context.Context, reg Registration) (string, error) {
	return c.mutate(ctx, http.MethodPost, "customer", "", reg)
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "customer/"+url.PathEscape(uuid), "customer/{uuid}", nil)
}
