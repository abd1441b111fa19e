package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Users lists users, filtered by search when it is not empty.
func (c *Client) Users(ctx context.Context, search string) ([]User, error) {
	var resp envelope[[]User]
	if err := c.do(ctx, request{method: http.MethodGet, path: "users", query: searchQuery(search)}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// User fetches one user.
func (c *Client) User(ctx context.Context, uuid string) (*User, error) {
	var resp envelope[User]
	if err := c.do(ctx, request{method: http.MethodGet, path: "users/" + url.PathEscape(uuid), endpoint: "users/{uuid}"}, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) CreateUser(ctx context.Context, in UserInput) (string, error) {
	return c.mutate(ctx, http.MethodPost, "users", "", in)
}

func (c *Client) UpdateUser(ctx context.Context, uuid string, in UserInput) (string, error) {
	return c.mutate(ctx, http.MethodPut, "users/"+url.PathEscape(uuid), "users/{uuid}", in)
}

func (c *Client) DeleteUser(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "users/"+url.PathEscape(uuid), "users/{uuid}", nil)
}

func (c *Client) SuspendUser(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "users/"+url.PathEscape(uuid)+"/suspend", "users/{uuid}/suspend", nil)
}

func (c *Client) ActivateUser(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "users/"+url.PathEscape(uuid)+"/activate", "users/{uuid}/activate", nil)
}

func searchQuery(search string) url.Values {
	if search == "" {
		return nil
	}

	return url.Values{"search": []string{search}}
}
