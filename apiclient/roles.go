package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/helmethub/dealerdesk/sessioninfo"
)

type (
	// Role is a role with its permissions.
	Role = sessioninfo.Role

	// PermissionSet is a list of permissions.
	PermissionSet = sessioninfo.PermissionSet
)

// Roles lists roles with their permissions, filtered by search when it is not
// empty.
func (c *Client) Roles(ctx context.Context, search string) ([]Role, error) {
	var resp envelope[[]Role]
	if err := c.do(ctx, request{method: http.MethodGet, path: "roles/permissions", query: searchQuery(search)}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Role fetches one role.
func (c *Client) Role(ctx context.Context, id int) (*Role, error) {
	var resp envelope[Role]
	if err := c.do(ctx, request{method: http.MethodGet, path: "roles/" + strconv.Itoa(id), endpoint: "roles/{id}"}, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) CreateRole(ctx context.Context, in RoleInput) (string, error) {
	return c.mutate(ctx, http.MethodPost, "roles", "", in)
}

func (c *Client) UpdateRole(ctx context.Context, id int, in RoleInput) (string, error) {
	return c.mutate(ctx, http.MethodPut, "roles/"+strconv.Itoa(id), "roles/{id}", in)
}

func (c *Client) DeleteRole(ctx context.Context, id int) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "roles/"+strconv.Itoa(id), "roles/{id}", nil)
}

// Permissions lists every permission that can be granted to a role.
func (c *Client) Permissions(ctx context.Context) (PermissionSet, error) {
	var resp envelope[PermissionSet]
	if err := c.do(ctx, request{method: http.MethodGet, path: "permissions"}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}
