package apiclient

import (
	"context"
	"net/http"

	"github.com/go-playground/errors/v5"
)

// CurrentUser fetches the user owning the bearer token.
func (c *Client) CurrentUser(ctx context.Context) (*CurrentUser, error) {
	var resp envelope[*CurrentUser]
	if err := c.do(ctx, request{method: http.MethodGet, path: "user"}, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, errors.New("user response carried no data")
	}

	return resp.Data, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var resp envelope[loginResult]
	if err := c.do(ctx, request{method: http.MethodPost, path: "login", body: creds}, &resp); err != nil {
		return "", err
	}
	if resp.Data.Token == "" {
		return "", errors.New("login response carried no token")
	}

	return resp.Data.Token, nil
}

// Logout revokes the bearer token.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, request{method: http.MethodPost, path: "logout"}, nil)
}

func (c *Client) mutate(ctx context.Context, method, path, endpoint string, body any) (string, error) {
	var m Message
	if err := c.do(ctx, request{method: method, path: path, endpoint: endpoint, body: body}, &m); err != nil {
		return "", err
	}

	return m.Message, nil
}
