package apiclient

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithObserver reports every request to o.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}
