// Package apiclient talks to the dealer administration REST API.
//
// A single Client is shared by every request. The bearer token is never
// stored on the Client: it is read on each call from the session in the
// request context, or from a token placed in the context with WithToken.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/sessioninfo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/oauth2"
)

var tracer = otel.Tracer("github.com/helmethub/dealerdesk/apiclient")

// Observer receives one call per completed API request.
type Observer interface {
	ObserveAPIRequest(method, endpoint string, status int, d time.Duration)
}

// Client is the configured API client.
type Client struct {
	baseURL  *url.URL
	headers  http.Header
	http     *http.Client
	observer Observer
}

// New returns a Client for the API rooted at baseURL. Relative endpoint paths
// resolve against it, so it should end in a slash.
func New(baseURL string, options ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "url.Parse()")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Newf("api base url %q must be absolute", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &Client{
		baseURL: u,
		headers: http.Header{
			"Accept":           []string{"application/json"},
			"X-Requested-With": []string{"XMLHttpRequest"},
		},
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

type tokenCtxKey struct{}

// WithToken returns a context whose API calls authenticate with token instead
// of the token of the session in the context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

func tokenFromCtx(ctx context.Context) string {
	if token, ok := ctx.Value(tokenCtxKey{}).(string); ok {
		return token
	}

	return sessioninfo.TokenFromCtx(ctx)
}

// request describes one API call.
type request struct {
	method   string
	path     string
	query    url.Values
	body     any
	upload   *Upload
	endpoint string
}

// Upload is a file forwarded as multipart form data.
type Upload struct {
	Field    string
	Filename string
	Content  io.Reader
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	ref := &url.URL{Path: strings.TrimPrefix(req.path, "/")}
	if len(req.query) > 0 {
		ref.RawQuery = req.query.Encode()
	}
	u := c.baseURL.ResolveReference(ref)

	var (
		body        io.Reader = http.NoBody
		contentType string
	)
	switch {
	case req.upload != nil:
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		part, err := mw.CreateFormFile(req.upload.Field, req.upload.Filename)
		if err != nil {
			return nil, errors.Wrap(err, "multipart.Writer.CreateFormFile()")
		}
		if _, err := io.Copy(part, req.upload.Content); err != nil {
			return nil, errors.Wrap(err, "io.Copy()")
		}
		if err := mw.Close(); err != nil {
			return nil, errors.Wrap(err, "multipart.Writer.Close()")
		}
		body, contentType = buf, mw.FormDataContentType()
	case req.body != nil:
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, errors.Wrap(err, "json.Marshal()")
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}

	r, err := http.NewRequestWithContext(ctx, req.method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "http.NewRequestWithContext()")
	}
	for k, v := range c.headers {
		r.Header[k] = append([]string(nil), v...)
	}
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	if token := tokenFromCtx(ctx); token != "" {
		(&oauth2.Token{AccessToken: token}).SetAuthHeader(r)
	}

	return r, nil
}

// do sends req and decodes a successful JSON body into out when out is not nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	endpoint := req.endpoint
	if endpoint == "" {
		endpoint = req.path
	}

	ctx, span := tracer.Start(ctx, "apiclient "+req.method+" "+endpoint)
	defer span.End()
	span.SetAttributes(attribute.String("http.method", req.method), attribute.String("api.endpoint", endpoint))

	r, err := c.newRequest(ctx, req)
	if err != nil {
		return errors.Wrap(err, "Client.newRequest()")
	}

	start := time.Now()
	resp, err := c.http.Do(r)
	if err != nil {
		c.observe(req.method, endpoint, 0, start)
		span.SetStatus(codes.Error, err.Error())

		return errors.Wrapf(err, "%s %s", req.method, endpoint)
	}
	defer resp.Body.Close()
	c.observe(req.method, endpoint, resp.StatusCode, start)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "io.ReadAll()")
	}

	if err := statusError(resp.StatusCode, b); err != nil {
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", req.method, endpoint)
	}

	return nil
}

func (c *Client) observe(method, endpoint string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveAPIRequest(method, endpoint, status, time.Since(start))
	}
}

func statusError(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusUnprocessableEntity:
		v := &ValidationError{}
		if err := json.Unmarshal(body, v); err != nil {
			return &StatusError{StatusCode: status}
		}

		return v
	default:
		var m Message
		_ = json.Unmarshal(body, &m)

		return &StatusError{StatusCode: status, Message: m.Message}
	}
}
