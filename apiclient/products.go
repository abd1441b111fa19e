package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-playground/errors/v5"
)

// Products lists products.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var resp envelope[[]Product]
	if err := c.do(ctx, request{method: http.MethodGet, path: "products"}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// CreateProduct adds a product.
func (c *Client) CreateProduct(ctx context.Context, p NewProduct) (string, error) {
	return c.mutate(ctx, http.MethodPost, "product", "", p)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "products/"+url.PathEscape(uuid), "products/{uuid}", nil)
}

// SuspendProduct marks a product inactive.
func (c *Client) SuspendProduct(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "products/"+url.PathEscape(uuid)+"/suspend", "products/{uuid}/suspend", nil)
}

// ActivateProduct marks a product active.
func (c *Client) ActivateProduct(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "products/"+url.PathEscape(uuid)+"/activate", "products/{uuid}/activate", nil)
}

// ImportProducts forwards a product spreadsheet. The API parses it.
func (c *Client) ImportProducts(ctx context.Context, file Upload) (string, error) {
	return c.upload(ctx, "products/import", file)
}

// ProductImportTemplate returns where the import template can be downloaded.
func (c *Client) ProductImportTemplate(ctx context.Context) (*ImportTemplate, error) {
	var resp envelope[ImportTemplate]
	if err := c.do(ctx, request{method: http.MethodGet, path: "products/import-template"}, &resp); err != nil {
		return nil, err
	}
	if resp.Data.DownloadURL == "" {
		return nil, errors.New("import template response carried no download_url")
	}

	return &resp.Data, nil
}

func (c *Client) upload(ctx context.Context, path string, file Upload) (string, error) {
	if file.Field == "" {
		file.Field = "file"
	}

	var m Message
	if err := c.do(ctx, request{method: http.MethodPost, path: path, upload: &file}, &m); err != nil {
		return "", err
	}

	return m.Message, nil
}
