package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/errors/v5"
)

// CheckWarranty looks a warranty up by registration or mobile number.
func (c *Client) CheckWarranty(ctx context.Context, search string) (*Warranty, error) {
	if search == "" {
		return nil, errors.New("warranty search value is empty")
	}

	var resp envelope[*Warranty]
	if err := c.do(ctx, request{method: http.MethodGet, path: "warranty/check", query: searchQuery(search)}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// Dealers lists the dealer directory.
func (c *Client) Dealers(ctx context.Context) ([]Dealer, error) {
	var resp envelope[struct {
		Dealers []Dealer `json:"dealers"`
	}]
	if err := c.do(ctx, request{method: http.MethodGet, path: "dealers"}, &resp); err != nil {
		return nil, err
	}

	return resp.Data.Dealers, nil
}

func (c *Client) DeleteDealer(ctx context.Context, id int) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "dealers/"+strconv.Itoa(id), "dealers/{id}", nil)
}

// ImportDealers forwards a dealer spreadsheet. The API parses it.
func (c *Client) ImportDealers(ctx context.Context, file Upload) (string, error) {
	return c.upload(ctx, "dealers/import", file)
}
