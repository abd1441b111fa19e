package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// BikeModels lists bike models.
func (c *Client) BikeModels(ctx context.Context) ([]BikeModel, error) {
	var resp envelope[struct {
		BikeModels []BikeModel `json:"bikeModels"`
	}]
	if err := c.do(ctx, request{method: http.MethodGet, path: "bike-model"}, &resp); err != nil {
		return nil, err
	}

	return resp.Data.BikeModels, nil
}

// BikeModel fetches one bike model.
func (c *Client) BikeModel(ctx context.Context, uuid string) (*BikeModel, error) {
	var resp envelope[BikeModel]
	if err := c.do(ctx, request{method: http.MethodGet, path: "bike-model/" + url.PathEscape(uuid), endpoint: "bike-model/{uuid}"}, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) CreateBikeModel(ctx context.Context, in BikeModelInput) (string, error) {
	return c.mutate(ctx, http.MethodPost, "bike-model", "", in)
}

func (c *Client) UpdateBikeModel(ctx context.Context, uuid string, in BikeModelInput) (string, error) {
	return c.mutate(ctx, http.MethodPut, "bike-model/"+url.PathEscape(uuid), "bike-model/{uuid}", in)
}

func (c *Client) DeleteBikeModel(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "bike-model/"+url.PathEscape(uuid), "bike-model/{uuid}", nil)
}

func (c *Client) SuspendBikeModel(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "bike-model/"+url.PathEscape(uuid)+"/suspend", "bike-model/{uuid}/suspend", nil)
}

func (c *Client) ActivateBikeModel(ctx context.Context, uuid string) (string, error) {
	return c.mutate(ctx, http.MethodPut, "bike-model/"+url.PathEscape(uuid)+"/activate", "bike-model/{uuid}/activate", nil)
}
