package api

import (
	"context"
	"net/http"

	"marketplace-client/internal/review"
)

func (c *Client) CreateReview(ctx context.Context, in review.Input) (*review.Review, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var created review.Review
	if err := c.do(ctx, http.MethodPost, "/api/reviews/createreview", nil, in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ReviewsByProduct(ctx context.Context, productID string) ([]review.Review, error) {
	path, err := pathID("/api/reviews/product/", productID)
	if err != nil {
		return nil, err
	}

	var reviews []review.Review
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
