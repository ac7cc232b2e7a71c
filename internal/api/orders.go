package api

import (
	"context"
	"errors"
	"net/http"

	"marketplace-client/internal/logger"
	"marketplace-client/internal/order"

	"go.uber.org/zap"
)

// CreateOrder submits one seller's order. A 2xx answer means the order
// exists, so a body that does not decode still counts as created and the
// returned order holds whatever fields did decode.
func (c *Client) CreateOrder(ctx context.Context, req order.Request) (*order.Order, error) {
	var created order.Order
	err := c.do(ctx, http.MethodPost, "/api/orders/create", nil, req, &created)
	if errors.Is(err, ErrUndecodableResponse) {
		logger.FromCtx(ctx).Warn("Order created but response not understood",
			zap.String("shop_id", req.ShopID),
			zap.Error(err),
		)
		return &created, nil
	}
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) OrdersByBuyer(ctx context.Context, buyerID string) ([]order.Order, error) {
	path, err := pathID("/api/orders/buyer/", buyerID)
	if err != nil {
		return nil, err
	}

	var orders []order.Order
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) OrderByID(ctx context.Context, orderID string) (*order.Order, error) {
	path, err := pathID("/api/orders/getOrderbyID/", orderID)
	if err != nil {
		return nil, err
	}

	var o order.Order
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
