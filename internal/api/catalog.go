package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"marketplace-client/internal/product"
)

func (c *Client) Products(ctx context.Context) ([]product.Product, error) {
	return c.productList(ctx, "/api/products/getAll", nil)
}

func (c *Client) SearchProducts(ctx context.Context, q product.Query) ([]product.Product, error) {
	params := url.Values{}
	if q.Title != "" {
		params.Set("title", q.Title)
	}
	if q.MinPrice > 0 {
		params.Set("minPrice", strconv.FormatInt(q.MinPrice, 10))
	}
	if q.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatInt(q.MaxPrice, 10))
	}
	return c.productList(ctx, "/api/products/search", params)
}

func (c *Client) ProductsByCategory(ctx context.Context, categoryID string) ([]product.Product, error) {
	path, err := pathID("/api/products/category/", categoryID)
	if err != nil {
		return nil, err
	}
	return c.productList(ctx, path, nil)
}

func (c *Client) ProductsByShop(ctx context.Context, shopID string) ([]product.Product, error) {
	path, err := pathID("/api/products/shop/", shopID)
	if err != nil {
		return nil, err
	}
	return c.productList(ctx, path, nil)
}

func (c *Client) Categories(ctx context.Context) ([]product.Category, error) {
	var categories []product.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories/getall", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) Shop(ctx context.Context, shopID string) (*product.Shop, error) {
	path, err := pathID("/api/shop/shop/", shopID)
	if err != nil {
		return nil, err
	}

	var shop product.Shop
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}

func (c *Client) productList(ctx context.Context, path string, query url.Values) ([]product.Product, error) {
	var products []product.Product
	if err := c.do(ctx, http.MethodGet, path, query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}
