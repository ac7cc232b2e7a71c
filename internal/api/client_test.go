package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-client/internal/order"
	"marketplace-client/internal/product"
	"marketplace-client/internal/review"
	"marketplace-client/internal/transport"
	"marketplace-client/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper allows us to mock the HTTP response
type MockRoundTripper func(req *http.Request) *http.Response

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

type MockRoundTripperWithError func(req *http.Request) (*http.Response, error)

func (f MockRoundTripperWithError) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func newMockClient(rt http.RoundTripper) *Client {
	return NewClient("http://backend.test/", &http.Client{Transport: rt})
}

func TestClient_CreateOrder(t *testing.T) {
	req := order.Request{
		BuyerID: "b1",
		ShopID:  "S1",
		Items: []order.Item{{
			Product:  product.Product{ID: "P1", Price: 1000, Shop: product.NewRef("S1")},
			Quantity: 2,
		}},
		TotalPrice:    2000,
		RecipientName: "An",
		Address:       "12 Le Loi",
		PhoneNumber:   "0900000000",
	}

	t.Run("Success", func(t *testing.T) {
		c := newMockClient(MockRoundTripper(func(r *http.Request) *http.Response {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "http://backend.test/api/orders/create", r.URL.String())
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "S1", body["shop_id"])
			assert.Equal(t, float64(2000), body["totalPrice"])

			return jsonResponse(http.StatusCreated, `{"_id":"o1","shop_id":"S1","total_price":2000,"status":"pending"}`)
		}))

		created, err := c.CreateOrder(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "o1", created.ID)
		assert.Equal(t, order.StatusPending, created.Status)
	})

	t.Run("StockExceeded", func(t *testing.T) {
		c := newMockClient(MockRoundTripper(func(r *http.Request) *http.Response {
			return jsonResponse(http.StatusBadRequest, `{"message":"Product P1: quantity exceeds available stock"}`)
		}))

		_, err := c.CreateOrder(context.Background(), req)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "quantity exceeds available stock")
		assert.Equal(t, http.StatusBadRequest, StatusCode(err))
	})

	t.Run("NetworkError", func(t *testing.T) {
		c := newMockClient(MockRoundTripperWithError(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}))

		_, err := c.CreateOrder(context.Background(), req)

		assert.ErrorIs(t, err, ErrNetworkUnavailable)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Equal(t, 0, StatusCode(err))
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := newMockClient(MockRoundTripperWithError(func(r *http.Request) (*http.Response, error) {
			return nil, r.Context().Err()
		}))

		_, err := c.CreateOrder(ctx, req)

		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, ErrNetworkUnavailable)
	})

	t.Run("UndecodableSuccessStillCreated", func(t *testing.T) {
		c := newMockClient(MockRoundTripper(func(r *http.Request) *http.Response {
			return jsonResponse(http.StatusCreated, `{"_id":"o1","total_price":2500.5}`)
		}))

		created, err := c.CreateOrder(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "o1", created.ID)
	})

	t.Run("InvalidJSONSuccess", func(t *testing.T) {
		c := newMockClient(MockRoundTripper(func(r *http.Request) *http.Response {
			return jsonResponse(http.StatusOK, `{invalid-json`)
		}))

		created, err := c.CreateOrder(context.Background(), req)
		require.NoError(t, err)
		assert.NotNil(t, created)
	})

	t.Run("RateLimitedIsNotNetwork", func(t *testing.T) {
		c := newMockClient(MockRoundTripperWithError(func(r *http.Request) (*http.Response, error) {
			return nil, fmt.Errorf("%w: would exceed context deadline", transport.ErrRateLimited)
		}))

		_, err := c.CreateOrder(context.Background(), req)
		assert.ErrorIs(t, err, transport.ErrRateLimited)
		assert.NotErrorIs(t, err, ErrNetworkUnavailable)
	})
}

func TestClient_UndecodableProfile(t *testing.T) {
	c := newMockClient(MockRoundTripper(func(r *http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `{"_id":42}`)
	}))

	_, err := c.Profile(context.Background())
	assert.ErrorIs(t, err, ErrUndecodableResponse)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "message field", status: 400, body: `{"message":"bad"}`, want: "bad"},
		{name: "error field", status: 401, body: `{"error":"unauthorized"}`, want: "unauthorized"},
		{name: "plain text", status: 502, body: "upstream down\n", want: "upstream down"},
		{name: "empty body", status: 500, body: "", want: "Internal Server Error"},
		{name: "json without message", status: 404, body: `{}`, want: "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.status, []byte(tt.body)))
		})
	}
}

func TestClient_Endpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds user.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"token":"tok-1"}`))
	})
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, hasConfirm := body["ConfirmPassword"]
		assert.False(t, hasConfirm)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"User registered"}`))
	})
	mux.HandleFunc("GET /api/users/profile", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"u1","username":"an","email":"an@example.com","phone":"0901234567"}`))
	})
	mux.HandleFunc("GET /api/orders/buyer/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "u1", r.PathValue("id"))
		_, _ = w.Write([]byte(`[{"_id":"o1","status":"pending"},{"_id":"o2","status":"received"}]`))
	})
	mux.HandleFunc("GET /api/orders/getOrderbyID/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"` + r.PathValue("id") + `","status":"paid","total_price":2500}`))
	})
	mux.HandleFunc("POST /api/reviews/createreview", func(w http.ResponseWriter, r *http.Request) {
		var in review.Input
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"_id": "r1", "product_id": in.ProductID, "user_id": in.UserID, "rating": in.Rating, "review": in.Text})
	})
	mux.HandleFunc("GET /api/reviews/product/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"r1","user_id":{"_id":"u1","username":"an"},"rating":4,"review":"ok"}]`))
	})
	mux.HandleFunc("GET /api/products/getAll", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"P1","title":"Lamp","price":1000,"shop_id":{"_id":"S1","shop_name":"Shop"},"quantity":3}]`))
	})
	mux.HandleFunc("GET /api/products/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "lamp", q.Get("title"))
		assert.Equal(t, "100", q.Get("minPrice"))
		assert.False(t, q.Has("maxPrice"))
		_, _ = w.Write([]byte(`[]`))
	})
	mux.HandleFunc("GET /api/products/category/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"P2","shop_id":"S2","category_id":"` + r.PathValue("id") + `"}]`))
	})
	mux.HandleFunc("GET /api/products/shop/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"P3","shop_id":"` + r.PathValue("id") + `"}]`))
	})
	mux.HandleFunc("GET /api/categories/getall", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"c1","category_name":"Books"}]`))
	})
	mux.HandleFunc("GET /api/shop/shop/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"_id":"S1","shop_name":"Shop","shop_address":"Hanoi"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	ctx := context.Background()

	t.Run("Login", func(t *testing.T) {
		token, err := c.Login(ctx, "an@example.com", "123")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)

		_, err = c.Login(ctx, "an@example.com", "wrong")
		assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
		assert.ErrorContains(t, err, "Invalid credentials")
	})

	t.Run("Register", func(t *testing.T) {
		msg, err := c.Register(ctx, user.RegisterInput{
			Email: "an@example.com", Password: "x", ConfirmPassword: "x", Username: "an", Phone: "0901234567",
		})
		require.NoError(t, err)
		assert.Equal(t, "User registered", msg)
	})

	t.Run("Register rejects mismatched passwords locally", func(t *testing.T) {
		_, err := c.Register(ctx, user.RegisterInput{
			Email: "an@example.com", Password: "x", ConfirmPassword: "y", Username: "an", Phone: "0901234567",
		})
		assert.ErrorIs(t, err, user.ErrPasswordMismatch)
	})

	t.Run("Profile", func(t *testing.T) {
		p, err := c.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "u1", p.ID)
		assert.Equal(t, "an", p.Username)
	})

	t.Run("Orders", func(t *testing.T) {
		orders, err := c.OrdersByBuyer(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Len(t, order.FilterByStatus(orders, order.StatusReceived), 1)

		o, err := c.OrderByID(ctx, "o7")
		require.NoError(t, err)
		assert.Equal(t, "o7", o.ID)
		assert.Equal(t, int64(2500), o.TotalPrice)

		_, err = c.OrderByID(ctx, "")
		assert.ErrorIs(t, err, ErrMissingID)
	})

	t.Run("Reviews", func(t *testing.T) {
		created, err := c.CreateReview(ctx, review.Input{ProductID: "P1", UserID: "u1", Rating: 5, Text: "great"})
		require.NoError(t, err)
		assert.Equal(t, "r1", created.ID)
		assert.Equal(t, "P1", created.Product.ID)

		_, err = c.CreateReview(ctx, review.Input{ProductID: "P1", UserID: "u1", Rating: 9, Text: "?"})
		assert.ErrorIs(t, err, review.ErrInvalidRating)

		reviews, err := c.ReviewsByProduct(ctx, "P1")
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "an", reviews[0].User.Name)
	})

	t.Run("Catalog", func(t *testing.T) {
		products, err := c.Products(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "S1", products[0].Shop.ID)
		assert.True(t, products[0].InStock())

		found, err := c.SearchProducts(ctx, product.Query{Title: "lamp", MinPrice: 100})
		require.NoError(t, err)
		assert.Empty(t, found)

		byCat, err := c.ProductsByCategory(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, byCat, 1)
		assert.Equal(t, "c1", byCat[0].Category.ID)

		byShop, err := c.ProductsByShop(ctx, "S9")
		require.NoError(t, err)
		require.Len(t, byShop, 1)
		assert.Equal(t, "S9", byShop[0].Shop.ID)

		categories, err := c.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []product.Category{{ID: "c1", Name: "Books"}}, categories)

		shop, err := c.Shop(ctx, "S1")
		require.NoError(t, err)
		assert.Equal(t, "Hanoi", shop.Address)
	})
}
