package order

import (
	"time"

	"marketplace-client/internal/product"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusPaid       Status = "paid"
	StatusReceived   Status = "received"
	StatusCompleted  Status = "completed"
)

// Item is one ordered line: the listing as it was in the cart plus the
// ordered quantity, which shadows the listing's stock field on the wire.
type Item struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Request is the body of POST /api/orders/create. One is sent per seller.
type Request struct {
	BuyerID       string `json:"buyer_id"`
	ShopID        string `json:"shop_id"`
	Items         []Item `json:"cart"`
	TotalPrice    int64  `json:"totalPrice"`
	RecipientName string `json:"recipientName"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phoneNumber"`
}

type Order struct {
	ID            string      `json:"_id"`
	Buyer         product.Ref `json:"buyer_id"`
	Shop          product.Ref `json:"shop_id"`
	Items         []Item      `json:"cart"`
	TotalPrice    int64       `json:"total_price"`
	Status        Status      `json:"status"`
	PaymentStatus string      `json:"payment_status,omitempty"`
	RecipientName string      `json:"recipientName,omitempty"`
	Address       string      `json:"address,omitempty"`
	PhoneNumber   string      `json:"phoneNumber,omitempty"`
	OrderDate     *time.Time  `json:"order_date,omitempty"`
	Reviewed      bool        `json:"reviewed"`
}
