package cart

import "marketplace-client/internal/product"

// Entry is one distinct product held in the cart. The product is copied when
// the entry is created and is not touched by later adds.
type Entry struct {
	Product  product.Product
	Quantity int
}

func (e Entry) ProductID() string { return e.Product.ID }

// SellerID is the normalized id of the listing's shop.
func (e Entry) SellerID() string { return e.Product.Shop.ID }

func (e Entry) UnitPrice() int64 { return e.Product.Price }

func (e Entry) LineTotal() int64 {
	return e.Product.Price * int64(e.Quantity)
}

// Total sums unit price times quantity over the entries.
func Total(entries []Entry) int64 {
	var sum int64
	for _, e := range entries {
		sum += e.LineTotal()
	}
	return sum
}
