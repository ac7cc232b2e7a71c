package product

import "encoding/json"

// Condition values reported by the catalog.
const (
	ConditionUsed = "used"
	ConditionNew  = "new"
)

// Product is a catalog listing. Price is in whole currency units.
type Product struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Price       int64    `json:"price"`
	Shop        Ref      `json:"shop_id"`
	Category    Ref      `json:"category_id,omitzero"`
	Images      []string `json:"img_url,omitempty"`
	Description string   `json:"description,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	Stock       int      `json:"quantity"`
}

// InStock reports whether the listing can still be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ImageRef is the first image of the listing, or "".
func (p Product) ImageRef() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type Category struct {
	ID   string `json:"_id"`
	Name string `json:"category_name"`
}

type Shop struct {
	ID          string `json:"_id"`
	Name        string `json:"shop_name"`
	Address     string `json:"shop_address,omitempty"`
	Logo        string `json:"shop_logo,omitempty"`
	Description string `json:"description,omitempty"`
}

// Query holds the search screen filters. Zero prices are left out.
type Query struct {
	Title    string
	MinPrice int64
	MaxPrice int64
}

// Ref is a reference to another document that the backend sends either as a
// bare id string or as the populated object.
type Ref struct {
	ID   string
	Name string

	raw json.RawMessage
}
