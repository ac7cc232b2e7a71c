package checkout

import "marketplace-client/internal/cart"

// Group is the part of a checkout that goes to one seller.
type Group struct {
	SellerID   string
	Items      []cart.Entry
	TotalPrice int64
}

// ProductIDs lists the group's products in order.
func (g Group) ProductIDs() []string {
	ids := make([]string, len(g.Items))
	for i, e := range g.Items {
		ids[i] = e.ProductID()
	}
	return ids
}

// GroupBySeller partitions entries by seller. Groups come in order of each
// seller's first appearance and keep the input order of their items.
func GroupBySeller(entries []cart.Entry) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, e := range entries {
		seller := e.SellerID()
		i, ok := index[seller]
		if !ok {
			i = len(groups)
			index[seller] = i
			groups = append(groups, Group{SellerID: seller})
		}
		groups[i].Items = append(groups[i].Items, e)
		groups[i].TotalPrice += e.LineTotal()
	}
	return groups
}
