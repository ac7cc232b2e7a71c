package order

// FilterByStatus keeps the orders in the given status, preserving order.
func FilterByStatus(orders []Order, status Status) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// IsReviewAllowed reports whether the buyer may still review the order.
func IsReviewAllowed(o Order) bool {
	return o.Status == StatusReceived && !o.Reviewed
}
