package checkout

import (
	"context"

	"marketplace-client/internal/cart"
	"marketplace-client/internal/logger"
	"marketplace-client/internal/order"
	"marketplace-client/internal/user"

	"go.uber.org/zap"
)

// OrderCreator submits one order. *api.Client satisfies it.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req order.Request) (*order.Order, error)
}

// Recipient is who the orders are for and where they ship.
type Recipient struct {
	BuyerID string
	Name    string
	Address string
	Phone   string
}

// RecipientFromProfile pre-fills the form from the signed-in user. The
// address is left for the buyer to type.
func RecipientFromProfile(p user.Profile) Recipient {
	return Recipient{
		BuyerID: p.ID,
		Name:    p.Username,
		Phone:   p.Phone,
	}
}

// Result describes a checkout run. Submitted holds the groups whose orders
// were created, Orders the matching responses. On failure, Failed is the
// group that was rejected and Remaining the ones never attempted.
type Result struct {
	Groups    int
	Succeeded int
	Submitted []Group
	Orders    []*order.Order
	Failed    *Group
	Remaining []Group
}

// Complete reports whether every group was ordered.
func (r *Result) Complete() bool {
	return r.Failed == nil && r.Succeeded == r.Groups
}

// Orchestrator turns a cart selection into one order per seller.
type Orchestrator struct {
	orders OrderCreator
}

func NewOrchestrator(orders OrderCreator) *Orchestrator {
	return &Orchestrator{orders: orders}
}

// Submit groups entries by seller and creates the orders one after another,
// stopping at the first failure. Already created orders stay created; the
// returned Result says how far it got, and the error is a *SubmissionError.
// entries is read only and may be a snapshot of the cart.
func (o *Orchestrator) Submit(ctx context.Context, entries []cart.Entry, r Recipient) (*Result, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySelection
	}

	groups := GroupBySeller(entries)
	res := &Result{Groups: len(groups)}
	log := logger.FromCtx(ctx).With(zap.String("buyer_id", r.BuyerID), zap.Int("groups", len(groups)))

	for i := range groups {
		g := groups[i]
		glog := log.With(
			zap.String("seller_id", g.SellerID),
			zap.Int("items", len(g.Items)),
			zap.Int64("total_price", g.TotalPrice),
		)

		glog.Info("Submitting order")
		created, err := o.orders.CreateOrder(ctx, newRequest(g, r))
		if err != nil {
			subErr := newSubmissionError(g.SellerID, res.Succeeded, err)
			glog.Error("Order submission failed",
				zap.Int("succeeded", res.Succeeded),
				zap.Int("http_status", subErr.HTTPStatus),
				zap.Error(err),
			)
			res.Failed = &g
			res.Remaining = groups[i+1:]
			return res, subErr
		}

		res.Succeeded++
		res.Submitted = append(res.Submitted, g)
		res.Orders = append(res.Orders, created)
	}

	log.Info("Checkout complete")
	return res, nil
}

func newRequest(g Group, r Recipient) order.Request {
	items := make([]order.Item, len(g.Items))
	for i, e := range g.Items {
		items[i] = order.Item{Product: e.Product, Quantity: e.Quantity}
	}

	return order.Request{
		BuyerID:       r.BuyerID,
		ShopID:        g.SellerID,
		Items:         items,
		TotalPrice:    g.TotalPrice,
		RecipientName: r.Name,
		Address:       r.Address,
		PhoneNumber:   r.Phone,
	}
}
