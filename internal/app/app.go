package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"marketplace-client/internal/api"
	"marketplace-client/internal/auth"
	"marketplace-client/internal/cart"
	"marketplace-client/internal/checkout"
	"marketplace-client/internal/config"
	"marketplace-client/internal/logger"
	"marketplace-client/internal/metrics"
	"marketplace-client/internal/transport"

	"go.uber.org/zap"
)

// App is the per-session state shared by every screen: one cart, one
// signed-in user, one backend client.
type App struct {
	Config   *config.Config
	Session  *auth.Session
	API      *api.Client
	Cart     *cart.Store
	Checkout *checkout.Orchestrator
	Metrics  *metrics.Client
}

// New wires the client stack on top of http.DefaultTransport.
func New(cfg *config.Config) *App {
	return NewWithTransport(cfg, nil)
}

// NewWithTransport is New with an explicit base round tripper.
func NewWithTransport(cfg *config.Config, base http.RoundTripper) *App {
	logger.Init(cfg.AppEnv)

	session := auth.NewSession()
	stats := &metrics.Client{}
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: transport.Chain(base,
			transport.RequestID(),
			transport.Logging(),
			transport.Metrics(stats),
			transport.RateLimit(transport.NewLimiter(cfg.RateLimit, cfg.RateBurst)),
			transport.BearerAuth(session),
		),
	}
	client := api.NewClient(cfg.APIBaseURL, httpClient)

	return &App{
		Config:   cfg,
		Session:  session,
		API:      client,
		Cart:     cart.NewStore(),
		Checkout: checkout.NewOrchestrator(client),
		Metrics:  stats,
	}
}

// Login signs in and keeps the token for later calls.
func (a *App) Login(ctx context.Context, email, password string) error {
	token, err := a.API.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.Session.SetToken(token); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("Signed in", zap.String("buyer_id", a.Session.BuyerID()))
	return nil
}

// Logout ends the session. The cart belongs to the session and goes with it.
func (a *App) Logout() {
	a.Session.Clear()
	a.Cart.Clear()
}

// Recipient loads the profile and pre-fills the checkout form from it.
func (a *App) Recipient(ctx context.Context) (checkout.Recipient, error) {
	if err := a.Session.Check(time.Now()); err != nil {
		return checkout.Recipient{}, err
	}

	p, err := a.API.Profile(ctx)
	if err != nil {
		return checkout.Recipient{}, fmt.Errorf("load profile: %w", err)
	}
	return checkout.RecipientFromProfile(*p), nil
}

// PlaceOrder checks out the selected cart entries. Entries of every group
// whose order was created leave the cart and the selection, so after a
// partial failure the selection holds exactly what is still to be ordered.
func (a *App) PlaceOrder(ctx context.Context, sel *cart.Selection, r checkout.Recipient) (*checkout.Result, error) {
	ctx = logger.NewRequestID(ctx)
	if r.BuyerID == "" {
		r.BuyerID = a.Session.BuyerID()
	}

	res, err := a.Checkout.Submit(ctx, a.Cart.Selected(sel), r)
	if res == nil {
		return nil, err
	}

	for _, g := range res.Submitted {
		ids := g.ProductIDs()
		a.Cart.RemoveMany(ids...)
		for _, id := range ids {
			if sel.Has(id) {
				sel.Toggle(id)
			}
		}
	}
	if err == nil {
		sel.Clear()
	}
	return res, err
}
