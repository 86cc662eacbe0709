package checkout

import (
	"context"
	"sync"

	"premiumshop-be/internal/cart"
	"premiumshop-be/internal/localstore"
	"premiumshop-be/internal/logger"
	"premiumshop-be/internal/order"

	"go.uber.org/zap"
)

type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Workflow runs one order placement attempt at a time over the session's
// cart. A failed attempt leaves the cart untouched so the buyer can retry.
type Workflow struct {
	mu     sync.Mutex
	state  State
	cart   *cart.Engine
	orders order.Service
	store  *localstore.Store

	shippingFee int64
}

func NewWorkflow(cartEngine *cart.Engine, orders order.Service, store *localstore.Store, shippingFee int64) *Workflow {
	return &Workflow{
		state:       StateIdle,
		cart:        cartEngine,
		orders:      orders,
		store:       store,
		shippingFee: shippingFee,
	}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// PlaceOrder validates the form, snapshots the cart and submits the order.
// On success the cart is cleared and the shipping details are remembered
// for the next checkout.
func (w *Workflow) PlaceOrder(ctx context.Context, form Form) (*order.Order, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	log := logger.FromCtx(ctx)

	// An empty cart never enters validation.
	if w.cart.Count() == 0 {
		w.state = StateIdle
		return nil, ErrEmptyCart
	}

	w.state = StateValidating
	if fieldErr := form.Validate(); fieldErr != nil {
		w.state = StateIdle
		log.Info("checkout form rejected",
			zap.String("field", fieldErr.Field),
			zap.String("reason", fieldErr.Message),
		)
		return nil, fieldErr
	}

	w.state = StateSubmitting

	items := make([]order.Item, 0, len(w.cart.Items()))
	for _, ci := range w.cart.Items() {
		items = append(items, order.Item{
			ProductID: ci.ID,
			Name:      ci.Name,
			Price:     ci.Price,
			Quantity:  ci.Quantity,
		})
	}

	o, err := w.orders.Create(ctx, order.CreateOrderInput{
		Items: items,
		Shipping: order.ShippingInfo{
			Name:    form.Name,
			Email:   form.Email,
			Phone:   form.Phone,
			Address: form.Address,
			City:    form.City,
			Note:    form.Note,
		},
		PaymentMethod: form.PaymentMethod,
		ShippingFee:   w.shippingFee,
	})
	if err != nil {
		// Cart stays as it was; the buyer decides whether to retry.
		w.state = StateFailed
		return nil, err
	}

	w.state = StateSucceeded

	if err := w.cart.Clear(); err != nil {
		log.Warn("failed to clear cart after checkout", zap.Error(err))
	}
	if err := w.store.Put(localstore.KeyShippingInfo, o.Shipping); err != nil {
		log.Warn("failed to remember shipping info", zap.Error(err))
	}
	w.cacheOrder(ctx, o)

	log.Info("checkout succeeded",
		zap.String("order_id", o.ID),
		zap.Int64("total", o.Total),
	)
	return o, nil
}

// cacheOrder appends the placed order to the local fallback cache so the
// session can show order history while the remote store is unreachable.
func (w *Workflow) cacheOrder(ctx context.Context, o *order.Order) {
	var cached []*order.Order
	if _, err := w.store.Get(localstore.KeyOrders, &cached); err != nil {
		logger.FromCtx(ctx).Warn("failed to read cached orders", zap.Error(err))
		return
	}
	cached = append(cached, o)
	if err := w.store.Put(localstore.KeyOrders, cached); err != nil {
		logger.FromCtx(ctx).Warn("failed to cache order", zap.Error(err))
	}
}

// CachedOrders returns the locally cached order history, newest last.
func (w *Workflow) CachedOrders() []*order.Order {
	var cached []*order.Order
	if _, err := w.store.Get(localstore.KeyOrders, &cached); err != nil {
		return nil
	}
	return cached
}

// SavedShippingInfo returns the shipping details of the last successful
// checkout, prefilling the form on the next one.
func (w *Workflow) SavedShippingInfo() (order.ShippingInfo, bool) {
	var info order.ShippingInfo
	found, err := w.store.Get(localstore.KeyShippingInfo, &info)
	if err != nil || !found {
		return order.ShippingInfo{}, false
	}
	return info, true
}
