package order

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutRequest is what gets handed to a Submitter when the customer
// finalizes the order.
type CheckoutRequest struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Confirmation is returned by a Submitter that accepted the order
type Confirmation struct {
	Reference string `json:"reference"`
}

// Submitter receives finalized orders. No backend contract exists yet, so
// the only implementation is DeferredSubmitter.
type Submitter interface {
	Submit(ctx context.Context, req CheckoutRequest) (Confirmation, error)
}

// DeferredSubmitter rejects every order with ErrCheckoutUnavailable
type DeferredSubmitter struct{}

// Submit always fails with ErrCheckoutUnavailable.
func (DeferredSubmitter) Submit(ctx context.Context, req CheckoutRequest) (Confirmation, error) {
	return Confirmation{}, ErrCheckoutUnavailable
}

// Checkout hands the cart to submitter. The cart is cleared only when the
// submitter accepts it.
func (s *Session) Checkout(ctx context.Context, submitter Submitter) (Confirmation, error) {
	if len(s.items) == 0 {
		return Confirmation{}, ErrEmptyCart
	}
	conf, err := submitter.Submit(ctx, CheckoutRequest{
		Items: s.Items(),
		Total: s.TotalPrice(),
	})
	if err != nil {
		return Confirmation{}, err
	}
	s.Clear()
	s.panelOpen = false
	return conf, nil
}
