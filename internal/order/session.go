// Package order implements the customer's order session: the current cup
// selection, the cart ("minha caixa") and the cart panel visibility flag.
//
// A Session is a plain state machine. It is not safe for concurrent use; the
// owner is expected to run one command at a time and re-read Snapshot after
// each one.
package order

import (
	"fmt"

	"github.com/andregumieri/fiap-brigalab/internal/catalog"
	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity a single line item can hold
const MaxQuantity = 999

// LineItem is one cup in the cart. Labels are copied at add time so later
// selection changes never touch existing items.
type LineItem struct {
	ID           string          `json:"id"`
	BaseLabel    string          `json:"base_label"`
	ToppingLabel string          `json:"topping_label"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

// Subtotal returns UnitPrice * Quantity
func (i LineItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Session holds the mutable state of one storefront visit.
type Session struct {
	catalog   catalog.Catalog
	unitPrice decimal.Decimal

	baseID    string
	toppingID string
	items     []LineItem
	panelOpen bool

	// seq feeds line item ids; it only grows
	seq uint64
}

// NewSession validates cat and returns a session positioned on the catalog
// defaults with an empty cart and the panel closed.
func NewSession(cat catalog.Catalog, unitPrice decimal.Decimal) (*Session, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price must not be negative, got %s", unitPrice)
	}
	return &Session{
		catalog:   cat,
		unitPrice: unitPrice,
		baseID:    cat.DefaultBase,
		toppingID: cat.DefaultTopping,
	}, nil
}

// SelectedBaseID returns the id of the selected base
func (s *Session) SelectedBaseID() string { return s.baseID }

// SelectedToppingID returns the id of the selected topping
func (s *Session) SelectedToppingID() string { return s.toppingID }

// UnitPrice is the single price point of every cup.
func (s *Session) UnitPrice() decimal.Decimal { return s.unitPrice }

// SelectBase makes id the selected base. The cart is not touched.
func (s *Session) SelectBase(id string) error {
	if _, err := s.catalog.Find(catalog.KindBase, id); err != nil {
		return &InvalidSelectionError{Kind: catalog.KindBase, ID: id, Err: err}
	}
	s.baseID = id
	return nil
}

// SelectTopping makes id the selected topping. The cart is not touched.
func (s *Session) SelectTopping(id string) error {
	if _, err := s.catalog.Find(catalog.KindTopping, id); err != nil {
		return &InvalidSelectionError{Kind: catalog.KindTopping, ID: id, Err: err}
	}
	s.toppingID = id
	return nil
}

// AddToCart appends a new line item built from the current selection and
// opens the cart panel. Identical selections are never merged.
func (s *Session) AddToCart() LineItem {
	base, _ := s.catalog.Find(catalog.KindBase, s.baseID)
	topping, _ := s.catalog.Find(catalog.KindTopping, s.toppingID)

	s.seq++
	item := LineItem{
		ID:           fmt.Sprintf("%s-%s-%d", base.ID, topping.ID, s.seq),
		BaseLabel:    base.Name,
		ToppingLabel: topping.Name,
		Quantity:     1,
		UnitPrice:    s.unitPrice,
	}
	s.items = append(s.items, item)
	s.panelOpen = true
	return item
}

// SetQuantity sets the quantity of the line item with the given id.
// A quantity of zero removes it. Unknown ids and quantities outside
// 0..MaxQuantity are ignored.
func (s *Session) SetQuantity(id string, quantity int) {
	if quantity < 0 || quantity > MaxQuantity {
		return
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	if quantity == 0 {
		s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
		return
	}
	s.items[idx].Quantity = quantity
}

// RemoveLineItem is SetQuantity(id, 0)
func (s *Session) RemoveLineItem(id string) {
	s.SetQuantity(id, 0)
}

// IncrementQuantity adds one to the line item's quantity. A line already at
// MaxQuantity is left as is.
func (s *Session) IncrementQuantity(id string) {
	if idx := s.indexOf(id); idx >= 0 {
		s.SetQuantity(id, s.items[idx].Quantity+1)
	}
}

// DecrementQuantity removes one from the line item's quantity, dropping the
// item when it reaches zero.
func (s *Session) DecrementQuantity(id string) {
	if idx := s.indexOf(id); idx >= 0 {
		s.SetQuantity(id, s.items[idx].Quantity-1)
	}
}

// Clear empties the cart. The selection and panel flag are kept.
func (s *Session) Clear() {
	s.items = nil
}

// OpenCartPanel shows the cart panel
func (s *Session) OpenCartPanel() { s.panelOpen = true }

// CloseCartPanel hides the cart panel
func (s *Session) CloseCartPanel() { s.panelOpen = false }

// IsCartPanelOpen reports whether the cart panel is visible
func (s *Session) IsCartPanelOpen() bool { return s.panelOpen }

// Items returns a copy of the cart in insertion order.
func (s *Session) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns the line item with the given id.
func (s *Session) Item(id string) (LineItem, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return LineItem{}, false
	}
	return s.items[idx], true
}

// TotalItemCount is the sum of all quantities.
func (s *Session) TotalItemCount() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of all subtotals rounded to cents.
func (s *Session) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(s.LineItemSubtotal(item))
	}
	return total.Round(2)
}

// LineItemSubtotal returns the item's unit price times its quantity
func (s *Session) LineItemSubtotal(item LineItem) decimal.Decimal {
	return item.Subtotal()
}

func (s *Session) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
