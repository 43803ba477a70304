package order

import (
	"github.com/andregumieri/fiap-brigalab/internal/catalog"
	"github.com/shopspring/decimal"
)

const toppingLayerOpacity = 0.8

// Preview describes how the cup illustration is drawn for the current selection.
type Preview struct {
	FillStyle      string  `json:"fill_style"`
	ToppingStyle   string  `json:"topping_style"`
	ToppingOpacity float64 `json:"topping_opacity"`
	Title          string  `json:"title"`
	Subtitle       string  `json:"subtitle"`
	Price          Money   `json:"price"`
}

// LineView is a cart row ready for display
type LineView struct {
	ID        string `json:"id"`
	Base      string `json:"base"`
	Topping   string `json:"topping"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
	Subtotal  Money  `json:"subtotal"`
}

// View is a read-only snapshot of a session. It shares nothing with the
// session it was taken from.
type View struct {
	Base          catalog.Option `json:"base"`
	Topping       catalog.Option `json:"topping"`
	Preview       Preview        `json:"preview"`
	Items         []LineView     `json:"items"`
	ItemCount     int            `json:"item_count"`
	Total         Money          `json:"total"`
	CartPanelOpen bool           `json:"cart_panel_open"`
}

// Snapshot projects the current state into a View.
func (s *Session) Snapshot() View {
	base, _ := s.catalog.Find(catalog.KindBase, s.baseID)
	topping, _ := s.catalog.Find(catalog.KindTopping, s.toppingID)

	lines := make([]LineView, 0, len(s.items))
	for _, item := range s.items {
		lines = append(lines, LineView{
			ID:        item.ID,
			Base:      item.BaseLabel,
			Topping:   item.ToppingLabel,
			Quantity:  item.Quantity,
			UnitPrice: NewMoney(item.UnitPrice),
			Subtotal:  NewMoney(s.LineItemSubtotal(item)),
		})
	}

	return View{
		Base:          base,
		Topping:       topping,
		Preview:       buildPreview(base, topping, s.unitPrice),
		Items:         lines,
		ItemCount:     s.TotalItemCount(),
		Total:         NewMoney(s.TotalPrice()),
		CartPanelOpen: s.panelOpen,
	}
}

func buildPreview(base, topping catalog.Option, unitPrice decimal.Decimal) Preview {
	opacity := toppingLayerOpacity
	if topping.ID == catalog.NoToppingID {
		opacity = 0
	}
	return Preview{
		FillStyle:      base.Style,
		ToppingStyle:   topping.Style,
		ToppingOpacity: opacity,
		Title:          base.Name,
		Subtitle:       "com " + topping.Name,
		Price:          NewMoney(unitPrice),
	}
}
