// Package view projects catalog, cart and navigation state into
// display-ready structures. Projections hold no state of their own and are
// re-derived from current state on every call.
package view

import (
	"fmt"

	"github.com/madurajaya/storefront/internal/cart"
	"github.com/madurajaya/storefront/internal/catalog"
	"github.com/madurajaya/storefront/internal/nav"
	"github.com/madurajaya/storefront/pkg/money"
)

const (
	emptyGridMessage = "Produk tidak ditemukan."
	emptyCartMessage = "Keranjang kosong — tambahkan produk dari halaman produk."
	shippingLabel    = "Ongkir"
)

// Card is one product tile in the grid.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Grid is the product listing, optionally filtered by a search query.
type Grid struct {
	Cards   []Card `json:"cards"`
	Message string `json:"message,omitempty"`
}

// ProductGrid projects products into grid cards. An empty list carries the
// empty-state message instead of an error.
func ProductGrid(products []catalog.Product) Grid {
	if len(products) == 0 {
		return Grid{Cards: []Card{}, Message: emptyGridMessage}
	}
	cards := make([]Card, len(products))
	for i, p := range products {
		cards[i] = Card{
			ID:          p.ID,
			Title:       p.Title,
			Price:       money.Rupiah(p.Price),
			Image:       p.Image,
			Description: p.Description,
		}
	}
	return Grid{Cards: cards}
}

// Modal is the product detail overlay.
type Modal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
}

// ProductModal projects a single product into the detail overlay with the
// quantity selector reset to 1.
func ProductModal(p catalog.Product) Modal {
	return Modal{
		ID:          p.ID,
		Title:       p.Title,
		Price:       money.Rupiah(p.Price),
		Image:       p.Image,
		Description: p.Description,
		Quantity:    1,
	}
}

// CartRow is one editable line in the cart section.
type CartRow struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Image     string `json:"image"`
	Quantity  int64  `json:"quantity"`
	Total     string `json:"total"`
}

// CartView is the cart section projection.
type CartView struct {
	Rows      []CartRow `json:"rows"`
	ItemCount int64     `json:"item_count"`
	Subtotal  string    `json:"subtotal"`
	Message   string    `json:"message,omitempty"`
}

// Cart projects cart lines into editable rows with computed line totals.
func Cart(lines []cart.Line) CartView {
	if len(lines) == 0 {
		return CartView{Rows: []CartRow{}, Subtotal: money.Rupiah(0), Message: emptyCartMessage}
	}
	rows := make([]CartRow, len(lines))
	var count, subtotal int64
	for i, l := range lines {
		rows[i] = CartRow{
			ProductID: l.ProductID,
			Title:     l.Title,
			Price:     money.Rupiah(l.Price),
			Image:     l.Image,
			Quantity:  l.Quantity,
			Total:     money.Rupiah(l.Total()),
		}
		count += l.Quantity
		subtotal += l.Total()
	}
	return CartView{Rows: rows, ItemCount: count, Subtotal: money.Rupiah(subtotal)}
}

// SummaryRow is one label/amount pair in the checkout summary.
type SummaryRow struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// CheckoutView is the checkout section projection: line items, the flat
// shipping fee and the grand total.
type CheckoutView struct {
	Rows       []SummaryRow `json:"rows"`
	GrandTotal string       `json:"grand_total"`
	Message    string       `json:"message,omitempty"`
}

// CheckoutSummary projects cart lines plus the flat shipping fee. An empty
// cart yields a zero total and the empty-state message.
func CheckoutSummary(lines []cart.Line, shippingFee int64) CheckoutView {
	if len(lines) == 0 {
		return CheckoutView{Rows: []SummaryRow{}, GrandTotal: money.Rupiah(0), Message: emptyCartMessage}
	}
	rows := make([]SummaryRow, 0, len(lines)+1)
	var subtotal int64
	for _, l := range lines {
		rows = append(rows, SummaryRow{
			Label:  formatLineLabel(l),
			Amount: money.Rupiah(l.Total()),
		})
		subtotal += l.Total()
	}
	rows = append(rows, SummaryRow{Label: shippingLabel, Amount: money.Rupiah(shippingFee)})
	return CheckoutView{Rows: rows, GrandTotal: money.Rupiah(subtotal + shippingFee)}
}

func formatLineLabel(l cart.Line) string {
	return fmt.Sprintf("%s × %d", l.Title, l.Quantity)
}

// NavView is the navigation projection.
type NavView struct {
	Active   nav.Section        `json:"active"`
	Sections []nav.SectionState `json:"sections"`
}

// Nav projects the router state.
func Nav(router *nav.Router) NavView {
	return NavView{
		Active:   router.Active(),
		Sections: router.Sections(),
	}
}
