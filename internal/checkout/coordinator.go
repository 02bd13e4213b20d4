// Package checkout validates and confirms orders, handing them off to the
// shop's WhatsApp contact.
package checkout

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/madurajaya/storefront/internal/cart"
	shoperrors "github.com/madurajaya/storefront/internal/errors"
	"github.com/madurajaya/storefront/internal/nav"
	"github.com/madurajaya/storefront/pkg/config"
)

// State is the submission state of the coordinator.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateRejected
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateRejected:
		return "rejected"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// User-facing messages, in the shop's language.
const (
	EmptyCartMessage = "Keranjang kosong."
	ConfirmedMessage = "Order dibuat — Anda akan diarahkan ke WhatsApp untuk konfirmasi."
)

// Form carries the checkout contact fields. The coordinator treats them as
// opaque strings; presence is checked at the transport boundary.
type Form struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// Item is one confirmed line in the order summary.
type Item struct {
	Title    string `json:"title"`
	Quantity int64  `json:"quantity"`
	Total    string `json:"total"`
}

// Confirmation is the transient order summary produced by a confirmed
// submission. It is handed to the caller and not retained.
type Confirmation struct {
	OrderID       string `json:"order_id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
	Items         []Item `json:"items"`
	Subtotal      int64  `json:"subtotal"`
	ShippingFee   int64  `json:"shipping_fee"`
	GrandTotal    int64  `json:"grand_total"`
	HandoffURL    string `json:"handoff_url"`
	Message       string `json:"message"`
}

// Coordinator runs the checkout flow over the cart store and view router.
type Coordinator struct {
	cart   *cart.Store
	router *nav.Router
	shop   config.ShopConfig
	logger *slog.Logger
	now    func() time.Time

	mu              sync.Mutex
	state           State
	lastOrderMillis int64
}

// NewCoordinator creates a coordinator in the idle state.
func NewCoordinator(cartStore *cart.Store, router *nav.Router, shop config.ShopConfig, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		cart:   cartStore,
		router: router,
		shop:   shop,
		logger: logger.With("component", "checkout"),
		now:    time.Now,
	}
}

// ShippingFee returns the configured flat shipping fee.
func (c *Coordinator) ShippingFee() int64 {
	return c.shop.ShippingFee
}

// State returns the outcome of the most recent submission attempt.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Begin guards navigation into the checkout section. An empty cart is
// rejected: the user is redirected to the product list and ErrEmptyCart is
// returned for the caller to surface.
func (c *Coordinator) Begin() error {
	if c.cart.TotalItemCount() == 0 {
		c.logger.Warn("Checkout navigation rejected, cart is empty")
		c.router.Navigate(nav.SectionProducts)
		return shoperrors.ErrEmptyCart
	}
	c.router.Navigate(nav.SectionCheckout)
	return nil
}

// Submit runs one submission attempt. An empty cart rejects the submission
// and redirects to the product list. Otherwise the order is confirmed: totals
// are computed, an order ID is generated, the hand-off URL is built, the cart
// is cleared and the router returns home.
func (c *Coordinator) Submit(form Form) (*Confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = StateValidating
	lines := c.cart.Lines()
	if len(lines) == 0 {
		c.state = StateRejected
		c.logger.Warn("Checkout submission rejected, cart is empty")
		c.router.Navigate(nav.SectionProducts)
		return nil, shoperrors.ErrEmptyCart
	}

	var subtotal int64
	items := make([]Item, len(lines))
	for i, l := range lines {
		subtotal += l.Total()
		items[i] = Item{Title: l.Title, Quantity: l.Quantity, Total: rupiahTotal(l)}
	}

	confirmation := &Confirmation{
		OrderID:       c.nextOrderIDLocked(),
		Name:          form.Name,
		Phone:         form.Phone,
		Address:       form.Address,
		PaymentMethod: form.PaymentMethod,
		Items:         items,
		Subtotal:      subtotal,
		ShippingFee:   c.shop.ShippingFee,
		GrandTotal:    subtotal + c.shop.ShippingFee,
		Message:       ConfirmedMessage,
	}
	confirmation.HandoffURL = handoffURL(c.shop.WhatsAppNumber, orderText(c.shop.Name, confirmation, lines))

	c.cart.Clear()
	c.router.Navigate(nav.SectionHome)
	c.state = StateConfirmed
	c.logger.Info("Order confirmed",
		"order_id", confirmation.OrderID,
		"items", len(confirmation.Items),
		"grand_total", confirmation.GrandTotal,
	)
	return confirmation, nil
}

// Inquiry builds the hand-off URL for the independent contact action.
// An empty message falls back to the default inquiry text.
func (c *Coordinator) Inquiry(message string) string {
	if message == "" {
		message = defaultInquiryText
	}
	return handoffURL(c.shop.WhatsAppNumber, message)
}

// nextOrderIDLocked derives an order ID from the current timestamp,
// monotonically increasing even for submissions within one millisecond.
// Caller must hold c.mu.
func (c *Coordinator) nextOrderIDLocked() string {
	millis := c.now().UnixMilli()
	if millis <= c.lastOrderMillis {
		millis = c.lastOrderMillis + 1
	}
	c.lastOrderMillis = millis
	return orderIDPrefix + strconv.FormatInt(millis, 10)
}

const orderIDPrefix = "ORD"
