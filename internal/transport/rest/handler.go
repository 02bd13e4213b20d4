// Package rest exposes the storefront to the presentation layer over HTTP.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/madurajaya/storefront/internal/cart"
	"github.com/madurajaya/storefront/internal/catalog"
	"github.com/madurajaya/storefront/internal/checkout"
	shoperrors "github.com/madurajaya/storefront/internal/errors"
	"github.com/madurajaya/storefront/internal/nav"
	"github.com/madurajaya/storefront/internal/view"
	"github.com/madurajaya/storefront/pkg/web"
)

type Handler struct {
	catalog     *catalog.Catalog
	cart        *cart.Store
	router      *nav.Router
	coordinator *checkout.Coordinator
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewHandler creates a new instance of the storefront API.
func NewHandler(cat *catalog.Catalog, cartStore *cart.Store, router *nav.Router, coordinator *checkout.Coordinator, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:     cat,
		cart:        cartStore,
		router:      router,
		coordinator: coordinator,
		validate:    validator.New(),
		logger:      logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the storefront.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.Products)
		r.Get("/products/{id}", h.ProductByID)

		r.Get("/cart", h.Cart)
		r.Post("/cart/items", h.AddItem)
		r.Put("/cart/items/{id}", h.UpdateItem)
		r.Delete("/cart/items/{id}", h.RemoveItem)

		r.Post("/navigation", h.Navigate)

		r.Get("/checkout", h.CheckoutSummary)
		r.Post("/checkout", h.SubmitCheckout)

		r.Post("/contact", h.Contact)
	})

	r.Get("/healthz", h.HealthCheck)
}

// AddItemRequest adds a product to the cart. A missing or non-positive
// quantity is coerced to 1 by the cart store, never rejected.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity"`
}

// UpdateItemRequest changes a cart line's quantity. Non-positive values are
// clamped to 1 by the cart store.
type UpdateItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type NavigateRequest struct {
	Section string `json:"section" validate:"required"`
}

// CheckoutRequest carries the contact form. Field contents are opaque, only
// presence is validated here.
type CheckoutRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type ContactRequest struct {
	Message string `json:"message"`
}

// NavigationResponse is returned by every navigation request. The cart and
// checkout projections are included when those sections become visible, so
// the presentation layer never shows stale data.
type NavigationResponse struct {
	Nav      view.NavView       `json:"nav"`
	Cart     *view.CartView     `json:"cart,omitempty"`
	Checkout *view.CheckoutView `json:"checkout,omitempty"`
	Message  string             `json:"message,omitempty"`
}

type ContactResponse struct {
	HandoffURL string `json:"handoff_url"`
}

// Products projects the product grid, optionally filtered by ?query=.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	query := r.URL.Query().Get("query")
	mLogger.DebugContext(r.Context(), "Received request to list products", "query", query)
	grid := view.ProductGrid(h.catalog.Search(query))
	web.RespondJSON(w, mLogger, http.StatusOK, grid)
}

// ProductByID projects the detail modal for a single product.
func (h *Handler) ProductByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")
	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.catalog.FindByID(id)
	if err != nil {
		if errors.Is(err, shoperrors.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, view.ProductModal(*found))
}

// Cart projects the current cart.
func (h *Handler) Cart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	web.RespondJSON(w, mLogger, http.StatusOK, view.Cart(h.cart.Lines()))
}

// AddItem adds a product to the cart. Unknown product IDs leave the cart
// unchanged, the response carries the (possibly unchanged) cart projection.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req AddItemRequest
	if !h.decodeAndValidate(w, r, mLogger, &req) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to add cart item", "product_id", req.ProductID, "quantity", req.Quantity)
	h.cart.Add(req.ProductID, req.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, view.Cart(h.cart.Lines()))
}

// UpdateItem changes a cart line's quantity.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")
	var req UpdateItemRequest
	if !h.decodeAndValidate(w, r, mLogger, &req) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received request to update cart item", "product_id", id, "quantity", req.Quantity)
	h.cart.ChangeQuantity(id, req.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, view.Cart(h.cart.Lines()))
}

// RemoveItem removes a cart line. Unknown IDs are a no-op.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id := chi.URLParam(r, "id")
	mLogger.DebugContext(r.Context(), "Received request to remove cart item", "product_id", id)
	h.cart.Remove(id)
	web.RespondJSON(w, mLogger, http.StatusOK, view.Cart(h.cart.Lines()))
}

// Navigate activates a section. Navigating to checkout runs the coordinator's
// empty-cart guard; a rejection redirects to the product list.
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req NavigateRequest
	if !h.decodeAndValidate(w, r, mLogger, &req) {
		return
	}
	section := nav.Section(req.Section)
	mLogger.DebugContext(r.Context(), "Received navigation request", "section", section)

	if section == nav.SectionCheckout {
		if err := h.coordinator.Begin(); err != nil {
			mLogger.WarnContext(r.Context(), "Checkout navigation rejected", "error", err)
			web.RespondJSON(w, mLogger, http.StatusConflict, NavigationResponse{
				Nav:     view.Nav(h.router),
				Message: checkout.EmptyCartMessage,
			})
			return
		}
	} else {
		h.router.Navigate(section)
	}

	resp := NavigationResponse{Nav: view.Nav(h.router)}
	switch h.router.Active() {
	case nav.SectionCart:
		cartView := view.Cart(h.cart.Lines())
		resp.Cart = &cartView
	case nav.SectionCheckout:
		checkoutView := view.CheckoutSummary(h.cart.Lines(), h.coordinator.ShippingFee())
		resp.Checkout = &checkoutView
	}
	web.RespondJSON(w, mLogger, http.StatusOK, resp)
}

// CheckoutSummary projects the checkout section.
func (h *Handler) CheckoutSummary(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	summary := view.CheckoutSummary(h.cart.Lines(), h.coordinator.ShippingFee())
	web.RespondJSON(w, mLogger, http.StatusOK, summary)
}

// SubmitCheckout runs one checkout submission.
func (h *Handler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req CheckoutRequest
	if !h.decodeAndValidate(w, r, mLogger, &req) {
		return
	}
	mLogger.DebugContext(r.Context(), "Received checkout submission", "name", req.Name)

	confirmation, err := h.coordinator.Submit(checkout.Form{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, shoperrors.ErrEmptyCart) {
			mLogger.WarnContext(r.Context(), "Checkout submission rejected, cart is empty")
			web.RespondJSON(w, mLogger, http.StatusConflict, NavigationResponse{
				Nav:     view.Nav(h.router),
				Message: checkout.EmptyCartMessage,
			})
			return
		}
		mLogger.ErrorContext(r.Context(), "Error submitting checkout", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to submit checkout")
		return
	}
	mLogger.InfoContext(r.Context(), "Checkout confirmed", "order_id", confirmation.OrderID)
	web.RespondJSON(w, mLogger, http.StatusCreated, confirmation)
}

// Contact builds the hand-off URL for a shop inquiry.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var req ContactRequest
	if !h.decodeAndValidate(w, r, mLogger, &req) {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, ContactResponse{
		HandoffURL: h.coordinator.Inquiry(req.Message),
	})
}

// HealthCheck returns a simple health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, h.loggerWithReqID(r), http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate decodes the JSON body into dst and validates it.
// Responds with 400 and returns false on failure.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, mLogger *slog.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			errorResponse := make(map[string]string)
			for _, fieldErr := range validationErrors {
				errorResponse[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
			}
			mLogger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondJSON(w, mLogger, http.StatusBadRequest, map[string]any{"validation_errors": errorResponse})
			return false
		}
		mLogger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	if reqID, ok := web.GetRequestID(r.Context()); ok {
		return h.logger.With("request_id", reqID)
	}
	return h.logger
}
