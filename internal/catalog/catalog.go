// Package catalog provides the fixed, read-only product catalog.
package catalog

import (
	"fmt"
	"strings"

	shoperrors "github.com/madurajaya/storefront/internal/errors"
)

// Product represents a purchasable product in the catalog.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"` // Price in whole rupiah
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Catalog is an ordered, read-only collection of products.
// It is never mutated after construction.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New creates a Catalog from the given products, preserving their order.
// Returns ErrDuplicateProductID if two products share an identifier.
func New(products []Product) (*Catalog, error) {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", shoperrors.ErrDuplicateProductID, p.ID)
		}
		byID[p.ID] = p
	}
	return &Catalog{
		products: append([]Product(nil), products...),
		byID:     byID,
	}, nil
}

// List returns all products in catalog order.
func (c *Catalog) List() []Product {
	return append([]Product(nil), c.products...)
}

// FindByID retrieves a product by its ID.
// Returns ErrProductNotFound if no product exists with the given ID.
func (c *Catalog) FindByID(id string) (*Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, shoperrors.ErrProductNotFound
	}
	return &p, nil
}

// Search returns the products whose title contains the query,
// case-insensitively. An empty query returns the full list; no match
// returns an empty slice.
func (c *Catalog) Search(query string) []Product {
	if query == "" {
		return c.List()
	}
	q := strings.ToLower(query)
	list := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Title), q) {
			list = append(list, p)
		}
	}
	return list
}
