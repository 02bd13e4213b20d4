// Package errors provides custom error types for storefront operations.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateProductID = errors.New("duplicate product id in catalog")

var ErrEmptyCart = errors.New("cart is empty")
