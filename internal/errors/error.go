// Package errors provides the failure taxonomy of the storefront catalog.
//
// Every expected failure unwraps to one of the sentinels below, so callers test the category with
// errors.Is and recover the payload with errors.As.
package errors

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidOptions = errors.New("invalid product options")
var ErrNoStock = errors.New("out of stock")

var ErrInvalidName = errors.New("invalid customer name")
var ErrInvalidAddress = errors.New("invalid customer address")
var ErrInvalidRating = errors.New("invalid rating")

// ErrInvalidTransition signals a lifecycle defect: an order left ACTIVE twice.
var ErrInvalidTransition = errors.New("invalid order state transition")

// ErrStockUnderflow signals a defect: a counter was decremented at zero.
var ErrStockUnderflow = errors.New("stock would become negative")

var ErrDuplicateID = errors.New("duplicate identifier")

// Entity names the kind of record a lookup failed for.
type Entity string

const (
	EntityProduct  Entity = "product"
	EntityCustomer Entity = "customer"
	EntityOrder    Entity = "order"
	EntityCartItem Entity = "cart item"
)

// NotFoundError reports a failed identifier lookup.
type NotFoundError struct {
	Entity Entity
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFound builds a NotFoundError for the given entity kind.
func NotFound(entity Entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is a lookup failure for the given entity kind.
func IsNotFound(err error, entity Entity) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Entity == entity
}

// InvalidOptionsError reports an options string the product variant's grammar rejects.
type InvalidOptionsError struct {
	ProductID   string
	ProductName string
	Options     string
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("product %s (%s): invalid options %q", e.ProductID, e.ProductName, e.Options)
}

func (e *InvalidOptionsError) Unwrap() error { return ErrInvalidOptions }

// NoStockError reports that the requested unit is unavailable.
type NoStockError struct {
	ProductID   string
	ProductName string
	Options     string
}

func (e *NoStockError) Error() string {
	if e.Options == "" {
		return fmt.Sprintf("product %s (%s) is out of stock", e.ProductID, e.ProductName)
	}
	return fmt.Sprintf("product %s (%s) is out of stock for %q", e.ProductID, e.ProductName, e.Options)
}

func (e *NoStockError) Unwrap() error { return ErrNoStock }

// InvalidRatingError reports a rating outside [1,5].
type InvalidRatingError struct {
	ProductID string
	Rating    int
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("product %s: rating %d is outside 1..5", e.ProductID, e.Rating)
}

func (e *InvalidRatingError) Unwrap() error { return ErrInvalidRating }
