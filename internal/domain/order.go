package domain

import (
	"fmt"

	apperrors "github.com/abgdnv/storefront/internal/errors"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusActive    OrderStatus = "ACTIVE"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusShipped   OrderStatus = "SHIPPED"
)

// ProductOrder is one unit of one product ordered by one customer.
// Product and Customer are shared references, not copies.
type ProductOrder struct {
	ID       string
	Product  Product
	Customer *Customer
	Options  string
	status   OrderStatus
}

// NewProductOrder creates an ACTIVE order.
func NewProductOrder(id string, product Product, customer *Customer, options string) *ProductOrder {
	return &ProductOrder{
		ID:       id,
		Product:  product,
		Customer: customer,
		Options:  options,
		status:   StatusActive,
	}
}

// Status returns the lifecycle state.
func (o *ProductOrder) Status() OrderStatus {
	return o.status
}

// Cancel moves an ACTIVE order to CANCELLED.
func (o *ProductOrder) Cancel() error {
	return o.transition(StatusCancelled)
}

// Ship moves an ACTIVE order to SHIPPED.
func (o *ProductOrder) Ship() error {
	return o.transition(StatusShipped)
}

// BelongsTo reports whether the order was placed by the customer.
func (o *ProductOrder) BelongsTo(customerID string) bool {
	return o.Customer != nil && o.Customer.ID == customerID
}

func (o *ProductOrder) transition(to OrderStatus) error {
	if o.status != StatusActive {
		return fmt.Errorf("order %s: %s -> %s: %w", o.ID, o.status, to, apperrors.ErrInvalidTransition)
	}
	o.status = to
	return nil
}
