// Package store provides storage interfaces for catalog entities.
package store

import (
	"cmp"
	"strings"

	"github.com/abgdnv/storefront/internal/domain"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// Save adds a product under its identifier.
	// Returns ErrDuplicateID if the identifier is taken.
	Save(product domain.Product) error

	// FindByID retrieves a single product by its identifier.
	// Returns a product NotFoundError if no product exists with the given ID.
	FindByID(id string) (domain.Product, error)

	// FindAll returns all products in identifier order.
	// Returns an empty slice if no products exist.
	FindAll() []domain.Product
}

// CustomerStore is an interface for customer storage operations.
type CustomerStore interface {
	// Save registers a customer under its identifier.
	// Returns ErrDuplicateID if the identifier is taken.
	Save(customer *domain.Customer) error

	// FindByID retrieves a customer by identifier.
	// Returns a customer NotFoundError if no customer exists with the given ID.
	FindByID(id string) (*domain.Customer, error)

	// FindAll returns all customers in registration order.
	FindAll() []*domain.Customer
}

// OrderStore keeps orders in three disjoint collections by lifecycle state.
type OrderStore interface {
	// SaveActive records a new ACTIVE order.
	// Returns ErrDuplicateID if the identifier is taken in any collection.
	SaveActive(order *domain.ProductOrder) error

	// FindActive retrieves an active order.
	// Returns an order NotFoundError if the order is not active.
	FindActive(id string) (*domain.ProductOrder, error)

	// RemoveActive removes and returns an active order.
	// Returns an order NotFoundError if the order is not active.
	RemoveActive(id string) (*domain.ProductOrder, error)

	// SaveShipped records an order that left the active collection as SHIPPED.
	SaveShipped(order *domain.ProductOrder) error

	// SaveCancelled records an order that left the active collection as CANCELLED.
	SaveCancelled(order *domain.ProductOrder) error

	// FindAllActive returns active orders in identifier order.
	FindAllActive() []*domain.ProductOrder

	// FindAllShipped returns shipped orders in identifier order.
	FindAllShipped() []*domain.ProductOrder

	// FindAllCancelled returns cancelled orders in identifier order.
	FindAllCancelled() []*domain.ProductOrder
}

// CompareIDs orders counter-generated identifiers numerically: a shorter identifier sorts first,
// equal lengths compare lexicographically.
func CompareIDs(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
