package domain

import (
	apperrors "github.com/abgdnv/storefront/internal/errors"
)

// Customer is a registered buyer. The customer owns exactly one cart.
type Customer struct {
	ID      string
	Name    string
	Address string
	cart    *Cart
}

// NewCustomer creates a customer with an empty cart.
func NewCustomer(id, name, address string) *Customer {
	return &Customer{ID: id, Name: name, Address: address, cart: &Cart{}}
}

// Cart returns the customer's cart.
func (c *Customer) Cart() *Cart {
	return c.cart
}

// CartItem is a product selection waiting in a cart. The product is shared with the catalog.
type CartItem struct {
	Product Product
	Options string
}

// Cart is an ordered list of cart items. It does no validation of its own.
type Cart struct {
	items []CartItem
}

// AddItem appends an item.
func (c *Cart) AddItem(product Product, options string) {
	c.items = append(c.items, CartItem{Product: product, Options: options})
}

// RemoveItem removes the first item for the product.
// Returns a cart item NotFoundError if the cart holds no such product.
func (c *Cart) RemoveItem(productID string) error {
	for i, item := range c.items {
		if item.Product.ID() == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound(apperrors.EntityCartItem, productID)
}

// Items returns a copy of the items in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Cart) Len() int {
	return len(c.items)
}

// Front returns the oldest item without removing it.
func (c *Cart) Front() (CartItem, bool) {
	if len(c.items) == 0 {
		return CartItem{}, false
	}
	return c.items[0], true
}

// DropFront removes the oldest item. It is a no-op on an empty cart.
func (c *Cart) DropFront() {
	if len(c.items) > 0 {
		c.items = c.items[1:]
	}
}
