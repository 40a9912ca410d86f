// Package domain holds the catalog entities: products and their variants, customers, carts and
// orders.
package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/shopspring/decimal"
)

// Category is the merchandising category a product is listed under.
type Category string

const (
	CategoryComputers Category = "COMPUTERS"
	CategoryFurniture Category = "FURNITURE"
	CategoryClothing  Category = "CLOTHING"
	CategoryBooks     Category = "BOOKS"
	CategoryGeneral   Category = "GENERAL"
)

var categories = []Category{CategoryComputers, CategoryFurniture, CategoryClothing, CategoryBooks, CategoryGeneral}

// ParseCategory resolves a category name, ignoring case and surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	name := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, c := range categories {
		if c == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Kind is the product variant. The set is closed.
type Kind string

const (
	KindGeneral Kind = "general"
	KindBook    Kind = "book"
	KindShoes   Kind = "shoes"
)

// Product is the stock contract every variant honors. Each variant owns its stock shape and the
// grammar of the options string that selects a stock counter.
type Product interface {
	ID() string
	Name() string
	Price() decimal.Decimal
	Category() Category
	Kind() Kind

	// ValidOptions reports whether options parse under the variant's grammar.
	ValidOptions(options string) bool
	// HasStock reports whether the counter selected by options is positive.
	// Unparsable options have no stock.
	HasStock(options string) bool
	// ReduceStock takes one unit from the counter selected by options.
	ReduceStock(options string) error
	// ReturnStock puts one unit back on the counter selected by options.
	ReturnStock(options string) error
}

type base struct {
	id       string
	name     string
	price    decimal.Decimal
	category Category
}

func (b *base) ID() string             { return b.id }
func (b *base) Name() string           { return b.name }
func (b *base) Price() decimal.Decimal { return b.price }
func (b *base) Category() Category     { return b.category }

func (b *base) invalidOptions(options string) error {
	return &apperrors.InvalidOptionsError{ProductID: b.id, ProductName: b.name, Options: options}
}

func (b *base) underflow(options string) error {
	return fmt.Errorf("product %s options %q: %w", b.id, options, apperrors.ErrStockUnderflow)
}

// General is a product with a single stock counter and no options.
type General struct {
	base
	stock int
}

// NewGeneral creates a general product. Stock must not be negative.
func NewGeneral(id, name string, price decimal.Decimal, category Category, stock int) (*General, error) {
	if stock < 0 {
		return nil, fmt.Errorf("product %s: negative stock %d", id, stock)
	}
	return &General{
		base:  base{id: id, name: name, price: price, category: category},
		stock: stock,
	}, nil
}

func (g *General) Kind() Kind { return KindGeneral }

// Stock returns the units on hand.
func (g *General) Stock() int { return g.stock }

func (g *General) ValidOptions(options string) bool {
	return options == ""
}

func (g *General) HasStock(options string) bool {
	return g.ValidOptions(options) && g.stock > 0
}

func (g *General) ReduceStock(options string) error {
	if !g.ValidOptions(options) {
		return g.invalidOptions(options)
	}
	if g.stock == 0 {
		return g.underflow(options)
	}
	g.stock--
	return nil
}

func (g *General) ReturnStock(options string) error {
	if !g.ValidOptions(options) {
		return g.invalidOptions(options)
	}
	g.stock++
	return nil
}
