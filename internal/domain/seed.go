package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// ProductSeed is a catalog record before an identifier is assigned.
type ProductSeed struct {
	Kind     Kind            `validate:"required,oneof=general book shoes"`
	Category Category        `validate:"required,oneof=COMPUTERS FURNITURE CLOTHING BOOKS GENERAL"`
	Name     string          `validate:"required,max=100"`
	Price    decimal.Decimal `validate:"-"`

	// general
	Stock int `validate:"min=0"`

	// book
	Paperback int    `validate:"min=0"`
	Hardcover int    `validate:"min=0"`
	Title     string `validate:"required_if=Kind book"`
	Author    string `validate:"required_if=Kind book"`
	Year      int

	// shoes
	ShoeStock map[Color]ShoeStock `validate:"required_if=Kind shoes"`
}

// Validate checks the record's fields against its kind.
func (s ProductSeed) Validate() error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, fieldErr.Field()+" failed on rule: "+fieldErr.Tag())
			}
			return fmt.Errorf("invalid product seed %q: %s", s.Name, strings.Join(fields, "; "))
		}
		return fmt.Errorf("invalid product seed %q: %w", s.Name, err)
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("invalid product seed %q: negative price %s", s.Name, s.Price)
	}
	if s.Kind == KindBook && s.Category != CategoryBooks {
		return fmt.Errorf("invalid product seed %q: books must be listed under %s", s.Name, CategoryBooks)
	}
	if s.Kind == KindShoes && s.Category != CategoryClothing {
		return fmt.Errorf("invalid product seed %q: shoes must be listed under %s", s.Name, CategoryClothing)
	}
	if s.Kind == KindShoes {
		if _, err := normalizeShoeStock(s.ShoeStock); err != nil {
			return fmt.Errorf("invalid product seed %q: %w", s.Name, err)
		}
	}
	return nil
}

// NewProduct builds the product variant described by the seed under the given identifier.
func NewProduct(id string, seed ProductSeed) (Product, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	switch seed.Kind {
	case KindBook:
		return NewBook(id, seed.Name, seed.Price, seed.Paperback, seed.Hardcover, seed.Title, seed.Author, seed.Year)
	case KindShoes:
		return NewShoes(id, seed.Name, seed.Price, seed.ShoeStock)
	default:
		return NewGeneral(id, seed.Name, seed.Price, seed.Category, seed.Stock)
	}
}

// CustomerSeed is a customer record before an identifier is assigned.
type CustomerSeed struct {
	Name    string `koanf:"name" validate:"required"`
	Address string `koanf:"address" validate:"required"`
}
