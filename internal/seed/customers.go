// Package seed holds the records the storefront registers at startup when the configuration
// provides none.
package seed

import "github.com/abgdnv/storefront/internal/domain"

// DefaultCustomers returns the customers registered at startup, in registration order.
func DefaultCustomers() []domain.CustomerSeed {
	return []domain.CustomerSeed{
		{Name: "Inigo Montoya", Address: "1 SwordMaker Lane, Florin"},
		{Name: "Prince Humperdinck", Address: "The Castle, Florin"},
		{Name: "Andy Dufresne", Address: "Shawshank Prison, Maine"},
		{Name: "Ferris Bueller", Address: "4160 Country Club Drive, Long Beach"},
	}
}
