package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ShoeStock holds the units per size for one color, index 0 being size 6.
type ShoeStock [ShoeSizes]int

// Shoes is a clothing product stocked per color and size.
type Shoes struct {
	base
	stock map[Color]*ShoeStock
}

// NewShoes creates shoes listed under CategoryClothing. Colors missing from stock are stocked
// at zero.
func NewShoes(id, name string, price decimal.Decimal, stock map[Color]ShoeStock) (*Shoes, error) {
	s := &Shoes{
		base:  base{id: id, name: name, price: price, category: CategoryClothing},
		stock: make(map[Color]*ShoeStock, len(Colors)),
	}
	for _, c := range Colors {
		s.stock[c] = &ShoeStock{}
	}
	normalized, err := normalizeShoeStock(stock)
	if err != nil {
		return nil, fmt.Errorf("shoes %s: %w", id, err)
	}
	for color, counts := range normalized {
		*s.stock[color] = counts
	}
	return s, nil
}

// normalizeShoeStock keys the stock by canonical color. Color names match case-insensitively, so
// a color may appear only once however it is spelled.
func normalizeShoeStock(stock map[Color]ShoeStock) (map[Color]ShoeStock, error) {
	out := make(map[Color]ShoeStock, len(stock))
	for name, counts := range stock {
		color, ok := ParseColor(string(name))
		if !ok {
			return nil, fmt.Errorf("unknown color %q", name)
		}
		if _, dup := out[color]; dup {
			return nil, fmt.Errorf("color %s listed twice", color)
		}
		for i, n := range counts {
			if n < 0 {
				return nil, fmt.Errorf("negative stock %d for size %d %s", n, i+MinShoeSize, color)
			}
		}
		out[color] = counts
	}
	return out, nil
}

func (s *Shoes) Kind() Kind { return KindShoes }

// Stock returns the units on hand for a size and color, zero for unknown selections.
func (s *Shoes) Stock(size int, color Color) int {
	if size < MinShoeSize || size > MaxShoeSize {
		return 0
	}
	counts, ok := s.stock[color]
	if !ok {
		return 0
	}
	return counts[size-MinShoeSize]
}

// StockByColor returns a copy of the per-size counts of one color.
func (s *Shoes) StockByColor(color Color) ShoeStock {
	if counts, ok := s.stock[color]; ok {
		return *counts
	}
	return ShoeStock{}
}

func (s *Shoes) ValidOptions(options string) bool {
	_, ok := ParseShoeOptions(options)
	return ok
}

func (s *Shoes) HasStock(options string) bool {
	opt, ok := ParseShoeOptions(options)
	if !ok {
		return false
	}
	return s.stock[opt.Color][opt.index()] > 0
}

func (s *Shoes) ReduceStock(options string) error {
	opt, ok := ParseShoeOptions(options)
	if !ok {
		return s.invalidOptions(options)
	}
	counts := s.stock[opt.Color]
	if counts[opt.index()] == 0 {
		return s.underflow(options)
	}
	counts[opt.index()]--
	return nil
}

func (s *Shoes) ReturnStock(options string) error {
	opt, ok := ParseShoeOptions(options)
	if !ok {
		return s.invalidOptions(options)
	}
	s.stock[opt.Color][opt.index()]++
	return nil
}
