package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Book is a product stocked as separate paperback and hardcover counters. EBooks are always
// available and never touch a counter.
type Book struct {
	base
	paperback int
	hardcover int
	title     string
	author    string
	year      int
}

// NewBook creates a book listed under CategoryBooks.
func NewBook(id, name string, price decimal.Decimal, paperback, hardcover int, title, author string, year int) (*Book, error) {
	if paperback < 0 || hardcover < 0 {
		return nil, fmt.Errorf("book %s: negative stock (paperback=%d, hardcover=%d)", id, paperback, hardcover)
	}
	return &Book{
		base:      base{id: id, name: name, price: price, category: CategoryBooks},
		paperback: paperback,
		hardcover: hardcover,
		title:     title,
		author:    author,
		year:      year,
	}, nil
}

func (b *Book) Kind() Kind     { return KindBook }
func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) Year() int      { return b.year }

// Stock returns the units on hand for a format; -1 means unlimited.
func (b *Book) Stock(format BookFormat) int {
	switch format {
	case FormatPaperback:
		return b.paperback
	case FormatHardcover:
		return b.hardcover
	case FormatEBook:
		return -1
	}
	return 0
}

func (b *Book) ValidOptions(options string) bool {
	_, ok := ParseBookFormat(options)
	return ok
}

func (b *Book) HasStock(options string) bool {
	format, ok := ParseBookFormat(options)
	if !ok {
		return false
	}
	if format == FormatEBook {
		return true
	}
	return *b.counter(format) > 0
}

func (b *Book) ReduceStock(options string) error {
	format, ok := ParseBookFormat(options)
	if !ok {
		return b.invalidOptions(options)
	}
	if format == FormatEBook {
		return nil
	}
	c := b.counter(format)
	if *c == 0 {
		return b.underflow(options)
	}
	*c--
	return nil
}

func (b *Book) ReturnStock(options string) error {
	format, ok := ParseBookFormat(options)
	if !ok {
		return b.invalidOptions(options)
	}
	if format == FormatEBook {
		return nil
	}
	*b.counter(format)++
	return nil
}

func (b *Book) counter(format BookFormat) *int {
	if format == FormatHardcover {
		return &b.hardcover
	}
	return &b.paperback
}
