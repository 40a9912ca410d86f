package domain

import (
	"fmt"
	"strings"
)

// BookFormat is the edition a book order selects.
type BookFormat string

const (
	FormatPaperback BookFormat = "Paperback"
	FormatHardcover BookFormat = "Hardcover"
	FormatEBook     BookFormat = "EBook"
)

var bookFormats = []BookFormat{FormatPaperback, FormatHardcover, FormatEBook}

// ParseBookFormat parses a book options string: exactly one format name, any case.
func ParseBookFormat(options string) (BookFormat, bool) {
	for _, f := range bookFormats {
		if strings.EqualFold(options, string(f)) {
			return f, true
		}
	}
	return "", false
}

// Color is a shoe color. Values are lower case.
type Color string

const (
	ColorBlack Color = "black"
	ColorBrown Color = "brown"
)

// Colors lists the shoe colors in display order.
var Colors = []Color{ColorBlack, ColorBrown}

// ParseColor resolves a color name, ignoring case.
func ParseColor(s string) (Color, bool) {
	for _, c := range Colors {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

const (
	MinShoeSize = 6
	MaxShoeSize = 10
	// ShoeSizes is the number of sizes stocked per color.
	ShoeSizes = MaxShoeSize - MinShoeSize + 1
)

// ShoeOptions is a parsed "<size> <color>" selection.
type ShoeOptions struct {
	Size  int
	Color Color
}

func (o ShoeOptions) String() string {
	return fmt.Sprintf("%d %s", o.Size, o.Color)
}

func (o ShoeOptions) index() int {
	return o.Size - MinShoeSize
}

// ParseShoeOptions parses "<size> <color>": two tokens separated by a single space, size one of
// 6..10 written as a plain integer, color black or brown in any case.
func ParseShoeOptions(options string) (ShoeOptions, bool) {
	tokens := strings.Split(options, " ")
	if len(tokens) != 2 {
		return ShoeOptions{}, false
	}
	size, ok := parseShoeSize(tokens[0])
	if !ok {
		return ShoeOptions{}, false
	}
	color, ok := ParseColor(tokens[1])
	if !ok {
		return ShoeOptions{}, false
	}
	return ShoeOptions{Size: size, Color: color}, true
}

func parseShoeSize(s string) (int, bool) {
	for size := MinShoeSize; size <= MaxShoeSize; size++ {
		if s == fmt.Sprint(size) {
			return size, true
		}
	}
	return 0, false
}
