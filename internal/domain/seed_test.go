package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ProductSeed_Validate(t *testing.T) {
	price := decimal.RequireFromString("10.00")
	testCases := []struct {
		name    string
		seed    ProductSeed
		wantErr bool
	}{
		{
			name: "Success - general",
			seed: ProductSeed{Kind: KindGeneral, Category: CategoryComputers, Name: "Laptop", Price: price, Stock: 3},
		},
		{
			name: "Success - book",
			seed: ProductSeed{Kind: KindBook, Category: CategoryBooks, Name: "Book", Price: price, Title: "T", Author: "A", Year: 1999},
		},
		{
			name: "Success - shoes",
			seed: ProductSeed{Kind: KindShoes, Category: CategoryClothing, Name: "Boots", Price: price,
				ShoeStock: map[Color]ShoeStock{ColorBlack: {1, 1, 1, 1, 1}}},
		},
		{
			name:    "Error - missing name",
			seed:    ProductSeed{Kind: KindGeneral, Category: CategoryGeneral, Price: price},
			wantErr: true,
		},
		{
			name:    "Error - unknown kind",
			seed:    ProductSeed{Kind: "toy", Category: CategoryGeneral, Name: "x", Price: price},
			wantErr: true,
		},
		{
			name:    "Error - negative stock",
			seed:    ProductSeed{Kind: KindGeneral, Category: CategoryGeneral, Name: "x", Price: price, Stock: -1},
			wantErr: true,
		},
		{
			name:    "Error - negative price",
			seed:    ProductSeed{Kind: KindGeneral, Category: CategoryGeneral, Name: "x", Price: decimal.RequireFromString("-1")},
			wantErr: true,
		},
		{
			name:    "Error - book without author",
			seed:    ProductSeed{Kind: KindBook, Category: CategoryBooks, Name: "Book", Price: price, Title: "T"},
			wantErr: true,
		},
		{
			name:    "Error - book outside BOOKS",
			seed:    ProductSeed{Kind: KindBook, Category: CategoryGeneral, Name: "Book", Price: price, Title: "T", Author: "A"},
			wantErr: true,
		},
		{
			name: "Success - shoes with mixed-case color",
			seed: ProductSeed{Kind: KindShoes, Category: CategoryClothing, Name: "Boots", Price: price,
				ShoeStock: map[Color]ShoeStock{"Brown": {1, 0, 0, 0, 0}}},
		},
		{
			name: "Error - shoes with unknown color",
			seed: ProductSeed{Kind: KindShoes, Category: CategoryClothing, Name: "Boots", Price: price,
				ShoeStock: map[Color]ShoeStock{"red": {1, 0, 0, 0, 0}}},
			wantErr: true,
		},
		{
			name: "Error - shoes with a color listed twice",
			seed: ProductSeed{Kind: KindShoes, Category: CategoryClothing, Name: "Boots", Price: price,
				ShoeStock: map[Color]ShoeStock{"black": {1, 0, 0, 0, 0}, "BLACK": {0, 1, 0, 0, 0}}},
			wantErr: true,
		},
		{
			name: "Error - shoes with negative count",
			seed: ProductSeed{Kind: KindShoes, Category: CategoryClothing, Name: "Boots", Price: price,
				ShoeStock: map[Color]ShoeStock{ColorBlack: {0, -1, 0, 0, 0}}},
			wantErr: true,
		},
		{
			name:    "Error - shoes without stock",
			seed:    ProductSeed{Kind: KindShoes, Category: CategoryClothing, Name: "Boots", Price: price},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			err := tc.seed.Validate()
			// then
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_NewProduct_Dispatch(t *testing.T) {
	// given
	seed := ProductSeed{Kind: KindBook, Category: CategoryBooks, Name: "Book", Price: decimal.RequireFromString("9.99"),
		Paperback: 2, Hardcover: 1, Title: "T", Author: "A", Year: 2001}

	// when
	p, err := NewProduct("705", seed)

	// then
	require.NoError(t, err)
	book, ok := p.(*Book)
	require.True(t, ok)
	assert.Equal(t, "705", book.ID())
	assert.Equal(t, 2, book.Stock(FormatPaperback))
	assert.Equal(t, "A", book.Author())
	assert.True(t, book.Price().Equal(decimal.RequireFromString("9.99")))
}
