// Package catalogfile reads the product catalog file.
//
// The file is a sequence of five-line records:
//
//	category
//	name
//	price
//	stock
//	info
//
// The stock line is a single count for general products, "<paperback> <hardcover>" for books and
// "black=<n6>,..,<n10> brown=<n6>,..,<n10>" for shoes. The info line holds "title:author:year" for
// books and is ignored otherwise. Shoes are CLOTHING records whose stock line contains '='.
package catalogfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/abgdnv/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

const linesPerRecord = 5

// ErrPartialRecord is returned when the file ends in the middle of a record.
var ErrPartialRecord = errors.New("incomplete catalog record")

// RecordError reports a malformed record by its 1-based position in the file.
type RecordError struct {
	Record int
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("catalog record %d: %v", e.Record, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// LoadFile reads and parses the catalog file at path.
func LoadFile(path string) ([]domain.ProductSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads catalog records from r. Every record is validated; the first bad one aborts the
// parse.
func Parse(r io.Reader) ([]domain.ProductSeed, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines)%linesPerRecord != 0 {
		return nil, &RecordError{Record: len(lines)/linesPerRecord + 1, Err: ErrPartialRecord}
	}

	seeds := make([]domain.ProductSeed, 0, len(lines)/linesPerRecord)
	for i := 0; i < len(lines); i += linesPerRecord {
		record := i/linesPerRecord + 1
		seed, err := parseRecord(lines[i : i+linesPerRecord])
		if err != nil {
			return nil, &RecordError{Record: record, Err: err}
		}
		if err := seed.Validate(); err != nil {
			return nil, &RecordError{Record: record, Err: err}
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

// readLines returns the lines of r without the trailing blank lines. A blank info line that
// completes the last record is kept.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	n := len(lines)
	for n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		n--
	}
	if rem := n % linesPerRecord; rem != 0 && n+linesPerRecord-rem <= len(lines) {
		n += linesPerRecord - rem
	}
	return lines[:n], nil
}

func parseRecord(lines []string) (domain.ProductSeed, error) {
	category, err := domain.ParseCategory(lines[0])
	if err != nil {
		return domain.ProductSeed{}, err
	}
	price, err := decimal.NewFromString(strings.TrimSpace(lines[2]))
	if err != nil {
		return domain.ProductSeed{}, fmt.Errorf("invalid price %q: %w", lines[2], err)
	}
	seed := domain.ProductSeed{
		Category: category,
		Name:     strings.TrimSpace(lines[1]),
		Price:    price,
	}
	stock := strings.TrimSpace(lines[3])

	switch {
	case category == domain.CategoryBooks:
		seed.Kind = domain.KindBook
		err = parseBook(&seed, stock, strings.TrimSpace(lines[4]))
	case category == domain.CategoryClothing && strings.Contains(stock, "="):
		seed.Kind = domain.KindShoes
		seed.ShoeStock, err = parseShoeStock(stock)
	default:
		seed.Kind = domain.KindGeneral
		seed.Stock, err = parseCount(stock)
	}
	if err != nil {
		return domain.ProductSeed{}, err
	}
	return seed, nil
}

func parseBook(seed *domain.ProductSeed, stock, info string) error {
	counts := strings.Fields(stock)
	if len(counts) != 2 {
		return fmt.Errorf("book stock %q: want \"<paperback> <hardcover>\"", stock)
	}
	var err error
	if seed.Paperback, err = parseCount(counts[0]); err != nil {
		return err
	}
	if seed.Hardcover, err = parseCount(counts[1]); err != nil {
		return err
	}

	parts := strings.Split(info, ":")
	if len(parts) != 3 {
		return fmt.Errorf("book info %q: want \"title:author:year\"", info)
	}
	seed.Title = strings.TrimSpace(parts[0])
	seed.Author = strings.TrimSpace(parts[1])
	if seed.Year, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
		return fmt.Errorf("book year %q: %w", parts[2], err)
	}
	return nil
}

func parseShoeStock(stock string) (map[domain.Color]domain.ShoeStock, error) {
	out := make(map[domain.Color]domain.ShoeStock)
	for _, field := range strings.Fields(stock) {
		name, list, ok := strings.Cut(field, "=")
		if !ok {
			return nil, fmt.Errorf("shoe stock %q: want \"<color>=<counts>\"", field)
		}
		color, ok := domain.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("shoe stock: unknown color %q", name)
		}
		if _, dup := out[color]; dup {
			return nil, fmt.Errorf("shoe stock: color %s listed twice", color)
		}
		counts := strings.Split(list, ",")
		if len(counts) != domain.ShoeSizes {
			return nil, fmt.Errorf("shoe stock %s: want %d counts, got %d", color, domain.ShoeSizes, len(counts))
		}
		var sizes domain.ShoeStock
		for i, c := range counts {
			n, err := parseCount(c)
			if err != nil {
				return nil, err
			}
			sizes[i] = n
		}
		out[color] = sizes
	}
	return out, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid stock count %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative stock count %d", n)
	}
	return n, nil
}
