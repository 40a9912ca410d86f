package service

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/abgdnv/storefront/internal/domain"
	"github.com/abgdnv/storefront/internal/store"
)

// OrderHistory is a customer's orders grouped by lifecycle state.
// Cancelled is only filled when the policy includes cancelled orders.
type OrderHistory struct {
	CustomerID string
	Active     []*domain.ProductOrder
	Shipped    []*domain.ProductOrder
	Cancelled  []*domain.ProductOrder
}

// RatingHistogram counts the ratings of one product per star value.
type RatingHistogram struct {
	ProductID   string
	ProductName string
	counts      [maxRating]int
}

// Count returns the number of ratings with the given stars, zero outside 1..5.
func (h *RatingHistogram) Count(stars int) int {
	if stars < minRating || stars > maxRating {
		return 0
	}
	return h.counts[stars-1]
}

// Total returns the number of ratings.
func (h *RatingHistogram) Total() int {
	total := 0
	for _, n := range h.counts {
		total += n
	}
	return total
}

// Average returns the mean star value, zero without ratings.
func (h *RatingHistogram) Average() float64 {
	total, sum := 0, 0
	for i, n := range h.counts {
		total += n
		sum += n * (i + 1)
	}
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total)
}

// CategoryRating is one line of the category rating report.
type CategoryRating struct {
	ProductID   string
	ProductName string
	Average     float64
	Ratings     int
}

// StatEntry is one line of the order statistics report.
type StatEntry struct {
	ProductID   string
	ProductName string
	Count       int
}

func (s *Service) Product(_ context.Context, productID string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.FindByID(productID)
}

// ProductKind returns the variant of a product.
func (s *Service) ProductKind(_ context.Context, productID string) (domain.Kind, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.products.FindByID(productID)
	if err != nil {
		return "", err
	}
	return product.Kind(), nil
}

func (s *Service) Customer(_ context.Context, customerID string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customers.FindByID(customerID)
}

func (s *Service) ActiveOrder(_ context.Context, orderID string) (*domain.ProductOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.FindActive(orderID)
}

// Products lists all products in identifier order.
func (s *Service) Products(_ context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.FindAll()
}

// ProductsByKind lists the products of one variant in identifier order.
func (s *Service) ProductsByKind(_ context.Context, kind domain.Kind) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []domain.Product
	for _, p := range s.products.FindAll() {
		if p.Kind() == kind {
			list = append(list, p)
		}
	}
	return list
}

// ProductsByPrice lists products by ascending price; equal prices keep identifier order.
func (s *Service) ProductsByPrice(_ context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.products.FindAll()
	slices.SortStableFunc(list, func(a, b domain.Product) int {
		return a.Price().Cmp(b.Price())
	})
	return list
}

// ProductsByName lists products alphabetically; equal names keep identifier order.
func (s *Service) ProductsByName(_ context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.products.FindAll()
	slices.SortStableFunc(list, func(a, b domain.Product) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return list
}

// BooksByAuthor lists the books of an author by ascending publication year.
func (s *Service) BooksByAuthor(_ context.Context, author string) []*domain.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	var books []*domain.Book
	for _, p := range s.products.FindAll() {
		if b, ok := p.(*domain.Book); ok && b.Author() == author {
			books = append(books, b)
		}
	}
	slices.SortStableFunc(books, func(a, b *domain.Book) int {
		return cmp.Compare(a.Year(), b.Year())
	})
	return books
}

// Customers lists customers in registration order.
func (s *Service) Customers(_ context.Context) []*domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customers.FindAll()
}

// CustomersByName lists customers alphabetically without reordering the registry.
func (s *Service) CustomersByName(_ context.Context) []*domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.customers.FindAll()
	slices.SortStableFunc(list, func(a, b *domain.Customer) int {
		return strings.Compare(a.Name, b.Name)
	})
	return list
}

func (s *Service) ActiveOrders(_ context.Context) []*domain.ProductOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.FindAllActive()
}

func (s *Service) ShippedOrders(_ context.Context) []*domain.ProductOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.FindAllShipped()
}

// OrderHistory returns a customer's active and shipped orders, plus cancelled ones when the
// policy says so.
func (s *Service) OrderHistory(_ context.Context, customerID string) (*OrderHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.customers.FindByID(customerID); err != nil {
		return nil, err
	}
	history := &OrderHistory{
		CustomerID: customerID,
		Active:     ordersOf(s.orders.FindAllActive(), customerID),
		Shipped:    ordersOf(s.orders.FindAllShipped(), customerID),
	}
	if s.policy.HistoryIncludesCancelled {
		history.Cancelled = ordersOf(s.orders.FindAllCancelled(), customerID)
	}
	return history, nil
}

// RatingHistogram counts a product's ratings per star value.
func (s *Service) RatingHistogram(_ context.Context, productID string) (*RatingHistogram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, err
	}
	return &RatingHistogram{
		ProductID:   product.ID(),
		ProductName: product.Name(),
		counts:      s.ratings.histogram(productID),
	}, nil
}

// RatingsByCategory lists the rated products of a category whose average rating is at least
// minAverage, in identifier order.
func (s *Service) RatingsByCategory(_ context.Context, category domain.Category, minAverage float64) []CategoryRating {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report []CategoryRating
	for _, p := range s.products.FindAll() {
		if p.Category() != category {
			continue
		}
		h := RatingHistogram{counts: s.ratings.histogram(p.ID())}
		if h.Total() == 0 {
			continue
		}
		if avg := h.Average(); avg >= minAverage {
			report = append(report, CategoryRating{
				ProductID:   p.ID(),
				ProductName: p.Name(),
				Average:     avg,
				Ratings:     h.Total(),
			})
		}
	}
	return report
}

// Stats lists order counts per ordered product, most ordered first; ties by identifier.
func (s *Service) Stats(_ context.Context) []StatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := make([]StatEntry, 0, len(s.stats.counts))
	for id, count := range s.stats.counts {
		entry := StatEntry{ProductID: id, Count: count}
		if p, err := s.products.FindByID(id); err == nil {
			entry.ProductName = p.Name()
		}
		report = append(report, entry)
	}
	slices.SortFunc(report, func(a, b StatEntry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return store.CompareIDs(a.ProductID, b.ProductID)
	})
	return report
}

func ordersOf(orders []*domain.ProductOrder, customerID string) []*domain.ProductOrder {
	var out []*domain.ProductOrder
	for _, o := range orders {
		if o.BelongsTo(customerID) {
			out = append(out, o)
		}
	}
	return out
}
