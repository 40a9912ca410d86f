package store

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/abgdnv/storefront/internal/domain"
	apperrors "github.com/abgdnv/storefront/internal/errors"
)

// productsInMemory implements ProductStore using an in-memory map.
type productsInMemory struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

// NewInMemoryProductStore creates a new instance of ProductStore
func NewInMemoryProductStore() ProductStore {
	return &productsInMemory{
		products: make(map[string]domain.Product),
	}
}

// Save adds a product.
func (s *productsInMemory) Save(product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.ID()]; exists {
		return fmt.Errorf("product %s: %w", product.ID(), apperrors.ErrDuplicateID)
	}
	s.products[product.ID()] = product
	return nil
}

// FindByID retrieves a product by its ID.
func (s *productsInMemory) FindByID(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.EntityProduct, id)
	}
	return p, nil
}

// FindAll retrieves all products.
func (s *productsInMemory) FindAll() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := slices.Collect(maps.Values(s.products))
	slices.SortFunc(list, func(a, b domain.Product) int {
		return CompareIDs(a.ID(), b.ID())
	})
	return list
}

// customersInMemory implements CustomerStore with a registration-ordered slice and an index.
type customersInMemory struct {
	mu        sync.RWMutex
	customers []*domain.Customer
	byID      map[string]*domain.Customer
}

// NewInMemoryCustomerStore creates a new instance of CustomerStore
func NewInMemoryCustomerStore() CustomerStore {
	return &customersInMemory{
		byID: make(map[string]*domain.Customer),
	}
}

func (s *customersInMemory) Save(customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[customer.ID]; exists {
		return fmt.Errorf("customer %s: %w", customer.ID, apperrors.ErrDuplicateID)
	}
	s.customers = append(s.customers, customer)
	s.byID[customer.ID] = customer
	return nil
}

func (s *customersInMemory) FindByID(id string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.EntityCustomer, id)
	}
	return c, nil
}

func (s *customersInMemory) FindAll() []*domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.customers)
}

// ordersInMemory implements OrderStore using one map per lifecycle state.
type ordersInMemory struct {
	mu        sync.RWMutex
	active    map[string]*domain.ProductOrder
	shipped   map[string]*domain.ProductOrder
	cancelled map[string]*domain.ProductOrder
}

// NewInMemoryOrderStore creates a new instance of OrderStore
func NewInMemoryOrderStore() OrderStore {
	return &ordersInMemory{
		active:    make(map[string]*domain.ProductOrder),
		shipped:   make(map[string]*domain.ProductOrder),
		cancelled: make(map[string]*domain.ProductOrder),
	}
}

func (s *ordersInMemory) SaveActive(order *domain.ProductOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.known(order.ID) {
		return fmt.Errorf("order %s: %w", order.ID, apperrors.ErrDuplicateID)
	}
	s.active[order.ID] = order
	return nil
}

func (s *ordersInMemory) FindActive(id string) (*domain.ProductOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.active[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.EntityOrder, id)
	}
	return o, nil
}

func (s *ordersInMemory) RemoveActive(id string) (*domain.ProductOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.active[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.EntityOrder, id)
	}
	delete(s.active, id)
	return o, nil
}

func (s *ordersInMemory) SaveShipped(order *domain.ProductOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.known(order.ID) {
		return fmt.Errorf("order %s: %w", order.ID, apperrors.ErrDuplicateID)
	}
	s.shipped[order.ID] = order
	return nil
}

func (s *ordersInMemory) SaveCancelled(order *domain.ProductOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.known(order.ID) {
		return fmt.Errorf("order %s: %w", order.ID, apperrors.ErrDuplicateID)
	}
	s.cancelled[order.ID] = order
	return nil
}

func (s *ordersInMemory) FindAllActive() []*domain.ProductOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedOrders(s.active)
}

func (s *ordersInMemory) FindAllShipped() []*domain.ProductOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedOrders(s.shipped)
}

func (s *ordersInMemory) FindAllCancelled() []*domain.ProductOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedOrders(s.cancelled)
}

// known must be called with the lock held.
func (s *ordersInMemory) known(id string) bool {
	_, a := s.active[id]
	_, sh := s.shipped[id]
	_, c := s.cancelled[id]
	return a || sh || c
}

func sortedOrders(m map[string]*domain.ProductOrder) []*domain.ProductOrder {
	list := slices.Collect(maps.Values(m))
	slices.SortFunc(list, func(a, b *domain.ProductOrder) int {
		return CompareIDs(a.ID, b.ID)
	})
	return list
}
