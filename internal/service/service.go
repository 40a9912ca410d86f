// Package service provides the catalog and order orchestration: order placement, cancellation,
// shipping, carts, ratings and reports over the in-memory catalog.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/abgdnv/storefront/internal/domain"
	"github.com/abgdnv/storefront/internal/store"
	"github.com/abgdnv/storefront/pkg/messaging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Identifier sequences start at fixed offsets and are never reused.
const (
	firstOrderID    = 500
	firstCustomerID = 900
	firstProductID  = 700
)

// CatalogService defines the operations of the storefront.
// Every lookup is an exact identifier match; a failed lookup returns a NotFoundError.
type CatalogService interface {
	// LoadCatalog assigns identifiers to the seeds in order and adds the products.
	// No product is added if any seed is invalid.
	LoadCatalog(ctx context.Context, seeds []domain.ProductSeed) ([]string, error)

	// CreateCustomer registers a customer.
	// Returns ErrInvalidName or ErrInvalidAddress for empty fields.
	CreateCustomer(ctx context.Context, name, address string) (*domain.Customer, error)

	// OrderProduct places an order for one unit and returns the order ID.
	// Nothing changes unless every check passes.
	OrderProduct(ctx context.Context, productID, customerID, options string) (string, error)

	// CancelOrder cancels an active order.
	CancelOrder(ctx context.Context, orderID string) error

	// ShipOrder moves an active order to the shipped collection and returns it.
	ShipOrder(ctx context.Context, orderID string) (*domain.ProductOrder, error)

	// AddToCart validates a selection like OrderProduct and appends it to the customer's cart.
	// Stock is not reserved.
	AddToCart(ctx context.Context, productID, customerID, options string) error

	// RemoveFromCart removes the first cart item for the product.
	RemoveFromCart(ctx context.Context, productID, customerID string) error

	// CheckoutCart converts cart items into orders in insertion order and returns the new order
	// IDs. It stops at the first item without stock; items converted before it stay converted.
	CheckoutCart(ctx context.Context, customerID string) ([]string, error)

	// Cart returns the items in a customer's cart.
	Cart(ctx context.Context, customerID string) ([]domain.CartItem, error)

	// AddRating records a 1..5 star rating for a product.
	AddRating(ctx context.Context, productID string, rating int) error

	Product(ctx context.Context, productID string) (domain.Product, error)
	ProductKind(ctx context.Context, productID string) (domain.Kind, error)
	Customer(ctx context.Context, customerID string) (*domain.Customer, error)
	ActiveOrder(ctx context.Context, orderID string) (*domain.ProductOrder, error)

	Products(ctx context.Context) []domain.Product
	ProductsByKind(ctx context.Context, kind domain.Kind) []domain.Product
	ProductsByPrice(ctx context.Context) []domain.Product
	ProductsByName(ctx context.Context) []domain.Product
	BooksByAuthor(ctx context.Context, author string) []*domain.Book
	Customers(ctx context.Context) []*domain.Customer
	CustomersByName(ctx context.Context) []*domain.Customer
	ActiveOrders(ctx context.Context) []*domain.ProductOrder
	ShippedOrders(ctx context.Context) []*domain.ProductOrder
	OrderHistory(ctx context.Context, customerID string) (*OrderHistory, error)
	RatingHistogram(ctx context.Context, productID string) (*RatingHistogram, error)
	RatingsByCategory(ctx context.Context, category domain.Category, minAverage float64) []CategoryRating
	Stats(ctx context.Context) []StatEntry
}

// Policy holds the configurable order lifecycle behavior.
type Policy struct {
	// RestockOnCancel returns the unit of a cancelled order to stock.
	RestockOnCancel bool
	// HistoryIncludesCancelled lists cancelled orders in a customer's order history.
	HistoryIncludesCancelled bool
}

// Stores groups the storage backends the service works on.
type Stores struct {
	Products  store.ProductStore
	Customers store.CustomerStore
	Orders    store.OrderStore
}

// NewInMemoryStores creates empty in-memory stores.
func NewInMemoryStores() Stores {
	return Stores{
		Products:  store.NewInMemoryProductStore(),
		Customers: store.NewInMemoryCustomerStore(),
		Orders:    store.NewInMemoryOrderStore(),
	}
}

// Service implements CatalogService. All operations are serialized on one mutex, which
// linearizes identifier allocation and stock changes.
type Service struct {
	mu sync.Mutex

	products  store.ProductStore
	customers store.CustomerStore
	orders    store.OrderStore

	stats   *statsLedger
	ratings *ratingsLedger

	orderSeq    *sequence
	customerSeq *sequence
	productSeq  *sequence

	policy    Policy
	publisher messaging.Publisher
	logger    *slog.Logger
	tracer    trace.Tracer

	ordersPlaced    metric.Int64Counter
	ordersCancelled metric.Int64Counter
	ordersShipped   metric.Int64Counter
	cartCheckouts   metric.Int64Counter
}

var _ CatalogService = (*Service)(nil)

// NewService creates a new instance of Service over the provided stores.
func NewService(stores Stores, publisher messaging.Publisher, logger *slog.Logger, policy Policy) *Service {
	meter := otel.Meter("storefront")
	return &Service{
		products:        stores.Products,
		customers:       stores.Customers,
		orders:          stores.Orders,
		stats:           newStatsLedger(),
		ratings:         newRatingsLedger(),
		orderSeq:        newSequence(firstOrderID),
		customerSeq:     newSequence(firstCustomerID),
		productSeq:      newSequence(firstProductID),
		policy:          policy,
		publisher:       publisher,
		logger:          logger.With("component", "service"),
		tracer:          otel.Tracer("storefront/service"),
		ordersPlaced:    mustCounter(meter, "orders_placed", "Total number of placed orders"),
		ordersCancelled: mustCounter(meter, "orders_cancelled", "Total number of cancelled orders"),
		ordersShipped:   mustCounter(meter, "orders_shipped", "Total number of shipped orders"),
		cartCheckouts:   mustCounter(meter, "cart_checkouts", "Total number of cart checkouts"),
	}
}

func mustCounter(meter metric.Meter, name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		panic(fmt.Sprintf("failed to create %s counter: %v", name, err))
	}
	return counter
}

// startSpan opens a span for a service operation.
func (s *Service) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, op, trace.WithAttributes(attrs...))
}

// endSpan records the outcome of an operation on its span and closes it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *Service) publish(ctx context.Context, event messaging.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish event", "subject", event.Subject(), "error", err)
	}
}
