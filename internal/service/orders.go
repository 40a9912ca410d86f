package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abgdnv/storefront/internal/domain"
	apperrors "github.com/abgdnv/storefront/internal/errors"
	"github.com/abgdnv/storefront/pkg/messaging/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LoadCatalog assigns identifiers to the seeds in order and adds the products.
func (s *Service) LoadCatalog(ctx context.Context, seeds []domain.ProductSeed) (ids []string, err error) {
	ctx, span := s.startSpan(ctx, "LoadCatalog", attribute.Int("seeds", len(seeds)))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, seed := range seeds {
		if err := seed.Validate(); err != nil {
			return nil, fmt.Errorf("catalog record %d: %w", i+1, err)
		}
	}

	// Build every product before saving any, so a failure leaves the catalog untouched.
	mark := s.productSeq.mark()
	products := make([]domain.Product, 0, len(seeds))
	for _, seed := range seeds {
		id := s.productSeq.Next()
		product, err := domain.NewProduct(id, seed)
		if err != nil {
			s.productSeq.rewind(mark)
			return nil, fmt.Errorf("failed to create product %s: %w", id, err)
		}
		products = append(products, product)
	}

	ids = make([]string, 0, len(products))
	for _, product := range products {
		if err := s.products.Save(product); err != nil {
			return ids, fmt.Errorf("failed to save product %s: %w", product.ID(), err)
		}
		ids = append(ids, product.ID())
	}
	s.logger.InfoContext(ctx, "Catalog loaded", "products", len(ids))
	return ids, nil
}

// CreateCustomer registers a customer under a new identifier.
func (s *Service) CreateCustomer(ctx context.Context, name, address string) (customer *domain.Customer, err error) {
	ctx, span := s.startSpan(ctx, "CreateCustomer")
	defer func() { endSpan(span, err) }()

	if name == "" {
		s.logger.WarnContext(ctx, "Customer rejected", "error", apperrors.ErrInvalidName)
		return nil, apperrors.ErrInvalidName
	}
	if address == "" {
		s.logger.WarnContext(ctx, "Customer rejected", "error", apperrors.ErrInvalidAddress)
		return nil, apperrors.ErrInvalidAddress
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer = domain.NewCustomer(s.customerSeq.Next(), name, address)
	if err := s.customers.Save(customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}
	s.logger.InfoContext(ctx, "Customer created", "customer_id", customer.ID, "name", customer.Name)
	return customer, nil
}

// OrderProduct places an order for one unit of a product.
func (s *Service) OrderProduct(ctx context.Context, productID, customerID, options string) (orderID string, err error) {
	ctx, span := s.startSpan(ctx, "OrderProduct",
		attribute.String("product_id", productID), attribute.String("customer_id", customerID))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	product, customer, err := s.resolveSelection(productID, customerID, options)
	if err != nil {
		s.logger.WarnContext(ctx, "Order rejected", "product_id", productID, "customer_id", customerID, "options", options, "error", err)
		return "", err
	}
	order, err := s.place(ctx, product, customer, options, false)
	if err != nil {
		s.logger.WarnContext(ctx, "Order rejected", "product_id", productID, "customer_id", customerID, "options", options, "error", err)
		return "", err
	}
	return order.ID, nil
}

// CancelOrder cancels an active order. Depending on the policy the unit goes back to stock.
func (s *Service) CancelOrder(ctx context.Context, orderID string) (err error) {
	ctx, span := s.startSpan(ctx, "CancelOrder", attribute.String("order_id", orderID))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.FindActive(orderID)
	if err != nil {
		s.logger.WarnContext(ctx, "Cancel rejected", "order_id", orderID, "error", err)
		return err
	}
	if err := order.Cancel(); err != nil {
		return err
	}
	if _, err := s.orders.RemoveActive(orderID); err != nil {
		return fmt.Errorf("failed to remove cancelled order: %w", err)
	}
	if err := s.orders.SaveCancelled(order); err != nil {
		return fmt.Errorf("failed to record cancelled order: %w", err)
	}

	restocked := false
	if s.policy.RestockOnCancel {
		if err := order.Product.ReturnStock(order.Options); err != nil {
			s.logger.ErrorContext(ctx, "Failed to return stock", "order_id", orderID, "error", err)
		} else {
			restocked = true
		}
	}
	s.stats.decrement(order.Product.ID())
	s.ordersCancelled.Add(ctx, 1, metric.WithAttributes(attribute.String("product_id", order.Product.ID())))

	s.logger.InfoContext(ctx, "Order cancelled", "order_id", orderID, "restocked", restocked)
	s.publish(ctx, events.OrderCancelledEvent{
		OrderID:    order.ID,
		ProductID:  order.Product.ID(),
		CustomerID: order.Customer.ID,
		Restocked:  restocked,
	})
	return nil
}

// ShipOrder moves an active order to the shipped collection.
func (s *Service) ShipOrder(ctx context.Context, orderID string) (order *domain.ProductOrder, err error) {
	ctx, span := s.startSpan(ctx, "ShipOrder", attribute.String("order_id", orderID))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err = s.orders.FindActive(orderID)
	if err != nil {
		s.logger.WarnContext(ctx, "Ship rejected", "order_id", orderID, "error", err)
		return nil, err
	}
	if err := order.Ship(); err != nil {
		return nil, err
	}
	if _, err := s.orders.RemoveActive(orderID); err != nil {
		return nil, fmt.Errorf("failed to remove shipped order: %w", err)
	}
	if err := s.orders.SaveShipped(order); err != nil {
		return nil, fmt.Errorf("failed to record shipped order: %w", err)
	}
	s.ordersShipped.Add(ctx, 1, metric.WithAttributes(attribute.String("product_id", order.Product.ID())))

	s.logger.InfoContext(ctx, "Order shipped", "order_id", orderID)
	s.publish(ctx, events.OrderShippedEvent{
		OrderID:    order.ID,
		ProductID:  order.Product.ID(),
		CustomerID: order.Customer.ID,
		Options:    order.Options,
	})
	return order, nil
}

// AddToCart appends a validated selection to the customer's cart.
func (s *Service) AddToCart(ctx context.Context, productID, customerID, options string) (err error) {
	ctx, span := s.startSpan(ctx, "AddToCart",
		attribute.String("product_id", productID), attribute.String("customer_id", customerID))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	product, customer, err := s.resolveSelection(productID, customerID, options)
	if err == nil && !product.HasStock(options) {
		err = noStock(product, options)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "Cart item rejected", "product_id", productID, "customer_id", customerID, "options", options, "error", err)
		return err
	}
	customer.Cart().AddItem(product, options)
	s.logger.InfoContext(ctx, "Cart item added", "product_id", productID, "customer_id", customerID, "items", customer.Cart().Len())
	return nil
}

// RemoveFromCart removes the first cart item for the product.
func (s *Service) RemoveFromCart(ctx context.Context, productID, customerID string) (err error) {
	ctx, span := s.startSpan(ctx, "RemoveFromCart",
		attribute.String("product_id", productID), attribute.String("customer_id", customerID))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.products.FindByID(productID); err != nil {
		return err
	}
	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		return err
	}
	if err := customer.Cart().RemoveItem(productID); err != nil {
		s.logger.WarnContext(ctx, "Cart item not removed", "product_id", productID, "customer_id", customerID, "error", err)
		return err
	}
	s.logger.InfoContext(ctx, "Cart item removed", "product_id", productID, "customer_id", customerID)
	return nil
}

// CheckoutCart orders the cart items one by one, oldest first. A failing item stops the checkout
// and stays in the cart together with the items after it.
func (s *Service) CheckoutCart(ctx context.Context, customerID string) (orderIDs []string, err error) {
	ctx, span := s.startSpan(ctx, "CheckoutCart", attribute.String("customer_id", customerID))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		return nil, err
	}
	cart := customer.Cart()
	orderIDs = []string{}
	for {
		item, ok := cart.Front()
		if !ok {
			break
		}
		order, err := s.place(ctx, item.Product, customer, item.Options, true)
		if err != nil {
			s.logger.WarnContext(ctx, "Checkout stopped", "customer_id", customerID,
				"converted", len(orderIDs), "remaining", cart.Len(), "error", err)
			return orderIDs, err
		}
		cart.DropFront()
		orderIDs = append(orderIDs, order.ID)
	}
	if len(orderIDs) > 0 {
		s.cartCheckouts.Add(ctx, 1)
	}
	s.logger.InfoContext(ctx, "Cart checked out", "customer_id", customerID, "orders", strings.Join(orderIDs, ","))
	return orderIDs, nil
}

// Cart returns the items in a customer's cart.
func (s *Service) Cart(_ context.Context, customerID string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		return nil, err
	}
	return customer.Cart().Items(), nil
}

// AddRating records a star rating for a product.
func (s *Service) AddRating(ctx context.Context, productID string, rating int) (err error) {
	ctx, span := s.startSpan(ctx, "AddRating",
		attribute.String("product_id", productID), attribute.Int("rating", rating))
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.products.FindByID(productID); err != nil {
		return err
	}
	if rating < minRating || rating > maxRating {
		err := &apperrors.InvalidRatingError{ProductID: productID, Rating: rating}
		s.logger.WarnContext(ctx, "Rating rejected", "error", err)
		return err
	}
	s.ratings.add(productID, rating)
	s.logger.InfoContext(ctx, "Rating added", "product_id", productID, "rating", rating)
	return nil
}

// resolveSelection looks up the product and customer and checks the options grammar.
// Must be called with the lock held.
func (s *Service) resolveSelection(productID, customerID, options string) (domain.Product, *domain.Customer, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return nil, nil, err
	}
	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		return nil, nil, err
	}
	if !product.ValidOptions(options) {
		return nil, nil, &apperrors.InvalidOptionsError{ProductID: product.ID(), ProductName: product.Name(), Options: options}
	}
	return product, customer, nil
}

// place checks stock, takes the unit and records an active order. Nothing changes if the stock
// check fails. Must be called with the lock held.
func (s *Service) place(ctx context.Context, product domain.Product, customer *domain.Customer, options string, fromCart bool) (*domain.ProductOrder, error) {
	if !product.HasStock(options) {
		return nil, noStock(product, options)
	}
	if err := product.ReduceStock(options); err != nil {
		return nil, fmt.Errorf("failed to reduce stock: %w", err)
	}
	order := domain.NewProductOrder(s.orderSeq.Next(), product, customer, options)
	if err := s.orders.SaveActive(order); err != nil {
		if rErr := product.ReturnStock(options); rErr != nil {
			err = errors.Join(err, rErr)
		}
		return nil, fmt.Errorf("failed to record order: %w", err)
	}
	s.stats.increment(product.ID())
	s.ordersPlaced.Add(ctx, 1, metric.WithAttributes(
		attribute.String("product_id", product.ID()),
		attribute.Bool("from_cart", fromCart),
	))

	s.logger.InfoContext(ctx, "Order placed", "order_id", order.ID, "product_id", product.ID(),
		"customer_id", customer.ID, "options", options, "from_cart", fromCart)
	s.publish(ctx, events.OrderPlacedEvent{
		OrderID:    order.ID,
		ProductID:  product.ID(),
		CustomerID: customer.ID,
		Options:    options,
		Price:      product.Price().StringFixed(2),
		FromCart:   fromCart,
	})
	return order, nil
}

func noStock(product domain.Product, options string) error {
	return &apperrors.NoStockError{ProductID: product.ID(), ProductName: product.Name(), Options: options}
}
