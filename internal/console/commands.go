package console

import (
	"context"
	"strconv"

	"github.com/abgdnv/storefront/internal/domain"
)

// verbs lists the commands in the order the hint shows them.
var verbs = []string{
	"PRODS", "BOOKS", "SHOES", "CUSTS", "ORDERS", "SHIPPED", "NEWCUST", "SHIP", "CUSTORDERS",
	"ORDER", "ORDERBOOK", "ORDERSHOES", "CANCEL", "PRINTBYPRICE", "PRINTBYNAME", "SORTCUSTS",
	"BOOKSBYAUTHOR", "ADDTOCART", "REMCARTITEM", "PRINTCART", "ORDERITEMS", "STATS", "RATE",
	"PRINTRATINGS", "PRINTRATINGSBYCAT", "Q",
}

func (c *Console) routes() map[string]command {
	quit := func(context.Context, *input) error { return errQuit }
	return map[string]command{
		"Q":                 quit,
		"QUIT":              quit,
		"PRODS":             c.listProducts,
		"BOOKS":             c.listBooks,
		"SHOES":             c.listShoes,
		"CUSTS":             c.listCustomers,
		"ORDERS":            c.listActiveOrders,
		"SHIPPED":           c.listShippedOrders,
		"NEWCUST":           c.newCustomer,
		"SHIP":              c.shipOrder,
		"CUSTORDERS":        c.customerOrders,
		"ORDER":             c.orderGeneral,
		"ORDERBOOK":         c.orderBook,
		"ORDERSHOES":        c.orderShoes,
		"CANCEL":            c.cancelOrder,
		"PRINTBYPRICE":      c.listByPrice,
		"PRINTBYNAME":       c.listByName,
		"SORTCUSTS":         c.listCustomersByName,
		"BOOKSBYAUTHOR":     c.booksByAuthor,
		"ADDTOCART":         c.addToCart,
		"REMCARTITEM":       c.removeFromCart,
		"PRINTCART":         c.printCart,
		"ORDERITEMS":        c.checkoutCart,
		"STATS":             c.printStats,
		"RATE":              c.rate,
		"PRINTRATINGS":      c.printRatings,
		"PRINTRATINGSBYCAT": c.printRatingsByCategory,
	}
}

func (c *Console) listProducts(ctx context.Context, _ *input) error {
	c.writeProducts(c.svc.Products(ctx))
	return nil
}

func (c *Console) listBooks(ctx context.Context, _ *input) error {
	c.writeProducts(c.svc.ProductsByKind(ctx, domain.KindBook))
	return nil
}

func (c *Console) listShoes(ctx context.Context, _ *input) error {
	c.writeProducts(c.svc.ProductsByKind(ctx, domain.KindShoes))
	return nil
}

func (c *Console) listByPrice(ctx context.Context, _ *input) error {
	c.writeProducts(c.svc.ProductsByPrice(ctx))
	return nil
}

func (c *Console) listByName(ctx context.Context, _ *input) error {
	c.writeProducts(c.svc.ProductsByName(ctx))
	return nil
}

func (c *Console) listCustomers(ctx context.Context, _ *input) error {
	c.writeCustomers(c.svc.Customers(ctx))
	return nil
}

func (c *Console) listCustomersByName(ctx context.Context, _ *input) error {
	c.writeCustomers(c.svc.CustomersByName(ctx))
	return nil
}

func (c *Console) listActiveOrders(ctx context.Context, _ *input) error {
	c.writeOrders(c.svc.ActiveOrders(ctx))
	return nil
}

func (c *Console) listShippedOrders(ctx context.Context, _ *input) error {
	c.writeOrders(c.svc.ShippedOrders(ctx))
	return nil
}

func (c *Console) newCustomer(ctx context.Context, in *input) error {
	name, err := c.ask(ctx, in, "Name: ")
	if err != nil {
		return err
	}
	address, err := c.ask(ctx, in, "\nAddress: ")
	if err != nil {
		return err
	}
	c.println()
	customer, err := c.svc.CreateCustomer(ctx, name, address)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printf("Customer #%s\n", customer.ID)
	return nil
}

func (c *Console) shipOrder(ctx context.Context, in *input) error {
	orderID, err := c.ask(ctx, in, "Order Number: ")
	if err != nil {
		return err
	}
	c.println()
	order, err := c.svc.ShipOrder(ctx, orderID)
	if err != nil {
		c.report(err)
		return nil
	}
	c.println(formatOrder(order))
	return nil
}

func (c *Console) customerOrders(ctx context.Context, in *input) error {
	customerID, err := c.ask(ctx, in, "Customer Id: ")
	if err != nil {
		return err
	}
	c.println()
	history, err := c.svc.OrderHistory(ctx, customerID)
	if err != nil {
		c.report(err)
		return nil
	}
	c.printf("Current Orders of Customer %s\n", customerID)
	c.writeOrders(history.Active)
	c.printf("\nShipped Orders of Customer %s\n", customerID)
	c.writeOrders(history.Shipped)
	if len(history.Cancelled) > 0 {
		c.printf("\nCancelled Orders of Customer %s\n", customerID)
		c.writeOrders(history.Cancelled)
	}
	return nil
}

func (c *Console) orderGeneral(ctx context.Context, in *input) error {
	productID, customerID, err := c.askSelection(ctx, in)
	if err != nil {
		return err
	}
	c.placeOrder(ctx, productID, customerID, "")
	return nil
}

func (c *Console) orderBook(ctx context.Context, in *input) error {
	productID, customerID, err := c.askSelection(ctx, in)
	if err != nil {
		return err
	}
	format, err := c.askBookFormat(ctx, in)
	if err != nil {
		return err
	}
	c.placeOrder(ctx, productID, customerID, format)
	return nil
}

func (c *Console) orderShoes(ctx context.Context, in *input) error {
	productID, customerID, err := c.askSelection(ctx, in)
	if err != nil {
		return err
	}
	options, err := c.askShoeOptions(ctx, in)
	if err != nil {
		return err
	}
	c.placeOrder(ctx, productID, customerID, options)
	return nil
}

func (c *Console) placeOrder(ctx context.Context, productID, customerID, options string) {
	c.println()
	orderID, err := c.svc.OrderProduct(ctx, productID, customerID, options)
	if err != nil {
		c.report(err)
		return
	}
	c.printf("Order #%s\n", orderID)
}

func (c *Console) cancelOrder(ctx context.Context, in *input) error {
	orderID, err := c.ask(ctx, in, "Order Number: ")
	if err != nil {
		return err
	}
	c.println()
	if err := c.svc.CancelOrder(ctx, orderID); err != nil {
		c.report(err)
		return nil
	}
	c.printf("Order #%s cancelled\n", orderID)
	return nil
}

func (c *Console) booksByAuthor(ctx context.Context, in *input) error {
	author, err := c.ask(ctx, in, "Author: ")
	if err != nil {
		return err
	}
	c.println()
	books := c.svc.BooksByAuthor(ctx, author)
	for _, b := range books {
		c.println(formatProduct(b))
	}
	return nil
}

// addToCart prompts for the options the product's kind takes.
func (c *Console) addToCart(ctx context.Context, in *input) error {
	productID, customerID, err := c.askSelection(ctx, in)
	if err != nil {
		return err
	}
	kind, err := c.svc.ProductKind(ctx, productID)
	if err != nil {
		c.println()
		c.report(err)
		return nil
	}

	var options string
	switch kind {
	case domain.KindBook:
		options, err = c.askBookFormat(ctx, in)
	case domain.KindShoes:
		options, err = c.askShoeOptions(ctx, in)
	}
	if err != nil {
		return err
	}
	c.println()
	if err := c.svc.AddToCart(ctx, productID, customerID, options); err != nil {
		c.report(err)
		return nil
	}
	c.printf("Added product %s to the cart of customer %s\n", productID, customerID)
	return nil
}

func (c *Console) removeFromCart(ctx context.Context, in *input) error {
	productID, customerID, err := c.askSelection(ctx, in)
	if err != nil {
		return err
	}
	c.println()
	if err := c.svc.RemoveFromCart(ctx, productID, customerID); err != nil {
		c.report(err)
		return nil
	}
	c.printf("Removed product %s from the cart of customer %s\n", productID, customerID)
	return nil
}

func (c *Console) printCart(ctx context.Context, in *input) error {
	customerID, err := c.ask(ctx, in, "Customer Id: ")
	if err != nil {
		return err
	}
	c.println()
	items, err := c.svc.Cart(ctx, customerID)
	if err != nil {
		c.report(err)
		return nil
	}
	if len(items) == 0 {
		c.println("Cart is empty")
		return nil
	}
	for _, item := range items {
		c.println(formatCartItem(customerID, item))
	}
	return nil
}

func (c *Console) checkoutCart(ctx context.Context, in *input) error {
	customerID, err := c.ask(ctx, in, "Customer Id: ")
	if err != nil {
		return err
	}
	c.println()
	orderIDs, err := c.svc.CheckoutCart(ctx, customerID)
	for _, id := range orderIDs {
		c.printf("Order #%s\n", id)
	}
	if err != nil {
		c.report(err)
	}
	return nil
}

func (c *Console) printStats(ctx context.Context, _ *input) error {
	for _, e := range c.svc.Stats(ctx) {
		c.println(formatStat(e))
	}
	return nil
}

func (c *Console) rate(ctx context.Context, in *input) error {
	productID, err := c.ask(ctx, in, "Product Id: ")
	if err != nil {
		return err
	}
	answer, err := c.ask(ctx, in, "\nRating [1-5]: ")
	if err != nil {
		return err
	}
	c.println()
	rating, convErr := strconv.Atoi(answer)
	if convErr != nil {
		c.printf("Rating %q is not a number\n", answer)
		return nil
	}
	if err := c.svc.AddRating(ctx, productID, rating); err != nil {
		c.report(err)
		return nil
	}
	c.printf("Rated product %s with %d stars\n", productID, rating)
	return nil
}

func (c *Console) printRatings(ctx context.Context, in *input) error {
	productID, err := c.ask(ctx, in, "Product Id: ")
	if err != nil {
		return err
	}
	c.println()
	h, err := c.svc.RatingHistogram(ctx, productID)
	if err != nil {
		c.report(err)
		return nil
	}
	c.print(formatHistogram(h))
	return nil
}

func (c *Console) printRatingsByCategory(ctx context.Context, in *input) error {
	name, err := c.ask(ctx, in, "Category: ")
	if err != nil {
		return err
	}
	answer, err := c.ask(ctx, in, "\nMinimum average rating: ")
	if err != nil {
		return err
	}
	c.println()
	category, err := domain.ParseCategory(name)
	if err != nil {
		c.report(err)
		return nil
	}
	minAverage, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		c.printf("Minimum average %q is not a number\n", answer)
		return nil
	}
	report := c.svc.RatingsByCategory(ctx, category, minAverage)
	if len(report) == 0 {
		c.printf("No %s products rated %.2f or better\n", category, minAverage)
		return nil
	}
	for _, r := range report {
		c.println(formatCategoryRating(r))
	}
	return nil
}

func (c *Console) askSelection(ctx context.Context, in *input) (productID, customerID string, err error) {
	if productID, err = c.ask(ctx, in, "Product Id: "); err != nil {
		return "", "", err
	}
	if customerID, err = c.ask(ctx, in, "\nCustomer Id: "); err != nil {
		return "", "", err
	}
	return productID, customerID, nil
}

func (c *Console) askBookFormat(ctx context.Context, in *input) (string, error) {
	return c.ask(ctx, in, "\nFormat [Paperback Hardcover EBook]: ")
}

// askShoeOptions joins the size and color answers with a single space.
func (c *Console) askShoeOptions(ctx context.Context, in *input) (string, error) {
	size, err := c.ask(ctx, in, "\nSize: \"6\" \"7\" \"8\" \"9\" \"10\": ")
	if err != nil {
		return "", err
	}
	color, err := c.ask(ctx, in, "\nColor: \"Black\" \"Brown\": ")
	if err != nil {
		return "", err
	}
	return size + " " + color, nil
}
