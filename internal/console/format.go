package console

import (
	"fmt"
	"strings"

	"github.com/abgdnv/storefront/internal/domain"
	"github.com/abgdnv/storefront/internal/service"
)

func (c *Console) writeProducts(products []domain.Product) {
	for _, p := range products {
		c.println(formatProduct(p))
	}
}

func (c *Console) writeCustomers(customers []*domain.Customer) {
	for _, cu := range customers {
		c.printf("Id: %-5s Name: %-20s Address: %s\n", cu.ID, cu.Name, cu.Address)
	}
}

func (c *Console) writeOrders(orders []*domain.ProductOrder) {
	for _, o := range orders {
		c.println(formatOrder(o))
	}
}

func formatProduct(p domain.Product) string {
	head := fmt.Sprintf("Id: %-5s Category: %-9s Name: %-20s Price: %8s", p.ID(), p.Category(), p.Name(), p.Price().StringFixed(2))
	switch v := p.(type) {
	case *domain.General:
		return fmt.Sprintf("%s Stock: %d", head, v.Stock())
	case *domain.Book:
		return fmt.Sprintf("%s Paperback: %d Hardcover: %d Title: %s Author: %s Year: %d", head,
			v.Stock(domain.FormatPaperback), v.Stock(domain.FormatHardcover), v.Title(), v.Author(), v.Year())
	case *domain.Shoes:
		var b strings.Builder
		b.WriteString(head)
		for _, color := range domain.Colors {
			stock := v.StockByColor(color)
			fmt.Fprintf(&b, "\n    %-5s", color)
			for i, n := range stock {
				fmt.Fprintf(&b, " %d:%d", i+domain.MinShoeSize, n)
			}
		}
		return b.String()
	}
	return head
}

func formatOrder(o *domain.ProductOrder) string {
	return fmt.Sprintf("Order #%s Customer Id: %s Product Id: %s Product Name: %-20s Options: %s",
		o.ID, o.Customer.ID, o.Product.ID(), o.Product.Name(), o.Options)
}

func formatCartItem(customerID string, item domain.CartItem) string {
	return fmt.Sprintf("Customer Id: %3s Product Id: %3s Product Name: %12s Options: %8s",
		customerID, item.Product.ID(), item.Product.Name(), item.Options)
}

func formatStat(e service.StatEntry) string {
	return fmt.Sprintf("Name: %-20s ID: %3s Ordered: %d", e.ProductName, e.ProductID, e.Count)
}

func formatHistogram(h *service.RatingHistogram) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product Id: %3s Product Name: %12s\n", h.ProductID, h.ProductName)
	for stars := 1; stars <= 5; stars++ {
		fmt.Fprintf(&b, "%dx %s\n", h.Count(stars), strings.Repeat("*", stars))
	}
	return b.String()
}

func formatCategoryRating(r service.CategoryRating) string {
	return fmt.Sprintf("Product Id: %3s Product Name: %12s Average Rating: %.2f (%d ratings)",
		r.ProductID, r.ProductName, r.Average, r.Ratings)
}
