package events

import (
	"encoding/json"

	"github.com/abgdnv/storefront/pkg/messaging"
)

type OrderPlacedEvent struct {
	OrderID    string `json:"order_id"`
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	Options    string `json:"options,omitempty"`
	Price      string `json:"price"`
	FromCart   bool   `json:"from_cart"`
}

func (o OrderPlacedEvent) Subject() string {
	return messaging.OrdersPlacedSubject
}

func (o OrderPlacedEvent) Payload() ([]byte, error) {
	return json.Marshal(o)
}

type OrderCancelledEvent struct {
	OrderID    string `json:"order_id"`
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	Restocked  bool   `json:"restocked"`
}

func (o OrderCancelledEvent) Subject() string {
	return messaging.OrdersCancelledSubject
}

func (o OrderCancelledEvent) Payload() ([]byte, error) {
	return json.Marshal(o)
}

type OrderShippedEvent struct {
	OrderID    string `json:"order_id"`
	ProductID  string `json:"product_id"`
	CustomerID string `json:"customer_id"`
	Options    string `json:"options,omitempty"`
}

func (o OrderShippedEvent) Subject() string {
	return messaging.OrdersShippedSubject
}

func (o OrderShippedEvent) Payload() ([]byte, error) {
	return json.Marshal(o)
}
