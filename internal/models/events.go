package models

import (
	"time"

	"github.com/google/uuid"
)

type Event[T any] struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Time    time.Time `json:"time"`
	OrderID string    `json:"order_id"`
	Payload T         `json:"payload"`
}

type OrderItemPayload struct {
	ID    string  `json:"id"`
	SKU   string  `json:"sku"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type OrderCreatedPayload struct {
	UserID string             `json:"user_id,omitempty"`
	Total  float64            `json:"total"`
	Items  []OrderItemPayload `json:"items"`
}

type OrderPaidPayload struct {
	PaidAt time.Time `json:"paid_at"`
}

func NewOrderCreatedEvent(o Order) Event[OrderCreatedPayload] {
	items := make([]OrderItemPayload, 0, len(o.Cart))
	for _, it := range o.Cart {
		items = append(items, OrderItemPayload{ID: it.ID, SKU: it.SKU, Qty: it.Qty, Price: it.Price})
	}
	return Event[OrderCreatedPayload]{
		ID:      uuid.NewString(),
		Type:    "orders.created",
		Version: 1,
		Time:    time.Now(),
		OrderID: o.ID,
		Payload: OrderCreatedPayload{UserID: o.UserID, Total: o.Total(), Items: items},
	}
}

func NewOrderPaidEvent(orderID string, paidAt time.Time) Event[OrderPaidPayload] {
	return Event[OrderPaidPayload]{
		ID:      uuid.NewString(),
		Type:    "orders.paid",
		Version: 1,
		Time:    time.Now(),
		OrderID: orderID,
		Payload: OrderPaidPayload{PaidAt: paidAt},
	}
}
