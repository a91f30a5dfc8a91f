package models

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

// Customer holds the contact fields captured at checkout, as-is.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is a value snapshot of a cart plus contact info. Cart and
// Customer are immutable after creation; only Status and PaidAt mutate,
// on payment confirmation.
type Order struct {
	ID        string      `json:"id"`
	Cart      []LineItem  `json:"cart"`
	Customer  Customer    `json:"customer"`
	Status    OrderStatus `json:"status"`
	UserID    string      `json:"userId,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	PaidAt    *time.Time  `json:"paidAt,omitempty"`
}

func (o Order) Total() float64 {
	var t float64
	for _, it := range o.Cart {
		t += it.Price * float64(it.Qty)
	}
	return t
}
