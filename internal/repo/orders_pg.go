package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/models"
)

type OrdersPG struct {
	DB *pgxpool.Pool
}

func (r *OrdersPG) Append(ctx context.Context, o models.Order) error {
	cart, err := json.Marshal(o.Cart)
	if err != nil {
		return errs.Internal(err, "encode cart")
	}
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return errs.Internal(err, "encode customer")
	}
	var userID *string
	if o.UserID != "" {
		userID = &o.UserID
	}
	if _, err := r.DB.Exec(ctx, `
		insert into orders (id, user_id, cart, customer, status, created_at, paid_at)
		values ($1, $2, $3, $4, $5, $6, $7)
	`, o.ID, userID, cart, customer, string(o.Status), o.CreatedAt, o.PaidAt); err != nil {
		return errs.Internal(err, "insert order")
	}
	return nil
}

func (r *OrdersPG) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	rows, err := r.DB.Query(ctx, `
		select id, user_id, cart, customer, status, created_at, paid_at
		from orders where user_id = $1
		order by created_at desc
	`, userID)
	if err != nil {
		return nil, errs.Internal(err, "query orders")
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var uid *string
		var cart, customer []byte
		var status string
		if err := rows.Scan(&o.ID, &uid, &cart, &customer, &status, &o.CreatedAt, &o.PaidAt); err != nil {
			return nil, errs.Internal(err, "scan order")
		}
		if uid != nil {
			o.UserID = *uid
		}
		o.Status = models.OrderStatus(status)
		if err := json.Unmarshal(cart, &o.Cart); err != nil {
			return nil, errs.Internal(err, "decode cart")
		}
		if err := json.Unmarshal(customer, &o.Customer); err != nil {
			return nil, errs.Internal(err, "decode customer")
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Internal(err, "query orders")
	}
	return orders, nil
}

func (r *OrdersPG) MarkPaid(ctx context.Context, orderID string, at time.Time) (bool, error) {
	tag, err := r.DB.Exec(ctx, `
		update orders set status = $2, paid_at = $3
		where id = $1 and status = $4
	`, orderID, string(models.OrderStatusPaid), at, string(models.OrderStatusPending))
	if err != nil {
		return false, errs.Internal(err, "update order")
	}
	return tag.RowsAffected() > 0, nil
}
