package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/store"
)

type OrdersJSON struct {
	S  store.Store
	mu sync.Mutex
}

func (r *OrdersJSON) load(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.S.Load(ctx, store.CollectionOrders, &orders); err != nil {
		return nil, errs.Internal(err, "load orders")
	}
	return orders, nil
}

func (r *OrdersJSON) Append(ctx context.Context, o models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, o)
	if err := r.S.Save(ctx, store.CollectionOrders, orders); err != nil {
		return errs.Internal(err, "save orders")
	}
	return nil
}

func (r *OrdersJSON) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Order, 0)
	for _, o := range orders {
		if o.UserID != "" && o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *OrdersJSON) MarkPaid(ctx context.Context, orderID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range orders {
		if orders[i].ID == orderID && orders[i].Status == models.OrderStatusPending {
			orders[i].Status = models.OrderStatusPaid
			orders[i].PaidAt = &at
			if err := r.S.Save(ctx, store.CollectionOrders, orders); err != nil {
				return false, errs.Internal(err, "save orders")
			}
			return true, nil
		}
	}
	return false, nil
}
