package repo

import (
	"context"
	"time"

	"github.com/pxshao1010-gif/independent-station/internal/models"
)

// Users is the user collection contract. Create appends if the email is
// absent and reports a conflict otherwise; the check-then-write is not
// atomic across processes (known gap, see DESIGN.md).
type Users interface {
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, u models.User) error
	ReplaceCart(ctx context.Context, userID string, items []models.LineItem) error
}

type Products interface {
	All(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
}

// Orders appends immutable order snapshots. MarkPaid transitions a
// pending order to paid and reports whether anything changed; an unknown
// or already-paid id is a no-op, not an error.
type Orders interface {
	Append(ctx context.Context, o models.Order) error
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	MarkPaid(ctx context.Context, orderID string, at time.Time) (bool, error)
}
