package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
	"github.com/pxshao1010-gif/independent-station/internal/models"
	"github.com/pxshao1010-gif/independent-station/internal/repo"
	"github.com/pxshao1010-gif/independent-station/pkg/rabbit"
)

// EventPublisher is the slice of rabbit.Publisher the pipeline uses.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any, headers amqp.Table) error
}

// Orders is the checkout/order pipeline: turns cart snapshots into
// persisted orders and drives the pending→paid transition.
type Orders struct {
	Repo   repo.Orders
	Events EventPublisher // optional, nil disables publishing
	Log    zerolog.Logger
}

// Checkout persists a new pending order from a value copy of the cart.
// userID may be empty for guest checkout.
func (s *Orders) Checkout(ctx context.Context, cart []models.LineItem, customer models.Customer, userID string) (models.Order, error) {
	if len(cart) == 0 {
		return models.Order{}, errs.Validation("Cart is empty")
	}
	if err := models.ValidateItems(cart); err != nil {
		return models.Order{}, errs.Validation(err.Error())
	}

	o := models.Order{
		ID:        uuid.NewString(),
		Cart:      models.CloneItems(cart),
		Customer:  customer,
		Status:    models.OrderStatusPending,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Append(ctx, o); err != nil {
		return models.Order{}, err
	}

	s.publish(ctx, "orders.created", models.NewOrderCreatedEvent(o))
	return o, nil
}

func (s *Orders) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.Repo.FindByUser(ctx, userID)
}

// ConfirmPayment flips a pending order to paid and stamps the paid
// timestamp. Unknown or already-paid ids are a no-op so the gateway
// callback stays idempotent.
func (s *Orders) ConfirmPayment(ctx context.Context, orderID string) (bool, error) {
	now := time.Now()
	paid, err := s.Repo.MarkPaid(ctx, orderID, now)
	if err != nil {
		return false, err
	}
	if paid {
		s.publish(ctx, "orders.paid", models.NewOrderPaidEvent(orderID, now))
	}
	return paid, nil
}

// publish is best-effort: the order is already persisted, a broker outage
// must not fail the request.
func (s *Orders) publish(ctx context.Context, key string, evt any) {
	if s.Events == nil {
		return
	}
	pubCtx, cancel := rabbit.WithTimeout(ctx)
	defer cancel()
	if err := s.Events.PublishJSON(pubCtx, key, evt, amqp.Table{"x-attempts": int32(0)}); err != nil {
		s.Log.Warn().Err(err).Str("routingKey", key).Msg("event publish failed")
	}
}
