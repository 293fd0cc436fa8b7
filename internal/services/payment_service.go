package services

import (
	"context"
	"fmt"
	"time"

	"bistro-server/internal/models"
	"bistro-server/internal/store"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentGateway creates a card payment intent with the external processor
// and returns its client-side secret. Amounts are in minor currency units.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64) (string, error)
}

type PaymentService struct {
	payments store.PaymentStore
	carts    store.CartStore
	users    store.UserStore
	menu     store.MenuStore
	gateway  PaymentGateway
	logger   zerolog.Logger
}

func NewPaymentService(
	payments store.PaymentStore,
	carts store.CartStore,
	users store.UserStore,
	menu store.MenuStore,
	gateway PaymentGateway,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		payments: payments,
		carts:    carts,
		users:    users,
		menu:     menu,
		gateway:  gateway,
		logger:   logger,
	}
}

// CreateIntent converts the price to minor units (truncating) and asks the
// processor for a card payment intent. Processor errors propagate unmodified.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)
	secret, err := s.gateway.CreateIntent(ctx, amount)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amount).Msg("Payment intent creation failed")
		return "", err
	}
	return secret, nil
}

// Record inserts the payment, then clears the purchased cart items. The two
// steps are not one transaction; the clear is scoped to the paying user's
// items and idempotent, so a failed second step can be safely re-run with the
// same cartIds.
func (s *PaymentService) Record(ctx context.Context, payment models.Payment) (*models.PaymentReceipt, error) {
	ids := make([]primitive.ObjectID, 0, len(payment.CartIDs))
	for _, raw := range payment.CartIDs {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, ErrInvalidID
		}
		ids = append(ids, oid)
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	insertedID, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	deleted, err := s.carts.DeleteOwned(ctx, payment.Email, ids)
	if err != nil {
		// The payment is durably recorded at this point. Report the failure;
		// the stale cart items can be cleared by re-running the delete.
		s.logger.Error().Err(err).Str("payment_id", insertedID).Msg("Cart clear failed after payment insert")
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	s.logger.Info().
		Str("payment_id", insertedID).
		Str("email", payment.Email).
		Int64("cleared", deleted).
		Msg("Payment recorded")

	return &models.PaymentReceipt{InsertedID: insertedID, DeletedCount: deleted}, nil
}

func (s *PaymentService) HistoryByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.payments.ListByEmail(ctx, email)
}

// Stats assembles the admin dashboard numbers. Counts are estimates; revenue
// sums the price field across all payments, 0 when there are none.
func (s *PaymentService) Stats(ctx context.Context) (*models.AdminStats, error) {
	users, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	menuItems, err := s.menu.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}
	orders, err := s.payments.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	return &models.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}
