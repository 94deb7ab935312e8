package order

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	// PlaceFromCart converts the cart's items into a new order owned by
	// the customer resolved from userID, copying each product's current
	// unit price, and deletes the cart. The whole conversion runs in one
	// transaction.
	PlaceFromCart(ctx context.Context, cartID string, userID int64) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Order, error)
}
