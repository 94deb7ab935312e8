package customer

import (
	"context"
	"time"

	"storefront/internal/domain"
)

type UpdateCustomerInput struct {
	Phone      string
	BirthDate  *time.Time
	Membership domain.Membership
}

type Repository interface {
	// GetOrCreate resolves the customer row for a user identity,
	// inserting one with defaults on first access. Safe under concurrent
	// callers: exactly one row per user id ever exists.
	GetOrCreate(ctx context.Context, userID int64) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, userID int64, in UpdateCustomerInput) (*domain.Customer, error)
}
