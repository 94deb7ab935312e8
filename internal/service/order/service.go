package order

import (
	"context"

	"storefront/internal/domain"
	orderrepo "storefront/internal/repository/order"
	"github.com/google/uuid"
)

// Service owns order placement and order reads. Placement converts a
// cart into an order atomically; the repository provides the
// transaction boundary.
type Service struct {
	repo      orderRepo
	customers customerRepo
}

type orderRepo interface {
	PlaceFromCart(ctx context.Context, cartID string, userID int64) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Order, error)
}

type customerRepo interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Customer, error)
}

func New(repo orderrepo.Repository, customers customerRepo) *Service {
	return &Service{repo: repo, customers: customers}
}

// PlaceOrder materializes an order from the cart's items on behalf of
// the calling user and deletes the cart. Fails with ErrNotFound when
// the cart does not exist and ErrEmptyCart when it has no items; on any
// failure nothing is applied.
func (s *Service) PlaceOrder(ctx context.Context, cartID string, userID int64) (*domain.Order, error) {
	if _, err := uuid.Parse(cartID); err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.PlaceFromCart(ctx, cartID, userID)
}

// List returns the caller's own orders, or every order for staff.
func (s *Service) List(ctx context.Context, userID int64, isStaff bool) ([]domain.Order, error) {
	if isStaff {
		return s.repo.ListAll(ctx)
	}
	customer, err := s.customers.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByCustomer(ctx, customer.ID)
}

// Get returns one order; non-staff callers only see their own.
func (s *Service) Get(ctx context.Context, id, userID int64, isStaff bool) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isStaff {
		customer, err := s.customers.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}
		if order.CustomerID != customer.ID {
			return nil, domain.ErrNotFound
		}
	}
	return order, nil
}

// UpdatePaymentStatus is the administrative status update; the order
// carries no other mutable field.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.Invalid("invalid payment status")
	}
	return s.repo.UpdatePaymentStatus(ctx, id, status)
}
