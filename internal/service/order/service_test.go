package order

import (
	"context"
	"testing"

	"storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	placed          *domain.Order
	placeErr        error
	lastCartID      string
	lastUserID      int64
	byID            *domain.Order
	byIDErr         error
	byCustomer      []domain.Order
	lastCustomerID  int64
	all             []domain.Order
	updated         *domain.Order
	updateErr       error
	lastStatus      domain.PaymentStatus
	updateStatusCnt int
}

func (s *stubOrderRepo) PlaceFromCart(_ context.Context, cartID string, userID int64) (*domain.Order, error) {
	s.lastCartID = cartID
	s.lastUserID = userID
	return s.placed, s.placeErr
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	return s.byID, s.byIDErr
}

func (s *stubOrderRepo) ListByCustomer(_ context.Context, customerID int64) ([]domain.Order, error) {
	s.lastCustomerID = customerID
	return s.byCustomer, nil
}

func (s *stubOrderRepo) ListAll(_ context.Context) ([]domain.Order, error) {
	return s.all, nil
}

func (s *stubOrderRepo) UpdatePaymentStatus(_ context.Context, _ int64, status domain.PaymentStatus) (*domain.Order, error) {
	s.updateStatusCnt++
	s.lastStatus = status
	return s.updated, s.updateErr
}

type stubCustomerRepo struct {
	customer *domain.Customer
	err      error
}

func (s *stubCustomerRepo) GetOrCreate(_ context.Context, _ int64) (*domain.Customer, error) {
	return s.customer, s.err
}

func TestPlaceOrderRejectsMalformedCartID(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := &Service{repo: repo, customers: &stubCustomerRepo{}}

	_, err := svc.PlaceOrder(context.Background(), "not-a-uuid", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Empty(t, repo.lastCartID)
}

func TestPlaceOrderDelegates(t *testing.T) {
	expected := &domain.Order{
		ID:            7,
		CustomerID:    3,
		PaymentStatus: domain.PaymentPending,
		Items: []domain.OrderItem{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("19.99")},
		},
	}
	repo := &stubOrderRepo{placed: expected}
	svc := &Service{repo: repo, customers: &stubCustomerRepo{}}

	got, err := svc.PlaceOrder(context.Background(), "0d8ec96a-3a60-43db-9837-9d9dca49512d", 42)
	require.NoError(t, err)
	require.Equal(t, expected, got)
	require.Equal(t, "0d8ec96a-3a60-43db-9837-9d9dca49512d", repo.lastCartID)
	require.EqualValues(t, 42, repo.lastUserID)
}

func TestListStaffSeesAll(t *testing.T) {
	repo := &stubOrderRepo{all: []domain.Order{{ID: 1}, {ID: 2}}}
	svc := &Service{repo: repo, customers: &stubCustomerRepo{}}

	got, err := svc.List(context.Background(), 5, true)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestListScopesToOwnCustomer(t *testing.T) {
	repo := &stubOrderRepo{byCustomer: []domain.Order{{ID: 9, CustomerID: 3}}}
	svc := &Service{repo: repo, customers: &stubCustomerRepo{customer: &domain.Customer{ID: 3, UserID: 5}}}

	got, err := svc.List(context.Background(), 5, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.EqualValues(t, 3, repo.lastCustomerID)
}

func TestGetHidesOtherCustomersOrders(t *testing.T) {
	repo := &stubOrderRepo{byID: &domain.Order{ID: 9, CustomerID: 99}}
	svc := &Service{repo: repo, customers: &stubCustomerRepo{customer: &domain.Customer{ID: 3}}}

	_, err := svc.Get(context.Background(), 9, 5, false)
	require.ErrorIs(t, err, domain.ErrNotFound)

	got, err := svc.Get(context.Background(), 9, 5, true)
	require.NoError(t, err)
	require.EqualValues(t, 9, got.ID)
}

func TestUpdatePaymentStatusValidates(t *testing.T) {
	repo := &stubOrderRepo{updated: &domain.Order{ID: 1, PaymentStatus: domain.PaymentComplete}}
	svc := &Service{repo: repo, customers: &stubCustomerRepo{}}

	_, err := svc.UpdatePaymentStatus(context.Background(), 1, "shipped")
	var invalid *domain.InvalidError
	require.ErrorAs(t, err, &invalid)
	require.Zero(t, repo.updateStatusCnt)

	got, err := svc.UpdatePaymentStatus(context.Background(), 1, domain.PaymentComplete)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentComplete, got.PaymentStatus)
	require.Equal(t, domain.PaymentComplete, repo.lastStatus)
}
