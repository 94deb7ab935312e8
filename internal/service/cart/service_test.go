package cart

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
	"github.com/shopspring/decimal"
)

const validCartID = "8b6a9f0e-4f3a-4a8b-a56d-45c3d3b1aa1f"

type stubRepo struct {
	cart          *domain.Cart
	getErr        error
	item          *domain.CartItem
	upsertErr     error
	lastProductID int64
	lastQuantity  int
	deleteCalls   int
}

func (s *stubRepo) Create(_ context.Context) (*domain.Cart, error) {
	return s.cart, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.getErr
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	s.deleteCalls++
	return s.getErr
}

func (s *stubRepo) UpsertItem(_ context.Context, _ string, productID int64, quantity int) (*domain.CartItem, error) {
	s.lastProductID = productID
	s.lastQuantity = quantity
	return s.item, s.upsertErr
}

func (s *stubRepo) GetItem(_ context.Context, _ string, _ int64) (*domain.CartItem, error) {
	return s.item, s.getErr
}

func (s *stubRepo) UpdateItemQuantity(_ context.Context, _ string, _ int64, quantity int) (*domain.CartItem, error) {
	s.lastQuantity = quantity
	return s.item, s.getErr
}

func (s *stubRepo) DeleteItem(_ context.Context, _ string, _ int64) error {
	s.deleteCalls++
	return s.getErr
}

type stubProducts struct {
	product *domain.Product
	err     error
}

func (s *stubProducts) GetByID(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func TestGetRejectsMalformedID(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, products: &stubProducts{}}
	_, err := svc.Get(context.Background(), "garbage")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddItemValidation(t *testing.T) {
	repo := &stubRepo{cart: &domain.Cart{ID: validCartID}}
	products := &stubProducts{product: &domain.Product{ID: 1}}
	svc := &Service{repo: repo, products: products}

	_, err := svc.AddItem(context.Background(), validCartID, 1, 0)
	var invalid *domain.InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	repo := &stubRepo{cart: &domain.Cart{ID: validCartID}}
	products := &stubProducts{err: domain.ErrNotFound}
	svc := &Service{repo: repo, products: products}

	_, err := svc.AddItem(context.Background(), validCartID, 99, 1)
	var invalid *domain.InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected validation error for unknown product, got %v", err)
	}
	if invalid.Msg != "no product with the given id" {
		t.Fatalf("unexpected message %q", invalid.Msg)
	}
}

func TestAddItemOverwritesQuantity(t *testing.T) {
	price := decimal.RequireFromString("12.99")
	repo := &stubRepo{
		cart: &domain.Cart{ID: validCartID},
		item: &domain.CartItem{ID: 4, Quantity: 5, Product: domain.ProductSummary{ID: 1, UnitPrice: price}},
	}
	products := &stubProducts{product: &domain.Product{ID: 1, UnitPrice: price}}
	svc := &Service{repo: repo, products: products}

	item, err := svc.AddItem(context.Background(), validCartID, 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastQuantity != 5 {
		t.Fatalf("expected quantity 5 passed through, got %d", repo.lastQuantity)
	}
	if got := item.TotalPrice(); !got.Equal(decimal.RequireFromString("64.95")) {
		t.Fatalf("unexpected total price %s", got)
	}
}

func TestUpdateItemRejectsNonPositiveQuantity(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, products: &stubProducts{}}
	_, err := svc.UpdateItem(context.Background(), validCartID, 1, -2)
	var invalid *domain.InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteRejectsMalformedID(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo, products: &stubProducts{}}
	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if repo.deleteCalls != 0 {
		t.Fatalf("repo should not be reached for malformed ids")
	}
}
