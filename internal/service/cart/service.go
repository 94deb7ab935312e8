package cart

import (
	"context"
	"errors"

	"storefront/internal/domain"
	cartrepo "storefront/internal/repository/cart"
	"github.com/google/uuid"
)

type Service struct {
	repo     cartRepo
	products productRepo
}

type cartRepo interface {
	Create(ctx context.Context) (*domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	Delete(ctx context.Context, id string) error
	UpsertItem(ctx context.Context, cartID string, productID int64, quantity int) (*domain.CartItem, error)
	GetItem(ctx context.Context, cartID string, itemID int64) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID string, itemID int64, quantity int) (*domain.CartItem, error)
	DeleteItem(ctx context.Context, cartID string, itemID int64) error
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Create(ctx context.Context) (*domain.Cart, error) {
	return s.repo.Create(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Cart, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// AddItem puts a product into the cart. An existing (cart, product)
// line has its quantity overwritten rather than accumulated.
func (s *Service) AddItem(ctx context.Context, cartID string, productID int64, quantity int) (*domain.CartItem, error) {
	if _, err := uuid.Parse(cartID); err != nil {
		return nil, domain.ErrNotFound
	}
	if quantity <= 0 {
		return nil, domain.Invalid("quantity must be positive")
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Invalid("no product with the given id")
		}
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, cartID); err != nil {
		return nil, err
	}
	return s.repo.UpsertItem(ctx, cartID, productID, quantity)
}

func (s *Service) GetItem(ctx context.Context, cartID string, itemID int64) (*domain.CartItem, error) {
	if _, err := uuid.Parse(cartID); err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetItem(ctx, cartID, itemID)
}

func (s *Service) UpdateItem(ctx context.Context, cartID string, itemID int64, quantity int) (*domain.CartItem, error) {
	if _, err := uuid.Parse(cartID); err != nil {
		return nil, domain.ErrNotFound
	}
	if quantity <= 0 {
		return nil, domain.Invalid("quantity must be positive")
	}
	return s.repo.UpdateItemQuantity(ctx, cartID, itemID, quantity)
}

func (s *Service) DeleteItem(ctx context.Context, cartID string, itemID int64) error {
	if _, err := uuid.Parse(cartID); err != nil {
		return domain.ErrNotFound
	}
	return s.repo.DeleteItem(ctx, cartID, itemID)
}
