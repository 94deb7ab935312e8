package cart

import (
	"context"

	"storefront/internal/domain"
)

type Repository interface {
	Create(ctx context.Context) (*domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	Delete(ctx context.Context, id string) error
	// UpsertItem adds a product to the cart; if the (cart, product) line
	// already exists its quantity is overwritten.
	UpsertItem(ctx context.Context, cartID string, productID int64, quantity int) (*domain.CartItem, error)
	GetItem(ctx context.Context, cartID string, itemID int64) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID string, itemID int64, quantity int) (*domain.CartItem, error)
	DeleteItem(ctx context.Context, cartID string, itemID int64) error
}
