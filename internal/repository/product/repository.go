package product

import (
	"context"

	"storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Title        string
	Slug         string
	Description  string
	UnitPrice    decimal.Decimal
	Inventory    int
	CollectionID int64
	PromotionIDs []int64
}

type Repository interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByCollection(ctx context.Context, collectionID int64) ([]domain.Product, error)
	Update(ctx context.Context, id int64, in CreateProductInput) (*domain.Product, error)
	// Delete refuses with ErrProtected while order items reference the
	// product.
	Delete(ctx context.Context, id int64) error
	AddImage(ctx context.Context, productID int64, image string) (*domain.ProductImage, error)
	ListImages(ctx context.Context, productID int64) ([]domain.ProductImage, error)
}
