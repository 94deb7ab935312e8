package collection

import (
	"context"

	"storefront/internal/domain"
)

type CreateCollectionInput struct {
	Title             string
	FeaturedProductID *int64
}

type Repository interface {
	Create(ctx context.Context, in CreateCollectionInput) (*domain.Collection, error)
	GetByID(ctx context.Context, id int64) (*domain.Collection, error)
	List(ctx context.Context) ([]domain.Collection, error)
	Update(ctx context.Context, id int64, in CreateCollectionInput) (*domain.Collection, error)
	// Delete refuses with ErrProtected while products reference the
	// collection.
	Delete(ctx context.Context, id int64) error
}
