package review

import (
	"context"

	"storefront/internal/domain"
)

type CreateReviewInput struct {
	Title       string
	Description string
}

type Repository interface {
	Create(ctx context.Context, productID int64, in CreateReviewInput) (*domain.Review, error)
	GetByID(ctx context.Context, productID, id int64) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
	Update(ctx context.Context, productID, id int64, in CreateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, productID, id int64) error
}
