package review

import (
	"context"
	"strings"

	"storefront/internal/domain"
	reviewrepo "storefront/internal/repository/review"
)

type Service struct {
	repo reviewRepo
}

type reviewRepo interface {
	Create(ctx context.Context, productID int64, in reviewrepo.CreateReviewInput) (*domain.Review, error)
	GetByID(ctx context.Context, productID, id int64) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
	Update(ctx context.Context, productID, id int64, in reviewrepo.CreateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, productID, id int64) error
}

func New(repo reviewrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Invalid("title required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return domain.Invalid("description required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, productID int64, in Input) (*domain.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, productID, reviewrepo.CreateReviewInput{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
	})
}

func (s *Service) Get(ctx context.Context, productID, id int64) (*domain.Review, error) {
	return s.repo.GetByID(ctx, productID, id)
}

func (s *Service) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func (s *Service) Update(ctx context.Context, productID, id int64, in Input) (*domain.Review, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, productID, id, reviewrepo.CreateReviewInput{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
	})
}

func (s *Service) Delete(ctx context.Context, productID, id int64) error {
	return s.repo.Delete(ctx, productID, id)
}
