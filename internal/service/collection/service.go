package collection

import (
	"context"
	"strings"

	"storefront/internal/domain"
	collectionrepo "storefront/internal/repository/collection"
)

type Service struct {
	repo collectionRepo
}

type collectionRepo interface {
	Create(ctx context.Context, in collectionrepo.CreateCollectionInput) (*domain.Collection, error)
	GetByID(ctx context.Context, id int64) (*domain.Collection, error)
	List(ctx context.Context) ([]domain.Collection, error)
	Update(ctx context.Context, id int64, in collectionrepo.CreateCollectionInput) (*domain.Collection, error)
	Delete(ctx context.Context, id int64) error
}

func New(repo collectionrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Title             string `json:"title"`
	FeaturedProductID *int64 `json:"featured_product_id"`
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Collection, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.Invalid("title required")
	}
	return s.repo.Create(ctx, collectionrepo.CreateCollectionInput{
		Title:             strings.TrimSpace(in.Title),
		FeaturedProductID: in.FeaturedProductID,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Collection, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Collection, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Collection, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.Invalid("title required")
	}
	return s.repo.Update(ctx, id, collectionrepo.CreateCollectionInput{
		Title:             strings.TrimSpace(in.Title),
		FeaturedProductID: in.FeaturedProductID,
	})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
