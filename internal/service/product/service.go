package product

import (
	"context"
	"strings"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
	"github.com/shopspring/decimal"
)

type Service struct {
	repo productRepo
}

type productRepo interface {
	Create(ctx context.Context, in productrepo.CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id int64, in productrepo.CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	AddImage(ctx context.Context, productID int64, image string) (*domain.ProductImage, error)
	ListImages(ctx context.Context, productID int64) ([]domain.ProductImage, error)
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Inventory    int             `json:"inventory"`
	CollectionID int64           `json:"collection_id"`
	PromotionIDs []int64         `json:"promotion_ids"`
}

var minUnitPrice = decimal.NewFromInt(1)

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.Invalid("title required")
	}
	if strings.TrimSpace(in.Slug) == "" {
		return domain.Invalid("slug required")
	}
	if in.UnitPrice.LessThan(minUnitPrice) {
		return domain.Invalid("unit_price must be at least 1")
	}
	if in.Inventory < 0 {
		return domain.Invalid("inventory must not be negative")
	}
	if in.CollectionID == 0 {
		return domain.Invalid("collection_id required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, repoInput(in))
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, repoInput(in))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) AddImage(ctx context.Context, productID int64, image string) (*domain.ProductImage, error) {
	if strings.TrimSpace(image) == "" {
		return nil, domain.Invalid("image required")
	}
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.AddImage(ctx, productID, image)
}

func (s *Service) ListImages(ctx context.Context, productID int64) ([]domain.ProductImage, error) {
	if _, err := s.repo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.ListImages(ctx, productID)
}

func repoInput(in Input) productrepo.CreateProductInput {
	return productrepo.CreateProductInput{
		Title:        strings.TrimSpace(in.Title),
		Slug:         strings.TrimSpace(in.Slug),
		Description:  in.Description,
		UnitPrice:    in.UnitPrice,
		Inventory:    in.Inventory,
		CollectionID: in.CollectionID,
		PromotionIDs: in.PromotionIDs,
	}
}
