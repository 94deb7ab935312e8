package customer

import (
	"context"
	"time"

	"storefront/internal/domain"
	custrepo "storefront/internal/repository/customer"
)

type Service struct {
	repo customerRepo
}

type customerRepo interface {
	GetOrCreate(ctx context.Context, userID int64) (*domain.Customer, error)
	Update(ctx context.Context, userID int64, in custrepo.UpdateCustomerInput) (*domain.Customer, error)
}

func New(repo custrepo.Repository) *Service {
	return &Service{repo: repo}
}

type UpdateInput struct {
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`
	Membership string `json:"membership"`
}

// Me resolves the profile for a user identity, creating it on first
// access.
func (s *Service) Me(ctx context.Context, userID int64) (*domain.Customer, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// UpdateMe replaces the caller's profile fields. The customer row is
// created first if this is the user's first touch.
func (s *Service) UpdateMe(ctx context.Context, userID int64, in UpdateInput) (*domain.Customer, error) {
	membership := domain.Membership(in.Membership)
	if in.Membership == "" {
		membership = domain.MembershipBronze
	}
	switch membership {
	case domain.MembershipBronze, domain.MembershipSilver, domain.MembershipGold:
	default:
		return nil, domain.Invalid("membership must be one of B, S, G")
	}

	var birthDate *time.Time
	if in.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", in.BirthDate)
		if err != nil {
			return nil, domain.Invalid("birth_date must be YYYY-MM-DD")
		}
		birthDate = &parsed
	}

	if _, err := s.repo.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, userID, custrepo.UpdateCustomerInput{
		Phone:      in.Phone,
		BirthDate:  birthDate,
		Membership: membership,
	})
}
