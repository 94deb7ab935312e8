package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"
	custrepo "storefront/internal/repository/customer"
)

type stubRepo struct {
	customer    *domain.Customer
	getOrCreate int
	lastUpdate  custrepo.UpdateCustomerInput
}

func (s *stubRepo) GetOrCreate(_ context.Context, _ int64) (*domain.Customer, error) {
	s.getOrCreate++
	return s.customer, nil
}

func (s *stubRepo) Update(_ context.Context, _ int64, in custrepo.UpdateCustomerInput) (*domain.Customer, error) {
	s.lastUpdate = in
	return s.customer, nil
}

func TestMeCreatesLazily(t *testing.T) {
	repo := &stubRepo{customer: &domain.Customer{ID: 1, UserID: 5, Membership: domain.MembershipBronze}}
	svc := &Service{repo: repo}

	got, err := svc.Me(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.getOrCreate != 1 {
		t.Fatalf("expected one GetOrCreate call, got %d", repo.getOrCreate)
	}
	if got.Membership != domain.MembershipBronze {
		t.Fatalf("new profiles default to bronze, got %q", got.Membership)
	}
}

func TestUpdateMeRejectsBadMembership(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.UpdateMe(context.Background(), 5, UpdateInput{Membership: "P"})
	var invalid *domain.InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateMeRejectsBadBirthDate(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.UpdateMe(context.Background(), 5, UpdateInput{BirthDate: "31-12-1990"})
	var invalid *domain.InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateMeParsesFields(t *testing.T) {
	repo := &stubRepo{customer: &domain.Customer{ID: 1, UserID: 5}}
	svc := &Service{repo: repo}

	_, err := svc.UpdateMe(context.Background(), 5, UpdateInput{
		Phone:      "555-0101",
		BirthDate:  "1990-12-31",
		Membership: "G",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpdate.Phone != "555-0101" {
		t.Fatalf("phone not passed through: %+v", repo.lastUpdate)
	}
	if repo.lastUpdate.Membership != domain.MembershipGold {
		t.Fatalf("membership not passed through: %+v", repo.lastUpdate)
	}
	want := time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC)
	if repo.lastUpdate.BirthDate == nil || !repo.lastUpdate.BirthDate.Equal(want) {
		t.Fatalf("birth date not parsed: %+v", repo.lastUpdate.BirthDate)
	}
}
