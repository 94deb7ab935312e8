package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain"
	authsvc "storefront/internal/service/auth"
	collectionsvc "storefront/internal/service/collection"
	customersvc "storefront/internal/service/customer"
	productsvc "storefront/internal/service/product"
	reviewsvc "storefront/internal/service/review"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type stubAuthService struct {
	user      *domain.User
	lookupErr error
}

func (s *stubAuthService) Signup(_ context.Context, _ authsvc.SignupInput) (*domain.User, error) {
	return s.user, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*domain.User, string, string, error) {
	return s.user, "access", "refresh", nil
}

func (s *stubAuthService) LookupByToken(_ context.Context, _ string) (*domain.User, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	if s.user == nil {
		return nil, authsvc.ErrInvalidToken
	}
	return s.user, nil
}

func (s *stubAuthService) Refresh(_ context.Context, _ string) (string, error) {
	return "access", nil
}

func (s *stubAuthService) AccessTTLSeconds() int { return 3600 }

type stubProductService struct {
	product   *domain.Product
	products  []domain.Product
	err       error
	deleteErr error
	image     *domain.ProductImage
}

func (s *stubProductService) Create(_ context.Context, _ productsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Get(_ context.Context, _ int64) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductService) Update(_ context.Context, _ int64, _ productsvc.Input) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

func (s *stubProductService) AddImage(_ context.Context, _ int64, _ string) (*domain.ProductImage, error) {
	return s.image, s.err
}

func (s *stubProductService) ListImages(_ context.Context, _ int64) ([]domain.ProductImage, error) {
	return nil, s.err
}

type stubCollectionService struct {
	collection *domain.Collection
	err        error
	deleteErr  error
}

func (s *stubCollectionService) Create(_ context.Context, _ collectionsvc.Input) (*domain.Collection, error) {
	return s.collection, s.err
}

func (s *stubCollectionService) Get(_ context.Context, _ int64) (*domain.Collection, error) {
	return s.collection, s.err
}

func (s *stubCollectionService) List(_ context.Context) ([]domain.Collection, error) {
	return nil, s.err
}

func (s *stubCollectionService) Update(_ context.Context, _ int64, _ collectionsvc.Input) (*domain.Collection, error) {
	return s.collection, s.err
}

func (s *stubCollectionService) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

type stubReviewService struct {
	review *domain.Review
	err    error
}

func (s *stubReviewService) Create(_ context.Context, _ int64, _ reviewsvc.Input) (*domain.Review, error) {
	return s.review, s.err
}

func (s *stubReviewService) Get(_ context.Context, _, _ int64) (*domain.Review, error) {
	return s.review, s.err
}

func (s *stubReviewService) ListByProduct(_ context.Context, _ int64) ([]domain.Review, error) {
	return nil, s.err
}

func (s *stubReviewService) Update(_ context.Context, _, _ int64, _ reviewsvc.Input) (*domain.Review, error) {
	return s.review, s.err
}

func (s *stubReviewService) Delete(_ context.Context, _, _ int64) error {
	return s.err
}

type stubCartService struct {
	cart *domain.Cart
	item *domain.CartItem
	err  error
}

func (s *stubCartService) Create(_ context.Context) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) Get(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) Delete(_ context.Context, _ string) error {
	return s.err
}

func (s *stubCartService) AddItem(_ context.Context, _ string, _ int64, _ int) (*domain.CartItem, error) {
	return s.item, s.err
}

func (s *stubCartService) GetItem(_ context.Context, _ string, _ int64) (*domain.CartItem, error) {
	return s.item, s.err
}

func (s *stubCartService) UpdateItem(_ context.Context, _ string, _ int64, _ int) (*domain.CartItem, error) {
	return s.item, s.err
}

func (s *stubCartService) DeleteItem(_ context.Context, _ string, _ int64) error {
	return s.err
}

type stubCustomerService struct {
	customer *domain.Customer
	err      error
}

func (s *stubCustomerService) Me(_ context.Context, _ int64) (*domain.Customer, error) {
	return s.customer, s.err
}

func (s *stubCustomerService) UpdateMe(_ context.Context, _ int64, _ customersvc.UpdateInput) (*domain.Customer, error) {
	return s.customer, s.err
}

type stubOrderService struct {
	order      *domain.Order
	orders     []domain.Order
	err        error
	lastCartID string
	lastUserID int64
}

func (s *stubOrderService) PlaceOrder(_ context.Context, cartID string, userID int64) (*domain.Order, error) {
	s.lastCartID = cartID
	s.lastUserID = userID
	return s.order, s.err
}

func (s *stubOrderService) List(_ context.Context, _ int64, _ bool) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderService) Get(_ context.Context, _, _ int64, _ bool) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) UpdatePaymentStatus(_ context.Context, _ int64, _ domain.PaymentStatus) (*domain.Order, error) {
	return s.order, s.err
}

func logDiscard() zerolog.Logger {
	return zerolog.Nop()
}

func testDeps() Deps {
	return Deps{
		AuthSvc:       &stubAuthService{},
		ProductSvc:    &stubProductService{},
		CollectionSvc: &stubCollectionService{},
		ReviewSvc:     &stubReviewService{},
		CartSvc:       &stubCartService{},
		CustomerSvc:   &stubCustomerService{},
		OrderSvc:      &stubOrderService{},
	}
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), nil, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), nil, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestOrdersRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(logDiscard(), nil, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestStaffOnlyRoutesForbidNonStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := testDeps()
	deps.AuthSvc = &stubAuthService{user: &domain.User{ID: 1, Email: "u@example.com"}}
	router := buildRouter(logDiscard(), nil, deps)

	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestBearerToken(t *testing.T) {
	if got := bearerToken("Bearer abc"); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if got := bearerToken("Basic abc"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := bearerToken(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
