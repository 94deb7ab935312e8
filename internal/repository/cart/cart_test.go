package cart

import (
	"context"
	"errors"
	"os"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, cart_items, carts, reviews, product_images, product_promotions, promotions, products, collections, customers, tokens, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func seedProduct(ctx context.Context, t *testing.T, pool *pgxpool.Pool, slug, price string) int64 {
	t.Helper()
	var collectionID int64
	err := pool.QueryRow(ctx, `
INSERT INTO collections (title) VALUES ('Test') RETURNING id
`).Scan(&collectionID)
	if err != nil {
		t.Fatalf("insert collection: %v", err)
	}
	var productID int64
	err = pool.QueryRow(ctx, `
INSERT INTO products (title, slug, unit_price, inventory, collection_id)
VALUES ($1, $2, $3, 10, $4)
RETURNING id
`, slug, slug, price, collectionID).Scan(&productID)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return productID
}

func TestPostgres_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool)
	created, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || len(created.Items) != 0 {
		t.Fatalf("unexpected cart %+v", created)
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("fetched mismatch %+v", fetched)
	}
}

func TestPostgres_UpsertItemOverwritesQuantity(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	productID := seedProduct(ctx, t, pool, "upsert-mug", "12.99")

	repo := NewPostgres(pool)
	cart, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first, err := repo.UpsertItem(ctx, cart.ID, productID, 2)
	if err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}
	second, err := repo.UpsertItem(ctx, cart.ID, productID, 5)
	if err != nil {
		t.Fatalf("UpsertItem again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("same product must reuse the line, got %d and %d", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("quantity must be overwritten, got %d", second.Quantity)
	}
	if !second.Product.UnitPrice.Equal(decimal.RequireFromString("12.99")) {
		t.Fatalf("unexpected price %s", second.Product.UnitPrice)
	}

	fetched, err := repo.GetByID(ctx, cart.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(fetched.Items) != 1 {
		t.Fatalf("expected a single line, got %d", len(fetched.Items))
	}
}

func TestPostgres_UpsertItemUnknownProduct(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool)
	cart, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = repo.UpsertItem(ctx, cart.ID, 9999, 1)
	if !errors.Is(err, domain.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}

func TestPostgres_DeleteCartCascades(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	productID := seedProduct(ctx, t, pool, "cascade-mug", "9.99")

	repo := NewPostgres(pool)
	cart, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.UpsertItem(ctx, cart.ID, productID, 1); err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}

	if err := repo.Delete(ctx, cart.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM cart_items`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("cart items should cascade, got %d", count)
	}

	if err := repo.Delete(ctx, cart.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_ItemLifecycle(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	productID := seedProduct(ctx, t, pool, "lifecycle-mug", "7.50")

	repo := NewPostgres(pool)
	cart, err := repo.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	item, err := repo.UpsertItem(ctx, cart.ID, productID, 1)
	if err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}

	updated, err := repo.UpdateItemQuantity(ctx, cart.ID, item.ID, 4)
	if err != nil {
		t.Fatalf("UpdateItemQuantity: %v", err)
	}
	if updated.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", updated.Quantity)
	}

	if err := repo.DeleteItem(ctx, cart.ID, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if _, err := repo.GetItem(ctx, cart.ID, item.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
