package collection

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const collectionQuery = `
SELECT c.id, c.title, c.featured_product_id,
       (SELECT COUNT(*) FROM products p WHERE p.collection_id = c.id) AS product_count
FROM collections c
`

func (r *postgresRepo) Create(ctx context.Context, in CreateCollectionInput) (*domain.Collection, error) {
	const q = `
INSERT INTO collections (title, featured_product_id)
VALUES ($1, $2)
RETURNING id
`
	var id int64
	if err := r.pool.QueryRow(ctx, q, in.Title, in.FeaturedProductID).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrIntegrity
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Collection, error) {
	var c domain.Collection
	err := r.pool.QueryRow(ctx, collectionQuery+`WHERE c.id = $1`, id).Scan(
		&c.ID, &c.Title, &c.FeaturedProductID, &c.ProductCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Collection, error) {
	rows, err := r.pool.Query(ctx, collectionQuery+`ORDER BY c.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []domain.Collection
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.ID, &c.Title, &c.FeaturedProductID, &c.ProductCount); err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in CreateCollectionInput) (*domain.Collection, error) {
	const q = `
UPDATE collections
SET title = $1,
    featured_product_id = $2
WHERE id = $3
RETURNING id
`
	var updatedID int64
	err := r.pool.QueryRow(ctx, q, in.Title, in.FeaturedProductID, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrIntegrity
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrProtected
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
