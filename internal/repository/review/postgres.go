package review

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

func (r *postgresRepo) Create(ctx context.Context, productID int64, in CreateReviewInput) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (product_id, title, description)
VALUES ($1, $2, $3)
RETURNING id, product_id, title, description, date
`
	var rev domain.Review
	err := r.pool.QueryRow(ctx, q, productID, in.Title, in.Description).Scan(
		&rev.ID, &rev.ProductID, &rev.Title, &rev.Description, &rev.Date,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, productID, id int64) (*domain.Review, error) {
	const q = `
SELECT id, product_id, title, description, date
FROM reviews
WHERE product_id = $1 AND id = $2
`
	var rev domain.Review
	err := r.pool.QueryRow(ctx, q, productID, id).Scan(
		&rev.ID, &rev.ProductID, &rev.Title, &rev.Description, &rev.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	const q = `
SELECT id, product_id, title, description, date
FROM reviews
WHERE product_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.Title, &rev.Description, &rev.Date); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *postgresRepo) Update(ctx context.Context, productID, id int64, in CreateReviewInput) (*domain.Review, error) {
	const q = `
UPDATE reviews
SET title = $1,
    description = $2
WHERE product_id = $3 AND id = $4
RETURNING id, product_id, title, description, date
`
	var rev domain.Review
	err := r.pool.QueryRow(ctx, q, in.Title, in.Description, productID, id).Scan(
		&rev.ID, &rev.ProductID, &rev.Title, &rev.Description, &rev.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) Delete(ctx context.Context, productID, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE product_id = $1 AND id = $2`, productID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
