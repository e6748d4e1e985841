// Package reviews provides the PostgreSQL-backed, append-only review repository.
package reviews

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/dbx"
	"github.com/dmitrijs2005/foodie/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all reviews, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Review, error) {
	query :=
		`SELECT id, name, details, rating, created_at FROM reviews
		 ORDER BY id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Review, 0)
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Details, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	query :=
		`INSERT INTO reviews (id, name, details, rating)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	review.ID = dbx.NewID()
	err := r.db.QueryRowContext(ctx, query, review.ID, review.Name, review.Details, review.Rating).Scan(&review.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return review, nil
}
