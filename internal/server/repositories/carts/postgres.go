// Package carts provides the PostgreSQL-backed cart repository.
package carts

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

func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]*models.CartEntry, error) {
	query :=
		`SELECT id, menu_item_id, name, image, price, email, created_at FROM carts
		 WHERE email = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.CartEntry, 0)
	for rows.Next() {
		var c models.CartEntry
		if err := rows.Scan(&c.ID, &c.MenuItemID, &c.Name, &c.Image, &c.Price, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.CartEntry) (*models.CartEntry, error) {
	query :=
		`INSERT INTO carts (id, menu_item_id, name, image, price, email)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	entry.ID = dbx.NewID()
	err := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.MenuItemID, entry.Name, entry.Image, entry.Price, entry.Email).Scan(&entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entry, nil
}

// DeleteOwned removes the entry only if it belongs to email.
func (r *PostgresRepository) DeleteOwned(ctx context.Context, id string, email string) (int64, error) {
	return r.exec(ctx, `DELETE FROM carts WHERE id = $1 AND email = $2`, id, email)
}

// DeleteMany removes every entry whose id is in ids. An empty list is a no-op.
func (r *PostgresRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := fmt.Sprintf(`DELETE FROM carts WHERE id IN (%s)`, dbx.Placeholders(1, len(ids)))
	return r.exec(ctx, query, args...)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
