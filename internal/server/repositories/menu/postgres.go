// Package menu provides the PostgreSQL-backed menu repository.
package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/dbx"
	"github.com/dmitrijs2005/foodie/internal/server/models"
)

// PostgresRepository implements menu storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all items, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.MenuItem, error) {
	query :=
		`SELECT id, name, category, price, image, recipe, created_at FROM menu
		 ORDER BY id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.MenuItem, 0)
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Image, &m.Recipe, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	query :=
		`SELECT id, name, category, price, image, recipe, created_at FROM menu
		 WHERE id = $1
		 `

	m := &models.MenuItem{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Image, &m.Recipe, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	query :=
		`INSERT INTO menu (id, name, category, price, image, recipe)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	item.ID = dbx.NewID()
	err := r.db.QueryRowContext(ctx, query,
		item.ID, item.Name, item.Category, item.Price, item.Image, item.Recipe).Scan(&item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

// Upsert replaces the editable fields of the item with item.ID, inserting
// it when absent. The result reports UpsertedID for an insert, MatchedCount
// 1 for an existing row and ModifiedCount 1 only when a field changed.
func (r *PostgresRepository) Upsert(ctx context.Context, item *models.MenuItem) (*models.UpdateResult, error) {
	query :=
		`INSERT INTO menu (id, name, category, price, image, recipe)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id)
		 DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			image = EXCLUDED.image,
			recipe = EXCLUDED.recipe
		 WHERE (menu.name, menu.category, menu.price, menu.image, menu.recipe)
			IS DISTINCT FROM
			(EXCLUDED.name, EXCLUDED.category, EXCLUDED.price, EXCLUDED.image, EXCLUDED.recipe)
		 RETURNING (xmax = 0) AS inserted
		 `

	res := &models.UpdateResult{Acknowledged: true}

	var inserted bool
	err := r.db.QueryRowContext(ctx, query,
		item.ID, item.Name, item.Category, item.Price, item.Image, item.Recipe).Scan(&inserted)
	if err != nil {
		// The conflict row exists but every field already matched.
		if errors.Is(err, sql.ErrNoRows) {
			res.MatchedCount = 1
			return res, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if inserted {
		id := item.ID
		res.UpsertedID = &id
	} else {
		res.MatchedCount = 1
		res.ModifiedCount = 1
	}
	return res, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM menu`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
