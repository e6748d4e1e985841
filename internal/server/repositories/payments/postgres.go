// Package payments provides the PostgreSQL-backed payment record repository.
// Id lists are stored as JSONB arrays.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/foodie/internal/dbx"
	"github.com/dmitrijs2005/foodie/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Payment) (*models.Payment, error) {
	query :=
		`INSERT INTO payments (id, email, transaction_id, total_amount, quantity, cart_items, menu_items, item_names, status, date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 `

	cartItems, err := marshalList(p.CartItems)
	if err != nil {
		return nil, err
	}
	menuItems, err := marshalList(p.MenuItems)
	if err != nil {
		return nil, err
	}
	itemNames, err := marshalList(p.ItemNames)
	if err != nil {
		return nil, err
	}

	p.ID = dbx.NewID()
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Email, p.TransactionID, p.TotalAmount, p.Quantity, cartItems, menuItems, itemNames, p.Status, p.Date)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// ListByEmail returns the payments of email, newest first.
func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	query :=
		`SELECT id, email, transaction_id, total_amount, quantity, cart_items, menu_items, item_names, status, date
		 FROM payments
		 WHERE email = $1
		 ORDER BY date DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Payment, 0)
	for rows.Next() {
		var p models.Payment
		var cartItems, menuItems, itemNames []byte
		if err := rows.Scan(&p.ID, &p.Email, &p.TransactionID, &p.TotalAmount, &p.Quantity,
			&cartItems, &menuItems, &itemNames, &p.Status, &p.Date); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if p.CartItems, err = unmarshalList(cartItems); err != nil {
			return nil, err
		}
		if p.MenuItems, err = unmarshalList(menuItems); err != nil {
			return nil, err
		}
		if p.ItemNames, err = unmarshalList(itemNames); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM payments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

// Totals returns total_amount of every stored payment.
func (r *PostgresRepository) Totals(ctx context.Context) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT total_amount FROM payments`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]float64, 0)
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func marshalList(v []string) ([]byte, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode list: %w", err)
	}
	return b, nil
}

func unmarshalList(b []byte) ([]string, error) {
	out := []string{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}
