package carts

import (
	"context"

	"github.com/dmitrijs2005/foodie/internal/server/models"
)

type Repository interface {
	ListByEmail(ctx context.Context, email string) ([]*models.CartEntry, error)
	Create(ctx context.Context, entry *models.CartEntry) (*models.CartEntry, error)
	DeleteOwned(ctx context.Context, id string, email string) (int64, error)
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
