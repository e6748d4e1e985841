package menu

import (
	"context"

	"github.com/dmitrijs2005/foodie/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.MenuItem, error)
	Get(ctx context.Context, id string) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	Upsert(ctx context.Context, item *models.MenuItem) (*models.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
