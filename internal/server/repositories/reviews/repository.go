package reviews

import (
	"context"

	"github.com/dmitrijs2005/foodie/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Review, error)
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
}
