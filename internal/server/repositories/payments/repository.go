package payments

import (
	"context"

	"github.com/dmitrijs2005/foodie/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
	Count(ctx context.Context) (int64, error)
	Totals(ctx context.Context) ([]float64, error)
}
