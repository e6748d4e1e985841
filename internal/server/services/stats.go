package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/money"
	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/repomanager"
)

type StatsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewStatsService(db *sql.DB, m repomanager.RepositoryManager) *StatsService {
	return &StatsService{db: db, repomanager: m}
}

// Stats counts users, menu items and orders, and sums revenue over all
// payments in minor units.
func (s *StatsService) Stats(ctx context.Context) (*models.AdminStats, error) {
	var (
		stats models.AdminStats
		err   error
	)

	if stats.Users, err = s.repomanager.Users(s.db).Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	if stats.FoodItem, err = s.repomanager.Menu(s.db).Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting menu items: %w", err)
	}

	payments := s.repomanager.Payments(s.db)
	if stats.Orders, err = payments.Count(ctx); err != nil {
		return nil, fmt.Errorf("error counting payments: %w", err)
	}
	totals, err := payments.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("error summing revenue: %w", err)
	}
	stats.Revenue = money.Sum(totals...)

	return &stats, nil
}
