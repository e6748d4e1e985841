package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/repomanager"
)

type CartService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCartService(db *sql.DB, m repomanager.RepositoryManager) *CartService {
	return &CartService{db: db, repomanager: m}
}

// List returns the cart entries owned by email. An empty email yields an
// empty list without touching the store.
func (s *CartService) List(ctx context.Context, email string) ([]*models.CartEntry, error) {
	if email == "" {
		return []*models.CartEntry{}, nil
	}
	entries, err := s.repomanager.Carts(s.db).ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing cart: %w", err)
	}
	return entries, nil
}

func (s *CartService) Add(ctx context.Context, entry *models.CartEntry) (*models.InsertResult, error) {
	if entry.Email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	if entry.MenuItemID != "" {
		if err := validateID(entry.MenuItemID); err != nil {
			return nil, err
		}
	}
	created, err := s.repomanager.Carts(s.db).Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("error adding cart entry: %w", err)
	}
	return models.Inserted(created.ID), nil
}

// Remove deletes the entry only if it belongs to email.
func (s *CartService) Remove(ctx context.Context, id, email string) (*models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	n, err := s.repomanager.Carts(s.db).DeleteOwned(ctx, id, email)
	if err != nil {
		return nil, fmt.Errorf("error removing cart entry: %w", err)
	}
	return models.Deleted(n), nil
}
