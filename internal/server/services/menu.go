package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/repomanager"
)

type MenuService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMenuService(db *sql.DB, m repomanager.RepositoryManager) *MenuService {
	return &MenuService{db: db, repomanager: m}
}

// List returns all menu items, newest first.
func (s *MenuService) List(ctx context.Context) ([]*models.MenuItem, error) {
	items, err := s.repomanager.Menu(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing menu: %w", err)
	}
	return items, nil
}

// Get returns the item or an error wrapping common.ErrorNotFound.
func (s *MenuService) Get(ctx context.Context, id string) (*models.MenuItem, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	item, err := s.repomanager.Menu(s.db).Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, item *models.MenuItem) (*models.InsertResult, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	created, err := s.repomanager.Menu(s.db).Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error creating menu item: %w", err)
	}
	return models.Inserted(created.ID), nil
}

// Update replaces the editable fields of the item with the given id,
// inserting it when absent.
func (s *MenuService) Update(ctx context.Context, id string, item *models.MenuItem) (*models.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	item.ID = id
	res, err := s.repomanager.Menu(s.db).Upsert(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("error updating menu item: %w", err)
	}
	return res, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	n, err := s.repomanager.Menu(s.db).Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting menu item: %w", err)
	}
	return models.Deleted(n), nil
}

func validateMenuItem(item *models.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", common.ErrorValidation)
	}
	return nil
}
