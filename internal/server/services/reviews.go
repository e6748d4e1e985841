package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/repomanager"
)

type ReviewService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewReviewService(db *sql.DB, m repomanager.RepositoryManager) *ReviewService {
	return &ReviewService{db: db, repomanager: m}
}

func (s *ReviewService) List(ctx context.Context) ([]*models.Review, error) {
	reviews, err := s.repomanager.Reviews(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) Create(ctx context.Context, review *models.Review) (*models.InsertResult, error) {
	created, err := s.repomanager.Reviews(s.db).Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("error creating review: %w", err)
	}
	return models.Inserted(created.ID), nil
}
