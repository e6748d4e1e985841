package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/repomanager"
)

const userExistsMessage = "user already exists"

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// Create registers a user unless one with the same email exists, in which
// case nothing is written and the result carries a message instead of an id.
// A concurrent registration that loses the race on the email constraint is
// answered the same way.
func (s *UserService) Create(ctx context.Context, user *models.User) (*models.CreateUserResult, error) {
	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByEmail(ctx, user.Email)
	if err == nil {
		return &models.CreateUserResult{Message: userExistsMessage}, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	user.Role = common.RoleGuest
	created, err := repo.Create(ctx, user)
	if errors.Is(err, common.ErrorAlreadyExists) {
		return &models.CreateUserResult{Message: userExistsMessage}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return &models.CreateUserResult{InsertResult: *models.Inserted(created.ID)}, nil
}

// IsAdmin reports whether the user with the given email has the admin role.
// An unknown email is not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repomanager.Users(s.db).GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error searching user: %w", err)
	}
	return user.Role == common.RoleAdmin, nil
}

func (s *UserService) Promote(ctx context.Context, id string) (*models.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	res, err := s.repomanager.Users(s.db).SetRole(ctx, id, common.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("error updating user role: %w", err)
	}
	return res, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	n, err := s.repomanager.Users(s.db).Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting user: %w", err)
	}
	return models.Deleted(n), nil
}
