package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/dbx"
	"github.com/dmitrijs2005/foodie/internal/money"
	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/dmitrijs2005/foodie/internal/server/repositories/repomanager"
)

type PaymentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPaymentService(db *sql.DB, m repomanager.RepositoryManager) *PaymentService {
	return &PaymentService{db: db, repomanager: m}
}

// Record stores the payment and deletes the cart entries it lists. Both
// writes commit together or not at all. Totals finer than a cent are
// rejected, as revenue is summed in whole cents.
func (s *PaymentService) Record(ctx context.Context, payment *models.Payment) (*models.PaymentResult, error) {
	if payment.Email == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrorValidation)
	}
	if !money.IsWholeMinor(payment.TotalAmount) {
		return nil, fmt.Errorf("%w: total %v is not a whole number of cents", common.ErrorValidation, payment.TotalAmount)
	}
	for _, id := range payment.CartItems {
		if err := validateID(id); err != nil {
			return nil, err
		}
	}

	var result models.PaymentResult
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Payments(tx).Create(ctx, payment)
		if err != nil {
			return fmt.Errorf("error creating payment: %w", err)
		}
		result.InsertResult = models.Inserted(created.ID)

		n, err := s.repomanager.Carts(tx).DeleteMany(ctx, payment.CartItems)
		if err != nil {
			return fmt.Errorf("error clearing cart: %w", err)
		}
		result.DeleteResult = models.Deleted(n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// History returns the payments made by email, newest first.
func (s *PaymentService) History(ctx context.Context, email string) ([]*models.Payment, error) {
	if email == "" {
		return []*models.Payment{}, nil
	}
	list, err := s.repomanager.Payments(s.db).ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	return list, nil
}
