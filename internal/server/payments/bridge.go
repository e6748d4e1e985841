// Package payments converts order totals to minor-unit payment intents and
// hands them to a payment processor.
package payments

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/logging"
	"github.com/dmitrijs2005/foodie/internal/money"
)

// Processor creates a card payment intent for amount minor units and
// returns its client secret.
type Processor interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type Bridge struct {
	processor Processor
	currency  string
	logger    logging.Logger
}

func NewBridge(p Processor, currency string, logger logging.Logger) *Bridge {
	return &Bridge{processor: p, currency: currency, logger: logger.With("module", "payments")}
}

// CreateIntent rounds total to the nearest cent and requests an intent for
// it. Totals below one cent fail with common.ErrInvalidAmount before the
// processor is contacted.
func (b *Bridge) CreateIntent(ctx context.Context, total float64) (string, error) {
	amount := money.ToMinor(total)
	if amount < 1 {
		return "", common.ErrInvalidAmount
	}

	secret, err := b.processor.CreatePaymentIntent(ctx, amount, b.currency)
	if err != nil {
		b.logger.Error(ctx, "payment intent failed", "amount", amount, "currency", b.currency, "err", err)
		return "", fmt.Errorf("%w: %v", common.ErrorUpstream, err)
	}

	b.logger.Info(ctx, "payment intent created", "amount", amount, "currency", b.currency)
	return secret, nil
}
