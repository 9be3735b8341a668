package payment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"backoffice.app/billing/domain"
	"backoffice.app/billing/model"
)

type Business interface {
	ApplyPayment(ctx context.Context, payment model.Payment) (*model.PaymentReceipt, error)
}

type business struct {
	ledger domain.Ledger
	now    func() time.Time
	logger *zap.Logger
}

// NewPaymentBusiness creates the payment processor. Every payment runs under the
// bill row lock held by ledger.
func NewPaymentBusiness(ledger domain.Ledger, logger *zap.Logger) Business {
	return &business{
		ledger: ledger,
		now:    time.Now,
		logger: logger,
	}
}
