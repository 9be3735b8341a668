package statement

import (
	"context"

	"go.uber.org/zap"

	"backoffice.app/billing/business/pricing"
	"backoffice.app/billing/domain"
	"backoffice.app/billing/model"
	pricingrepo "backoffice.app/billing/repository/pricing"
)

// PreviousBillsLimit caps the payment history attached to a statement.
const PreviousBillsLimit = 10

type Business interface {
	GetStatement(ctx context.Context, key model.StatementKey) (*model.Statement, error)
}

type business struct {
	ledger     domain.Ledger
	newPricing func(pricingRepo pricingrepo.Querier) pricing.Business
	logger     *zap.Logger
}

// NewStatementBusiness creates the bill aggregator. All reads of one statement
// share a single read-only snapshot opened through ledger.
func NewStatementBusiness(ledger domain.Ledger, logger *zap.Logger) Business {
	return &business{
		ledger: ledger,
		newPricing: func(pricingRepo pricingrepo.Querier) pricing.Business {
			return pricing.NewPricingBusiness(pricingRepo, logger)
		},
		logger: logger,
	}
}
