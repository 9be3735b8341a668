package pricing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"backoffice.app/billing/model"
	pricingrepo "backoffice.app/billing/repository/pricing"
)

// RuleStore reads the pricing rules that apply to a connection in a billing period.
// A period with no matching rules yields empty, non-nil slices.
type RuleStore interface {
	TariffsFor(ctx context.Context, connectionID string, period model.Period) ([]model.TariffRule, error)
	TaxesFor(ctx context.Context, connectionID string, period model.Period) ([]model.TaxRule, error)
	SubsidiesFor(ctx context.Context, connectionID string, period model.Period) ([]model.SubsidyRule, error)
	FixedChargesFor(ctx context.Context, connectionID string, period model.Period) ([]model.FixedChargeRule, error)
}

// ConsumptionCalculator calls the consumption functions owned by bill generation.
// Their formulas are opaque here.
type ConsumptionCalculator interface {
	PeakAmount(ctx context.Context, connectionID string, period model.Period, issueDate time.Time) (decimal.Decimal, error)
	OffPeakAmount(ctx context.Context, connectionID string, period model.Period, issueDate time.Time) (decimal.Decimal, error)
	FixedFee(ctx context.Context, connectionID string, period model.Period, issueDate time.Time) (decimal.Decimal, error)
}

type Business interface {
	RuleStore
	ConsumptionCalculator
}

type business struct {
	pricingRepo pricingrepo.Querier
	logger      *zap.Logger
}

// NewPricingBusiness binds the rule store to a querier. Pass a transaction-bound
// querier to read rules from the same snapshot as the bill.
func NewPricingBusiness(pricingRepo pricingrepo.Querier, logger *zap.Logger) Business {
	return &business{
		pricingRepo: pricingRepo,
		logger:      logger,
	}
}
