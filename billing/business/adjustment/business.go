package adjustment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"backoffice.app/billing/domain"
	"backoffice.app/billing/model"
)

type Business interface {
	RecordAdjustment(ctx context.Context, req model.AdjustmentRequest) (*model.Adjustment, error)
}

type business struct {
	ledger domain.Ledger
	now    func() time.Time
	logger *zap.Logger
}

// NewAdjustmentBusiness creates the append-only adjustment ledger.
func NewAdjustmentBusiness(ledger domain.Ledger, logger *zap.Logger) Business {
	return &business{
		ledger: ledger,
		now:    time.Now,
		logger: logger,
	}
}
