package pricing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"backoffice.app/billing/model"
	"backoffice.app/billing/repository"
	pricingrepo "backoffice.app/billing/repository/pricing"
	"backoffice.app/pkg/errs"
)

func (b *business) PeakAmount(ctx context.Context, connectionID string, period model.Period, issueDate time.Time) (decimal.Decimal, error) {
	amount, err := b.pricingRepo.ComputePeakAmount(ctx, pricingrepo.ComputePeakAmountParams{
		ConnectionID: connectionID,
		BillingMonth: int32(period.Month),
		BillingYear:  int32(period.Year),
		IssueDate:    repository.ToPgDate(issueDate),
	})
	if err != nil {
		b.logger.Error("failed to compute peak amount", zap.String("connection_id", connectionID), zap.Error(err))
		return decimal.Zero, &errs.Error{Code: errs.Internal, Message: "failed to compute peak amount"}
	}
	return repository.ToDecimal(amount), nil
}

func (b *business) OffPeakAmount(ctx context.Context, connectionID string, period model.Period, issueDate time.Time) (decimal.Decimal, error) {
	amount, err := b.pricingRepo.ComputeOffPeakAmount(ctx, pricingrepo.ComputeOffPeakAmountParams{
		ConnectionID: connectionID,
		BillingMonth: int32(period.Month),
		BillingYear:  int32(period.Year),
		IssueDate:    repository.ToPgDate(issueDate),
	})
	if err != nil {
		b.logger.Error("failed to compute off-peak amount", zap.String("connection_id", connectionID), zap.Error(err))
		return decimal.Zero, &errs.Error{Code: errs.Internal, Message: "failed to compute off-peak amount"}
	}
	return repository.ToDecimal(amount), nil
}

func (b *business) FixedFee(ctx context.Context, connectionID string, period model.Period, issueDate time.Time) (decimal.Decimal, error) {
	amount, err := b.pricingRepo.ComputeFixedFee(ctx, pricingrepo.ComputeFixedFeeParams{
		ConnectionID: connectionID,
		BillingMonth: int32(period.Month),
		BillingYear:  int32(period.Year),
		IssueDate:    repository.ToPgDate(issueDate),
	})
	if err != nil {
		b.logger.Error("failed to compute fixed fee", zap.String("connection_id", connectionID), zap.Error(err))
		return decimal.Zero, &errs.Error{Code: errs.Internal, Message: "failed to compute fixed fee"}
	}
	return repository.ToDecimal(amount), nil
}
