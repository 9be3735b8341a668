package statement

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"backoffice.app/billing/model"
	"backoffice.app/billing/repository"
	"backoffice.app/billing/repository/bills"
	"backoffice.app/pkg/errs"
)

// previousBills returns at most PreviousBillsLimit entries, newest issue date first.
func (b *business) previousBills(ctx context.Context, billRepo bills.Querier, connectionID string) ([]model.BillHistoryEntry, error) {
	rows, err := billRepo.ListPreviousBills(ctx, bills.ListPreviousBillsParams{
		ConnectionID: connectionID,
		RowLimit:     PreviousBillsLimit,
	})
	if err != nil {
		b.logger.Error("failed to load bill history", zap.String("connection_id", connectionID), zap.Error(err))
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load bill history"}
	}

	history := make([]model.BillHistoryEntry, 0, len(rows))
	for _, row := range rows {
		period := model.Period{Month: int(row.BillingMonth), Year: int(row.BillingYear)}
		status := model.PaymentStatus(row.PaymentStatus)
		if status == "" {
			status = model.PaymentStatusUnpaid
		}
		history = append(history, model.BillHistoryEntry{
			BillID:    row.BillID,
			Period:    period,
			Label:     period.Label(),
			Amount:    repository.ToDecimal(row.TotalAmountBeforeDueDate),
			IssueDate: repository.ToDate(row.BillIssueDate),
			DueDate:   repository.ToDate(row.DueDate),
			Status:    status,
		})
	}

	slices.SortStableFunc(history, func(x, y model.BillHistoryEntry) int {
		return y.IssueDate.Compare(x.IssueDate)
	})
	if len(history) > PreviousBillsLimit {
		history = history[:PreviousBillsLimit]
	}
	return history, nil
}
