package adjustment

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"backoffice.app/billing/model"
	"backoffice.app/billing/repository"
	"backoffice.app/billing/repository/adjustments"
	"backoffice.app/billing/repository/bills"
	"backoffice.app/pkg/errs"
)

const (
	maxOfficerFieldLength = 100
	maxReasonLength       = 500
)

// RecordAdjustment appends a correction to a bill. The next identifier is read and
// consumed inside the same transaction while the ledger lock is held, so concurrent
// officers always receive distinct, gapless identifiers.
func (b *business) RecordAdjustment(ctx context.Context, req model.AdjustmentRequest) (*model.Adjustment, error) {
	req.OfficerName = strings.TrimSpace(req.OfficerName)
	req.OfficerDesignation = strings.TrimSpace(req.OfficerDesignation)
	req.Reason = strings.TrimSpace(req.Reason)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	adjustmentDate := b.now()

	var adjustment *model.Adjustment
	err := b.ledger.ExecuteWithLedgerLock(ctx, req.BillID, func(repo *repository.Repository, bill bills.Bill) error {
		nextID, err := repo.Adjustments.NextAdjustmentID(ctx)
		if err != nil {
			b.logger.Error("failed to allocate adjustment id", zap.Int32("bill_id", bill.BillID), zap.Error(err))
			return &errs.Error{Code: errs.Internal, Message: "failed to allocate adjustment id"}
		}

		row, err := repo.Adjustments.InsertAdjustment(ctx, adjustments.InsertAdjustmentParams{
			AdjustmentID:       nextID,
			BillID:             bill.BillID,
			OfficerName:        req.OfficerName,
			OfficerDesignation: req.OfficerDesignation,
			OriginalBillAmount: repository.ToNumeric(req.OriginalBillAmount),
			AdjustmentAmount:   repository.ToNumeric(req.AdjustmentAmount),
			AdjustmentReason:   req.Reason,
			AdjustmentDate:     repository.ToPgDate(adjustmentDate),
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				b.logger.Error("adjustment id collision",
					zap.Int64("adjustment_id", nextID),
					zap.String("constraint", pgErr.ConstraintName))
				return &errs.Error{Code: errs.Internal, Message: "an error occurred: adjustment id already taken"}
			}
			b.logger.Error("failed to insert adjustment", zap.Int32("bill_id", bill.BillID), zap.Error(err))
			return &errs.Error{Code: errs.Internal, Message: "failed to record adjustment"}
		}

		adjustment = convertDBAdjustmentToModel(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.logger.Info("adjustment recorded",
		zap.Int64("adjustment_id", adjustment.ID),
		zap.Int32("bill_id", adjustment.BillID),
		zap.String("officer", adjustment.OfficerName))
	return adjustment, nil
}

func validateRequest(req model.AdjustmentRequest) error {
	switch {
	case req.BillID <= 0:
		return &errs.Error{Code: errs.InvalidArgument, Message: "bill_id must be positive"}
	case req.OfficerName == "":
		return &errs.Error{Code: errs.InvalidArgument, Message: "officer_name is required"}
	case utf8.RuneCountInString(req.OfficerName) > maxOfficerFieldLength:
		return &errs.Error{Code: errs.InvalidArgument, Message: "officer_name is too long"}
	case req.OfficerDesignation == "":
		return &errs.Error{Code: errs.InvalidArgument, Message: "officer_designation is required"}
	case utf8.RuneCountInString(req.OfficerDesignation) > maxOfficerFieldLength:
		return &errs.Error{Code: errs.InvalidArgument, Message: "officer_designation is too long"}
	case req.Reason == "":
		return &errs.Error{Code: errs.InvalidArgument, Message: "adjustment reason is required"}
	case utf8.RuneCountInString(req.Reason) > maxReasonLength:
		return &errs.Error{Code: errs.InvalidArgument, Message: "adjustment reason is too long"}
	case req.OriginalBillAmount.IsNegative():
		return &errs.Error{Code: errs.InvalidArgument, Message: "original_bill_amount cannot be negative"}
	case req.AdjustmentAmount.IsZero():
		return &errs.Error{Code: errs.InvalidArgument, Message: "adjustment_amount must not be zero"}
	}
	return nil
}

func convertDBAdjustmentToModel(row adjustments.BillAdjustment) *model.Adjustment {
	return &model.Adjustment{
		ID:                 row.AdjustmentID,
		BillID:             row.BillID,
		OfficerName:        row.OfficerName,
		OfficerDesignation: row.OfficerDesignation,
		OriginalBillAmount: repository.ToDecimal(row.OriginalBillAmount),
		AdjustmentAmount:   repository.ToDecimal(row.AdjustmentAmount),
		Reason:             row.AdjustmentReason,
		AdjustmentDate:     repository.ToDate(row.AdjustmentDate),
	}
}
