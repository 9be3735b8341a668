package payment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"backoffice.app/billing/model"
	"backoffice.app/billing/repository"
	"backoffice.app/billing/repository/bills"
	"backoffice.app/billing/repository/payments"
	"backoffice.app/pkg/errs"
)

// settlementSucceeded is the only process_payment result that commits.
const settlementSucceeded = 1

// ApplyPayment settles a payment against a bill. The fetch, the status computation and
// the settlement call share one transaction with the bill row locked; any failure
// leaves the bill untouched.
func (b *business) ApplyPayment(ctx context.Context, payment model.Payment) (*model.PaymentReceipt, error) {
	if payment.BillID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "bill_id must be positive"}
	}
	if !payment.Amount.IsPositive() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "payment amount must be greater than zero"}
	}
	if payment.PaymentMethodID <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "payment_method_id must be positive"}
	}

	today := calendarDate(b.now())

	var receipt *model.PaymentReceipt
	err := b.ledger.ExecuteWithLock(ctx, payment.BillID, func(repo *repository.Repository, bill bills.Bill) error {
		applicable := ApplicableAmount(
			repository.ToDecimal(bill.TotalAmountBeforeDueDate),
			repository.ToDecimal(bill.TotalAmountAfterDueDate),
			repository.ToDate(bill.DueDate),
			today,
		)
		outstanding, status := Classify(applicable, payment.Amount)

		result, err := repo.Payments.ProcessPayment(ctx, payments.ProcessPaymentParams{
			BillID:          payment.BillID,
			PaymentDate:     repository.ToPgDate(today),
			PaymentMethodID: payment.PaymentMethodID,
			Amount:          repository.ToNumeric(payment.Amount),
		})
		if err != nil {
			b.logger.Error("settlement call failed", zap.Int32("bill_id", payment.BillID), zap.Error(err))
			return &errs.Error{Code: errs.Internal, Message: "an error occurred while processing the payment"}
		}
		if result != settlementSucceeded {
			b.logger.Warn("settlement rejected payment",
				zap.Int32("bill_id", payment.BillID),
				zap.Int32("result", result))
			return &errs.Error{Code: errs.Internal, Message: "payment settlement failed"}
		}

		method, err := repo.Payments.GetPaymentMethod(ctx, payment.PaymentMethodID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "payment method not found"}
			}
			b.logger.Error("failed to load payment method",
				zap.Int32("payment_method_id", payment.PaymentMethodID),
				zap.Error(err))
			return &errs.Error{Code: errs.Internal, Message: "failed to load payment method"}
		}

		receipt = &model.PaymentReceipt{
			BillID:                   payment.BillID,
			Amount:                   payment.Amount,
			PaymentMethodID:          method.PaymentMethodID,
			PaymentMethodDescription: method.PaymentMethodDescription,
			PaymentDate:              today,
			Status:                   status,
			AppliedAmount:            applicable,
			OutstandingAmount:        outstanding,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.logger.Info("payment applied",
		zap.Int32("bill_id", receipt.BillID),
		zap.String("status", string(receipt.Status)),
		zap.String("outstanding", receipt.OutstandingAmount.StringFixed(2)))
	return receipt, nil
}
