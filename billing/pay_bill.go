package billing

import (
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"backoffice.app/billing/model"
	"backoffice.app/billing/response"
	"backoffice.app/pkg/errs"
)

type PayBillRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethodID int32           `json:"payment_method_id" validate:"required,gt=0"`
}

// POST /v1/bills/{billID}/payments
func (s *Service) PayBill(w http.ResponseWriter, r *http.Request) {
	billID, err := billIDParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var req PayBillRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(w, err)
		return
	}

	receipt, err := s.payments.ApplyPayment(r.Context(), model.Payment{
		BillID:          billID,
		Amount:          req.Amount,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		s.logger.Error("failed to apply payment", zap.Int32("bill_id", billID), zap.Error(err))
		response.Error(w, err)
		return
	}

	response.Created(w, "payment recorded", receipt)
}

// Validate implements validation for PayBillRequest
func (r *PayBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if !r.Amount.IsPositive() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "payment amount must be greater than zero"}
	}

	return nil
}
