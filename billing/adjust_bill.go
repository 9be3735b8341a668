package billing

import (
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"backoffice.app/billing/model"
	"backoffice.app/billing/response"
	"backoffice.app/pkg/errs"
)

type AdjustBillRequest struct {
	OfficerName        string          `json:"officer_name" validate:"required,max=100"`
	OfficerDesignation string          `json:"officer_designation" validate:"required,max=100"`
	OriginalBillAmount decimal.Decimal `json:"original_bill_amount"`
	AdjustmentAmount   decimal.Decimal `json:"adjustment_amount"`
	Reason             string          `json:"adjustment_reason" validate:"required,max=500"`
}

// POST /v1/bills/{billID}/adjustments
func (s *Service) AdjustBill(w http.ResponseWriter, r *http.Request) {
	billID, err := billIDParam(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var req AdjustBillRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(w, err)
		return
	}

	adjustment, err := s.adjustments.RecordAdjustment(r.Context(), model.AdjustmentRequest{
		BillID:             billID,
		OfficerName:        req.OfficerName,
		OfficerDesignation: req.OfficerDesignation,
		OriginalBillAmount: req.OriginalBillAmount,
		AdjustmentAmount:   req.AdjustmentAmount,
		Reason:             req.Reason,
	})
	if err != nil {
		s.logger.Error("failed to record adjustment", zap.Int32("bill_id", billID), zap.Error(err))
		response.Error(w, err)
		return
	}

	response.Created(w, "adjustment recorded", adjustment)
}

// Validate implements validation for AdjustBillRequest
func (r *AdjustBillRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.OriginalBillAmount.IsNegative() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "original_bill_amount cannot be negative"}
	}

	if r.AdjustmentAmount.IsZero() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "adjustment_amount must not be zero"}
	}

	return nil
}
