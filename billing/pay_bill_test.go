package billing

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice.app/billing/model"
	"backoffice.app/pkg/errs"
)

func TestPayBill(t *testing.T) {
	paymentDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		path             string
		body             string
		expectedAmount   string
		mockReturn       *model.PaymentReceipt
		mockError        error
		expectedStatus   int
		expectedMessage  string
		expectedContains string
		expectApplyCall  bool
	}{
		{
			name:           "successful_payment",
			path:           "/v1/bills/7/payments",
			body:           `{"amount":"500.00","payment_method_id":1}`,
			expectedAmount: "500",
			mockReturn: &model.PaymentReceipt{
				BillID:                   7,
				Amount:                   decimal.RequireFromString("500.00"),
				PaymentMethodID:          1,
				PaymentMethodDescription: "Cash",
				PaymentDate:              paymentDate,
				Status:                   model.PaymentStatusFullyPaid,
				AppliedAmount:            decimal.RequireFromString("500.00"),
				OutstandingAmount:        decimal.Zero,
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "payment recorded",
			expectApplyCall: true,
		},
		{
			name:           "numeric_amount_accepted",
			path:           "/v1/bills/7/payments",
			body:           `{"amount":250.5,"payment_method_id":2}`,
			expectedAmount: "250.5",
			mockReturn: &model.PaymentReceipt{
				BillID: 7,
				Status: model.PaymentStatusPartiallyPaid,
			},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "payment recorded",
			expectApplyCall: true,
		},
		{
			name:            "invalid_bill_id",
			path:            "/v1/bills/abc/payments",
			body:            `{"amount":"500.00","payment_method_id":1}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid bill ID",
		},
		{
			name:            "bill_id_zero",
			path:            "/v1/bills/0/payments",
			body:            `{"amount":"500.00","payment_method_id":1}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid bill ID",
		},
		{
			name:             "malformed_body",
			path:             "/v1/bills/7/payments",
			body:             `{"amount":`,
			expectedStatus:   http.StatusBadRequest,
			expectedContains: "invalid request body",
		},
		{
			name:             "unknown_field",
			path:             "/v1/bills/7/payments",
			body:             `{"amount":"5","payment_method_id":1,"currency":"USD"}`,
			expectedStatus:   http.StatusBadRequest,
			expectedContains: "invalid request body",
		},
		{
			name:            "zero_amount",
			path:            "/v1/bills/7/payments",
			body:            `{"amount":"0","payment_method_id":1}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "payment amount must be greater than zero",
		},
		{
			name:            "negative_amount",
			path:            "/v1/bills/7/payments",
			body:            `{"amount":"-10","payment_method_id":1}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "payment amount must be greater than zero",
		},
		{
			name:             "missing_payment_method",
			path:             "/v1/bills/7/payments",
			body:             `{"amount":"10"}`,
			expectedStatus:   http.StatusBadRequest,
			expectedContains: "PaymentMethodID",
		},
		{
			name:            "bill_not_found",
			path:            "/v1/bills/999/payments",
			body:            `{"amount":"10","payment_method_id":1}`,
			expectedAmount:  "10",
			mockError:       &errs.Error{Code: errs.NotFound, Message: "bill not found"},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "bill not found",
			expectApplyCall: true,
		},
		{
			name:            "settlement_failed",
			path:            "/v1/bills/7/payments",
			body:            `{"amount":"10","payment_method_id":1}`,
			expectedAmount:  "10",
			mockError:       &errs.Error{Code: errs.Internal, Message: "payment settlement failed"},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "an error occurred while processing the request",
			expectApplyCall: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t, fakePinger{})

			if tc.expectApplyCall {
				f.payments.EXPECT().
					ApplyPayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, payment model.Payment) (*model.PaymentReceipt, error) {
						assert.Equal(t, tc.expectedAmount, payment.Amount.String())
						assert.Positive(t, payment.BillID)
						assert.Positive(t, payment.PaymentMethodID)
						return tc.mockReturn, tc.mockError
					})
			}

			rec := serve(f.service.Router(time.Second), http.MethodPost, tc.path, tc.body)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			envelope, data := decodeEnvelope(t, rec)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, envelope.Message)
			}
			if tc.expectedContains != "" {
				assert.Contains(t, envelope.Message, tc.expectedContains)
			}
			if tc.mockReturn != nil {
				assert.Equal(t, string(tc.mockReturn.Status), data["payment_status"])
				assert.Equal(t, float64(7), data["bill_id"])
			}
		})
	}
}
