package billing

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice.app/billing/model"
	"backoffice.app/pkg/errs"
)

func TestGetStatement(t *testing.T) {
	issueDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		path             string
		expectedKey      *model.StatementKey
		mockReturn       *model.Statement
		mockError        error
		expectedStatus   int
		expectedMessage  string
		expectedContains string
	}{
		{
			name: "successful_statement",
			path: "/v1/customers/C-1/connections/K-9/bills/2024/1",
			expectedKey: &model.StatementKey{
				CustomerID:   "C-1",
				ConnectionID: "K-9",
				Period:       model.Period{Month: 1, Year: 2024},
			},
			mockReturn: &model.Statement{
				CustomerID:   "C-1",
				ConnectionID: "K-9",
				CustomerName: "Ada Lovelace",
				BillID:       42,
				IssueDate:    issueDate,
				BillAmount:   decimal.RequireFromString("500.00"),
				Month:        1,
				Year:         2024,
				Tariffs:      []model.TariffCharge{},
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "bill statement",
		},
		{
			name:             "month_out_of_range",
			path:             "/v1/customers/C-1/connections/K-9/bills/2024/13",
			expectedStatus:   http.StatusBadRequest,
			expectedContains: "Month",
		},
		{
			name:            "year_not_a_number",
			path:            "/v1/customers/C-1/connections/K-9/bills/twenty/1",
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid billing period",
		},
		{
			name:             "customer_id_too_long",
			path:             "/v1/customers/" + strings.Repeat("C", 51) + "/connections/K-9/bills/2024/1",
			expectedStatus:   http.StatusBadRequest,
			expectedContains: "CustomerID",
		},
		{
			name: "customer_not_found",
			path: "/v1/customers/C-404/connections/K-9/bills/2024/1",
			expectedKey: &model.StatementKey{
				CustomerID:   "C-404",
				ConnectionID: "K-9",
				Period:       model.Period{Month: 1, Year: 2024},
			},
			mockError:       &errs.Error{Code: errs.NotFound, Message: "customer or connection not found"},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "customer or connection not found",
		},
		{
			name: "storage_failure",
			path: "/v1/customers/C-1/connections/K-9/bills/2024/2",
			expectedKey: &model.StatementKey{
				CustomerID:   "C-1",
				ConnectionID: "K-9",
				Period:       model.Period{Month: 2, Year: 2024},
			},
			mockError:       &errs.Error{Code: errs.Internal, Message: "failed to load tariffs"},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "an error occurred while processing the request",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t, fakePinger{})

			if tc.expectedKey != nil {
				f.statements.EXPECT().
					GetStatement(gomock.Any(), *tc.expectedKey).
					Return(tc.mockReturn, tc.mockError)
			}

			rec := serve(f.service.Router(time.Second), http.MethodGet, tc.path, "")

			assert.Equal(t, tc.expectedStatus, rec.Code)
			envelope, data := decodeEnvelope(t, rec)
			if tc.expectedMessage != "" {
				assert.Equal(t, tc.expectedMessage, envelope.Message)
			}
			if tc.expectedContains != "" {
				assert.Contains(t, envelope.Message, tc.expectedContains)
			}

			if tc.mockReturn != nil {
				assert.Equal(t, "success", envelope.Status)
				assert.Equal(t, float64(42), data["bill_id"])
				assert.Equal(t, "Ada Lovelace", data["customer_name"])
				assert.Equal(t, "500", data["bill_amount"])
			} else {
				assert.Equal(t, "error", envelope.Status)
				assert.Nil(t, envelope.Data)
			}
		})
	}
}
