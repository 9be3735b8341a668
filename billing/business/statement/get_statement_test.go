package statement

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"backoffice.app/billing/business/pricing"
	"backoffice.app/billing/domain"
	"backoffice.app/billing/mocks/business/pricing_business"
	"backoffice.app/billing/mocks/domain/ledger"
	"backoffice.app/billing/mocks/repository/bill_repo"
	"backoffice.app/billing/mocks/repository/customer_repo"
	"backoffice.app/billing/mocks/repository/pricing_repo"
	"backoffice.app/billing/model"
	"backoffice.app/billing/repository"
	"backoffice.app/billing/repository/bills"
	"backoffice.app/billing/repository/customers"
	pricingrepo "backoffice.app/billing/repository/pricing"
	"backoffice.app/pkg/errs"
)

type statementMocks struct {
	ledger    *ledger.MockLedger
	customers *customer_repo.MockQuerier
	bills     *bill_repo.MockQuerier
	rules     *pricing_business.MockBusiness
}

func newTestBusiness(ctrl *gomock.Controller) (*business, statementMocks, *repository.Repository) {
	m := statementMocks{
		ledger:    ledger.NewMockLedger(ctrl),
		customers: customer_repo.NewMockQuerier(ctrl),
		bills:     bill_repo.NewMockQuerier(ctrl),
		rules:     pricing_business.NewMockBusiness(ctrl),
	}
	repo := &repository.Repository{
		Customers: m.customers,
		Bills:     m.bills,
		Pricing:   pricing_repo.NewMockQuerier(ctrl),
	}
	b := &business{
		ledger: m.ledger,
		newPricing: func(pricingrepo.Querier) pricing.Business {
			return m.rules
		},
		logger: zap.NewNop(),
	}
	return b, m, repo
}

func expectReadOnly(m statementMocks, repo *repository.Repository) {
	m.ledger.EXPECT().
		ExecuteReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn domain.ReadFunc) error {
			return fn(repo)
		})
}

func num(s string) pgtype.Numeric {
	d := decimal.RequireFromString(s)
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func date(y int, m time.Month, d int) pgtype.Date {
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func testCustomerConnection() customers.GetCustomerConnectionRow {
	return customers.GetCustomerConnectionRow{
		CustomerID:         "CUST-1",
		FirstName:          "Amna",
		LastName:           "Rashid",
		Address:            "12 Canal Road",
		PhoneNumber:        "0300-1234567",
		Email:              "amna@example.com",
		ConnectionID:       "CONN-1",
		ConnectionTypeCode: "RES",
		ConnectionType:     "Residential",
		DivisionName:       "North",
		SubdivName:         "North-2",
		InstallationDate:   date(2019, time.June, 1),
		MeterType:          "Smart",
	}
}

func testBill() bills.Bill {
	return bills.Bill{
		BillID:                   1001,
		ConnectionID:             "CONN-1",
		BillingMonth:             1,
		BillingYear:              2024,
		BillIssueDate:            date(2024, time.January, 1),
		DueDate:                  date(2024, time.January, 15),
		NetPeakUnits:             num("120"),
		NetOffPeakUnits:          num("80"),
		ImportPeakUnits:          num("130"),
		ImportOffPeakUnits:       num("90"),
		TotalAmountBeforeDueDate: num("500.00"),
		TotalAmountAfterDueDate:  num("550.00"),
		Arrears:                  num("25.00"),
		TaxAmount:                num("45.50"),
		PaymentStatus:            "Unpaid",
	}
}

func TestGetStatement(t *testing.T) {
	key := model.StatementKey{
		CustomerID:   "CUST-1",
		ConnectionID: "CONN-1",
		Period:       model.Period{Month: 1, Year: 2024},
	}
	issueDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m, repo := newTestBusiness(ctrl)
	expectReadOnly(m, repo)

	m.customers.EXPECT().
		GetCustomerConnection(gomock.Any(), customers.GetCustomerConnectionParams{CustomerID: "CUST-1", ConnectionID: "CONN-1"}).
		Return(testCustomerConnection(), nil)
	m.bills.EXPECT().
		GetBillByPeriod(gomock.Any(), bills.GetBillByPeriodParams{
			CustomerID:   "CUST-1",
			ConnectionID: "CONN-1",
			BillingMonth: 1,
			BillingYear:  2024,
		}).
		Return(testBill(), nil)

	m.rules.EXPECT().TariffsFor(gomock.Any(), "CONN-1", key.Period).Return([]model.TariffRule{
		{ID: 1, Type: model.TariffTypePeak, Description: "Peak hours", RatePerUnit: decimal.RequireFromString("2.50")},
		{ID: 2, Type: model.TariffTypeOffPeak, Description: "Off-peak hours", RatePerUnit: decimal.RequireFromString("1.50")},
	}, nil)
	m.rules.EXPECT().PeakAmount(gomock.Any(), "CONN-1", key.Period, issueDate).Return(decimal.RequireFromString("325.00"), nil)
	m.rules.EXPECT().OffPeakAmount(gomock.Any(), "CONN-1", key.Period, issueDate).Return(decimal.RequireFromString("135.00"), nil)
	m.rules.EXPECT().TaxesFor(gomock.Any(), "CONN-1", key.Period).Return([]model.TaxRule{{ID: 1, TaxType: "GST", Rate: decimal.NewFromInt(17)}}, nil)
	m.rules.EXPECT().SubsidiesFor(gomock.Any(), "CONN-1", key.Period).Return([]model.SubsidyRule{{ID: 1, Description: "Lifeline", ProviderID: "GOV"}}, nil)
	m.rules.EXPECT().FixedChargesFor(gomock.Any(), "CONN-1", key.Period).Return([]model.FixedChargeRule{{ID: 1, ChargeType: "Meter rent", Amount: decimal.NewFromInt(40)}}, nil)
	m.rules.EXPECT().FixedFee(gomock.Any(), "CONN-1", key.Period, issueDate).Return(decimal.NewFromInt(40), nil)

	m.bills.EXPECT().
		ListPreviousBills(gomock.Any(), bills.ListPreviousBillsParams{ConnectionID: "CONN-1", RowLimit: PreviousBillsLimit}).
		Return([]bills.ListPreviousBillsRow{
			{BillID: 1001, BillingMonth: 1, BillingYear: 2024, TotalAmountBeforeDueDate: num("500"), BillIssueDate: date(2024, 1, 1), DueDate: date(2024, 1, 15), PaymentStatus: "Unpaid"},
			{BillID: 990, BillingMonth: 12, BillingYear: 2023, TotalAmountBeforeDueDate: num("480"), BillIssueDate: date(2023, 12, 1), DueDate: date(2023, 12, 15), PaymentStatus: "Fully Paid"},
		}, nil)

	statement, err := b.GetStatement(context.Background(), key)

	require.NoError(t, err)
	require.NotNil(t, statement)

	assert.Equal(t, "Amna Rashid", statement.CustomerName)
	assert.Equal(t, "Residential", statement.ConnectionType)
	assert.Equal(t, "North", statement.Division)
	assert.Equal(t, "North-2", statement.Subdivision)
	assert.Equal(t, int32(1001), statement.BillID)
	assert.Equal(t, 1, statement.Month)
	assert.Equal(t, 2024, statement.Year)
	assert.Equal(t, "500", statement.BillAmount.String())
	assert.Equal(t, "550", statement.AmountAfterDueDate.String())
	assert.Equal(t, "25", statement.Arrears.String())
	assert.Equal(t, "45.5", statement.TaxAmount.String())
	assert.Equal(t, "40", statement.FixedFee.String())
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), statement.DueDate)

	require.Len(t, statement.Tariffs, 2)
	assert.Equal(t, "Peak hours", statement.Tariffs[0].Name)
	assert.Equal(t, "130", statement.Tariffs[0].Units.String())
	assert.Equal(t, "325", statement.Tariffs[0].Amount.String())
	assert.Equal(t, "Off-peak hours", statement.Tariffs[1].Name)
	assert.Equal(t, "90", statement.Tariffs[1].Units.String())
	assert.Equal(t, "135", statement.Tariffs[1].Amount.String())

	assert.Len(t, statement.Taxes, 1)
	assert.Len(t, statement.Subsidies, 1)
	assert.Len(t, statement.FixedCharges, 1)

	require.Len(t, statement.PreviousBills, 2)
	assert.Equal(t, "1-2024", statement.PreviousBills[0].Label)
	assert.Equal(t, model.PaymentStatusUnpaid, statement.PreviousBills[0].Status)
	assert.Equal(t, "12-2023", statement.PreviousBills[1].Label)
	assert.Equal(t, model.PaymentStatusFullyPaid, statement.PreviousBills[1].Status)
}

func TestGetStatement_Failures(t *testing.T) {
	validKey := model.StatementKey{
		CustomerID:   "CUST-1",
		ConnectionID: "CONN-1",
		Period:       model.Period{Month: 3, Year: 2024},
	}

	testCases := []struct {
		name          string
		key           model.StatementKey
		setup         func(m statementMocks, repo *repository.Repository)
		expectedCode  errs.ErrCode
		expectedError string
	}{
		{
			name:          "invalid_month",
			key:           model.StatementKey{CustomerID: "CUST-1", ConnectionID: "CONN-1", Period: model.Period{Month: 13, Year: 2024}},
			setup:         func(statementMocks, *repository.Repository) {},
			expectedCode:  errs.InvalidArgument,
			expectedError: "invalid billing period",
		},
		{
			name:          "missing_customer_id",
			key:           model.StatementKey{ConnectionID: "CONN-1", Period: model.Period{Month: 3, Year: 2024}},
			setup:         func(statementMocks, *repository.Repository) {},
			expectedCode:  errs.InvalidArgument,
			expectedError: "customer_id and connection_id are required",
		},
		{
			name: "customer_connection_not_found",
			key:  validKey,
			setup: func(m statementMocks, repo *repository.Repository) {
				expectReadOnly(m, repo)
				m.customers.EXPECT().GetCustomerConnection(gomock.Any(), gomock.Any()).
					Return(customers.GetCustomerConnectionRow{}, pgx.ErrNoRows)
			},
			expectedCode:  errs.NotFound,
			expectedError: "customer or connection not found",
		},
		{
			name: "customer_lookup_database_error",
			key:  validKey,
			setup: func(m statementMocks, repo *repository.Repository) {
				expectReadOnly(m, repo)
				m.customers.EXPECT().GetCustomerConnection(gomock.Any(), gomock.Any()).
					Return(customers.GetCustomerConnectionRow{}, errors.New("connection refused"))
			},
			expectedCode:  errs.Internal,
			expectedError: "failed to load customer connection",
		},
		{
			name: "no_bill_for_period",
			key:  validKey,
			setup: func(m statementMocks, repo *repository.Repository) {
				expectReadOnly(m, repo)
				m.customers.EXPECT().GetCustomerConnection(gomock.Any(), gomock.Any()).Return(testCustomerConnection(), nil)
				m.bills.EXPECT().GetBillByPeriod(gomock.Any(), gomock.Any()).Return(bills.Bill{}, pgx.ErrNoRows)
			},
			expectedCode:  errs.NotFound,
			expectedError: "bill not found for the requested period",
		},
		{
			name: "tariff_function_fails",
			key:  validKey,
			setup: func(m statementMocks, repo *repository.Repository) {
				expectReadOnly(m, repo)
				m.customers.EXPECT().GetCustomerConnection(gomock.Any(), gomock.Any()).Return(testCustomerConnection(), nil)
				m.bills.EXPECT().GetBillByPeriod(gomock.Any(), gomock.Any()).Return(testBill(), nil)
				m.rules.EXPECT().TariffsFor(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.TariffRule{{ID: 1, Type: model.TariffTypePeak}}, nil)
				m.rules.EXPECT().PeakAmount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(decimal.Zero, &errs.Error{Code: errs.Internal, Message: "failed to compute peak amount"})
			},
			expectedCode:  errs.Internal,
			expectedError: "failed to compute peak amount",
		},
		{
			name: "history_lookup_fails",
			key:  validKey,
			setup: func(m statementMocks, repo *repository.Repository) {
				expectReadOnly(m, repo)
				m.customers.EXPECT().GetCustomerConnection(gomock.Any(), gomock.Any()).Return(testCustomerConnection(), nil)
				m.bills.EXPECT().GetBillByPeriod(gomock.Any(), gomock.Any()).Return(testBill(), nil)
				m.rules.EXPECT().TariffsFor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TariffRule{}, nil)
				m.rules.EXPECT().TaxesFor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TaxRule{}, nil)
				m.rules.EXPECT().SubsidiesFor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.SubsidyRule{}, nil)
				m.rules.EXPECT().FixedChargesFor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.FixedChargeRule{}, nil)
				m.rules.EXPECT().FixedFee(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
				m.bills.EXPECT().ListPreviousBills(gomock.Any(), gomock.Any()).Return(nil, errors.New("statement timeout"))
			},
			expectedCode:  errs.Internal,
			expectedError: "failed to load bill history",
		},
		{
			name: "transaction_not_started",
			key:  validKey,
			setup: func(m statementMocks, repo *repository.Repository) {
				m.ledger.EXPECT().ExecuteReadOnly(gomock.Any(), gomock.Any()).
					Return(&errs.Error{Code: errs.Internal, Message: "failed to start transaction"})
			},
			expectedCode:  errs.Internal,
			expectedError: "failed to start transaction",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			b, m, repo := newTestBusiness(ctrl)
			tc.setup(m, repo)

			statement, err := b.GetStatement(context.Background(), tc.key)

			assert.Error(t, err)
			assert.Nil(t, statement)
			assert.Equal(t, tc.expectedCode, errs.Code(err))
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

func TestGetStatement_NoRulesYieldsEmptyCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m, repo := newTestBusiness(ctrl)
	expectReadOnly(m, repo)

	m.customers.EXPECT().GetCustomerConnection(gomock.Any(), gomock.Any()).Return(testCustomerConnection(), nil)
	m.bills.EXPECT().GetBillByPeriod(gomock.Any(), gomock.Any()).Return(testBill(), nil)
	m.rules.EXPECT().TariffsFor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TariffRule{}, nil)
	m.rules.EXPECT().TaxesFor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TaxRule{}, nil)
	m.rules.EXPECT().SubsidiesFor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.SubsidyRule{}, nil)
	m.rules.EXPECT().FixedChargesFor(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.FixedChargeRule{}, nil)
	m.rules.EXPECT().FixedFee(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
	m.bills.EXPECT().ListPreviousBills(gomock.Any(), gomock.Any()).Return(nil, nil)

	statement, err := b.GetStatement(context.Background(), model.StatementKey{
		CustomerID:   "CUST-1",
		ConnectionID: "CONN-1",
		Period:       model.Period{Month: 1, Year: 2024},
	})

	require.NoError(t, err)
	require.NotNil(t, statement)
	assert.NotNil(t, statement.Tariffs)
	assert.Empty(t, statement.Tariffs)
	assert.NotNil(t, statement.Taxes)
	assert.Empty(t, statement.Taxes)
	assert.NotNil(t, statement.Subsidies)
	assert.Empty(t, statement.Subsidies)
	assert.NotNil(t, statement.FixedCharges)
	assert.Empty(t, statement.FixedCharges)
	assert.NotNil(t, statement.PreviousBills)
	assert.Empty(t, statement.PreviousBills)
	assert.True(t, statement.FixedFee.IsZero())
}

func TestTariffCharges_UnknownTypeIsZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m, _ := newTestBusiness(ctrl)
	bill := convertDBBillToModel(testBill())

	m.rules.EXPECT().TariffsFor(gomock.Any(), "CONN-1", bill.Period).
		Return([]model.TariffRule{{ID: 7, Type: model.TariffType(3), Description: "Legacy flat", RatePerUnit: decimal.NewFromInt(9)}}, nil)

	charges, err := b.tariffCharges(context.Background(), m.rules, bill)

	require.NoError(t, err)
	require.Len(t, charges, 1)
	assert.Equal(t, "Legacy flat", charges[0].Name)
	assert.True(t, charges[0].Amount.IsZero())
	assert.True(t, charges[0].Units.IsZero())
}

func TestPreviousBills_NewestFirstAndCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b, m, _ := newTestBusiness(ctrl)

	// Deliberately unordered and longer than the cap.
	var rows []bills.ListPreviousBillsRow
	for i := 0; i < 12; i++ {
		month := time.Month((i*5)%12 + 1)
		rows = append(rows, bills.ListPreviousBillsRow{
			BillID:                   int32(100 + i),
			BillingMonth:             int32(month),
			BillingYear:              2023,
			TotalAmountBeforeDueDate: pgtype.Numeric{Int: big.NewInt(int64(1000 + i)), Exp: -1, Valid: true},
			BillIssueDate:            date(2023, month, 1),
			DueDate:                  date(2023, month, 15),
		})
	}
	m.bills.EXPECT().ListPreviousBills(gomock.Any(), gomock.Any()).Return(rows, nil)

	history, err := b.previousBills(context.Background(), m.bills, "CONN-1")

	require.NoError(t, err)
	assert.Len(t, history, PreviousBillsLimit)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].IssueDate.After(history[i-1].IssueDate),
			"entry %d issued after entry %d", i, i-1)
	}
	assert.Equal(t, time.December, history[0].IssueDate.Month())
	for _, entry := range history {
		assert.Equal(t, model.PaymentStatusUnpaid, entry.Status)
	}
}
