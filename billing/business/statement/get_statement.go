package statement

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"backoffice.app/billing/business/pricing"
	"backoffice.app/billing/model"
	"backoffice.app/billing/repository"
	"backoffice.app/billing/repository/bills"
	"backoffice.app/billing/repository/customers"
	"backoffice.app/pkg/errs"
)

// GetStatement assembles the full bill view for a customer, connection and period.
// Either every required lookup succeeds or no statement is returned.
func (b *business) GetStatement(ctx context.Context, key model.StatementKey) (*model.Statement, error) {
	if key.CustomerID == "" || key.ConnectionID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "customer_id and connection_id are required"}
	}
	if !key.Period.Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid billing period"}
	}

	var statement *model.Statement
	err := b.ledger.ExecuteReadOnly(ctx, func(repo *repository.Repository) error {
		cc, err := repo.Customers.GetCustomerConnection(ctx, customers.GetCustomerConnectionParams{
			CustomerID:   key.CustomerID,
			ConnectionID: key.ConnectionID,
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "customer or connection not found"}
			}
			b.logger.Error("failed to load customer connection",
				zap.String("customer_id", key.CustomerID),
				zap.String("connection_id", key.ConnectionID),
				zap.Error(err))
			return &errs.Error{Code: errs.Internal, Message: "failed to load customer connection"}
		}

		dbBill, err := repo.Bills.GetBillByPeriod(ctx, bills.GetBillByPeriodParams{
			CustomerID:   key.CustomerID,
			ConnectionID: key.ConnectionID,
			BillingMonth: int32(key.Period.Month),
			BillingYear:  int32(key.Period.Year),
		})
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "bill not found for the requested period"}
			}
			b.logger.Error("failed to load bill",
				zap.String("connection_id", key.ConnectionID),
				zap.Error(err))
			return &errs.Error{Code: errs.Internal, Message: "failed to load bill"}
		}
		bill := convertDBBillToModel(dbBill)

		rules := b.newPricing(repo.Pricing)

		tariffs, err := b.tariffCharges(ctx, rules, bill)
		if err != nil {
			return err
		}
		taxes, err := rules.TaxesFor(ctx, bill.ConnectionID, bill.Period)
		if err != nil {
			return err
		}
		subsidies, err := rules.SubsidiesFor(ctx, bill.ConnectionID, bill.Period)
		if err != nil {
			return err
		}
		fixedCharges, err := rules.FixedChargesFor(ctx, bill.ConnectionID, bill.Period)
		if err != nil {
			return err
		}
		fixedFee, err := rules.FixedFee(ctx, bill.ConnectionID, bill.Period, bill.IssueDate)
		if err != nil {
			return err
		}

		history, err := b.previousBills(ctx, repo.Bills, bill.ConnectionID)
		if err != nil {
			return err
		}

		statement = &model.Statement{
			CustomerID:         cc.CustomerID,
			ConnectionID:       cc.ConnectionID,
			CustomerName:       strings.TrimSpace(cc.FirstName + " " + cc.LastName),
			CustomerAddress:    cc.Address,
			CustomerPhone:      cc.PhoneNumber,
			CustomerEmail:      cc.Email,
			ConnectionType:     cc.ConnectionType,
			Division:           cc.DivisionName,
			Subdivision:        cc.SubdivName,
			InstallationDate:   repository.ToDate(cc.InstallationDate),
			MeterType:          cc.MeterType,
			BillID:             bill.ID,
			IssueDate:          bill.IssueDate,
			NetPeakUnits:       bill.NetPeakUnits,
			NetOffPeakUnits:    bill.NetOffPeakUnits,
			BillAmount:         bill.TotalBeforeDueDate,
			DueDate:            bill.DueDate,
			AmountAfterDueDate: bill.TotalAfterDueDate,
			Month:              bill.Period.Month,
			Year:               bill.Period.Year,
			Arrears:            bill.Arrears,
			FixedFee:           fixedFee,
			TaxAmount:          bill.TaxAmount,
			Tariffs:            tariffs,
			Taxes:              taxes,
			Subsidies:          subsidies,
			FixedCharges:       fixedCharges,
			PreviousBills:      history,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return statement, nil
}

// tariffCharges prices each tariff rule with the consumption function of its variant.
// Units are the bill's import units for that variant.
func (b *business) tariffCharges(ctx context.Context, rules pricing.Business, bill *model.Bill) ([]model.TariffCharge, error) {
	tariffs, err := rules.TariffsFor(ctx, bill.ConnectionID, bill.Period)
	if err != nil {
		return nil, err
	}

	charges := make([]model.TariffCharge, 0, len(tariffs))
	for _, tariff := range tariffs {
		charge := model.TariffCharge{
			Name:   tariff.Description,
			Type:   tariff.Type,
			Rate:   tariff.RatePerUnit,
			Units:  decimal.Zero,
			Amount: decimal.Zero,
		}

		switch tariff.Type {
		case model.TariffTypePeak:
			charge.Units = bill.ImportPeakUnits
			charge.Amount, err = rules.PeakAmount(ctx, bill.ConnectionID, bill.Period, bill.IssueDate)
		case model.TariffTypeOffPeak:
			charge.Units = bill.ImportOffPeakUnits
			charge.Amount, err = rules.OffPeakAmount(ctx, bill.ConnectionID, bill.Period, bill.IssueDate)
		default:
			b.logger.Warn("unknown tariff type",
				zap.Int32("tariff_id", tariff.ID),
				zap.Int32("tariff_type", int32(tariff.Type)))
		}
		if err != nil {
			return nil, err
		}

		charges = append(charges, charge)
	}
	return charges, nil
}
