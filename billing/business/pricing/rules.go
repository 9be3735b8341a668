package pricing

import (
	"context"

	"go.uber.org/zap"

	"backoffice.app/billing/model"
	"backoffice.app/billing/repository"
	pricingrepo "backoffice.app/billing/repository/pricing"
	"backoffice.app/pkg/errs"
)

// TariffsFor returns the tariff rules ordered by tariff type ascending
func (b *business) TariffsFor(ctx context.Context, connectionID string, period model.Period) ([]model.TariffRule, error) {
	rows, err := b.pricingRepo.ListTariffs(ctx, pricingrepo.ListTariffsParams{
		ConnectionID: connectionID,
		PeriodEnd:    repository.ToPgDate(period.End()),
		PeriodStart:  repository.ToPgDate(period.Start()),
	})
	if err != nil {
		b.logger.Error("failed to load tariffs", zap.String("connection_id", connectionID), zap.Error(err))
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load tariffs"}
	}

	tariffs := make([]model.TariffRule, 0, len(rows))
	for _, row := range rows {
		tariffs = append(tariffs, model.TariffRule{
			ID:                 row.TariffID,
			ConnectionTypeCode: row.ConnectionTypeCode,
			Type:               model.TariffType(row.TariffType),
			Description:        row.TariffDescription,
			RatePerUnit:        repository.ToDecimal(row.RatePerUnit),
		})
	}
	return tariffs, nil
}

func (b *business) TaxesFor(ctx context.Context, connectionID string, period model.Period) ([]model.TaxRule, error) {
	rows, err := b.pricingRepo.ListTaxRates(ctx, pricingrepo.ListTaxRatesParams{
		ConnectionID: connectionID,
		PeriodEnd:    repository.ToPgDate(period.End()),
		PeriodStart:  repository.ToPgDate(period.Start()),
	})
	if err != nil {
		b.logger.Error("failed to load taxes", zap.String("connection_id", connectionID), zap.Error(err))
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load taxes"}
	}

	taxes := make([]model.TaxRule, 0, len(rows))
	for _, row := range rows {
		taxes = append(taxes, model.TaxRule{
			ID:                 row.TaxRateID,
			ConnectionTypeCode: row.ConnectionTypeCode,
			TaxType:            row.TaxType,
			Rate:               repository.ToDecimal(row.Rate),
		})
	}
	return taxes, nil
}

func (b *business) SubsidiesFor(ctx context.Context, connectionID string, period model.Period) ([]model.SubsidyRule, error) {
	rows, err := b.pricingRepo.ListSubsidies(ctx, pricingrepo.ListSubsidiesParams{
		ConnectionID: connectionID,
		PeriodEnd:    repository.ToPgDate(period.End()),
		PeriodStart:  repository.ToPgDate(period.Start()),
	})
	if err != nil {
		b.logger.Error("failed to load subsidies", zap.String("connection_id", connectionID), zap.Error(err))
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load subsidies"}
	}

	subsidies := make([]model.SubsidyRule, 0, len(rows))
	for _, row := range rows {
		subsidies = append(subsidies, model.SubsidyRule{
			ID:                 row.SubsidyID,
			ConnectionTypeCode: row.ConnectionTypeCode,
			Description:        row.SubsidyDescription,
			ProviderID:         row.ProviderID,
			RatePerUnit:        repository.ToDecimal(row.RatePerUnit),
		})
	}
	return subsidies, nil
}

func (b *business) FixedChargesFor(ctx context.Context, connectionID string, period model.Period) ([]model.FixedChargeRule, error) {
	rows, err := b.pricingRepo.ListFixedCharges(ctx, pricingrepo.ListFixedChargesParams{
		ConnectionID: connectionID,
		PeriodEnd:    repository.ToPgDate(period.End()),
		PeriodStart:  repository.ToPgDate(period.Start()),
	})
	if err != nil {
		b.logger.Error("failed to load fixed charges", zap.String("connection_id", connectionID), zap.Error(err))
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load fixed charges"}
	}

	charges := make([]model.FixedChargeRule, 0, len(rows))
	for _, row := range rows {
		charges = append(charges, model.FixedChargeRule{
			ID:                 row.FixedChargeID,
			ConnectionTypeCode: row.ConnectionTypeCode,
			ChargeType:         row.FixedChargeType,
			Amount:             repository.ToDecimal(row.FixedFee),
		})
	}
	return charges, nil
}
