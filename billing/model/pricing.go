package model

import (
	"github.com/shopspring/decimal"
)

// TariffType selects which consumption function prices a tariff rule.
type TariffType int32

const (
	TariffTypePeak    TariffType = 1
	TariffTypeOffPeak TariffType = 2
)

type TariffRule struct {
	ID                 int32           `json:"id"`
	ConnectionTypeCode string          `json:"connection_type_code"`
	Type               TariffType      `json:"tariff_type"`
	Description        string          `json:"description"`
	RatePerUnit        decimal.Decimal `json:"rate_per_unit"`
}

type TaxRule struct {
	ID                 int32           `json:"id"`
	ConnectionTypeCode string          `json:"connection_type_code"`
	TaxType            string          `json:"name"`
	Rate               decimal.Decimal `json:"rate"`
}

type SubsidyRule struct {
	ID                 int32           `json:"id"`
	ConnectionTypeCode string          `json:"connection_type_code"`
	Description        string          `json:"name"`
	ProviderID         string          `json:"provider_id"`
	RatePerUnit        decimal.Decimal `json:"rate_per_unit"`
}

type FixedChargeRule struct {
	ID                 int32           `json:"id"`
	ConnectionTypeCode string          `json:"connection_type_code"`
	ChargeType         string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
}

// TariffCharge pairs a tariff rule with the amount computed for one bill.
type TariffCharge struct {
	Name   string          `json:"name"`
	Type   TariffType      `json:"tariff_type"`
	Units  decimal.Decimal `json:"units"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}
