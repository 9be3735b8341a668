package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementKey identifies the bill a statement is assembled for.
type StatementKey struct {
	CustomerID   string
	ConnectionID string
	Period       Period
}

// Statement is the presentation-ready view of one bill.
type Statement struct {
	CustomerID       string    `json:"customer_id"`
	ConnectionID     string    `json:"connection_id"`
	CustomerName     string    `json:"customer_name"`
	CustomerAddress  string    `json:"customer_address"`
	CustomerPhone    string    `json:"customer_phone"`
	CustomerEmail    string    `json:"customer_email"`
	ConnectionType   string    `json:"connection_type"`
	Division         string    `json:"division"`
	Subdivision      string    `json:"subdivision"`
	InstallationDate time.Time `json:"installation_date"`
	MeterType        string    `json:"meter_type"`

	BillID             int32           `json:"bill_id"`
	IssueDate          time.Time       `json:"issue_date"`
	NetPeakUnits       decimal.Decimal `json:"net_peak_units"`
	NetOffPeakUnits    decimal.Decimal `json:"net_off_peak_units"`
	BillAmount         decimal.Decimal `json:"bill_amount"`
	DueDate            time.Time       `json:"due_date"`
	AmountAfterDueDate decimal.Decimal `json:"amount_after_due_date"`
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	Arrears            decimal.Decimal `json:"arrears_amount"`
	FixedFee           decimal.Decimal `json:"fixed_fee_amount"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`

	Tariffs       []TariffCharge     `json:"tariffs"`
	Taxes         []TaxRule          `json:"taxes"`
	Subsidies     []SubsidyRule      `json:"subsidies"`
	FixedCharges  []FixedChargeRule  `json:"fixed_fee"`
	PreviousBills []BillHistoryEntry `json:"bills_prev"`
}
