package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is one billing cycle of a connection. There is exactly one bill per
// (connection, billing month, billing year).
type Bill struct {
	ID                 int32           `json:"id"`
	ConnectionID       string          `json:"connection_id"`
	Period             Period          `json:"period"`
	IssueDate          time.Time       `json:"issue_date"`
	DueDate            time.Time       `json:"due_date"`
	NetPeakUnits       decimal.Decimal `json:"net_peak_units"`
	NetOffPeakUnits    decimal.Decimal `json:"net_off_peak_units"`
	ImportPeakUnits    decimal.Decimal `json:"import_peak_units"`
	ImportOffPeakUnits decimal.Decimal `json:"import_off_peak_units"`
	TotalBeforeDueDate decimal.Decimal `json:"total_before_due_date"`
	TotalAfterDueDate  decimal.Decimal `json:"total_after_due_date"`
	Arrears            decimal.Decimal `json:"arrears"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
}

// BillHistoryEntry is a compact view of a bill used in the previous bills list.
type BillHistoryEntry struct {
	BillID    int32           `json:"bill_id"`
	Period    Period          `json:"period"`
	Label     string          `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	IssueDate time.Time       `json:"issue_date"`
	DueDate   time.Time       `json:"due_date"`
	Status    PaymentStatus   `json:"status"`
}
