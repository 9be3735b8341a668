package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment is a write-once correction to a bill. IDs are allocated by the
// ledger and are strictly increasing.
type Adjustment struct {
	ID                 int64           `json:"adjustment_id"`
	BillID             int32           `json:"bill_id"`
	OfficerName        string          `json:"officer_name"`
	OfficerDesignation string          `json:"officer_designation"`
	OriginalBillAmount decimal.Decimal `json:"original_bill_amount"`
	AdjustmentAmount   decimal.Decimal `json:"adjustment_amount"`
	Reason             string          `json:"adjustment_reason"`
	AdjustmentDate     time.Time       `json:"adjustment_date"`
}

// AdjustmentRequest is what an officer submits. The ledger assigns ID and date.
type AdjustmentRequest struct {
	BillID             int32
	OfficerName        string
	OfficerDesignation string
	OriginalBillAmount decimal.Decimal
	AdjustmentAmount   decimal.Decimal
	Reason             string
}
