package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusFullyPaid     PaymentStatus = "Fully Paid"
	PaymentStatusPartiallyPaid PaymentStatus = "Partially Paid"
	// PaymentStatusUnpaid marks history entries for bills with no recorded payment.
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

type Payment struct {
	BillID          int32           `json:"bill_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethodID int32           `json:"payment_method_id"`
}

type PaymentReceipt struct {
	BillID                   int32           `json:"bill_id"`
	Amount                   decimal.Decimal `json:"amount"`
	PaymentMethodID          int32           `json:"payment_method_id"`
	PaymentMethodDescription string          `json:"payment_method_description"`
	PaymentDate              time.Time       `json:"payment_date"`
	Status                   PaymentStatus   `json:"payment_status"`
	AppliedAmount            decimal.Decimal `json:"applied_amount"`
	OutstandingAmount        decimal.Decimal `json:"outstanding_amount"`
}
