package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"backoffice.app/billing/model"
)

// ApplicableAmount picks the post-due total only when today is strictly after the
// due date. Both are compared as calendar dates, so paying on the due date still
// uses the pre-due total.
func ApplicableAmount(totalBeforeDue, totalAfterDue decimal.Decimal, dueDate, today time.Time) decimal.Decimal {
	if calendarDate(today).After(calendarDate(dueDate)) {
		return totalAfterDue
	}
	return totalBeforeDue
}

// Classify returns applicable - paid and the resulting status.
func Classify(applicable, paid decimal.Decimal) (decimal.Decimal, model.PaymentStatus) {
	outstanding := applicable.Sub(paid)
	if outstanding.LessThanOrEqual(decimal.Zero) {
		return outstanding, model.PaymentStatusFullyPaid
	}
	return outstanding, model.PaymentStatusPartiallyPaid
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
