package model

import (
	"fmt"
	"time"
)

// Period identifies one billing cycle.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (p Period) Valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 1900 && p.Year <= 9999
}

// Label renders the period the way bill history shows it, e.g. "3-2024".
func (p Period) Label() string {
	return fmt.Sprintf("%d-%d", p.Month, p.Year)
}

// Start returns the first day of the period in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the period in UTC.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}
