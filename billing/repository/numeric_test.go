package repository

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    pgtype.Numeric
		expected string
	}{
		{
			name:     "two_decimal_places",
			input:    pgtype.Numeric{Int: big.NewInt(123456), Exp: -2, Valid: true},
			expected: "1234.56",
		},
		{
			name:     "positive_exponent",
			input:    pgtype.Numeric{Int: big.NewInt(15), Exp: 2, Valid: true},
			expected: "1500",
		},
		{
			name:     "negative_value",
			input:    pgtype.Numeric{Int: big.NewInt(-2500), Exp: -2, Valid: true},
			expected: "-25",
		},
		{
			name:     "null_is_zero",
			input:    pgtype.Numeric{},
			expected: "0",
		},
		{
			name:     "nan_is_zero",
			input:    pgtype.Numeric{NaN: true, Valid: true},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToDecimal(tt.input).String())
		})
	}
}

func TestToNumeric_RoundTrip(t *testing.T) {
	for _, s := range []string{"0", "0.01", "1234.5678", "-99.99", "1000000"} {
		d := decimal.RequireFromString(s)
		n := ToNumeric(d)

		assert.True(t, n.Valid)
		assert.True(t, d.Equal(ToDecimal(n)), s)
	}
}

func TestToPgDate(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, time.March, 15, 23, 30, 0, 0, loc)

	got := ToPgDate(in)

	assert.True(t, got.Valid)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), got.Time)
	assert.Equal(t, got.Time, ToDate(got))
	assert.True(t, ToDate(pgtype.Date{}).IsZero())
}
