package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"backoffice.app/billing/repository/adjustments"
	"backoffice.app/billing/repository/bills"
	"backoffice.app/billing/repository/customers"
	"backoffice.app/billing/repository/payments"
	"backoffice.app/billing/repository/pricing"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository combines all domain-specific repositories
type Repository struct {
	Bills       bills.Querier
	Customers   customers.Querier
	Pricing     pricing.Querier
	Payments    payments.Querier
	Adjustments adjustments.Querier
}

// NewRepository creates a new Repository with all domain queriers bound to db.
// Pass a pgx.Tx to get a repository scoped to that transaction.
func NewRepository(db DBTX) *Repository {
	return &Repository{
		Bills:       bills.New(db),
		Customers:   customers.New(db),
		Pricing:     pricing.New(db),
		Payments:    payments.New(db),
		Adjustments: adjustments.New(db),
	}
}
