package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"backoffice.app/billing/repository"
	"backoffice.app/billing/repository/bills"
	"backoffice.app/pkg/errs"
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// BillFunc runs inside a ledger transaction. repo is bound to that transaction.
type BillFunc func(repo *repository.Repository, bill bills.Bill) error

// ReadFunc runs inside a read-only snapshot.
type ReadFunc func(repo *repository.Repository) error

// Ledger owns every transaction boundary of the billing core
type Ledger interface {
	// ExecuteWithLock locks the bill row (SELECT ... FOR UPDATE) and runs fn in the same
	// transaction. No other writer can touch the bill until fn returns.
	ExecuteWithLock(ctx context.Context, billID int32, fn BillFunc) error

	// ExecuteWithLedgerLock takes the adjustment ledger lock, loads the bill and runs fn.
	// The bill row itself is not locked.
	ExecuteWithLedgerLock(ctx context.Context, billID int32, fn BillFunc) error

	// ExecuteReadOnly runs fn against a repeatable-read, read-only snapshot.
	ExecuteReadOnly(ctx context.Context, fn ReadFunc) error
}

// BillLedger implements Ledger on a pgx pool. It holds no per-transaction state,
// so one instance is shared by all requests.
type BillLedger struct {
	db            TxBeginner
	logger        *zap.Logger
	newRepository func(db repository.DBTX) *repository.Repository
}

var _ Ledger = (*BillLedger)(nil)

// NewBillLedger creates a ledger that opens its transactions on db
func NewBillLedger(db TxBeginner, logger *zap.Logger) *BillLedger {
	return &BillLedger{
		db:            db,
		logger:        logger,
		newRepository: repository.NewRepository,
	}
}

// ExecuteWithLock performs the operation with row-level locking and transaction management
func (l *BillLedger) ExecuteWithLock(ctx context.Context, billID int32, fn BillFunc) error {
	return l.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(repo *repository.Repository) error {
		bill, err := repo.Bills.GetBillForUpdate(ctx, billID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "bill not found"}
			}
			l.logger.Error("failed to lock bill", zap.Int32("bill_id", billID), zap.Error(err))
			return &errs.Error{Code: errs.Internal, Message: "failed to lock bill"}
		}
		return fn(repo, bill)
	})
}

// ExecuteWithLedgerLock serializes adjustment writers with a transaction-scoped advisory lock
func (l *BillLedger) ExecuteWithLedgerLock(ctx context.Context, billID int32, fn BillFunc) error {
	return l.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(repo *repository.Repository) error {
		if err := repo.Adjustments.LockAdjustmentLedger(ctx); err != nil {
			l.logger.Error("failed to acquire adjustment ledger lock", zap.Int32("bill_id", billID), zap.Error(err))
			return &errs.Error{Code: errs.Internal, Message: "failed to lock adjustment ledger"}
		}

		bill, err := repo.Bills.GetBill(ctx, billID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return &errs.Error{Code: errs.NotFound, Message: "bill not found"}
			}
			l.logger.Error("failed to load bill", zap.Int32("bill_id", billID), zap.Error(err))
			return &errs.Error{Code: errs.Internal, Message: "failed to load bill"}
		}
		return fn(repo, bill)
	})
}

// ExecuteReadOnly runs fn on a consistent snapshot
func (l *BillLedger) ExecuteReadOnly(ctx context.Context, fn ReadFunc) error {
	return l.inTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// inTx commits only when fn returns nil. Errors, panics and failed commits all roll back.
func (l *BillLedger) inTx(ctx context.Context, opts pgx.TxOptions, fn ReadFunc) (err error) {
	tx, err := l.db.BeginTx(ctx, opts)
	if err != nil {
		l.logger.Error("failed to start transaction", zap.Error(err))
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("transaction aborted by panic", zap.Any("panic", r))
			err = &errs.Error{Code: errs.Unknown, Message: "an unexpected error occurred"}
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			l.logger.Warn("failed to roll back transaction", zap.Error(rbErr))
		}
	}()

	if err := fn(l.newRepository(tx)); err != nil {
		return l.storageError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		l.logger.Error("failed to commit transaction", zap.Error(err))
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}
	return nil
}

// storageError passes coded errors through and hides raw driver errors behind a storage failure.
func (l *BillLedger) storageError(err error) error {
	var coded *errs.Error
	if errors.As(err, &coded) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		l.logger.Error("database error",
			zap.String("sqlstate", pgErr.Code),
			zap.String("constraint", pgErr.ConstraintName),
			zap.Error(err))
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &errs.Error{Code: errs.Internal, Message: "an error occurred: conflicting write"}
		case pgerrcode.DeadlockDetected, pgerrcode.SerializationFailure, pgerrcode.LockNotAvailable:
			return &errs.Error{Code: errs.Internal, Message: "an error occurred: concurrent update"}
		}
		return &errs.Error{Code: errs.Internal, Message: "an error occurred"}
	}

	l.logger.Error("transaction failed", zap.Error(err))
	return &errs.Error{Code: errs.Internal, Message: "an error occurred"}
}
