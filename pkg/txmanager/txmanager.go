// Package txmanager runs functions inside SERIALIZABLE transactions, storing
// the transaction executor in the context so repositories join it
// transparently. Serialization failures are retried a bounded number of
// times before surfacing to the caller.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Pawel-Truszkowski/SalonManager/pkg/dbmetrics"
)

const maxRetries = 3

// pq error code for serialization_failure.
const serializationFailureCode = "40001"

// TransactionManager begins SERIALIZABLE transactions on a TxBeginner.
type TransactionManager struct {
	db dbmetrics.TxBeginner
}

// NewTransactionManager creates a manager over an instrumented or plain
// beginner (see dbmetrics.Wrap and dbmetrics.NewBeginner).
func NewTransactionManager(db dbmetrics.TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable executes fn inside a SERIALIZABLE transaction. The open
// transaction is injected into the context passed to fn; a serialization
// failure rolls back and retries from scratch.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		lastErr = m.runOnce(ctx, fn)
		if lastErr == nil {
			return nil
		}
		if !isSerializationFailure(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("txmanager: retries exhausted: %w", lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", err)
	}

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("txmanager: rollback after %v: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == serializationFailureCode
}
