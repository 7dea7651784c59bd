package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Transactor runs repository work atomically.
type Transactor struct {
	db TxBeginner
}

// NewTransactor returns nil when db is nil.
func NewTransactor(db TxBeginner) *Transactor {
	if db == nil {
		return nil
	}
	return &Transactor{db: db}
}

// InTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise. A panic in fn rolls back before propagating.
func (t *Transactor) InTx(ctx context.Context, fn func(DBTX) error) error {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
