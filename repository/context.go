package repository

import (
	"context"
	"github.com/jmoiron/sqlx"
)

type txKey struct{}
type readonlyKey struct{}

// InTransaction reports whether ctx was created by Provider.Transact
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return ok
}

// withTx makes both writes and reads of the repositories go through tx
func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	ctx = context.WithValue(ctx, txKey{}, tx)
	return withReadonly(ctx, tx)
}

func withReadonly(ctx context.Context, db Readonly) context.Context {
	return context.WithValue(ctx, readonlyKey{}, db)
}

// GetTx panics when called outside Provider.Transact, writes never run on the bare pool
func GetTx(ctx context.Context) Transaction {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		panic("repository: write outside of Provider.Transact")
	}
	return tx
}

// GetReadonly inside a transaction reads through the transaction, so locked rows are seen
func GetReadonly(ctx context.Context) Readonly {
	db, ok := ctx.Value(readonlyKey{}).(Readonly)
	if !ok {
		panic("repository: read without Provider.Readonly or Provider.Transact")
	}
	return db
}
