package repository

import (
	"context"
	"github.com/QuangTung97/campaign-ledger/model"
)

// Idempotency stores the submission produced by a keyed request
type Idempotency interface {
	GetIdempotencyRecord(ctx context.Context, key string) (model.NullIdempotencyRecord, error)
	// InsertIdempotencyRecord returns ErrConflict when the key was taken concurrently
	InsertIdempotencyRecord(ctx context.Context, record model.IdempotencyRecord) error
}

type idempotencyImpl struct {
}

// NewIdempotency ...
func NewIdempotency() Idempotency {
	return &idempotencyImpl{}
}

// GetIdempotencyRecord ...
func (i *idempotencyImpl) GetIdempotencyRecord(
	ctx context.Context, key string,
) (model.NullIdempotencyRecord, error) {
	query := `
SELECT idem_key, operation, request_hash, submission_id, created_at
FROM idempotency_key WHERE idem_key = ?
`
	var result []model.IdempotencyRecord
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, key)
	if err != nil {
		return model.NullIdempotencyRecord{}, wrapError(err)
	}
	if len(result) == 0 {
		return model.NullIdempotencyRecord{}, nil
	}
	return model.NullIdempotencyRecord{
		Valid:  true,
		Record: result[0],
	}, nil
}

// InsertIdempotencyRecord ...
func (i *idempotencyImpl) InsertIdempotencyRecord(ctx context.Context, record model.IdempotencyRecord) error {
	query := `
INSERT INTO idempotency_key (idem_key, operation, request_hash, submission_id)
VALUES (:idem_key, :operation, :request_hash, :submission_id)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, record)
	return wrapError(err)
}
