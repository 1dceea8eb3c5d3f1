package repository

import (
	"context"
	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/jmoiron/sqlx"
	"time"
)

// Event is the transactional outbox
type Event interface {
	InsertEvents(ctx context.Context, events []model.LedgerEvent) error
	ListUnpublishedEvents(ctx context.Context, limit uint64) ([]model.LedgerEvent, error)
	MarkEventsPublished(ctx context.Context, ids []int64, publishedAt time.Time) error
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// InsertEvents ...
func (e *eventImpl) InsertEvents(ctx context.Context, events []model.LedgerEvent) error {
	if len(events) == 0 {
		return nil
	}

	query := `
INSERT INTO ledger_event (
	event_id, type, submission_id, campaign_id, creator_id, status,
	amount, data, created_at
) VALUES (
	:event_id, :type, :submission_id, :campaign_id, :creator_id, :status,
	:amount, :data, :created_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, events)
	return wrapError(err)
}

// ListUnpublishedEvents in insertion order
func (e *eventImpl) ListUnpublishedEvents(ctx context.Context, limit uint64) ([]model.LedgerEvent, error) {
	query := `
SELECT id, event_id, type, submission_id, campaign_id, creator_id, status,
	amount, data, created_at, published_at
FROM ledger_event
WHERE published_at IS NULL
ORDER BY id LIMIT ?
`
	var result []model.LedgerEvent
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, limit)
	return result, wrapError(err)
}

// MarkEventsPublished ...
func (e *eventImpl) MarkEventsPublished(ctx context.Context, ids []int64, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(
		`UPDATE ledger_event SET published_at = ? WHERE id IN (?) AND published_at IS NULL`,
		publishedAt, ids)
	if err != nil {
		return err
	}
	_, err = GetTx(ctx).ExecContext(ctx, query, args...)
	return wrapError(err)
}
