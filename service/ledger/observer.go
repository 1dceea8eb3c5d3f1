package ledger

import (
	"context"
	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/shopspring/decimal"
	"time"
)

// ChangeEvent is emitted after a transition has been committed
type ChangeEvent struct {
	SubmissionID int64
	CampaignID   int64
	CreatorID    string

	Event Event
	From  model.SubmissionStatus
	To    model.SubmissionStatus

	PayoutAmount decimal.NullDecimal
	OccurredAt   time.Time
}

// Observer must not block, it runs on the caller goroutine
type Observer interface {
	OnTransition(ctx context.Context, e ChangeEvent)
}

// ObserverFunc ...
type ObserverFunc func(ctx context.Context, e ChangeEvent)

// OnTransition ...
func (f ObserverFunc) OnTransition(ctx context.Context, e ChangeEvent) {
	f(ctx, e)
}

func newChangeEvent(t Transition) ChangeEvent {
	e := ChangeEvent{
		SubmissionID: t.Submission.ID,
		CampaignID:   t.Submission.CampaignID,
		CreatorID:    t.Submission.CreatorID,

		Event: t.Event,
		From:  t.From,
		To:    t.To,

		OccurredAt: t.OccurredAt,
	}
	if t.EventType.IsPayout() {
		e.PayoutAmount = t.Submission.PayoutAmount
	}
	return e
}
