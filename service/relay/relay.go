package relay

import (
	"context"
	"strconv"
	"time"

	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/QuangTung97/campaign-ledger/pkg/pubsubclient"
	"github.com/QuangTung97/campaign-ledger/repository"
	"go.uber.org/zap"
)

//go:generate moq -out relay_mocks_test.go . Publisher

// Publisher delivers messages in order, returns the number of leading messages accepted
type Publisher interface {
	Publish(ctx context.Context, msgs []pubsubclient.Message) (int, error)
}

// Relay moves outbox rows to the publisher, at least once
type Relay struct {
	provider  repository.Provider
	eventRepo repository.Event
	publisher Publisher

	batchSize uint64
	interval  time.Duration
	logger    *zap.Logger

	now func() time.Time
}

// New ...
func New(
	provider repository.Provider, eventRepo repository.Event, publisher Publisher,
	batchSize int, interval time.Duration, logger *zap.Logger,
) *Relay {
	if batchSize <= 0 {
		batchSize = 100
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Relay{
		provider:  provider,
		eventRepo: eventRepo,
		publisher: publisher,

		batchSize: uint64(batchSize),
		interval:  interval,
		logger:    logger,

		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// ToMessage ...
func ToMessage(e model.LedgerEvent) pubsubclient.Message {
	attrs := map[string]string{
		"event_id":      e.EventID,
		"event_type":    e.Type.String(),
		"submission_id": strconv.FormatInt(e.SubmissionID, 10),
		"campaign_id":   strconv.FormatInt(e.CampaignID, 10),
		"creator_id":    e.CreatorID,
		"status":        e.Status.String(),
	}
	if e.Amount.Valid {
		attrs["amount"] = e.Amount.Decimal.String()
	}
	return pubsubclient.Message{
		Data:        e.Data,
		Attributes:  attrs,
		OrderingKey: "submission:" + strconv.FormatInt(e.SubmissionID, 10),
	}
}

// RunOnce publishes at most one batch, rows are marked only after the publisher accepted them
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	events, err := r.eventRepo.ListUnpublishedEvents(r.provider.Readonly(ctx), r.batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	msgs := make([]pubsubclient.Message, 0, len(events))
	for _, e := range events {
		msgs = append(msgs, ToMessage(e))
	}

	n, pubErr := r.publisher.Publish(ctx, msgs)
	if n > 0 {
		ids := make([]int64, 0, n)
		for _, e := range events[:n] {
			ids = append(ids, e.ID)
		}

		err := r.provider.Transact(ctx, func(ctx context.Context) error {
			return r.eventRepo.MarkEventsPublished(ctx, ids, r.now())
		})
		if err != nil {
			return 0, err
		}
	}
	return n, pubErr
}

// Run drains the outbox then waits for the next tick, until ctx is done
func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		n, err := r.RunOnce(ctx)
		if err != nil {
			r.logger.Error("relay failed", zap.Int("published", n), zap.Error(err))
		}
		if err == nil && uint64(n) == r.batchSize {
			if ctx.Err() != nil {
				return
			}
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// LogPublisher writes events to the log, used when pubsub is disabled
type LogPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher ...
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish ...
func (p *LogPublisher) Publish(_ context.Context, msgs []pubsubclient.Message) (int, error) {
	for _, m := range msgs {
		p.logger.Info("ledger event",
			zap.String("event_id", m.Attributes["event_id"]),
			zap.String("event_type", m.Attributes["event_type"]),
			zap.String("ordering_key", m.OrderingKey),
		)
	}
	return len(msgs), nil
}
