package ledger

import (
	"fmt"
	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"time"
)

// newLedgerEvent builds the outbox row for a transition, the payload is a protobuf encoded structpb.Struct
func newLedgerEvent(t Transition) (model.LedgerEvent, error) {
	sub := t.Submission
	eventID := uuid.NewString()

	fields := map[string]interface{}{
		"event_id":      eventID,
		"type":          t.EventType.String(),
		"event":         t.Event.String(),
		"submission_id": sub.ID,
		"campaign_id":   sub.CampaignID,
		"creator_id":    sub.CreatorID,
		"to":            t.To.String(),
		"link":          sub.SubmissionLink,
		"occurred_at":   t.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if t.From != 0 {
		fields["from"] = t.From.String()
	}

	e := model.LedgerEvent{
		EventID:      eventID,
		Type:         t.EventType,
		SubmissionID: sub.ID,
		CampaignID:   sub.CampaignID,
		CreatorID:    sub.CreatorID,
		Status:       t.To,
		CreatedAt:    t.OccurredAt,
	}
	if t.EventType.IsPayout() {
		e.Amount = sub.PayoutAmount
		fields["amount"] = sub.PayoutAmount.Decimal.String()
		fields["auto_paid"] = sub.AutoPaid
	}

	payload, err := structpb.NewStruct(fields)
	if err != nil {
		return model.LedgerEvent{}, fmt.Errorf("build event payload: %w", err)
	}
	data, err := proto.Marshal(payload)
	if err != nil {
		return model.LedgerEvent{}, fmt.Errorf("encode event payload: %w", err)
	}
	e.Data = data
	return e, nil
}

// DecodeEventPayload ...
func DecodeEventPayload(data []byte) (map[string]interface{}, error) {
	var payload structpb.Struct
	if err := proto.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload.AsMap(), nil
}
