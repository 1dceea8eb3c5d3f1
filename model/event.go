package model

import (
	"database/sql"
	"github.com/shopspring/decimal"
	"time"
)

// LedgerEvent is an outbox row written in the same transaction as the transition it describes
type LedgerEvent struct {
	ID      int64     `db:"id"`
	EventID string    `db:"event_id"`
	Type    EventType `db:"type"`

	SubmissionID int64            `db:"submission_id"`
	CampaignID   int64            `db:"campaign_id"`
	CreatorID    string           `db:"creator_id"`
	Status       SubmissionStatus `db:"status"`

	Amount decimal.NullDecimal `db:"amount"`
	Data   []byte              `db:"data"`

	CreatedAt   time.Time    `db:"created_at"`
	PublishedAt sql.NullTime `db:"published_at"`
}

// EventType ...
type EventType int

const (
	// EventTypeSubmissionReserved ...
	EventTypeSubmissionReserved EventType = 1

	// EventTypeSubmissionApproved carries a payout
	EventTypeSubmissionApproved EventType = 2

	// EventTypeRevisionRequested ...
	EventTypeRevisionRequested EventType = 3

	// EventTypeSubmissionRejected ...
	EventTypeSubmissionRejected EventType = 4

	// EventTypeSubmissionResubmitted ...
	EventTypeSubmissionResubmitted EventType = 5

	// EventTypeSubmissionAutoPaid carries a payout
	EventTypeSubmissionAutoPaid EventType = 6

	// EventTypeRevisionExpired rejection forced by the revision window
	EventTypeRevisionExpired EventType = 7
)

func (t EventType) String() string {
	switch t {
	case EventTypeSubmissionReserved:
		return "submission.reserved"
	case EventTypeSubmissionApproved:
		return "submission.approved"
	case EventTypeRevisionRequested:
		return "submission.revision_requested"
	case EventTypeSubmissionRejected:
		return "submission.rejected"
	case EventTypeSubmissionResubmitted:
		return "submission.resubmitted"
	case EventTypeSubmissionAutoPaid:
		return "submission.auto_paid"
	case EventTypeRevisionExpired:
		return "submission.revision_expired"
	default:
		return "unknown"
	}
}

// IsPayout ...
func (t EventType) IsPayout() bool {
	return t == EventTypeSubmissionApproved || t == EventTypeSubmissionAutoPaid
}

// IdempotencyRecord ...
type IdempotencyRecord struct {
	Key          string    `db:"idem_key"`
	Operation    Operation `db:"operation"`
	RequestHash  uint32    `db:"request_hash"`
	SubmissionID int64     `db:"submission_id"`

	CreatedAt time.Time `db:"created_at"`
}

// NullIdempotencyRecord ...
type NullIdempotencyRecord struct {
	Valid  bool
	Record IdempotencyRecord
}

// Operation identifies the facade call an idempotency key belongs to
type Operation int

const (
	// OperationReserve ...
	OperationReserve Operation = 1

	// OperationApprove ...
	OperationApprove Operation = 2

	// OperationReject ...
	OperationReject Operation = 3

	// OperationRequestRevision ...
	OperationRequestRevision Operation = 4

	// OperationResubmit ...
	OperationResubmit Operation = 5
)
