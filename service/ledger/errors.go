package ledger

import (
	"errors"
	"fmt"
	"github.com/QuangTung97/campaign-ledger/model"
	"strings"
	"time"
)

// ErrorKind is the caller facing error code
type ErrorKind int

const (
	// KindSlotUnavailable campaign has no remaining slot
	KindSlotUnavailable ErrorKind = iota + 1

	// KindSelfParticipation creator is the campaign advertiser
	KindSelfParticipation

	// KindInvalidLink link is not an allow-listed content item url
	KindInvalidLink

	// KindNotAuthorized actor is not allowed to trigger the transition
	KindNotAuthorized

	// KindInvalidTransition event is not legal from the current status
	KindInvalidTransition

	// KindStaleAction a timer expired before the action, the expiry transition was applied instead
	KindStaleAction

	// KindPersistenceConflict write conflicts persisted after all retries
	KindPersistenceConflict

	// KindNotFound ...
	KindNotFound

	// KindCampaignClosed ...
	KindCampaignClosed

	// KindInvalidCampaign ...
	KindInvalidCampaign

	// KindIdempotencyConflict the key was used by a different request
	KindIdempotencyConflict
)

var errorKindNames = map[ErrorKind]string{
	KindSlotUnavailable:     "slot_unavailable",
	KindSelfParticipation:   "self_participation",
	KindInvalidLink:         "invalid_link",
	KindNotAuthorized:       "not_authorized",
	KindInvalidTransition:   "invalid_transition",
	KindStaleAction:         "stale_action",
	KindPersistenceConflict: "persistence_conflict",
	KindNotFound:            "not_found",
	KindCampaignClosed:      "campaign_closed",
	KindInvalidCampaign:     "invalid_campaign",
	KindIdempotencyConflict: "idempotency_conflict",
}

func (k ErrorKind) String() string {
	name, ok := errorKindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// Error carries the kind plus the ids and timestamps needed to render a precise message
type Error struct {
	Kind ErrorKind

	SubmissionID int64
	CampaignID   int64
	Status       model.SubmissionStatus
	Deadline     time.Time

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("ledger: ")
	b.WriteString(e.Kind.String())
	if e.SubmissionID != 0 {
		_, _ = fmt.Fprintf(&b, " submission=%d", e.SubmissionID)
	}
	if e.CampaignID != 0 {
		_, _ = fmt.Fprintf(&b, " campaign=%d", e.CampaignID)
	}
	if e.Status != 0 {
		_, _ = fmt.Fprintf(&b, " status=%s", e.Status)
	}
	if !e.Deadline.IsZero() {
		_, _ = fmt.Fprintf(&b, " deadline=%s", e.Deadline.Format(time.RFC3339))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	// ErrSlotUnavailable ...
	ErrSlotUnavailable = &Error{Kind: KindSlotUnavailable}
	// ErrSelfParticipation ...
	ErrSelfParticipation = &Error{Kind: KindSelfParticipation}
	// ErrInvalidLink ...
	ErrInvalidLink = &Error{Kind: KindInvalidLink}
	// ErrNotAuthorized ...
	ErrNotAuthorized = &Error{Kind: KindNotAuthorized}
	// ErrInvalidTransition ...
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	// ErrStaleAction ...
	ErrStaleAction = &Error{Kind: KindStaleAction}
	// ErrPersistenceConflict ...
	ErrPersistenceConflict = &Error{Kind: KindPersistenceConflict}
	// ErrNotFound ...
	ErrNotFound = &Error{Kind: KindNotFound}
	// ErrCampaignClosed ...
	ErrCampaignClosed = &Error{Kind: KindCampaignClosed}
	// ErrInvalidCampaign ...
	ErrInvalidCampaign = &Error{Kind: KindInvalidCampaign}
	// ErrIdempotencyConflict ...
	ErrIdempotencyConflict = &Error{Kind: KindIdempotencyConflict}
)

// KindOf returns zero for errors not produced by the ledger
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func submissionError(kind ErrorKind, sub model.Submission) *Error {
	return &Error{
		Kind:         kind,
		SubmissionID: sub.ID,
		CampaignID:   sub.CampaignID,
		Status:       sub.Status,
	}
}
