package ledger

import (
	"database/sql"
	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/shopspring/decimal"
	"time"
)

// Event triggers a submission transition
type Event int

const (
	// EventReserve ...
	EventReserve Event = iota + 1
	// EventApprove ...
	EventApprove
	// EventReject ...
	EventReject
	// EventRequestRevision ...
	EventRequestRevision
	// EventResubmit ...
	EventResubmit
	// EventExpire timer driven, no human actor
	EventExpire
)

func (e Event) String() string {
	switch e {
	case EventReserve:
		return "reserve"
	case EventApprove:
		return "approve"
	case EventReject:
		return "reject"
	case EventRequestRevision:
		return "request_revision"
	case EventResubmit:
		return "resubmit"
	case EventExpire:
		return "expire"
	default:
		return "unknown"
	}
}

func (e Event) operation() model.Operation {
	switch e {
	case EventReserve:
		return model.OperationReserve
	case EventApprove:
		return model.OperationApprove
	case EventReject:
		return model.OperationReject
	case EventRequestRevision:
		return model.OperationRequestRevision
	default:
		return model.OperationResubmit
	}
}

// Transition is the result of applying an event, Submission is the new state
// with Version still equal to the stored one
type Transition struct {
	Event Event
	From  model.SubmissionStatus
	To    model.SubmissionStatus

	Submission  model.Submission
	ReleaseSlot bool
	EventType   model.EventType
	OccurredAt  time.Time
}

type actionRequest struct {
	event   Event
	actorID string
	// link is the raw resubmitted url, validated only once the transition is known to be legal
	link string
	now  time.Time
}

func checkReservation(campaign model.Campaign, creatorID string) error {
	if creatorID == "" {
		return &Error{Kind: KindNotAuthorized, CampaignID: campaign.ID}
	}
	if creatorID == campaign.AdvertiserID {
		return &Error{Kind: KindSelfParticipation, CampaignID: campaign.ID}
	}
	if campaign.Status == model.CampaignStatusClosed {
		return &Error{Kind: KindCampaignClosed, CampaignID: campaign.ID}
	}
	return nil
}

func newReservation(campaign model.Campaign, creatorID string, link Link, now time.Time) Transition {
	return Transition{
		Event: EventReserve,
		To:    model.SubmissionStatusPending,
		Submission: model.Submission{
			CampaignID:     campaign.ID,
			CreatorID:      creatorID,
			SubmissionLink: link.URL,
			Platform:       link.Platform,
			Status:         model.SubmissionStatusPending,
			SubmittedAt:    now,
			Version:        1,
		},
		EventType:  model.EventTypeSubmissionReserved,
		OccurredAt: now,
	}
}

func payout(campaign model.Campaign) decimal.NullDecimal {
	return decimal.NewNullDecimal(campaign.RewardPerPost)
}

// applyExpiry returns false when no window of the submission has elapsed at now
func applyExpiry(sub model.Submission, campaign model.Campaign, now time.Time) (Transition, bool) {
	deadline, ok := Deadline(sub)
	if !ok || !IsExpired(deadline, now) {
		return Transition{}, false
	}

	t := Transition{
		Event:      EventExpire,
		From:       sub.Status,
		OccurredAt: now,
	}

	next := sub
	if sub.Status == model.SubmissionStatusPending {
		next.Status = model.SubmissionStatusAutoPaid
		next.AutoPaid = true
		next.ApprovedAt = sql.NullTime{Valid: true, Time: now}
		next.PayoutAmount = payout(campaign)
		t.EventType = model.EventTypeSubmissionAutoPaid
	} else {
		next.Status = model.SubmissionStatusRejected
		t.ReleaseSlot = true
		t.EventType = model.EventTypeRevisionExpired
	}

	t.To = next.Status
	t.Submission = next
	return t, true
}

func isAuthorized(sub model.Submission, campaign model.Campaign, req actionRequest) bool {
	if req.actorID == "" {
		return false
	}
	if req.event == EventResubmit {
		return req.actorID == sub.CreatorID
	}
	return req.actorID == campaign.AdvertiserID
}

// applyAction evaluates a human event in order: terminal status, actor, expiry, legality.
// When a window has elapsed the expiry transition is returned together with a StaleAction error.
func applyAction(sub model.Submission, campaign model.Campaign, req actionRequest) (Transition, error) {
	if sub.Status.IsTerminal() {
		return Transition{}, submissionError(KindInvalidTransition, sub)
	}

	if !isAuthorized(sub, campaign, req) {
		return Transition{}, submissionError(KindNotAuthorized, sub)
	}

	if t, expired := applyExpiry(sub, campaign, req.now); expired {
		deadline, _ := Deadline(sub)
		err := submissionError(KindStaleAction, t.Submission)
		err.Deadline = deadline
		return t, err
	}

	from := sub.Status
	next := sub
	t := Transition{
		Event:      req.event,
		From:       from,
		OccurredAt: req.now,
	}

	switch {
	case req.event == EventApprove && from == model.SubmissionStatusPending:
		next.Status = model.SubmissionStatusApproved
		next.ApprovedAt = sql.NullTime{Valid: true, Time: req.now}
		next.PayoutAmount = payout(campaign)
		t.EventType = model.EventTypeSubmissionApproved

	case req.event == EventReject && from == model.SubmissionStatusPending:
		next.Status = model.SubmissionStatusRejected
		t.ReleaseSlot = true
		t.EventType = model.EventTypeSubmissionRejected

	case req.event == EventRequestRevision && from == model.SubmissionStatusPending:
		next.Status = model.SubmissionStatusRevisionRequested
		next.RevisionRequestedAt = sql.NullTime{Valid: true, Time: req.now}
		t.EventType = model.EventTypeRevisionRequested

	case req.event == EventResubmit && from == model.SubmissionStatusRevisionRequested:
		link, err := ValidateLink(req.link)
		if err != nil {
			e := submissionError(KindInvalidLink, sub)
			e.Err = err
			return Transition{}, e
		}
		next.Status = model.SubmissionStatusPending
		next.SubmissionLink = link.URL
		next.Platform = link.Platform
		next.SubmittedAt = req.now
		next.RevisionRequestedAt = sql.NullTime{}
		t.EventType = model.EventTypeSubmissionResubmitted

	default:
		return Transition{}, submissionError(KindInvalidTransition, sub)
	}

	t.To = next.Status
	t.Submission = next
	return t, nil
}
