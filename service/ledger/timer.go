package ledger

import (
	"database/sql"
	"fmt"
	"github.com/QuangTung97/campaign-ledger/model"
	"strings"
	"time"
)

const (
	// RevisionWindow time a creator has to resubmit after a revision request
	RevisionWindow = 48 * time.Hour

	// AutoPayoutWindow time an advertiser has to act on a pending submission
	AutoPayoutWindow = 7 * 24 * time.Hour
)

// RevisionDeadline only meaningful while the submission is revision_requested
func RevisionDeadline(sub model.Submission) (time.Time, bool) {
	if sub.Status != model.SubmissionStatusRevisionRequested || !sub.RevisionRequestedAt.Valid {
		return time.Time{}, false
	}
	return sub.RevisionRequestedAt.Time.Add(RevisionWindow), true
}

// AutoPayoutDeadline only meaningful while the submission is pending
func AutoPayoutDeadline(sub model.Submission) (time.Time, bool) {
	if sub.Status != model.SubmissionStatusPending {
		return time.Time{}, false
	}
	return sub.SubmittedAt.Add(AutoPayoutWindow), true
}

// Deadline of the window currently running for the submission, false for terminal statuses
func Deadline(sub model.Submission) (time.Time, bool) {
	switch sub.Status {
	case model.SubmissionStatusPending:
		return AutoPayoutDeadline(sub)
	case model.SubmissionStatusRevisionRequested:
		return RevisionDeadline(sub)
	default:
		return time.Time{}, false
	}
}

// Remaining ...
func Remaining(deadline time.Time, now time.Time) time.Duration {
	d := deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// IsExpired ...
func IsExpired(deadline time.Time, now time.Time) bool {
	return !now.Before(deadline)
}

// FormatCountdown formats as "1d 2h 3m 4s", leading zero units are omitted
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	totalSeconds := int64(d / time.Second)
	days := totalSeconds / 86400
	hours := (totalSeconds % 86400) / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if days > 0 || hours > 0 || minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))
	return strings.Join(parts, " ")
}

// Action a human may currently perform on a submission
type Action string

const (
	// ActionApprove ...
	ActionApprove Action = "approve"
	// ActionReject ...
	ActionReject Action = "reject"
	// ActionRequestRevision ...
	ActionRequestRevision Action = "request_revision"
	// ActionResubmit ...
	ActionResubmit Action = "resubmit"
)

// SubmissionView is a submission with its timer state computed at Now
type SubmissionView struct {
	Submission model.Submission
	Now        time.Time

	Deadline  sql.NullTime
	Remaining time.Duration
	Countdown string
	Expired   bool

	AllowedActions []Action
}

// NewSubmissionView ...
func NewSubmissionView(sub model.Submission, now time.Time) SubmissionView {
	view := SubmissionView{
		Submission: sub,
		Now:        now,
	}

	deadline, ok := Deadline(sub)
	if !ok {
		return view
	}

	view.Deadline = sql.NullTime{Valid: true, Time: deadline}
	view.Remaining = Remaining(deadline, now)
	view.Countdown = FormatCountdown(view.Remaining)
	view.Expired = IsExpired(deadline, now)

	if view.Expired {
		return view
	}

	switch sub.Status {
	case model.SubmissionStatusPending:
		view.AllowedActions = []Action{ActionApprove, ActionReject, ActionRequestRevision}
	case model.SubmissionStatusRevisionRequested:
		view.AllowedActions = []Action{ActionResubmit}
	}
	return view
}
