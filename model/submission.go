package model

import (
	"database/sql"
	"github.com/shopspring/decimal"
	"time"
)

// Submission ...
type Submission struct {
	ID         int64  `db:"id"`
	CampaignID int64  `db:"campaign_id"`
	CreatorID  string `db:"creator_id"`

	SubmissionLink string   `db:"submission_link"`
	Platform       Platform `db:"platform"`

	Status              SubmissionStatus `db:"status"`
	SubmittedAt         time.Time        `db:"submitted_at"`
	RevisionRequestedAt sql.NullTime     `db:"revision_requested_at"`
	ApprovedAt          sql.NullTime     `db:"approved_at"`

	PayoutAmount decimal.NullDecimal `db:"payout_amount"`
	AutoPaid     bool                `db:"auto_paid"`

	Version int64 `db:"version"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullSubmission ...
type NullSubmission struct {
	Valid      bool
	Submission Submission
}

// SubmissionStatus ...
type SubmissionStatus int

const (
	// SubmissionStatusPending waiting for the advertiser, auto payout window running
	SubmissionStatusPending SubmissionStatus = 1

	// SubmissionStatusRevisionRequested waiting for the creator, revision window running
	SubmissionStatusRevisionRequested SubmissionStatus = 2

	// SubmissionStatusApproved ...
	SubmissionStatusApproved SubmissionStatus = 3

	// SubmissionStatusRejected ...
	SubmissionStatusRejected SubmissionStatus = 4

	// SubmissionStatusAutoPaid ...
	SubmissionStatusAutoPaid SubmissionStatus = 5
)

var submissionStatusNames = map[SubmissionStatus]string{
	SubmissionStatusPending:           "pending",
	SubmissionStatusRevisionRequested: "revision_requested",
	SubmissionStatusApproved:          "approved",
	SubmissionStatusRejected:          "rejected",
	SubmissionStatusAutoPaid:          "auto_paid",
}

func (s SubmissionStatus) String() string {
	name, ok := submissionStatusNames[s]
	if !ok {
		return "unknown"
	}
	return name
}

// ParseSubmissionStatus returns false for unknown names
func ParseSubmissionStatus(name string) (SubmissionStatus, bool) {
	for status, n := range submissionStatusNames {
		if n == name {
			return status, true
		}
	}
	return 0, false
}

// IsTerminal ...
func (s SubmissionStatus) IsTerminal() bool {
	switch s {
	case SubmissionStatusApproved, SubmissionStatusRejected, SubmissionStatusAutoPaid:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the submission is holding a slot without being paid
func (s SubmissionStatus) IsOpen() bool {
	return s == SubmissionStatusPending || s == SubmissionStatusRevisionRequested
}

// IsPaid ...
func (s SubmissionStatus) IsPaid() bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusAutoPaid
}

// Platform ...
type Platform int

const (
	// PlatformUnknown ...
	PlatformUnknown Platform = 0

	// PlatformYouTube ...
	PlatformYouTube Platform = 1

	// PlatformInstagram ...
	PlatformInstagram Platform = 2

	// PlatformTikTok ...
	PlatformTikTok Platform = 3

	// PlatformTwitter covers both twitter.com and x.com
	PlatformTwitter Platform = 4

	// PlatformFacebook ...
	PlatformFacebook Platform = 5

	// PlatformVimeo ...
	PlatformVimeo Platform = 6

	// PlatformLinkedIn ...
	PlatformLinkedIn Platform = 7
)

func (p Platform) String() string {
	switch p {
	case PlatformYouTube:
		return "youtube"
	case PlatformInstagram:
		return "instagram"
	case PlatformTikTok:
		return "tiktok"
	case PlatformTwitter:
		return "twitter"
	case PlatformFacebook:
		return "facebook"
	case PlatformVimeo:
		return "vimeo"
	case PlatformLinkedIn:
		return "linkedin"
	default:
		return "unknown"
	}
}
