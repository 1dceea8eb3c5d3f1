package ledger

import (
	"time"

	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/QuangTung97/campaign-ledger/service/wallet"
)

// CampaignMessage ...
type CampaignMessage struct {
	ID             int64     `json:"id"`
	AdvertiserID   string    `json:"advertiser_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	TotalSlots     int64     `json:"total_slots"`
	RemainingSlots int64     `json:"remaining_slots"`
	RewardPerPost  string    `json:"reward_per_post"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubmissionMessage is a submission with its timer state
type SubmissionMessage struct {
	ID             int64  `json:"id"`
	CampaignID     int64  `json:"campaign_id"`
	CreatorID      string `json:"creator_id"`
	SubmissionLink string `json:"submission_link"`
	Platform       string `json:"platform"`
	Status         string `json:"status"`

	SubmittedAt         time.Time  `json:"submitted_at"`
	RevisionRequestedAt *time.Time `json:"revision_requested_at,omitempty"`
	ApprovedAt          *time.Time `json:"approved_at,omitempty"`
	PayoutAmount        string     `json:"payout_amount,omitempty"`
	AutoPaid            bool       `json:"auto_paid"`
	Version             int64      `json:"version"`

	Deadline         *time.Time `json:"deadline,omitempty"`
	RemainingSeconds int64      `json:"remaining_seconds"`
	Countdown        string     `json:"countdown,omitempty"`
	Expired          bool       `json:"expired"`
	AllowedActions   []string   `json:"allowed_actions"`
}

// CreateCampaignRequest ...
type CreateCampaignRequest struct {
	AdvertiserID  string `json:"advertiser_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	TotalSlots    int64  `json:"total_slots"`
	RewardPerPost string `json:"reward_per_post"`
}

// CampaignActionRequest for activate and close
type CampaignActionRequest struct {
	CampaignID int64  `json:"campaign_id"`
	ActorID    string `json:"actor_id"`
}

// CampaignResponse ...
type CampaignResponse struct {
	Campaign CampaignMessage `json:"campaign"`
}

// ListOpenCampaignsRequest ...
type ListOpenCampaignsRequest struct {
	Limit uint64 `json:"limit"`
}

// ListCampaignsResponse ...
type ListCampaignsResponse struct {
	Campaigns []CampaignMessage `json:"campaigns"`
}

// ReserveSlotRequest ...
type ReserveSlotRequest struct {
	CampaignID     int64  `json:"campaign_id"`
	CreatorID      string `json:"creator_id"`
	Link           string `json:"link"`
	IdempotencyKey string `json:"idempotency_key"`
}

// SubmissionActionRequest for approve, reject and request revision
type SubmissionActionRequest struct {
	SubmissionID   int64  `json:"submission_id"`
	ActorID        string `json:"actor_id"`
	IdempotencyKey string `json:"idempotency_key"`
}

// ResubmitRequest ...
type ResubmitRequest struct {
	SubmissionID   int64  `json:"submission_id"`
	CreatorID      string `json:"creator_id"`
	Link           string `json:"link"`
	IdempotencyKey string `json:"idempotency_key"`
}

// GetSubmissionRequest ...
type GetSubmissionRequest struct {
	SubmissionID int64 `json:"submission_id"`
}

// SubmissionResponse ...
type SubmissionResponse struct {
	Submission SubmissionMessage `json:"submission"`
}

// ListSubmissionsRequest exactly one of the owner fields must be set, status is optional
type ListSubmissionsRequest struct {
	CreatorID    string `json:"creator_id,omitempty"`
	CampaignID   int64  `json:"campaign_id,omitempty"`
	AdvertiserID string `json:"advertiser_id,omitempty"`
	Status       string `json:"status,omitempty"`
}

// ListSubmissionsResponse ...
type ListSubmissionsResponse struct {
	Submissions []SubmissionMessage `json:"submissions"`
}

// SweepExpiredRequest campaign id zero sweeps every campaign
type SweepExpiredRequest struct {
	CampaignID int64 `json:"campaign_id"`
}

// GetWalletRequest ...
type GetWalletRequest struct {
	CreatorID string `json:"creator_id"`
}

// WalletTransactionMessage ...
type WalletTransactionMessage struct {
	SubmissionID int64     `json:"submission_id"`
	CampaignID   int64     `json:"campaign_id"`
	Amount       string    `json:"amount"`
	AutoPaid     bool      `json:"auto_paid"`
	PaidAt       time.Time `json:"paid_at"`
}

// WalletResponse ...
type WalletResponse struct {
	CreatorID    string                     `json:"creator_id"`
	Balance      string                     `json:"balance"`
	Transactions []WalletTransactionMessage `json:"transactions"`
}

func toCampaignMessage(c model.Campaign) CampaignMessage {
	return CampaignMessage{
		ID:             c.ID,
		AdvertiserID:   c.AdvertiserID,
		Title:          c.Title,
		Description:    c.Description,
		TotalSlots:     c.TotalSlots,
		RemainingSlots: c.RemainingSlots,
		RewardPerPost:  c.RewardPerPost.String(),
		Status:         c.Status.String(),
		CreatedAt:      c.CreatedAt,
	}
}

func toCampaignMessages(list []model.Campaign) []CampaignMessage {
	result := make([]CampaignMessage, 0, len(list))
	for _, c := range list {
		result = append(result, toCampaignMessage(c))
	}
	return result
}

func timePtr(t time.Time, valid bool) *time.Time {
	if !valid {
		return nil
	}
	return &t
}

func toSubmissionMessage(view SubmissionView) SubmissionMessage {
	sub := view.Submission
	msg := SubmissionMessage{
		ID:             sub.ID,
		CampaignID:     sub.CampaignID,
		CreatorID:      sub.CreatorID,
		SubmissionLink: sub.SubmissionLink,
		Platform:       sub.Platform.String(),
		Status:         sub.Status.String(),

		SubmittedAt:         sub.SubmittedAt,
		RevisionRequestedAt: timePtr(sub.RevisionRequestedAt.Time, sub.RevisionRequestedAt.Valid),
		ApprovedAt:          timePtr(sub.ApprovedAt.Time, sub.ApprovedAt.Valid),
		AutoPaid:            sub.AutoPaid,
		Version:             sub.Version,

		Deadline:         timePtr(view.Deadline.Time, view.Deadline.Valid),
		RemainingSeconds: int64(view.Remaining / time.Second),
		Countdown:        view.Countdown,
		Expired:          view.Expired,
		AllowedActions:   make([]string, 0, len(view.AllowedActions)),
	}
	if sub.PayoutAmount.Valid {
		msg.PayoutAmount = sub.PayoutAmount.Decimal.String()
	}
	for _, a := range view.AllowedActions {
		msg.AllowedActions = append(msg.AllowedActions, string(a))
	}
	return msg
}

func toSubmissionMessages(list []SubmissionView) []SubmissionMessage {
	result := make([]SubmissionMessage, 0, len(list))
	for _, v := range list {
		result = append(result, toSubmissionMessage(v))
	}
	return result
}

func toWalletResponse(w wallet.Wallet) WalletResponse {
	resp := WalletResponse{
		CreatorID:    w.CreatorID,
		Balance:      w.Balance.StringFixed(2),
		Transactions: make([]WalletTransactionMessage, 0, len(w.Transactions)),
	}
	for _, tx := range w.Transactions {
		resp.Transactions = append(resp.Transactions, WalletTransactionMessage{
			SubmissionID: tx.SubmissionID,
			CampaignID:   tx.CampaignID,
			Amount:       tx.Amount.StringFixed(2),
			AutoPaid:     tx.AutoPaid,
			PaidAt:       tx.PaidAt,
		})
	}
	return resp
}
