package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Campaign ...
type Campaign struct {
	ID           int64  `db:"id"`
	AdvertiserID string `db:"advertiser_id"`
	Title        string `db:"title"`
	Description  string `db:"description"`

	TotalSlots     int64           `db:"total_slots"`
	RemainingSlots int64           `db:"remaining_slots"`
	RewardPerPost  decimal.Decimal `db:"reward_per_post"`

	Status CampaignStatus `db:"status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CampaignStatus ...
type CampaignStatus int

const (
	// CampaignStatusPending ...
	CampaignStatusPending CampaignStatus = 1

	// CampaignStatusActive ...
	CampaignStatusActive CampaignStatus = 2

	// CampaignStatusClosed no more reservations, existing submissions continue
	CampaignStatusClosed CampaignStatus = 3
)

func (s CampaignStatus) String() string {
	switch s {
	case CampaignStatusPending:
		return "pending"
	case CampaignStatusActive:
		return "active"
	case CampaignStatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// SlotsInUse returns the number of slots held or spent by submissions
func (c Campaign) SlotsInUse() int64 {
	return c.TotalSlots - c.RemainingSlots
}
