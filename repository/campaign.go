package repository

import (
	"context"
	"github.com/QuangTung97/campaign-ledger/model"
)

// Campaign ...
type Campaign interface {
	GetCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)
	InsertCampaign(ctx context.Context, campaign model.Campaign) (int64, error)
	UpdateCampaignStatus(ctx context.Context, campaignID int64, status model.CampaignStatus) error
	ListOpenCampaigns(ctx context.Context, limit uint64) ([]model.Campaign, error)

	// ReserveSlot decrements remaining slots, returns false when the campaign is closed or has no slot left
	ReserveSlot(ctx context.Context, campaignID int64) (bool, error)
	// ReleaseSlot gives back a slot, never above total slots
	ReleaseSlot(ctx context.Context, campaignID int64) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const campaignColumns = `id, advertiser_id, title, description,
	total_slots, remaining_slots, reward_per_post,
	status, created_at, updated_at`

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE id = ?`

	var result model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &result, query, campaignID)
	return result, wrapError(err)
}

// InsertCampaign ...
func (c *campaignImpl) InsertCampaign(ctx context.Context, campaign model.Campaign) (int64, error) {
	query := `
INSERT INTO campaign (
	advertiser_id, title, description,
	total_slots, remaining_slots, reward_per_post, status
) VALUES (
	:advertiser_id, :title, :description,
	:total_slots, :remaining_slots, :reward_per_post, :status
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	if err != nil {
		return 0, wrapError(err)
	}
	return result.LastInsertId()
}

// UpdateCampaignStatus ...
func (c *campaignImpl) UpdateCampaignStatus(
	ctx context.Context, campaignID int64, status model.CampaignStatus,
) error {
	query := `UPDATE campaign SET status = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, campaignID)
	return wrapError(err)
}

// ListOpenCampaigns returns campaigns that are not closed and still have slots
func (c *campaignImpl) ListOpenCampaigns(ctx context.Context, limit uint64) ([]model.Campaign, error) {
	query := `
SELECT ` + campaignColumns + ` FROM campaign
WHERE status <> ? AND remaining_slots > 0
ORDER BY id DESC LIMIT ?
`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, model.CampaignStatusClosed, limit)
	return result, wrapError(err)
}

// ReserveSlot ...
func (c *campaignImpl) ReserveSlot(ctx context.Context, campaignID int64) (bool, error) {
	query := `
UPDATE campaign SET remaining_slots = remaining_slots - 1
WHERE id = ? AND remaining_slots > 0 AND status <> ?
`
	result, err := GetTx(ctx).ExecContext(ctx, query, campaignID, model.CampaignStatusClosed)
	if err != nil {
		return false, wrapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// ReleaseSlot ...
func (c *campaignImpl) ReleaseSlot(ctx context.Context, campaignID int64) error {
	query := `
UPDATE campaign SET remaining_slots = LEAST(remaining_slots + 1, total_slots)
WHERE id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, campaignID)
	return wrapError(err)
}
