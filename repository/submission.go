package repository

import (
	"context"
	"database/sql"
	"github.com/QuangTung97/campaign-ledger/model"
	"time"
)

// ExpiredQuery selects open submissions whose timers have elapsed
type ExpiredQuery struct {
	CampaignID sql.NullInt64
	AfterID    int64

	// pending submissions with submitted_at <= SubmittedBefore
	SubmittedBefore time.Time
	// revision requested submissions with revision_requested_at <= RevisionRequestedBefore
	RevisionRequestedBefore time.Time

	Limit uint64
}

// Submission ...
type Submission interface {
	InsertSubmission(ctx context.Context, sub model.Submission) (int64, error)

	GetSubmission(ctx context.Context, id int64) (model.Submission, error)
	GetSubmissionForUpdate(ctx context.Context, id int64) (model.Submission, error)
	FindOpenSubmission(ctx context.Context, campaignID int64, creatorID string) (model.NullSubmission, error)

	// UpdateSubmission writes every mutable column when the stored version equals sub.Version,
	// returns ErrConflict otherwise. The stored version is incremented.
	UpdateSubmission(ctx context.Context, sub model.Submission) error

	ListSubmissionsByCreator(ctx context.Context, creatorID string) ([]model.Submission, error)
	ListSubmissionsByCampaign(
		ctx context.Context, campaignID int64, status model.SubmissionStatus,
	) ([]model.Submission, error)
	ListSubmissionsByAdvertiser(
		ctx context.Context, advertiserID string, status model.SubmissionStatus,
	) ([]model.Submission, error)
	ListPaidSubmissionsByCreator(ctx context.Context, creatorID string) ([]model.Submission, error)

	FindExpiredSubmissionIDs(ctx context.Context, query ExpiredQuery) ([]int64, error)
}

type submissionImpl struct {
}

// NewSubmission ...
func NewSubmission() Submission {
	return &submissionImpl{}
}

const submissionColumns = `id, campaign_id, creator_id, submission_link, platform,
	status, submitted_at, revision_requested_at, approved_at,
	payout_amount, auto_paid, version, created_at, updated_at`

// InsertSubmission ...
func (s *submissionImpl) InsertSubmission(ctx context.Context, sub model.Submission) (int64, error) {
	query := `
INSERT INTO campaign_submission (
	campaign_id, creator_id, submission_link, platform,
	status, submitted_at, revision_requested_at, approved_at,
	payout_amount, auto_paid, version
) VALUES (
	:campaign_id, :creator_id, :submission_link, :platform,
	:status, :submitted_at, :revision_requested_at, :approved_at,
	:payout_amount, :auto_paid, :version
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, sub)
	if err != nil {
		return 0, wrapError(err)
	}
	return result.LastInsertId()
}

// GetSubmission ...
func (s *submissionImpl) GetSubmission(ctx context.Context, id int64) (model.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM campaign_submission WHERE id = ?`

	var result model.Submission
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	return result, wrapError(err)
}

// GetSubmissionForUpdate ...
func (s *submissionImpl) GetSubmissionForUpdate(ctx context.Context, id int64) (model.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM campaign_submission WHERE id = ? FOR UPDATE`

	var result model.Submission
	err := GetTx(ctx).GetContext(ctx, &result, query, id)
	return result, wrapError(err)
}

// FindOpenSubmission ...
func (s *submissionImpl) FindOpenSubmission(
	ctx context.Context, campaignID int64, creatorID string,
) (model.NullSubmission, error) {
	query := `
SELECT ` + submissionColumns + ` FROM campaign_submission
WHERE campaign_id = ? AND creator_id = ? AND status IN (?, ?)
FOR UPDATE
`
	var result []model.Submission
	err := GetTx(ctx).SelectContext(ctx, &result, query, campaignID, creatorID,
		model.SubmissionStatusPending, model.SubmissionStatusRevisionRequested)
	if err != nil {
		return model.NullSubmission{}, wrapError(err)
	}
	if len(result) == 0 {
		return model.NullSubmission{}, nil
	}
	return model.NullSubmission{
		Valid:      true,
		Submission: result[0],
	}, nil
}

// UpdateSubmission ...
func (s *submissionImpl) UpdateSubmission(ctx context.Context, sub model.Submission) error {
	query := `
UPDATE campaign_submission SET
	submission_link = :submission_link,
	platform = :platform,
	status = :status,
	submitted_at = :submitted_at,
	revision_requested_at = :revision_requested_at,
	approved_at = :approved_at,
	payout_amount = :payout_amount,
	auto_paid = :auto_paid,
	version = version + 1
WHERE id = :id AND version = :version
`
	return checkAffected(GetTx(ctx).NamedExecContext(ctx, query, sub))
}

// ListSubmissionsByCreator ...
func (s *submissionImpl) ListSubmissionsByCreator(
	ctx context.Context, creatorID string,
) ([]model.Submission, error) {
	query := `
SELECT ` + submissionColumns + ` FROM campaign_submission
WHERE creator_id = ?
ORDER BY submitted_at DESC, id DESC
`
	var result []model.Submission
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, creatorID)
	return result, wrapError(err)
}

// ListSubmissionsByCampaign filters by status when status is not zero
func (s *submissionImpl) ListSubmissionsByCampaign(
	ctx context.Context, campaignID int64, status model.SubmissionStatus,
) ([]model.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM campaign_submission WHERE campaign_id = ?`
	args := []interface{}{campaignID}
	if status != 0 {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY submitted_at DESC, id DESC`

	var result []model.Submission
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, wrapError(err)
}

// ListSubmissionsByAdvertiser filters by status when status is not zero
func (s *submissionImpl) ListSubmissionsByAdvertiser(
	ctx context.Context, advertiserID string, status model.SubmissionStatus,
) ([]model.Submission, error) {
	query := `
SELECT s.id, s.campaign_id, s.creator_id, s.submission_link, s.platform,
	s.status, s.submitted_at, s.revision_requested_at, s.approved_at,
	s.payout_amount, s.auto_paid, s.version, s.created_at, s.updated_at
FROM campaign_submission s
INNER JOIN campaign c ON c.id = s.campaign_id
WHERE c.advertiser_id = ?`
	args := []interface{}{advertiserID}
	if status != 0 {
		query += ` AND s.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY s.submitted_at DESC, s.id DESC`

	var result []model.Submission
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, wrapError(err)
}

// ListPaidSubmissionsByCreator returns approved and auto paid submissions, latest approval first
func (s *submissionImpl) ListPaidSubmissionsByCreator(
	ctx context.Context, creatorID string,
) ([]model.Submission, error) {
	query := `
SELECT ` + submissionColumns + ` FROM campaign_submission
WHERE creator_id = ? AND status IN (?, ?)
ORDER BY approved_at DESC, id DESC
`
	var result []model.Submission
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, creatorID,
		model.SubmissionStatusApproved, model.SubmissionStatusAutoPaid)
	return result, wrapError(err)
}

// FindExpiredSubmissionIDs ...
func (s *submissionImpl) FindExpiredSubmissionIDs(ctx context.Context, q ExpiredQuery) ([]int64, error) {
	filter := ` AND id > ?`
	pendingArgs := []interface{}{model.SubmissionStatusPending, q.SubmittedBefore, q.AfterID}
	revisionArgs := []interface{}{model.SubmissionStatusRevisionRequested, q.RevisionRequestedBefore, q.AfterID}
	if q.CampaignID.Valid {
		filter += ` AND campaign_id = ?`
		pendingArgs = append(pendingArgs, q.CampaignID.Int64)
		revisionArgs = append(revisionArgs, q.CampaignID.Int64)
	}

	query := `
(SELECT id FROM campaign_submission
WHERE status = ? AND submitted_at <= ?` + filter + `)
UNION ALL
(SELECT id FROM campaign_submission
WHERE status = ? AND revision_requested_at <= ?` + filter + `)
ORDER BY id LIMIT ?
`
	args := append(pendingArgs, revisionArgs...)
	args = append(args, q.Limit)

	var result []int64
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, wrapError(err)
}
