package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/QuangTung97/campaign-ledger/pkg/otellib"
	"github.com/QuangTung97/campaign-ledger/pkg/util"
	"github.com/QuangTung97/campaign-ledger/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"strconv"
	"strings"
	"time"
)

//go:generate otelwrap --out service_wrappers.go . ILedger

// ILedger is the single entry point for campaign and submission changes
type ILedger interface {
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (model.Campaign, error)
	ActivateCampaign(ctx context.Context, input CampaignActionInput) (model.Campaign, error)
	CloseCampaign(ctx context.Context, input CampaignActionInput) (model.Campaign, error)
	ListOpenCampaigns(ctx context.Context, limit uint64) ([]model.Campaign, error)

	ReserveSlot(ctx context.Context, input ReserveInput) (model.Submission, error)
	Approve(ctx context.Context, input ActionInput) (model.Submission, error)
	Reject(ctx context.Context, input ActionInput) (model.Submission, error)
	RequestRevision(ctx context.Context, input ActionInput) (model.Submission, error)
	Resubmit(ctx context.Context, input ResubmitInput) (model.Submission, error)
	SweepExpired(ctx context.Context, campaignID sql.NullInt64) ([]model.Submission, error)

	GetSubmission(ctx context.Context, submissionID int64) (SubmissionView, error)
	ListCreatorSubmissions(ctx context.Context, creatorID string) ([]SubmissionView, error)
	ListCampaignSubmissions(
		ctx context.Context, campaignID int64, status model.SubmissionStatus,
	) ([]SubmissionView, error)
	ListAdvertiserSubmissions(
		ctx context.Context, advertiserID string, status model.SubmissionStatus,
	) ([]SubmissionView, error)
}

// CreateCampaignInput ...
type CreateCampaignInput struct {
	AdvertiserID  string
	Title         string
	Description   string
	TotalSlots    int64
	RewardPerPost decimal.Decimal
}

// CampaignActionInput ...
type CampaignActionInput struct {
	CampaignID int64
	ActorID    string
}

// ReserveInput ...
type ReserveInput struct {
	CampaignID int64
	CreatorID  string
	Link       string

	// IdempotencyKey optional, a retry with the same key returns the same submission
	IdempotencyKey string
}

// ActionInput for approve, reject and request revision
type ActionInput struct {
	SubmissionID   int64
	ActorID        string
	IdempotencyKey string
}

// ResubmitInput ...
type ResubmitInput struct {
	SubmissionID   int64
	CreatorID      string
	Link           string
	IdempotencyKey string
}

// Repositories ...
type Repositories struct {
	Campaign    repository.Campaign
	Submission  repository.Submission
	Event       repository.Event
	Idempotency repository.Idempotency
}

// NewRepositories returns the MySQL implementations
func NewRepositories() Repositories {
	return Repositories{
		Campaign:    repository.NewCampaign(),
		Submission:  repository.NewSubmission(),
		Event:       repository.NewEvent(),
		Idempotency: repository.NewIdempotency(),
	}
}

// Service ...
type Service struct {
	provider        repository.Provider
	campaignRepo    repository.Campaign
	submissionRepo  repository.Submission
	eventRepo       repository.Event
	idempotencyRepo repository.Idempotency

	opts serviceOptions
}

var _ ILedger = &Service{}

// NewService ...
func NewService(provider repository.Provider, repos Repositories, options ...Option) *Service {
	return &Service{
		provider:        provider,
		campaignRepo:    repos.Campaign,
		submissionRepo:  repos.Submission,
		eventRepo:       repos.Event,
		idempotencyRepo: repos.Idempotency,

		opts: newServiceOptions(options...),
	}
}

func (s *Service) now() time.Time {
	return s.opts.clock.Now()
}

// transact retries fn on write conflicts, fn must reset its captured results on every call
func (s *Service) transact(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= s.opts.maxAttempts; attempt++ {
		err = s.provider.Transact(ctx, fn)
		if !errors.Is(err, repository.ErrConflict) {
			return err
		}
		otellib.Extract(ctx).Warn("ledger write conflict",
			zap.Int("attempt", attempt), zap.Error(err))
	}
	return &Error{Kind: KindPersistenceConflict, Err: err}
}

func (s *Service) fail(ctx context.Context, operation string, err error) error {
	if s.opts.metrics != nil {
		s.opts.metrics.observeError(err)
	}

	kind := KindOf(err)
	if kind == 0 || kind == KindPersistenceConflict {
		otellib.Extract(ctx).Error("ledger operation failed",
			zap.String("operation", operation), zap.Error(err))
	} else {
		otellib.Extract(ctx).Debug("ledger operation rejected",
			zap.String("operation", operation), zap.String("kind", kind.String()), zap.Error(err))
	}
	return err
}

func (s *Service) notify(ctx context.Context, changes []Transition) {
	for _, t := range changes {
		e := newChangeEvent(t)
		for _, o := range s.opts.observers {
			o.OnTransition(ctx, e)
		}
	}
}

func (s *Service) getCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	campaign, err := s.campaignRepo.GetCampaign(ctx, campaignID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Campaign{}, &Error{Kind: KindNotFound, CampaignID: campaignID}
	}
	if err != nil {
		return model.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}
	return campaign, nil
}

func (s *Service) lockSubmission(ctx context.Context, submissionID int64) (model.Submission, model.Campaign, error) {
	sub, err := s.submissionRepo.GetSubmissionForUpdate(ctx, submissionID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Submission{}, model.Campaign{}, &Error{Kind: KindNotFound, SubmissionID: submissionID}
	}
	if err != nil {
		return model.Submission{}, model.Campaign{}, fmt.Errorf("get submission: %w", err)
	}

	campaign, err := s.getCampaign(ctx, sub.CampaignID)
	if err != nil {
		return model.Submission{}, model.Campaign{}, err
	}
	return sub, campaign, nil
}

// persist writes the transition, its slot side effect and its outbox row
func (s *Service) persist(ctx context.Context, t *Transition) error {
	if t.Event == EventReserve {
		id, err := s.submissionRepo.InsertSubmission(ctx, t.Submission)
		if err != nil {
			return fmt.Errorf("insert submission: %w", err)
		}
		t.Submission.ID = id
	} else {
		if err := s.submissionRepo.UpdateSubmission(ctx, t.Submission); err != nil {
			return fmt.Errorf("update submission: %w", err)
		}
		t.Submission.Version++
	}

	if t.ReleaseSlot {
		if err := s.campaignRepo.ReleaseSlot(ctx, t.Submission.CampaignID); err != nil {
			return fmt.Errorf("release slot: %w", err)
		}
	}

	event, err := newLedgerEvent(*t)
	if err != nil {
		return err
	}
	if err := s.eventRepo.InsertEvents(ctx, []model.LedgerEvent{event}); err != nil {
		return fmt.Errorf("insert ledger event: %w", err)
	}
	return nil
}

type idempotencyRequest struct {
	key       string
	operation model.Operation
	hash      uint32
}

func newIdempotencyRequest(key string, event Event, fields ...string) idempotencyRequest {
	return idempotencyRequest{
		key:       key,
		operation: event.operation(),
		hash:      util.HashFields(fields...),
	}
}

// replay returns the submission stored for the key, false when the key has not been used
func (s *Service) replay(ctx context.Context, req idempotencyRequest) (model.Submission, bool, error) {
	if req.key == "" {
		return model.Submission{}, false, nil
	}

	record, err := s.idempotencyRepo.GetIdempotencyRecord(ctx, req.key)
	if err != nil {
		return model.Submission{}, false, fmt.Errorf("get idempotency record: %w", err)
	}
	if !record.Valid {
		return model.Submission{}, false, nil
	}
	if record.Record.Operation != req.operation || record.Record.RequestHash != req.hash {
		return model.Submission{}, false, &Error{
			Kind:         KindIdempotencyConflict,
			SubmissionID: record.Record.SubmissionID,
		}
	}

	sub, err := s.submissionRepo.GetSubmission(ctx, record.Record.SubmissionID)
	if err != nil {
		return model.Submission{}, false, fmt.Errorf("get replayed submission: %w", err)
	}
	return sub, true, nil
}

func (s *Service) remember(ctx context.Context, req idempotencyRequest, submissionID int64) error {
	if req.key == "" {
		return nil
	}
	err := s.idempotencyRepo.InsertIdempotencyRecord(ctx, model.IdempotencyRecord{
		Key:          req.key,
		Operation:    req.operation,
		RequestHash:  req.hash,
		SubmissionID: submissionID,
	})
	if err != nil {
		return fmt.Errorf("insert idempotency record: %w", err)
	}
	return nil
}

// CreateCampaign creates a pending campaign with all slots remaining
func (s *Service) CreateCampaign(ctx context.Context, input CreateCampaignInput) (model.Campaign, error) {
	if err := validateCampaignInput(input); err != nil {
		return model.Campaign{}, s.fail(ctx, "CreateCampaign", err)
	}

	var result model.Campaign
	err := s.transact(ctx, func(ctx context.Context) error {
		id, err := s.campaignRepo.InsertCampaign(ctx, model.Campaign{
			AdvertiserID:   input.AdvertiserID,
			Title:          strings.TrimSpace(input.Title),
			Description:    input.Description,
			TotalSlots:     input.TotalSlots,
			RemainingSlots: input.TotalSlots,
			RewardPerPost:  input.RewardPerPost,
			Status:         model.CampaignStatusPending,
		})
		if err != nil {
			return fmt.Errorf("insert campaign: %w", err)
		}

		result, err = s.getCampaign(ctx, id)
		return err
	})
	if err != nil {
		return model.Campaign{}, s.fail(ctx, "CreateCampaign", err)
	}
	return result, nil
}

func validateCampaignInput(input CreateCampaignInput) error {
	invalid := func(msg string) error {
		return &Error{Kind: KindInvalidCampaign, Err: errors.New(msg)}
	}

	if input.AdvertiserID == "" {
		return invalid("advertiser id is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return invalid("title is required")
	}
	if input.TotalSlots < 1 {
		return invalid("total slots must be at least 1")
	}
	if input.RewardPerPost.IsNegative() {
		return invalid("reward per post must not be negative")
	}
	return nil
}

// ActivateCampaign ...
func (s *Service) ActivateCampaign(ctx context.Context, input CampaignActionInput) (model.Campaign, error) {
	return s.changeCampaignStatus(ctx, "ActivateCampaign", input, model.CampaignStatusActive)
}

// CloseCampaign stops new reservations, open submissions continue their lifecycle
func (s *Service) CloseCampaign(ctx context.Context, input CampaignActionInput) (model.Campaign, error) {
	return s.changeCampaignStatus(ctx, "CloseCampaign", input, model.CampaignStatusClosed)
}

func (s *Service) changeCampaignStatus(
	ctx context.Context, operation string, input CampaignActionInput, status model.CampaignStatus,
) (model.Campaign, error) {
	var result model.Campaign
	err := s.transact(ctx, func(ctx context.Context) error {
		campaign, err := s.getCampaign(ctx, input.CampaignID)
		if err != nil {
			return err
		}
		if input.ActorID == "" || input.ActorID != campaign.AdvertiserID {
			return &Error{Kind: KindNotAuthorized, CampaignID: campaign.ID}
		}

		result = campaign
		if campaign.Status == status {
			return nil
		}
		if campaign.Status == model.CampaignStatusClosed {
			return &Error{Kind: KindCampaignClosed, CampaignID: campaign.ID}
		}

		if err := s.campaignRepo.UpdateCampaignStatus(ctx, campaign.ID, status); err != nil {
			return fmt.Errorf("update campaign status: %w", err)
		}
		result.Status = status
		return nil
	})
	if err != nil {
		return model.Campaign{}, s.fail(ctx, operation, err)
	}
	return result, nil
}

// ListOpenCampaigns returns campaigns accepting reservations, newest first
func (s *Service) ListOpenCampaigns(ctx context.Context, limit uint64) ([]model.Campaign, error) {
	if limit == 0 {
		limit = 100
	}
	campaigns, err := s.campaignRepo.ListOpenCampaigns(s.provider.Readonly(ctx), limit)
	if err != nil {
		return nil, s.fail(ctx, "ListOpenCampaigns", err)
	}
	return campaigns, nil
}

// ReserveSlot creates a pending submission holding one slot of the campaign.
// An open submission of the same creator is returned as is, after applying its expiry if due.
func (s *Service) ReserveSlot(ctx context.Context, input ReserveInput) (model.Submission, error) {
	idem := newIdempotencyRequest(input.IdempotencyKey, EventReserve,
		strconv.FormatInt(input.CampaignID, 10), input.CreatorID, strings.TrimSpace(input.Link))

	var result model.Submission
	var changes []Transition

	err := s.transact(ctx, func(ctx context.Context) error {
		changes = nil

		replayed, ok, err := s.replay(ctx, idem)
		if err != nil {
			return err
		}
		if ok {
			result = replayed
			return nil
		}

		campaign, err := s.getCampaign(ctx, input.CampaignID)
		if err != nil {
			return err
		}
		if err := checkReservation(campaign, input.CreatorID); err != nil {
			return err
		}

		link, err := ValidateLink(input.Link)
		if err != nil {
			var e *Error
			if errors.As(err, &e) {
				e.CampaignID = campaign.ID
			}
			return err
		}

		now := s.now()

		open, err := s.submissionRepo.FindOpenSubmission(ctx, campaign.ID, input.CreatorID)
		if err != nil {
			return fmt.Errorf("find open submission: %w", err)
		}
		if open.Valid {
			t, expired := applyExpiry(open.Submission, campaign, now)
			if !expired {
				result = open.Submission
				return s.remember(ctx, idem, result.ID)
			}
			if err := s.persist(ctx, &t); err != nil {
				return err
			}
			changes = append(changes, t)
		}

		reserved, err := s.campaignRepo.ReserveSlot(ctx, campaign.ID)
		if err != nil {
			return fmt.Errorf("reserve slot: %w", err)
		}
		if !reserved {
			return &Error{Kind: KindSlotUnavailable, CampaignID: campaign.ID}
		}

		t := newReservation(campaign, input.CreatorID, link, now)
		if err := s.persist(ctx, &t); err != nil {
			return err
		}
		changes = append(changes, t)

		result = t.Submission
		return s.remember(ctx, idem, result.ID)
	})
	if err != nil {
		return model.Submission{}, s.fail(ctx, "ReserveSlot", err)
	}

	s.notify(ctx, changes)
	return result, nil
}

// Approve pays the campaign reward, the slot stays consumed
func (s *Service) Approve(ctx context.Context, input ActionInput) (model.Submission, error) {
	return s.act(ctx, "Approve", input.SubmissionID, input.IdempotencyKey, actionRequest{
		event:   EventApprove,
		actorID: input.ActorID,
	})
}

// Reject releases the slot back to the campaign
func (s *Service) Reject(ctx context.Context, input ActionInput) (model.Submission, error) {
	return s.act(ctx, "Reject", input.SubmissionID, input.IdempotencyKey, actionRequest{
		event:   EventReject,
		actorID: input.ActorID,
	})
}

// RequestRevision starts the revision window
func (s *Service) RequestRevision(ctx context.Context, input ActionInput) (model.Submission, error) {
	return s.act(ctx, "RequestRevision", input.SubmissionID, input.IdempotencyKey, actionRequest{
		event:   EventRequestRevision,
		actorID: input.ActorID,
	})
}

// Resubmit replaces the link of the same submission and returns it to pending.
// The link is checked after the status, actor and revision window, so an elapsed window
// commits the expiry driven reject and returns StaleAction whatever the link.
func (s *Service) Resubmit(ctx context.Context, input ResubmitInput) (model.Submission, error) {
	return s.act(ctx, "Resubmit", input.SubmissionID, input.IdempotencyKey, actionRequest{
		event:   EventResubmit,
		actorID: input.CreatorID,
		link:    strings.TrimSpace(input.Link),
	})
}

func (s *Service) act(
	ctx context.Context, operation string, submissionID int64, idempotencyKey string, req actionRequest,
) (model.Submission, error) {
	idem := newIdempotencyRequest(idempotencyKey, req.event,
		strconv.FormatInt(submissionID, 10), req.actorID, req.link)

	var result model.Submission
	var changes []Transition
	var staleErr error

	err := s.transact(ctx, func(ctx context.Context) error {
		changes = nil
		staleErr = nil

		replayed, ok, err := s.replay(ctx, idem)
		if err != nil {
			return err
		}
		if ok {
			result = replayed
			return nil
		}

		sub, campaign, err := s.lockSubmission(ctx, submissionID)
		if err != nil {
			return err
		}

		req.now = s.now()
		t, err := applyAction(sub, campaign, req)
		if err != nil {
			if KindOf(err) != KindStaleAction {
				return err
			}
			staleErr = err
		}

		if err := s.persist(ctx, &t); err != nil {
			return err
		}
		changes = append(changes, t)
		result = t.Submission

		if staleErr != nil {
			return nil
		}
		return s.remember(ctx, idem, result.ID)
	})
	if err != nil {
		return model.Submission{}, s.fail(ctx, operation, err)
	}

	s.notify(ctx, changes)

	if staleErr != nil {
		return model.Submission{}, s.fail(ctx, operation, staleErr)
	}
	return result, nil
}

// SweepExpired applies the expiry transition to every open submission whose window has elapsed,
// each one in its own transaction. Stops at the first failure, returning what was already applied.
func (s *Service) SweepExpired(ctx context.Context, campaignID sql.NullInt64) ([]model.Submission, error) {
	return s.sweep(ctx, campaignID, "call")
}

func (s *Service) sweep(ctx context.Context, campaignID sql.NullInt64, trigger string) ([]model.Submission, error) {
	now := s.now()
	query := repository.ExpiredQuery{
		CampaignID:              campaignID,
		SubmittedBefore:         now.Add(-AutoPayoutWindow),
		RevisionRequestedBefore: now.Add(-RevisionWindow),
		Limit:                   uint64(s.opts.sweepBatchSize),
	}

	var result []model.Submission
	defer func() {
		if s.opts.metrics != nil {
			s.opts.metrics.observeSweep(trigger, len(result))
		}
	}()

	for {
		ids, err := s.submissionRepo.FindExpiredSubmissionIDs(s.provider.Readonly(ctx), query)
		if err != nil {
			return result, s.fail(ctx, "SweepExpired", fmt.Errorf("find expired submissions: %w", err))
		}

		for _, id := range ids {
			sub, changed, err := s.expireSubmission(ctx, id, now)
			if err != nil {
				return result, s.fail(ctx, "SweepExpired", err)
			}
			if changed {
				result = append(result, sub)
			}
		}

		if len(ids) < s.opts.sweepBatchSize {
			return result, nil
		}
		query.AfterID = ids[len(ids)-1]
	}
}

// expireSubmission returns false when the submission is no longer expired at now
func (s *Service) expireSubmission(ctx context.Context, submissionID int64, now time.Time) (model.Submission, bool, error) {
	var result model.Submission
	var changes []Transition

	err := s.transact(ctx, func(ctx context.Context) error {
		changes = nil

		sub, campaign, err := s.lockSubmission(ctx, submissionID)
		if err != nil {
			return err
		}

		t, expired := applyExpiry(sub, campaign, now)
		if !expired {
			return nil
		}
		if err := s.persist(ctx, &t); err != nil {
			return err
		}
		changes = append(changes, t)
		result = t.Submission
		return nil
	})
	if err != nil {
		return model.Submission{}, false, err
	}

	s.notify(ctx, changes)
	return result, len(changes) > 0, nil
}

func sweepKey(campaignID sql.NullInt64) string {
	if !campaignID.Valid {
		return "sweep:all"
	}
	return "sweep:campaign:" + strconv.FormatInt(campaignID.Int64, 10)
}

// sweepIfDue runs a sweep at most once per configured interval for each key, failures are only logged
func (s *Service) sweepIfDue(ctx context.Context, campaignID sql.NullInt64) {
	if s.opts.opportunisticSweep <= 0 {
		return
	}
	if !s.opts.sweepTable.Allow(sweepKey(campaignID), s.now(), s.opts.opportunisticSweep) {
		return
	}
	if _, err := s.sweep(ctx, campaignID, "read"); err != nil {
		otellib.Extract(ctx).Warn("opportunistic sweep failed", zap.Error(err))
	}
}

// GetSubmission returns the submission with its timer state. An elapsed window is applied first,
// when that write fails the error is returned instead of the stale view.
func (s *Service) GetSubmission(ctx context.Context, submissionID int64) (SubmissionView, error) {
	sub, err := s.submissionRepo.GetSubmission(s.provider.Readonly(ctx), submissionID)
	if errors.Is(err, repository.ErrNotFound) {
		return SubmissionView{}, s.fail(ctx, "GetSubmission", &Error{Kind: KindNotFound, SubmissionID: submissionID})
	}
	if err != nil {
		return SubmissionView{}, s.fail(ctx, "GetSubmission", err)
	}

	now := s.now()
	view := NewSubmissionView(sub, now)
	if !view.Expired {
		return view, nil
	}

	expired, changed, err := s.expireSubmission(ctx, submissionID, now)
	if err != nil {
		return SubmissionView{}, s.fail(ctx, "GetSubmission", err)
	}
	if changed {
		return NewSubmissionView(expired, now), nil
	}
	return view, nil
}

func (s *Service) views(list []model.Submission) []SubmissionView {
	now := s.now()
	result := make([]SubmissionView, 0, len(list))
	for _, sub := range list {
		result = append(result, NewSubmissionView(sub, now))
	}
	return result
}

// ListCreatorSubmissions newest first
func (s *Service) ListCreatorSubmissions(ctx context.Context, creatorID string) ([]SubmissionView, error) {
	s.sweepIfDue(ctx, sql.NullInt64{})

	list, err := s.submissionRepo.ListSubmissionsByCreator(s.provider.Readonly(ctx), creatorID)
	if err != nil {
		return nil, s.fail(ctx, "ListCreatorSubmissions", err)
	}
	return s.views(list), nil
}

// ListCampaignSubmissions status zero means every status
func (s *Service) ListCampaignSubmissions(
	ctx context.Context, campaignID int64, status model.SubmissionStatus,
) ([]SubmissionView, error) {
	s.sweepIfDue(ctx, sql.NullInt64{Valid: true, Int64: campaignID})

	list, err := s.submissionRepo.ListSubmissionsByCampaign(s.provider.Readonly(ctx), campaignID, status)
	if err != nil {
		return nil, s.fail(ctx, "ListCampaignSubmissions", err)
	}
	return s.views(list), nil
}

// ListAdvertiserSubmissions returns submissions of every campaign owned by the advertiser
func (s *Service) ListAdvertiserSubmissions(
	ctx context.Context, advertiserID string, status model.SubmissionStatus,
) ([]SubmissionView, error) {
	s.sweepIfDue(ctx, sql.NullInt64{})

	list, err := s.submissionRepo.ListSubmissionsByAdvertiser(s.provider.Readonly(ctx), advertiserID, status)
	if err != nil {
		return nil, s.fail(ctx, "ListAdvertiserSubmissions", err)
	}
	return s.views(list), nil
}
