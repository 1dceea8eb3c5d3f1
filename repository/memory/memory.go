// Package memory is an in-process implementation of the repository interfaces.
// Transactions are serialized by a single mutex and rolled back by restoring a snapshot.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/QuangTung97/campaign-ledger/repository"
)

var _ repository.Provider = &Store{}
var _ repository.Campaign = &Store{}
var _ repository.Submission = &Store{}
var _ repository.Event = &Store{}
var _ repository.Idempotency = &Store{}

// Store ...
type Store struct {
	// BeforeUpdateSubmission when not nil is called before every UpdateSubmission,
	// a non nil error is returned as is
	BeforeUpdateSubmission func(sub model.Submission) error

	mut   sync.Mutex
	state *state
	now   func() time.Time
}

type state struct {
	campaigns   map[int64]model.Campaign
	submissions map[int64]model.Submission
	events      []model.LedgerEvent
	idempotency map[string]model.IdempotencyRecord

	lastCampaignID   int64
	lastSubmissionID int64
	lastEventID      int64
}

func (s *state) clone() *state {
	result := *s

	result.campaigns = make(map[int64]model.Campaign, len(s.campaigns))
	for k, v := range s.campaigns {
		result.campaigns[k] = v
	}

	result.submissions = make(map[int64]model.Submission, len(s.submissions))
	for k, v := range s.submissions {
		result.submissions[k] = v
	}

	result.events = append([]model.LedgerEvent(nil), s.events...)

	result.idempotency = make(map[string]model.IdempotencyRecord, len(s.idempotency))
	for k, v := range s.idempotency {
		result.idempotency[k] = v
	}
	return &result
}

// NewStore ...
func NewStore() *Store {
	return &Store{
		state: &state{
			campaigns:   map[int64]model.Campaign{},
			submissions: map[int64]model.Submission{},
			idempotency: map[string]model.IdempotencyRecord{},
		},
		now: time.Now,
	}
}

type txKeyType struct {
}

var txKey = txKeyType{}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(bool)
	return ok
}

// Transact ...
func (s *Store) Transact(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx(ctx) {
		return fn(ctx)
	}

	s.mut.Lock()
	defer s.mut.Unlock()

	snapshot := s.state.clone()
	defer func() {
		if r := recover(); r != nil {
			s.state = snapshot
			panic(r)
		}
		if err != nil {
			s.state = snapshot
		}
	}()

	return fn(context.WithValue(ctx, txKey, true))
}

// Readonly ...
func (s *Store) Readonly(ctx context.Context) context.Context {
	return ctx
}

func (s *Store) read(ctx context.Context, fn func(st *state)) {
	if inTx(ctx) {
		fn(s.state)
		return
	}
	s.mut.Lock()
	defer s.mut.Unlock()
	fn(s.state)
}

func (s *Store) write(ctx context.Context) *state {
	if !inTx(ctx) {
		panic("Not found transaction")
	}
	return s.state
}

// GetCampaign ...
func (s *Store) GetCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	var result model.Campaign
	var ok bool
	s.read(ctx, func(st *state) {
		result, ok = st.campaigns[campaignID]
	})
	if !ok {
		return model.Campaign{}, repository.ErrNotFound
	}
	return result, nil
}

// InsertCampaign ...
func (s *Store) InsertCampaign(ctx context.Context, campaign model.Campaign) (int64, error) {
	st := s.write(ctx)

	st.lastCampaignID++
	campaign.ID = st.lastCampaignID
	campaign.CreatedAt = s.now()
	campaign.UpdatedAt = campaign.CreatedAt
	st.campaigns[campaign.ID] = campaign
	return campaign.ID, nil
}

// UpdateCampaignStatus ...
func (s *Store) UpdateCampaignStatus(ctx context.Context, campaignID int64, status model.CampaignStatus) error {
	st := s.write(ctx)

	campaign, ok := st.campaigns[campaignID]
	if !ok {
		return nil
	}
	campaign.Status = status
	campaign.UpdatedAt = s.now()
	st.campaigns[campaignID] = campaign
	return nil
}

// ListOpenCampaigns ...
func (s *Store) ListOpenCampaigns(ctx context.Context, limit uint64) ([]model.Campaign, error) {
	var result []model.Campaign
	s.read(ctx, func(st *state) {
		for _, c := range st.campaigns {
			if c.Status != model.CampaignStatusClosed && c.RemainingSlots > 0 {
				result = append(result, c)
			}
		}
	})
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})
	if uint64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ReserveSlot ...
func (s *Store) ReserveSlot(ctx context.Context, campaignID int64) (bool, error) {
	st := s.write(ctx)

	campaign, ok := st.campaigns[campaignID]
	if !ok || campaign.Status == model.CampaignStatusClosed || campaign.RemainingSlots <= 0 {
		return false, nil
	}
	campaign.RemainingSlots--
	st.campaigns[campaignID] = campaign
	return true, nil
}

// ReleaseSlot ...
func (s *Store) ReleaseSlot(ctx context.Context, campaignID int64) error {
	st := s.write(ctx)

	campaign, ok := st.campaigns[campaignID]
	if !ok {
		return nil
	}
	if campaign.RemainingSlots < campaign.TotalSlots {
		campaign.RemainingSlots++
	}
	st.campaigns[campaignID] = campaign
	return nil
}

func findOpen(st *state, campaignID int64, creatorID string) (model.Submission, bool) {
	for _, sub := range st.submissions {
		if sub.CampaignID == campaignID && sub.CreatorID == creatorID && sub.Status.IsOpen() {
			return sub, true
		}
	}
	return model.Submission{}, false
}

// InsertSubmission ...
func (s *Store) InsertSubmission(ctx context.Context, sub model.Submission) (int64, error) {
	st := s.write(ctx)

	if sub.Status.IsOpen() {
		if _, existed := findOpen(st, sub.CampaignID, sub.CreatorID); existed {
			return 0, repository.ErrConflict
		}
	}

	st.lastSubmissionID++
	sub.ID = st.lastSubmissionID
	sub.CreatedAt = s.now()
	sub.UpdatedAt = sub.CreatedAt
	st.submissions[sub.ID] = sub
	return sub.ID, nil
}

// GetSubmission ...
func (s *Store) GetSubmission(ctx context.Context, id int64) (model.Submission, error) {
	var result model.Submission
	var ok bool
	s.read(ctx, func(st *state) {
		result, ok = st.submissions[id]
	})
	if !ok {
		return model.Submission{}, repository.ErrNotFound
	}
	return result, nil
}

// GetSubmissionForUpdate ...
func (s *Store) GetSubmissionForUpdate(ctx context.Context, id int64) (model.Submission, error) {
	st := s.write(ctx)

	result, ok := st.submissions[id]
	if !ok {
		return model.Submission{}, repository.ErrNotFound
	}
	return result, nil
}

// FindOpenSubmission ...
func (s *Store) FindOpenSubmission(
	ctx context.Context, campaignID int64, creatorID string,
) (model.NullSubmission, error) {
	st := s.write(ctx)

	sub, ok := findOpen(st, campaignID, creatorID)
	if !ok {
		return model.NullSubmission{}, nil
	}
	return model.NullSubmission{
		Valid:      true,
		Submission: sub,
	}, nil
}

// UpdateSubmission ...
func (s *Store) UpdateSubmission(ctx context.Context, sub model.Submission) error {
	st := s.write(ctx)

	if s.BeforeUpdateSubmission != nil {
		if err := s.BeforeUpdateSubmission(sub); err != nil {
			return err
		}
	}

	old, ok := st.submissions[sub.ID]
	if !ok || old.Version != sub.Version {
		return repository.ErrConflict
	}
	if sub.Status.IsOpen() {
		if other, existed := findOpen(st, old.CampaignID, old.CreatorID); existed && other.ID != sub.ID {
			return repository.ErrConflict
		}
	}

	old.SubmissionLink = sub.SubmissionLink
	old.Platform = sub.Platform
	old.Status = sub.Status
	old.SubmittedAt = sub.SubmittedAt
	old.RevisionRequestedAt = sub.RevisionRequestedAt
	old.ApprovedAt = sub.ApprovedAt
	old.PayoutAmount = sub.PayoutAmount
	old.AutoPaid = sub.AutoPaid
	old.Version++
	old.UpdatedAt = s.now()

	st.submissions[sub.ID] = old
	return nil
}

func (s *Store) filterSubmissions(ctx context.Context, filter func(st *state, sub model.Submission) bool) []model.Submission {
	var result []model.Submission
	s.read(ctx, func(st *state) {
		for _, sub := range st.submissions {
			if filter(st, sub) {
				result = append(result, sub)
			}
		}
	})
	return result
}

func sortBySubmittedDesc(list []model.Submission) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].SubmittedAt.Equal(list[j].SubmittedAt) {
			return list[i].SubmittedAt.After(list[j].SubmittedAt)
		}
		return list[i].ID > list[j].ID
	})
}

// ListSubmissionsByCreator ...
func (s *Store) ListSubmissionsByCreator(ctx context.Context, creatorID string) ([]model.Submission, error) {
	result := s.filterSubmissions(ctx, func(_ *state, sub model.Submission) bool {
		return sub.CreatorID == creatorID
	})
	sortBySubmittedDesc(result)
	return result, nil
}

// ListSubmissionsByCampaign ...
func (s *Store) ListSubmissionsByCampaign(
	ctx context.Context, campaignID int64, status model.SubmissionStatus,
) ([]model.Submission, error) {
	result := s.filterSubmissions(ctx, func(_ *state, sub model.Submission) bool {
		return sub.CampaignID == campaignID && (status == 0 || sub.Status == status)
	})
	sortBySubmittedDesc(result)
	return result, nil
}

// ListSubmissionsByAdvertiser ...
func (s *Store) ListSubmissionsByAdvertiser(
	ctx context.Context, advertiserID string, status model.SubmissionStatus,
) ([]model.Submission, error) {
	result := s.filterSubmissions(ctx, func(st *state, sub model.Submission) bool {
		return st.campaigns[sub.CampaignID].AdvertiserID == advertiserID && (status == 0 || sub.Status == status)
	})
	sortBySubmittedDesc(result)
	return result, nil
}

// ListPaidSubmissionsByCreator ...
func (s *Store) ListPaidSubmissionsByCreator(ctx context.Context, creatorID string) ([]model.Submission, error) {
	result := s.filterSubmissions(ctx, func(_ *state, sub model.Submission) bool {
		return sub.CreatorID == creatorID && sub.Status.IsPaid()
	})
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].ApprovedAt.Time, result[j].ApprovedAt.Time
		if !a.Equal(b) {
			return a.After(b)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

// FindExpiredSubmissionIDs ...
func (s *Store) FindExpiredSubmissionIDs(ctx context.Context, query repository.ExpiredQuery) ([]int64, error) {
	list := s.filterSubmissions(ctx, func(_ *state, sub model.Submission) bool {
		if sub.ID <= query.AfterID {
			return false
		}
		if query.CampaignID.Valid && sub.CampaignID != query.CampaignID.Int64 {
			return false
		}
		switch sub.Status {
		case model.SubmissionStatusPending:
			return !sub.SubmittedAt.After(query.SubmittedBefore)
		case model.SubmissionStatusRevisionRequested:
			return sub.RevisionRequestedAt.Valid && !sub.RevisionRequestedAt.Time.After(query.RevisionRequestedBefore)
		default:
			return false
		}
	})

	ids := make([]int64, 0, len(list))
	for _, sub := range list {
		ids = append(ids, sub.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if uint64(len(ids)) > query.Limit {
		ids = ids[:query.Limit]
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return ids, nil
}

// InsertEvents ...
func (s *Store) InsertEvents(ctx context.Context, events []model.LedgerEvent) error {
	st := s.write(ctx)

	for _, e := range events {
		st.lastEventID++
		e.ID = st.lastEventID
		st.events = append(st.events, e)
	}
	return nil
}

// ListUnpublishedEvents ...
func (s *Store) ListUnpublishedEvents(ctx context.Context, limit uint64) ([]model.LedgerEvent, error) {
	var result []model.LedgerEvent
	s.read(ctx, func(st *state) {
		for _, e := range st.events {
			if uint64(len(result)) >= limit {
				return
			}
			if !e.PublishedAt.Valid {
				result = append(result, e)
			}
		}
	})
	return result, nil
}

// MarkEventsPublished ...
func (s *Store) MarkEventsPublished(ctx context.Context, ids []int64, publishedAt time.Time) error {
	st := s.write(ctx)

	idSet := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	for i, e := range st.events {
		if _, ok := idSet[e.ID]; ok && !e.PublishedAt.Valid {
			st.events[i].PublishedAt.Valid = true
			st.events[i].PublishedAt.Time = publishedAt
		}
	}
	return nil
}

// Events returns every outbox row, for assertions
func (s *Store) Events() []model.LedgerEvent {
	s.mut.Lock()
	defer s.mut.Unlock()
	return append([]model.LedgerEvent(nil), s.state.events...)
}

// GetIdempotencyRecord ...
func (s *Store) GetIdempotencyRecord(ctx context.Context, key string) (model.NullIdempotencyRecord, error) {
	var result model.IdempotencyRecord
	var ok bool
	s.read(ctx, func(st *state) {
		result, ok = st.idempotency[key]
	})
	if !ok {
		return model.NullIdempotencyRecord{}, nil
	}
	return model.NullIdempotencyRecord{
		Valid:  true,
		Record: result,
	}, nil
}

// InsertIdempotencyRecord ...
func (s *Store) InsertIdempotencyRecord(ctx context.Context, record model.IdempotencyRecord) error {
	st := s.write(ctx)

	if _, existed := st.idempotency[record.Key]; existed {
		return repository.ErrConflict
	}
	record.CreatedAt = s.now()
	st.idempotency[record.Key] = record
	return nil
}
