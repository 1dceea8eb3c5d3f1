package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/QuangTung97/campaign-ledger/config"
	"github.com/QuangTung97/campaign-ledger/model"
	"github.com/QuangTung97/campaign-ledger/repository"
	"github.com/QuangTung97/campaign-ledger/repository/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const (
	testAdvertiser = "advertiser01"
	testLink       = "https://www.youtube.com/watch?v=abc123"
)

type ledgerTest struct {
	store   *memory.Store
	clock   *fakeClock
	service *Service

	mut     sync.Mutex
	changes []ChangeEvent
}

func newLedgerTest(options ...Option) *ledgerTest {
	l := &ledgerTest{
		store: memory.NewStore(),
		clock: newFakeClock("2022-05-13T10:00:00Z"),
	}

	recorder := ObserverFunc(func(ctx context.Context, e ChangeEvent) {
		l.mut.Lock()
		defer l.mut.Unlock()
		l.changes = append(l.changes, e)
	})

	options = append([]Option{WithClock(l.clock), WithObserver(recorder)}, options...)
	l.service = NewService(l.store, Repositories{
		Campaign:    l.store,
		Submission:  l.store,
		Event:       l.store,
		Idempotency: l.store,
	}, options...)
	return l
}

func (l *ledgerTest) newCampaign(t *testing.T, slots int64) model.Campaign {
	c, err := l.service.CreateCampaign(newContext(), CreateCampaignInput{
		AdvertiserID:  testAdvertiser,
		Title:         "Summer Launch",
		Description:   "post about the new product",
		TotalSlots:    slots,
		RewardPerPost: newDecimal("100.00"),
	})
	assert.Equal(t, nil, err)

	c, err = l.service.ActivateCampaign(newContext(), CampaignActionInput{
		CampaignID: c.ID,
		ActorID:    testAdvertiser,
	})
	assert.Equal(t, nil, err)
	return c
}

func (l *ledgerTest) reserve(t *testing.T, campaignID int64, creatorID string) model.Submission {
	sub, err := l.service.ReserveSlot(newContext(), ReserveInput{
		CampaignID: campaignID,
		CreatorID:  creatorID,
		Link:       testLink,
	})
	assert.Equal(t, nil, err)
	return sub
}

func (l *ledgerTest) getCampaign(campaignID int64) model.Campaign {
	c, err := l.store.GetCampaign(newContext(), campaignID)
	if err != nil {
		panic(err)
	}
	return c
}

func (l *ledgerTest) getSubmission(id int64) model.Submission {
	sub, err := l.store.GetSubmission(newContext(), id)
	if err != nil {
		panic(err)
	}
	return sub
}

func (l *ledgerTest) eventTypes() []model.EventType {
	var result []model.EventType
	for _, e := range l.store.Events() {
		result = append(result, e.Type)
	}
	return result
}

func (l *ledgerTest) recordedEvents() []Event {
	l.mut.Lock()
	defer l.mut.Unlock()

	var result []Event
	for _, e := range l.changes {
		result = append(result, e.Event)
	}
	return result
}

func (l *ledgerTest) checkSlotConservation(t *testing.T, campaignID int64) {
	t.Helper()

	c := l.getCampaign(campaignID)
	list, err := l.store.ListSubmissionsByCampaign(newContext(), campaignID, 0)
	assert.Equal(t, nil, err)

	holding := int64(0)
	for _, sub := range list {
		if sub.Status != model.SubmissionStatusRejected {
			holding++
		}
	}
	assert.Equal(t, c.TotalSlots, c.RemainingSlots+holding)
}

func TestService_CreateCampaign(t *testing.T) {
	l := newLedgerTest()

	c, err := l.service.CreateCampaign(newContext(), CreateCampaignInput{
		AdvertiserID:  testAdvertiser,
		Title:         "  Summer Launch ",
		TotalSlots:    3,
		RewardPerPost: newDecimal("0"),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, "Summer Launch", c.Title)
	assert.Equal(t, model.CampaignStatusPending, c.Status)
	assert.Equal(t, int64(3), c.TotalSlots)
	assert.Equal(t, int64(3), c.RemainingSlots)

	table := []CreateCampaignInput{
		{Title: "title", TotalSlots: 1},
		{AdvertiserID: testAdvertiser, Title: " ", TotalSlots: 1},
		{AdvertiserID: testAdvertiser, Title: "title", TotalSlots: 0},
		{AdvertiserID: testAdvertiser, Title: "title", TotalSlots: 1, RewardPerPost: newDecimal("-1")},
	}
	for _, input := range table {
		_, err := l.service.CreateCampaign(newContext(), input)
		assert.Equal(t, true, errors.Is(err, ErrInvalidCampaign))
	}
}

func TestService_CampaignStatus(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	assert.Equal(t, model.CampaignStatusActive, c.Status)

	_, err := l.service.CloseCampaign(newContext(), CampaignActionInput{CampaignID: c.ID, ActorID: "creator01"})
	assert.Equal(t, true, errors.Is(err, ErrNotAuthorized))

	_, err = l.service.CloseCampaign(newContext(), CampaignActionInput{CampaignID: 99, ActorID: testAdvertiser})
	assert.Equal(t, true, errors.Is(err, ErrNotFound))

	c, err = l.service.CloseCampaign(newContext(), CampaignActionInput{CampaignID: c.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CampaignStatusClosed, c.Status)

	//---------------------------
	// closing again is a no-op, reopening is not allowed
	//---------------------------
	c, err = l.service.CloseCampaign(newContext(), CampaignActionInput{CampaignID: c.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CampaignStatusClosed, c.Status)

	_, err = l.service.ActivateCampaign(newContext(), CampaignActionInput{CampaignID: c.ID, ActorID: testAdvertiser})
	assert.Equal(t, true, errors.Is(err, ErrCampaignClosed))

	list, err := l.service.ListOpenCampaigns(newContext(), 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(list))
}

func TestService_ReserveSlot(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 3)

	sub := l.reserve(t, c.ID, "creator01")
	assert.Equal(t, model.Submission{
		ID:             1,
		CampaignID:     c.ID,
		CreatorID:      "creator01",
		SubmissionLink: testLink,
		Platform:       model.PlatformYouTube,
		Status:         model.SubmissionStatusPending,
		SubmittedAt:    newTime("2022-05-13T10:00:00Z"),
		Version:        1,
	}, sub)

	assert.Equal(t, int64(2), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, []model.EventType{model.EventTypeSubmissionReserved}, l.eventTypes())
	assert.Equal(t, []Event{EventReserve}, l.recordedEvents())

	//---------------------------
	// same creator gets the open submission back
	//---------------------------
	again := l.reserve(t, c.ID, "creator01")
	assert.Equal(t, sub.ID, again.ID)
	assert.Equal(t, int64(2), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, 1, len(l.store.Events()))
	l.checkSlotConservation(t, c.ID)
}

func TestService_ReserveSlot_PendingCampaign(t *testing.T) {
	l := newLedgerTest()

	c, err := l.service.CreateCampaign(newContext(), CreateCampaignInput{
		AdvertiserID:  testAdvertiser,
		Title:         "draft",
		TotalSlots:    1,
		RewardPerPost: newDecimal("10"),
	})
	assert.Equal(t, nil, err)

	sub := l.reserve(t, c.ID, "creator01")
	assert.Equal(t, model.SubmissionStatusPending, sub.Status)
}

func TestService_ReserveSlot_SelfParticipation(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 3)

	sub, err := l.service.ReserveSlot(newContext(), ReserveInput{
		CampaignID: c.ID,
		CreatorID:  testAdvertiser,
		Link:       testLink,
	})
	assert.Equal(t, true, errors.Is(err, ErrSelfParticipation))
	assert.Equal(t, model.Submission{}, sub)

	assert.Equal(t, int64(3), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, 0, len(l.store.Events()))

	list, err := l.store.ListSubmissionsByCampaign(newContext(), c.ID, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(list))
}

func TestService_ReserveSlot_Errors(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 1)

	_, err := l.service.ReserveSlot(newContext(), ReserveInput{
		CampaignID: c.ID,
		CreatorID:  "creator01",
		Link:       "https://instagram.com/someuser",
	})
	assert.Equal(t, true, errors.Is(err, ErrInvalidLink))

	var e *Error
	assert.Equal(t, true, errors.As(err, &e))
	assert.Equal(t, c.ID, e.CampaignID)

	_, err = l.service.ReserveSlot(newContext(), ReserveInput{
		CampaignID: 99,
		CreatorID:  "creator01",
		Link:       testLink,
	})
	assert.Equal(t, true, errors.Is(err, ErrNotFound))

	//---------------------------
	// exhausted
	//---------------------------
	l.reserve(t, c.ID, "creator01")

	_, err = l.service.ReserveSlot(newContext(), ReserveInput{
		CampaignID: c.ID,
		CreatorID:  "creator02",
		Link:       testLink,
	})
	assert.Equal(t, true, errors.Is(err, ErrSlotUnavailable))
	assert.Equal(t, int64(0), l.getCampaign(c.ID).RemainingSlots)

	//---------------------------
	// closed
	//---------------------------
	_, err = l.service.CloseCampaign(newContext(), CampaignActionInput{CampaignID: c.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)

	_, err = l.service.ReserveSlot(newContext(), ReserveInput{
		CampaignID: c.ID,
		CreatorID:  "creator03",
		Link:       testLink,
	})
	assert.Equal(t, true, errors.Is(err, ErrCampaignClosed))
}

func TestService_ReserveSlot_ConcurrentRace(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.service.ReserveSlot(newContext(), ReserveInput{
				CampaignID: c.ID,
				CreatorID:  fmt.Sprintf("creator%02d", i),
				Link:       testLink,
			})
		}(i)
	}
	wg.Wait()

	success := 0
	unavailable := 0
	for _, err := range errs {
		if err == nil {
			success++
		} else if errors.Is(err, ErrSlotUnavailable) {
			unavailable++
		}
	}
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, unavailable)
	assert.Equal(t, int64(0), l.getCampaign(c.ID).RemainingSlots)
	l.checkSlotConservation(t, c.ID)
}

func TestService_ReserveSlot_ManyConcurrent(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 5)

	var wg sync.WaitGroup
	var mut sync.Mutex
	success := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := l.service.ReserveSlot(newContext(), ReserveInput{
				CampaignID: c.ID,
				CreatorID:  fmt.Sprintf("creator%02d", i),
				Link:       testLink,
			})
			if err == nil {
				mut.Lock()
				success++
				mut.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, success)
	l.checkSlotConservation(t, c.ID)
}

func TestService_ReserveSlot_AfterTerminal(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 1)

	first := l.reserve(t, c.ID, "creator01")
	_, err := l.service.Reject(newContext(), ActionInput{SubmissionID: first.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), l.getCampaign(c.ID).RemainingSlots)

	second := l.reserve(t, c.ID, "creator01")
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(0), l.getCampaign(c.ID).RemainingSlots)
	l.checkSlotConservation(t, c.ID)
}

func TestService_ReserveSlot_ExpiredOpenSubmission(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)

	first := l.reserve(t, c.ID, "creator01")
	l.clock.Advance(AutoPayoutWindow)

	second := l.reserve(t, c.ID, "creator01")
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, model.SubmissionStatusAutoPaid, l.getSubmission(first.ID).Status)
	assert.Equal(t, int64(0), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, []Event{EventReserve, EventExpire, EventReserve}, l.recordedEvents())
	l.checkSlotConservation(t, c.ID)
}

func TestService_Approve(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	l.clock.Advance(24 * time.Hour)

	result, err := l.service.Approve(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)
	assert.Equal(t, model.SubmissionStatusApproved, result.Status)
	assert.Equal(t, newNullTime("2022-05-14T10:00:00Z"), result.ApprovedAt)
	assert.Equal(t, decimal.NewNullDecimal(newDecimal("100.00")), result.PayoutAmount)
	assert.Equal(t, false, result.AutoPaid)
	assert.Equal(t, int64(2), result.Version)

	stored := l.getSubmission(sub.ID)
	assert.Equal(t, model.SubmissionStatusApproved, stored.Status)
	assert.Equal(t, int64(2), stored.Version)

	assert.Equal(t, int64(1), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, []model.EventType{
		model.EventTypeSubmissionReserved,
		model.EventTypeSubmissionApproved,
	}, l.eventTypes())
	assert.Equal(t, decimal.NewNullDecimal(newDecimal("100.00")), l.store.Events()[1].Amount)

	l.mut.Lock()
	last := l.changes[len(l.changes)-1]
	l.mut.Unlock()
	assert.Equal(t, EventApprove, last.Event)
	assert.Equal(t, model.SubmissionStatusPending, last.From)
	assert.Equal(t, model.SubmissionStatusApproved, last.To)
	assert.Equal(t, decimal.NewNullDecimal(newDecimal("100.00")), last.PayoutAmount)
}

func TestService_Approve_NotAuthorized(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	_, err := l.service.Approve(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: "creator01"})
	assert.Equal(t, true, errors.Is(err, ErrNotAuthorized))
	assert.Equal(t, model.SubmissionStatusPending, l.getSubmission(sub.ID).Status)

	_, err = l.service.Approve(newContext(), ActionInput{SubmissionID: 99, ActorID: testAdvertiser})
	assert.Equal(t, true, errors.Is(err, ErrNotFound))
}

func TestService_Reject_ReleasesSlot(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")
	assert.Equal(t, int64(1), l.getCampaign(c.ID).RemainingSlots)

	result, err := l.service.Reject(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)
	assert.Equal(t, model.SubmissionStatusRejected, result.Status)
	assert.Equal(t, int64(2), l.getCampaign(c.ID).RemainingSlots)
	l.checkSlotConservation(t, c.ID)
}

func TestService_Resubmit_SameSubmission(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	l.clock.Advance(time.Hour)
	revision, err := l.service.RequestRevision(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)
	assert.Equal(t, model.SubmissionStatusRevisionRequested, revision.Status)
	assert.Equal(t, newNullTime("2022-05-13T11:00:00Z"), revision.RevisionRequestedAt)

	l.clock.Advance(47 * time.Hour)
	result, err := l.service.Resubmit(newContext(), ResubmitInput{
		SubmissionID: sub.ID,
		CreatorID:    "creator01",
		Link:         "https://x.com/user/status/999",
	})
	assert.Equal(t, nil, err)

	assert.Equal(t, sub.ID, result.ID)
	assert.Equal(t, model.SubmissionStatusPending, result.Status)
	assert.Equal(t, newTime("2022-05-15T10:00:00Z"), result.SubmittedAt)
	assert.Equal(t, sql.NullTime{}, result.RevisionRequestedAt)
	assert.Equal(t, "https://x.com/user/status/999", result.SubmissionLink)
	assert.Equal(t, model.PlatformTwitter, result.Platform)
	assert.Equal(t, int64(3), result.Version)

	list, err := l.store.ListSubmissionsByCampaign(newContext(), c.ID, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(list))
	assert.Equal(t, result.SubmittedAt, list[0].SubmittedAt)

	assert.Equal(t, int64(1), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, []model.EventType{
		model.EventTypeSubmissionReserved,
		model.EventTypeRevisionRequested,
		model.EventTypeSubmissionResubmitted,
	}, l.eventTypes())
}

func TestService_Resubmit_Errors(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	_, err := l.service.RequestRevision(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)

	_, err = l.service.Resubmit(newContext(), ResubmitInput{
		SubmissionID: sub.ID,
		CreatorID:    "creator01",
		Link:         "https://example.com/anything",
	})
	assert.Equal(t, true, errors.Is(err, ErrInvalidLink))

	var e *Error
	assert.Equal(t, true, errors.As(err, &e))
	assert.Equal(t, sub.ID, e.SubmissionID)
	assert.Equal(t, model.SubmissionStatusRevisionRequested, e.Status)

	_, err = l.service.Resubmit(newContext(), ResubmitInput{
		SubmissionID: sub.ID,
		CreatorID:    "creator02",
		Link:         testLink,
	})
	assert.Equal(t, true, errors.Is(err, ErrNotAuthorized))

	assert.Equal(t, model.SubmissionStatusRevisionRequested, l.getSubmission(sub.ID).Status)
}

func TestService_StaleAction_Approve(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	l.clock.Advance(AutoPayoutWindow)

	result, err := l.service.Approve(newContext(), ActionInput{
		SubmissionID:   sub.ID,
		ActorID:        testAdvertiser,
		IdempotencyKey: "approve-1",
	})
	assert.Equal(t, true, errors.Is(err, ErrStaleAction))
	assert.Equal(t, model.Submission{}, result)

	var e *Error
	assert.Equal(t, true, errors.As(err, &e))
	assert.Equal(t, model.SubmissionStatusAutoPaid, e.Status)
	assert.Equal(t, newTime("2022-05-20T10:00:00Z"), e.Deadline)

	stored := l.getSubmission(sub.ID)
	assert.Equal(t, model.SubmissionStatusAutoPaid, stored.Status)
	assert.Equal(t, true, stored.AutoPaid)
	assert.Equal(t, decimal.NewNullDecimal(newDecimal("100.00")), stored.PayoutAmount)
	assert.Equal(t, newNullTime("2022-05-20T10:00:00Z"), stored.ApprovedAt)

	assert.Equal(t, int64(1), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, []model.EventType{
		model.EventTypeSubmissionReserved,
		model.EventTypeSubmissionAutoPaid,
	}, l.eventTypes())
	assert.Equal(t, []Event{EventReserve, EventExpire}, l.recordedEvents())

	//---------------------------
	// the key was not consumed by the stale action
	//---------------------------
	_, err = l.service.Approve(newContext(), ActionInput{
		SubmissionID:   sub.ID,
		ActorID:        testAdvertiser,
		IdempotencyKey: "approve-1",
	})
	assert.Equal(t, true, errors.Is(err, ErrInvalidTransition))
}

func TestService_StaleAction_Resubmit(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	_, err := l.service.RequestRevision(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)

	l.clock.Advance(RevisionWindow + time.Second)

	_, err = l.service.Resubmit(newContext(), ResubmitInput{
		SubmissionID: sub.ID,
		CreatorID:    "creator01",
		Link:         "https://vimeo.com/123",
	})
	assert.Equal(t, true, errors.Is(err, ErrStaleAction))

	stored := l.getSubmission(sub.ID)
	assert.Equal(t, model.SubmissionStatusRejected, stored.Status)
	assert.Equal(t, testLink, stored.SubmissionLink)
	assert.Equal(t, int64(2), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, model.EventTypeRevisionExpired, l.eventTypes()[2])
	l.checkSlotConservation(t, c.ID)
}

func TestService_StaleAction_Resubmit_InvalidLink(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	_, err := l.service.RequestRevision(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), l.getCampaign(c.ID).RemainingSlots)

	l.clock.Advance(RevisionWindow + time.Second)

	result, err := l.service.Resubmit(newContext(), ResubmitInput{
		SubmissionID: sub.ID,
		CreatorID:    "creator01",
		Link:         "https://example.com/anything",
	})
	assert.Equal(t, KindStaleAction, KindOf(err))
	assert.Equal(t, model.Submission{}, result)

	var e *Error
	assert.Equal(t, true, errors.As(err, &e))
	assert.Equal(t, model.SubmissionStatusRejected, e.Status)

	stored := l.getSubmission(sub.ID)
	assert.Equal(t, model.SubmissionStatusRejected, stored.Status)
	assert.Equal(t, testLink, stored.SubmissionLink)
	assert.Equal(t, int64(2), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, []model.EventType{
		model.EventTypeSubmissionReserved,
		model.EventTypeRevisionRequested,
		model.EventTypeRevisionExpired,
	}, l.eventTypes())
	l.checkSlotConservation(t, c.ID)
}

func TestService_Resubmit_Approved_InvalidLink(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	_, err := l.service.Approve(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)

	_, err = l.service.Resubmit(newContext(), ResubmitInput{
		SubmissionID: sub.ID,
		CreatorID:    "creator01",
		Link:         "https://example.com/anything",
	})
	assert.Equal(t, KindInvalidTransition, KindOf(err))
	assert.Equal(t, model.SubmissionStatusApproved, l.getSubmission(sub.ID).Status)
}

func TestService_TerminalImmutability(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 3)

	approved := l.reserve(t, c.ID, "creator01")
	_, err := l.service.Approve(newContext(), ActionInput{SubmissionID: approved.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)

	rejected := l.reserve(t, c.ID, "creator02")
	_, err = l.service.Reject(newContext(), ActionInput{SubmissionID: rejected.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)

	autoPaid := l.reserve(t, c.ID, "creator03")
	l.clock.Advance(AutoPayoutWindow)
	_, err = l.service.SweepExpired(newContext(), sql.NullInt64{})
	assert.Equal(t, nil, err)
	assert.Equal(t, model.SubmissionStatusAutoPaid, l.getSubmission(autoPaid.ID).Status)

	campaignBefore := l.getCampaign(c.ID)
	eventsBefore := len(l.store.Events())

	for _, sub := range []model.Submission{approved, rejected, autoPaid} {
		before := l.getSubmission(sub.ID)

		_, err := l.service.Approve(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
		assert.Equal(t, true, errors.Is(err, ErrInvalidTransition))

		_, err = l.service.Reject(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
		assert.Equal(t, true, errors.Is(err, ErrInvalidTransition))

		_, err = l.service.RequestRevision(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
		assert.Equal(t, true, errors.Is(err, ErrInvalidTransition))

		_, err = l.service.Resubmit(newContext(), ResubmitInput{
			SubmissionID: sub.ID,
			CreatorID:    sub.CreatorID,
			Link:         testLink,
		})
		assert.Equal(t, true, errors.Is(err, ErrInvalidTransition))

		_, err = l.service.Resubmit(newContext(), ResubmitInput{
			SubmissionID: sub.ID,
			CreatorID:    sub.CreatorID,
			Link:         "https://example.com/anything",
		})
		assert.Equal(t, KindInvalidTransition, KindOf(err))

		assert.Equal(t, before, l.getSubmission(sub.ID))
	}

	assert.Equal(t, campaignBefore, l.getCampaign(c.ID))
	assert.Equal(t, eventsBefore, len(l.store.Events()))
}

func TestService_SweepExpired_RevisionBoundary(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 3)

	expired := l.reserve(t, c.ID, "creator01")
	running := l.reserve(t, c.ID, "creator02")

	_, err := l.service.RequestRevision(newContext(), ActionInput{SubmissionID: expired.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)

	l.clock.Advance(61 * time.Second)
	_, err = l.service.RequestRevision(newContext(), ActionInput{SubmissionID: running.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)

	// now = expired requested + 48h 1s = running requested + 47h 59m
	l.clock.Advance(RevisionWindow + time.Second - 61*time.Second)
	assert.Equal(t, newTime("2022-05-15T10:00:01Z"), l.clock.Now())

	swept, err := l.service.SweepExpired(newContext(), sql.NullInt64{})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(swept))
	assert.Equal(t, expired.ID, swept[0].ID)
	assert.Equal(t, model.SubmissionStatusRejected, swept[0].Status)

	assert.Equal(t, model.SubmissionStatusRejected, l.getSubmission(expired.ID).Status)
	assert.Equal(t, model.SubmissionStatusRevisionRequested, l.getSubmission(running.ID).Status)
	assert.Equal(t, int64(2), l.getCampaign(c.ID).RemainingSlots)

	//---------------------------
	// idempotent
	//---------------------------
	swept, err = l.service.SweepExpired(newContext(), sql.NullInt64{})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(swept))
	l.checkSlotConservation(t, c.ID)
}

func TestService_SweepExpired_AutoPayoutBoundary(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 3)

	expired := l.reserve(t, c.ID, "creator01")
	l.clock.Advance(61 * time.Second)
	running := l.reserve(t, c.ID, "creator02")

	// now = expired submitted + 7d 1s = running submitted + 7d - 1m
	l.clock.Advance(AutoPayoutWindow + time.Second - 61*time.Second)

	swept, err := l.service.SweepExpired(newContext(), sql.NullInt64{})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(swept))

	paid := l.getSubmission(expired.ID)
	assert.Equal(t, model.SubmissionStatusAutoPaid, paid.Status)
	assert.Equal(t, true, paid.AutoPaid)
	assert.Equal(t, decimal.NewNullDecimal(newDecimal("100.00")), paid.PayoutAmount)
	assert.Equal(t, expired.ID, swept[0].ID)
	assert.Equal(t, paid.Version, swept[0].Version)

	assert.Equal(t, model.SubmissionStatusPending, l.getSubmission(running.ID).Status)
	assert.Equal(t, int64(1), l.getCampaign(c.ID).RemainingSlots)

	swept, err = l.service.SweepExpired(newContext(), sql.NullInt64{})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(swept))
}

func TestService_SweepExpired_CampaignFilter(t *testing.T) {
	l := newLedgerTest()
	c1 := l.newCampaign(t, 2)
	c2 := l.newCampaign(t, 2)

	sub1 := l.reserve(t, c1.ID, "creator01")
	sub2 := l.reserve(t, c2.ID, "creator01")

	l.clock.Advance(AutoPayoutWindow)

	swept, err := l.service.SweepExpired(newContext(), sql.NullInt64{Valid: true, Int64: c1.ID})
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(swept))
	assert.Equal(t, sub1.ID, swept[0].ID)
	assert.Equal(t, model.SubmissionStatusPending, l.getSubmission(sub2.ID).Status)
}

func TestService_SweepExpired_ManyPages(t *testing.T) {
	l := newLedgerTest(WithConfig(config.LedgerConfig{SweepBatchSize: 2}))
	c := l.newCampaign(t, 10)

	for i := 0; i < 5; i++ {
		l.reserve(t, c.ID, fmt.Sprintf("creator%02d", i))
	}
	l.clock.Advance(AutoPayoutWindow)

	swept, err := l.service.SweepExpired(newContext(), sql.NullInt64{})
	assert.Equal(t, nil, err)
	assert.Equal(t, 5, len(swept))
	for i, sub := range swept {
		assert.Equal(t, int64(i+1), sub.ID)
		assert.Equal(t, model.SubmissionStatusAutoPaid, sub.Status)
	}
}

func TestService_SweepExpired_StopsAtFirstError(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 10)

	for i := 0; i < 3; i++ {
		l.reserve(t, c.ID, fmt.Sprintf("creator%02d", i))
	}
	l.clock.Advance(AutoPayoutWindow)

	l.store.BeforeUpdateSubmission = func(sub model.Submission) error {
		if sub.ID == 2 {
			return errors.New("disk full")
		}
		return nil
	}

	swept, err := l.service.SweepExpired(newContext(), sql.NullInt64{})
	assert.Equal(t, "update submission: disk full", err.Error())
	assert.Equal(t, 1, len(swept))
	assert.Equal(t, int64(1), swept[0].ID)
	assert.Equal(t, model.SubmissionStatusPending, l.getSubmission(3).Status)
}

func TestService_PersistenceConflict(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	calls := 0
	l.store.BeforeUpdateSubmission = func(sub model.Submission) error {
		calls++
		return repository.ErrConflict
	}

	_, err := l.service.Approve(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, true, errors.Is(err, ErrPersistenceConflict))
	assert.Equal(t, 3, calls)
	assert.Equal(t, model.SubmissionStatusPending, l.getSubmission(sub.ID).Status)
	assert.Equal(t, 1, len(l.store.Events()))

	//---------------------------
	// a transient conflict is retried
	//---------------------------
	calls = 0
	l.store.BeforeUpdateSubmission = func(sub model.Submission) error {
		calls++
		if calls == 1 {
			return repository.ErrConflict
		}
		return nil
	}

	result, err := l.service.Approve(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, model.SubmissionStatusApproved, result.Status)
	assert.Equal(t, 2, len(l.store.Events()))
}

func TestService_PersistenceConflict_MaxAttemptsFromConfig(t *testing.T) {
	l := newLedgerTest(WithConfig(config.LedgerConfig{MaxAttempts: 5}))
	c := l.newCampaign(t, 2)
	sub := l.reserve(t, c.ID, "creator01")

	calls := 0
	l.store.BeforeUpdateSubmission = func(sub model.Submission) error {
		calls++
		return repository.ErrConflict
	}

	_, err := l.service.Reject(newContext(), ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
	assert.Equal(t, KindPersistenceConflict, KindOf(err))
	assert.Equal(t, 5, calls)
}

func TestService_Idempotency_Reserve(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 3)

	input := ReserveInput{
		CampaignID:     c.ID,
		CreatorID:      "creator01",
		Link:           testLink,
		IdempotencyKey: "reserve-1",
	}
	first, err := l.service.ReserveSlot(newContext(), input)
	assert.Equal(t, nil, err)

	second, err := l.service.ReserveSlot(newContext(), input)
	assert.Equal(t, nil, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, int64(2), l.getCampaign(c.ID).RemainingSlots)
	assert.Equal(t, 1, len(l.store.Events()))

	input.Link = "https://x.com/user/status/999"
	_, err = l.service.ReserveSlot(newContext(), input)
	assert.Equal(t, true, errors.Is(err, ErrIdempotencyConflict))
}

func TestService_Idempotency_Approve(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 3)
	sub := l.reserve(t, c.ID, "creator01")

	input := ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser, IdempotencyKey: "approve-1"}
	first, err := l.service.Approve(newContext(), input)
	assert.Equal(t, nil, err)

	second, err := l.service.Approve(newContext(), input)
	assert.Equal(t, nil, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, model.SubmissionStatusApproved, second.Status)
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, 2, len(l.store.Events()))

	_, err = l.service.Reject(newContext(), input)
	assert.Equal(t, true, errors.Is(err, ErrIdempotencyConflict))

	//---------------------------
	// without a key the retry is a terminal transition
	//---------------------------
	input.IdempotencyKey = ""
	_, err = l.service.Approve(newContext(), input)
	assert.Equal(t, true, errors.Is(err, ErrInvalidTransition))
}

func TestService_GetSubmission(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 3)
	sub := l.reserve(t, c.ID, "creator01")

	l.clock.Advance(time.Hour)
	view, err := l.service.GetSubmission(newContext(), sub.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, sub.ID, view.Submission.ID)
	assert.Equal(t, model.SubmissionStatusPending, view.Submission.Status)
	assert.Equal(t, "6d 23h 0m 0s", view.Countdown)
	assert.Equal(t, []Action{ActionApprove, ActionReject, ActionRequestRevision}, view.AllowedActions)

	_, err = l.service.GetSubmission(newContext(), 99)
	assert.Equal(t, true, errors.Is(err, ErrNotFound))

	//---------------------------
	// expired on read
	//---------------------------
	l.clock.Advance(AutoPayoutWindow)
	view, err = l.service.GetSubmission(newContext(), sub.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.SubmissionStatusAutoPaid, view.Submission.Status)
	assert.Equal(t, false, view.Expired)
	assert.Equal(t, false, view.Deadline.Valid)
	assert.Equal(t, model.SubmissionStatusAutoPaid, l.getSubmission(sub.ID).Status)
}

func TestService_GetSubmission_ExpireOnReadFails(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 3)
	sub := l.reserve(t, c.ID, "creator01")

	l.clock.Advance(AutoPayoutWindow)
	l.store.BeforeUpdateSubmission = func(sub model.Submission) error {
		return errors.New("disk full")
	}

	view, err := l.service.GetSubmission(newContext(), sub.ID)
	assert.Equal(t, "update submission: disk full", err.Error())
	assert.Equal(t, SubmissionView{}, view)
	assert.Equal(t, model.SubmissionStatusPending, l.getSubmission(sub.ID).Status)

	//---------------------------
	// retry after the store recovers
	//---------------------------
	l.store.BeforeUpdateSubmission = nil

	view, err = l.service.GetSubmission(newContext(), sub.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.SubmissionStatusAutoPaid, view.Submission.Status)
}

func TestService_ListSubmissions(t *testing.T) {
	l := newLedgerTest()
	c1 := l.newCampaign(t, 3)
	c2 := l.newCampaign(t, 3)

	a := l.reserve(t, c1.ID, "creator01")
	l.clock.Advance(time.Minute)
	b := l.reserve(t, c2.ID, "creator01")
	l.clock.Advance(time.Minute)
	d := l.reserve(t, c1.ID, "creator02")

	_, err := l.service.Approve(newContext(), ActionInput{SubmissionID: a.ID, ActorID: testAdvertiser})
	assert.Equal(t, nil, err)

	creatorViews, err := l.service.ListCreatorSubmissions(newContext(), "creator01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(creatorViews))
	assert.Equal(t, b.ID, creatorViews[0].Submission.ID)
	assert.Equal(t, a.ID, creatorViews[1].Submission.ID)

	campaignViews, err := l.service.ListCampaignSubmissions(newContext(), c1.ID, model.SubmissionStatusPending)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(campaignViews))
	assert.Equal(t, d.ID, campaignViews[0].Submission.ID)

	advertiserViews, err := l.service.ListAdvertiserSubmissions(newContext(), testAdvertiser, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(advertiserViews))

	advertiserViews, err = l.service.ListAdvertiserSubmissions(newContext(), "advertiser02", 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(advertiserViews))
}

func TestService_Metrics_And_OpportunisticSweep(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	l := newLedgerTest(
		WithConfig(config.LedgerConfig{
			OpportunisticSweepInterval: time.Minute,
			SweepCacheSize:             1024 * 1024,
		}),
		WithMetrics(metrics),
	)
	c := l.newCampaign(t, 3)
	sub := l.reserve(t, c.ID, "creator01")

	_, err := l.service.ReserveSlot(newContext(), ReserveInput{
		CampaignID: c.ID,
		CreatorID:  testAdvertiser,
		Link:       testLink,
	})
	assert.Equal(t, true, errors.Is(err, ErrSelfParticipation))

	l.clock.Advance(AutoPayoutWindow)

	views, err := l.service.ListCampaignSubmissions(newContext(), c.ID, 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(views))
	assert.Equal(t, model.SubmissionStatusAutoPaid, views[0].Submission.Status)
	assert.Equal(t, sub.ID, views[0].Submission.ID)

	//---------------------------
	// throttled within the interval
	//---------------------------
	_, err = l.service.ListCampaignSubmissions(newContext(), c.ID, 0)
	assert.Equal(t, nil, err)

	l.clock.Advance(2 * time.Minute)
	_, err = l.service.ListCampaignSubmissions(newContext(), c.ID, 0)
	assert.Equal(t, nil, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.sweepRuns.WithLabelValues("read")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.swept))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.transitions.WithLabelValues("reserve", "pending")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.transitions.WithLabelValues("expire", "auto_paid")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.errors.WithLabelValues("self_participation")))
}

func TestService_SlotConservation_RandomOperations(t *testing.T) {
	l := newLedgerTest()
	c := l.newCampaign(t, 4)

	rnd := rand.New(rand.NewSource(97))
	creators := []string{"creator01", "creator02", "creator03", "creator04", "creator05", "creator06"}

	pick := func() (model.Submission, bool) {
		list, err := l.store.ListSubmissionsByCampaign(newContext(), c.ID, 0)
		if err != nil || len(list) == 0 {
			return model.Submission{}, false
		}
		return list[rnd.Intn(len(list))], true
	}

	checkErr := func(err error) {
		if err == nil {
			return
		}
		kind := KindOf(err)
		assert.NotEqual(t, ErrorKind(0), kind, err.Error())
		assert.NotEqual(t, KindPersistenceConflict, kind, err.Error())
	}

	for i := 0; i < 400; i++ {
		ctx := newContext()

		switch rnd.Intn(7) {
		case 0, 1:
			_, err := l.service.ReserveSlot(ctx, ReserveInput{
				CampaignID: c.ID,
				CreatorID:  creators[rnd.Intn(len(creators))],
				Link:       testLink,
			})
			checkErr(err)

		case 2:
			if sub, ok := pick(); ok {
				_, err := l.service.Approve(ctx, ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
				checkErr(err)
			}

		case 3:
			if sub, ok := pick(); ok {
				_, err := l.service.Reject(ctx, ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
				checkErr(err)
			}

		case 4:
			if sub, ok := pick(); ok {
				_, err := l.service.RequestRevision(ctx, ActionInput{SubmissionID: sub.ID, ActorID: testAdvertiser})
				checkErr(err)
			}

		case 5:
			if sub, ok := pick(); ok {
				_, err := l.service.Resubmit(ctx, ResubmitInput{
					SubmissionID: sub.ID,
					CreatorID:    sub.CreatorID,
					Link:         "https://vimeo.com/123",
				})
				checkErr(err)
			}

		default:
			l.clock.Advance(time.Duration(rnd.Intn(72)) * time.Hour)
			if rnd.Intn(2) == 0 {
				_, err := l.service.SweepExpired(ctx, sql.NullInt64{})
				checkErr(err)
			}
		}

		l.checkSlotConservation(t, c.ID)
	}
}
